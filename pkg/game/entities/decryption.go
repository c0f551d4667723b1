package entities

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// DecryptionHint is shown alongside every encrypted packet
const DecryptionHint = "Convert HEX to DECIMAL"

// DecryptionChallenge asks for the decimal value of a hex byte
type DecryptionChallenge struct {
	Encrypted string // e.g. "0x2A"
	Solution  string // e.g. "42"
	Hint      string
}

// NewDecryptionChallenge draws a value in [0, 255)
func NewDecryptionChallenge(rng *rand.Rand) *DecryptionChallenge {
	n := rng.Intn(255)
	return &DecryptionChallenge{
		Encrypted: fmt.Sprintf("0x%02X", n),
		Solution:  strconv.Itoa(n),
		Hint:      DecryptionHint,
	}
}

// CheckSolution compares the trimmed input with the solution as strings.
// "007" does not solve "7".
func (d *DecryptionChallenge) CheckSolution(input string) bool {
	return strings.TrimSpace(input) == d.Solution
}
