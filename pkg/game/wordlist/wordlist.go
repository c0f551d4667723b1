// Package wordlist defines the fixed candidate lists for the password
// challenge. The list is the only difficulty knob the game has.
package wordlist

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Difficulty selects a candidate list
type Difficulty int

const (
	Easy Difficulty = iota // Eight six-letter words
	Hard                   // Seven longer words of mixed length
)

var (
	easyWords = []string{"ACCESS", "SYSTEM", "HACKER", "SERVER", "BINARY", "CODING", "SCRIPT", "BYPASS"}
	hardWords = []string{"MAINFRAME", "ENCRYPTION", "FIREWALL", "PROTOCOL", "DATABASE", "ALGORITHM", "BACKDOOR"}
)

// Words returns a copy of the candidate list for d
func Words(d Difficulty) []string {
	if d == Hard {
		return append([]string(nil), hardWords...)
	}
	return append([]string(nil), easyWords...)
}

// String returns the config name of d
func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}

// ParseDifficulty maps a config name to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown word list %q (want easy or hard)", s)
	}
}

// Label returns the translated name of d
func Label(d Difficulty) string {
	if d == Hard {
		return gotext.Get("WORDLIST_HARD")
	}
	return gotext.Get("WORDLIST_EASY")
}
