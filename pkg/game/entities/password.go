package entities

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// DefaultAttempts is the attempt budget of a fresh password challenge
const DefaultAttempts = 4

// GuessResult is the outcome of one password guess
type GuessResult int

const (
	GuessInvalid GuessResult = iota // Not a candidate; no attempt used
	GuessCorrect                    // Matches the target
	GuessWrong                      // A candidate, but not the target
	GuessLockout                    // Wrong and no attempts remain
)

// PasswordChallenge is a likeness puzzle over a fixed candidate list
type PasswordChallenge struct {
	Words        []string // Candidates in display order
	Target       string   // One of Words
	AttemptsLeft int
	Solved       bool

	members mapset.Set[string]
}

// NewPasswordChallenge picks a target uniformly from words.
// words must not be empty.
func NewPasswordChallenge(rng *rand.Rand, words []string) *PasswordChallenge {
	members := mapset.New[string]()
	for _, w := range words {
		members.Put(w)
	}
	return &PasswordChallenge{
		Words:        append([]string(nil), words...),
		Target:       words[rng.Intn(len(words))],
		AttemptsLeft: DefaultAttempts,
		members:      members,
	}
}

// IsCandidate reports whether word is in the candidate list
func (p *PasswordChallenge) IsCandidate(word string) bool {
	return p.members.Has(word)
}

// Guess scores an already case-normalized guess. The returned likeness is
// only meaningful for GuessWrong and GuessLockout.
func (p *PasswordChallenge) Guess(word string) (GuessResult, int) {
	if !p.IsCandidate(word) {
		return GuessInvalid, 0
	}
	if word == p.Target {
		p.Solved = true
		return GuessCorrect, len(p.Target)
	}

	p.AttemptsLeft--
	likeness := Likeness(word, p.Target)
	if p.AttemptsLeft <= 0 {
		p.AttemptsLeft = 0
		return GuessLockout, likeness
	}
	return GuessWrong, likeness
}

// Likeness counts the positions i < len(target) where guess and target agree.
// Positions past the end of guess never match.
func Likeness(guess, target string) int {
	matches := 0
	for i := 0; i < len(target) && i < len(guess); i++ {
		if guess[i] == target[i] {
			matches++
		}
	}
	return matches
}
