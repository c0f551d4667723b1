package gameplay

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"netbreach/pkg/game/entities"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// startPassword builds the phase 2 challenge and shows the candidates
func startPassword(g *state.Game) {
	g.Password = entities.NewPasswordChallenge(g.Rand, g.Words)

	g.AddLog(gotext.Get("PHASE2_START"), state.Warning)
	g.AddLog(fmt.Sprintf(gotext.Get("PASSWORD_LENGTH"), len(g.Password.Target)), state.Info)
	g.AddLog(strings.Join(g.Password.Words, "  "), state.System)
	g.AddLog(gotext.Get("PASSWORD_PROMPT"), state.Info)
}

// handlePassword scores an uppercased guess
func handlePassword(g *state.Game, guess string) {
	p := g.Password
	if p == nil {
		return
	}
	if p.Solved {
		g.AddLog(gotext.Get("PASSWORD_STAND_BY"), state.Warning)
		return
	}

	result, likeness := p.Guess(guess)
	switch result {
	case entities.GuessInvalid:
		g.AddLog(gotext.Get("PASSWORD_INVALID_TOKEN"), state.Error)

	case entities.GuessCorrect:
		g.AddLog(gotext.Get("PASSWORD_GRANTED"), state.Success)
		g.AddLog(gotext.Get("PASSWORD_DECRYPTING"), state.Warning)
		schedule(g, g.Clock(), DecryptionDelay, state.EventDecryptionStart, 0)

	case entities.GuessWrong, entities.GuessLockout:
		g.AddLog(fmt.Sprintf(gotext.Get("PASSWORD_DENIED"), likeness, len(p.Target)), state.Error)
		g.AddLog(fmt.Sprintf(gotext.Get("PASSWORD_ATTEMPTS_LEFT"), p.AttemptsLeft), state.Warning)
		if result == entities.GuessLockout {
			enterPhase(g, phase.GameOver)
			g.AddLog(gotext.Get("PASSWORD_LOCKDOWN"), state.Error)
			g.AddLog(gotext.Get("PASSWORD_RETRY_HINT"), state.Info)
		}
	}
}
