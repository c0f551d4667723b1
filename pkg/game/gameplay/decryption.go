package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"netbreach/pkg/game/entities"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// startDecryption opens phase 3 with a fresh packet
func startDecryption(g *state.Game) {
	g.Decryption = entities.NewDecryptionChallenge(g.Rand)
	enterPhase(g, phase.Decryption)

	g.AddLog(gotext.Get("PHASE3_START"), state.Warning)
	g.AddLog(fmt.Sprintf(gotext.Get("DECRYPT_PACKET"), g.Decryption.Encrypted), state.System)
	g.AddLog(fmt.Sprintf(gotext.Get("DECRYPT_HINT"), g.Decryption.Hint), state.Info)
	g.AddLog(gotext.Get("DECRYPT_PROMPT"), state.Info)
}

func handleDecryption(g *state.Game, input string) {
	d := g.Decryption
	if d == nil {
		return
	}
	if !d.CheckSolution(input) {
		g.AddLog(gotext.Get("DECRYPT_FAILED"), state.Error)
		return
	}

	enterPhase(g, phase.Win)
	g.AddLog(gotext.Get("DECRYPT_SUCCESS"), state.Success)
	g.AddLog(gotext.Get("DECRYPT_CONTROL"), state.Success)
	g.AddLines(WinBanner, state.Success)
}
