package gameplay

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	engineinput "netbreach/pkg/engine/input"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// line is the text currently in the prompt; the returned string replaces it.
// Quitting and zooming belong to the front-end and leave line untouched.
func ProcessIntent(g *state.Game, intent engineinput.Intent, line string) string {
	if g.Phase == phase.Boot {
		return line
	}

	switch intent.Action {
	case engineinput.ActionSubmit:
		Submit(g, line)
		return ""

	case engineinput.ActionComplete:
		if completed, ok := Complete(g, line); ok {
			return completed
		}

	case engineinput.ActionHistoryPrev:
		if prev, ok := g.History.Prev(); ok {
			return prev
		}

	case engineinput.ActionHistoryNext:
		if next, ok := g.History.Next(); ok {
			return next
		}
	}
	return line
}

// Submit runs one line of player input against the current phase
func Submit(g *state.Game, raw string) {
	if g.Phase == phase.Boot {
		return
	}
	cmd, ok := engineinput.ParseLine(raw)
	if !ok {
		return
	}

	g.History.Add(cmd.Raw)
	g.AddLog(fmt.Sprintf(gotext.Get("PROMPT_ECHO"), g.Cwd(), cmd.Raw), state.Info)
	g.Log.Debug("command",
		zap.String("line", cmd.Raw),
		zap.Stringer("phase", g.Phase),
	)

	// Global commands
	switch cmd.Name {
	case "clear":
		g.ClearLogs()
		return
	case "exit":
		g.AddLog(gotext.Get("EXIT_TERMINATING"), state.Error)
		schedule(g, g.Clock(), ExitDelay, state.EventReboot, 0)
		return
	}

	switch g.Phase {
	case phase.Menu:
		handleMenu(g, cmd)
	case phase.DirectoryHunt:
		if g.Rand.Float64() < g.TraceChance {
			fireTrace(g, phase.DirectoryHunt)
			return
		}
		handleHunt(g, cmd)
	case phase.Trace:
		handleTrace(g, cmd.Raw)
	case phase.PasswordCracker:
		handlePassword(g, strings.ToUpper(cmd.Raw))
	case phase.Decryption:
		handleDecryption(g, cmd.Raw)
	case phase.Win:
		if cmd.Name == "reboot" {
			Reset(g)
			return
		}
		commandNotFound(g, cmd.Name)
	case phase.GameOver:
		if cmd.Name == "retry" {
			Reset(g)
			return
		}
		commandNotFound(g, cmd.Name)
	}
}

func handleMenu(g *state.Game, cmd engineinput.Command) {
	switch cmd.Name {
	case "help":
		g.AddLines(HelpText, state.System)
	case "start":
		g.Path = nil
		enterPhase(g, phase.DirectoryHunt)
		g.AddLog(gotext.Get("PHASE1_START"), state.Warning)
		g.AddLog(gotext.Get("PHASE1_OBJECTIVE"), state.Info)
	default:
		g.AddLog(fmt.Sprintf(gotext.Get("MENU_UNKNOWN_COMMAND"), cmd.Name), state.Error)
	}
}

func commandNotFound(g *state.Game, name string) {
	g.AddLog(fmt.Sprintf(gotext.Get("UNKNOWN_COMMAND"), name), state.Error)
}
