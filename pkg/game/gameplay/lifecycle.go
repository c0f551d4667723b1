// Package gameplay provides the command interpreter and phase controller.
//
// Every exported function runs to completion on the caller's goroutine.
// Delays are scheduled events that fire when a front-end calls Advance.
package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"netbreach/pkg/engine/input"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

const (
	// ExitDelay is the pause between "exit" and the reboot
	ExitDelay = 1500 * time.Millisecond
	// DecryptionDelay is the pause between a granted password and phase 3
	DecryptionDelay = 2 * time.Second
	// TraceTickInterval is the trace countdown resolution
	TraceTickInterval = time.Second
)

// bootLine is one step of the boot sequence and the wait after it
type bootLine struct {
	sev  state.Severity
	wait time.Duration
}

var bootSequence = []bootLine{
	{state.System, 600 * time.Millisecond},
	{state.System, 600 * time.Millisecond},
	{state.System, 800 * time.Millisecond},
	{state.Success, 400 * time.Millisecond},
}

// bootText returns the message printed at boot step n
func bootText(n int) string {
	switch n {
	case 0:
		return gotext.Get("BOOT_KERNEL")
	case 1:
		return gotext.Get("BOOT_DRIVERS")
	case 2:
		return gotext.Get("BOOT_NEUROLINK")
	default:
		return gotext.Get("BOOT_CONNECTED")
	}
}

// BootDuration is the time from a reset until the menu accepts input
func BootDuration() time.Duration {
	var total time.Duration
	for _, b := range bootSequence {
		total += b.wait
	}
	return total
}

// NewGame creates a game and starts its boot sequence
func NewGame(opts state.Options) *state.Game {
	g := state.NewGame(opts)
	Reset(g)
	return g
}

// Reset throws away the session and boots again with a fresh filesystem.
// Anything still scheduled is dropped.
func Reset(g *state.Game) {
	g.Epoch++
	g.Sched.Reset()
	g.TraceTimer = 0

	g.Trace = nil
	g.Password = nil
	g.Decryption = nil
	g.Path = nil
	g.ClearLogs()
	g.History = input.NewHistory()
	g.FS = g.Generator.Generate(g.Rand)
	g.Phase = phase.Boot

	g.Log.Info("session reset",
		zap.Uint64("epoch", g.Epoch),
		zap.String("generator", g.Generator.Name()),
	)
	bootStep(g, 0, g.Clock())
}

// bootStep logs step and schedules the next one. Past the last step it
// prints the banner and opens the menu.
func bootStep(g *state.Game, step int, at time.Time) {
	if step < len(bootSequence) {
		line := bootSequence[step]
		g.AddLog(bootText(step), line.sev)
		schedule(g, at, line.wait, state.EventBootStep, step+1)
		return
	}

	g.AddLines(AsciiHeader, state.Success)
	g.AddLog(gotext.Get("BOOT_HELP_HINT"), state.Warning)
	enterPhase(g, phase.Menu)
}

// enterPhase switches phase. Leaving Trace always stops the countdown, and
// the password challenge is built the first time its phase is entered.
func enterPhase(g *state.Game, p phase.Phase) {
	prev := g.Phase
	if prev == phase.Trace && p != phase.Trace {
		stopTrace(g)
	}
	g.Phase = p
	g.Log.Info("phase changed", zap.Stringer("from", prev), zap.Stringer("to", p))

	if p == phase.PasswordCracker && g.Password == nil {
		startPassword(g)
	}
}
