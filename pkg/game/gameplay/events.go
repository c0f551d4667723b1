package gameplay

import (
	"time"

	"go.uber.org/zap"

	"netbreach/pkg/engine/sched"
	"netbreach/pkg/game/state"
)

// schedule queues kind to fire d after from, stamped with the current phase and epoch
func schedule(g *state.Game, from time.Time, d time.Duration, kind state.EventKind, step int) sched.Handle {
	return g.Sched.After(from, d, state.Event{
		Kind:  kind,
		Phase: g.Phase,
		Epoch: g.Epoch,
		Step:  step,
		Due:   from.Add(d),
	})
}

// Advance fires every scheduled event that is due at g.Clock(), in order.
// Front-ends call it on every update.
func Advance(g *state.Game) {
	now := g.Clock()
	for {
		ev, ok := g.Sched.PopDue(now)
		if !ok {
			return
		}
		if stale(g, ev) {
			g.Log.Debug("dropped stale event",
				zap.Stringer("kind", ev.Kind),
				zap.Stringer("scheduled_in", ev.Phase),
				zap.Stringer("phase", g.Phase),
			)
			continue
		}
		apply(g, ev)
	}
}

// stale reports whether ev was scheduled under a state that no longer holds.
// A reboot survives phase changes but not a reset.
func stale(g *state.Game, ev state.Event) bool {
	if ev.Epoch != g.Epoch {
		return true
	}
	if ev.Kind == state.EventReboot {
		return false
	}
	return ev.Phase != g.Phase
}

func apply(g *state.Game, ev state.Event) {
	switch ev.Kind {
	case state.EventBootStep:
		bootStep(g, ev.Step, ev.Due)
	case state.EventTraceTick:
		traceTick(g, ev)
	case state.EventDecryptionStart:
		startDecryption(g)
	case state.EventReboot:
		Reset(g)
	}
}
