package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"netbreach/pkg/game/entities"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// fireTrace interrupts the current phase with a countdown. ret is resumed
// when the override code is entered in time.
func fireTrace(g *state.Game, ret phase.Phase) {
	g.Trace = entities.NewTrace(g.Rand, ret)
	enterPhase(g, phase.Trace)

	g.Sched.Cancel(g.TraceTimer)
	g.TraceTimer = schedule(g, g.Clock(), TraceTickInterval, state.EventTraceTick, 0)

	g.Log.Info("trace fired",
		zap.String("code", g.Trace.TargetCode),
		zap.Stringer("return", ret),
	)
	g.AddLog(gotext.Get("TRACE_ALERT"), state.Error)
	g.AddLog(fmt.Sprintf(gotext.Get("TRACE_ENTER_CODE"), g.Trace.TargetCode), state.Warning)
}

// stopTrace cancels the countdown and clears the trace
func stopTrace(g *state.Game) {
	g.Sched.Cancel(g.TraceTimer)
	g.TraceTimer = 0
	g.Trace = nil
}

func handleTrace(g *state.Game, code string) {
	if g.Trace == nil {
		return
	}
	if !g.Trace.Matches(code) {
		g.AddLog(fmt.Sprintf(gotext.Get("TRACE_INVALID_CODE"), g.Trace.Progress()), state.Error)
		return
	}

	ret := g.Trace.ReturnPhase
	g.Log.Info("trace evaded", zap.Int("seconds_left", g.Trace.TimeLeft))
	g.AddLog(gotext.Get("TRACE_EVADED"), state.Success)
	enterPhase(g, ret)
}

// traceTick is one second of countdown. It re-arms itself until the clock
// runs out, which ends the run whatever phase the trace would have returned to.
func traceTick(g *state.Game, ev state.Event) {
	g.TraceTimer = 0
	if !g.TraceActive() {
		return
	}
	if !g.Trace.Tick() {
		g.TraceTimer = schedule(g, ev.Due, TraceTickInterval, state.EventTraceTick, 0)
		return
	}

	g.Log.Warn("trace completed", zap.Stringer("return", g.Trace.ReturnPhase))
	enterPhase(g, phase.GameOver)
	g.AddLog(gotext.Get("TRACE_COMPLETE"), state.Error)
	g.AddLog(gotext.Get("TRACE_RETRY_HINT"), state.Info)
}
