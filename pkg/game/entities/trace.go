package entities

import (
	"math/rand"

	"netbreach/pkg/game/phase"
)

const (
	// TracePrefix starts every override code
	TracePrefix = "OVERRIDE-"
	// TraceSeconds is the countdown length of a fresh trace
	TraceSeconds = 12

	traceSuffixLen = 6
	traceAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Trace is a live intrusion-detection countdown
type Trace struct {
	TargetCode  string
	TimeLeft    int
	TotalTime   int
	ReturnPhase phase.Phase // Phase resumed when the code is entered
}

// NewTrace generates a fresh override code with a full clock
func NewTrace(rng *rand.Rand, ret phase.Phase) *Trace {
	suffix := make([]byte, traceSuffixLen)
	for i := range suffix {
		suffix[i] = traceAlphabet[rng.Intn(len(traceAlphabet))]
	}
	return &Trace{
		TargetCode:  TracePrefix + string(suffix),
		TimeLeft:    TraceSeconds,
		TotalTime:   TraceSeconds,
		ReturnPhase: ret,
	}
}

// Matches reports whether input is exactly the override code
func (t *Trace) Matches(input string) bool {
	return input == t.TargetCode
}

// Tick removes one second and reports whether the clock ran out
func (t *Trace) Tick() bool {
	if t.TimeLeft > 0 {
		t.TimeLeft--
	}
	return t.TimeLeft == 0
}

// Progress is the elapsed share of the countdown as a whole percentage
func (t *Trace) Progress() int {
	if t.TotalTime <= 0 {
		return 100
	}
	return (t.TotalTime - t.TimeLeft) * 100 / t.TotalTime
}

// Expired reports whether the countdown has reached zero
func (t *Trace) Expired() bool {
	return t.TimeLeft <= 0
}
