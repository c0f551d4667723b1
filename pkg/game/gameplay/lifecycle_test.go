package gameplay

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	engineinput "netbreach/pkg/engine/input"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

func TestBoot_StepsInOrderWithDelays(t *testing.T) {
	h := newHarness(t)
	h.expectPhase(phase.Boot)

	steps := []struct {
		wait time.Duration
		want string
	}{
		{0, "Initializing Kernel..."},
		{600 * time.Millisecond, "Loading Drivers..."},
		{600 * time.Millisecond, "Connecting to NeuroLink..."},
		{800 * time.Millisecond, "Connection Established."},
	}
	for i, s := range steps {
		if s.wait > 0 {
			h.wait(s.wait - time.Millisecond)
			if len(h.g.Logs) != i {
				t.Fatalf("step %d logged early: %v", i, h.g.LogTexts())
			}
			h.wait(time.Millisecond)
		}
		h.expectLast(s.want)
		h.expectPhase(phase.Boot)
	}

	h.wait(399 * time.Millisecond)
	h.expectPhase(phase.Boot)
	h.wait(time.Millisecond)
	h.expectPhase(phase.Menu)
	h.expectLast("Type 'help' for available commands.")

	if got, want := h.g.Logs[4].Text, strings.Split(AsciiHeader, "\n")[0]; got != want {
		t.Errorf("header first line = %q, want %q", got, want)
	}
	if h.g.Logs[4].Severity != state.Success {
		t.Errorf("header severity = %s, want success", h.g.Logs[4].Severity)
	}
}

func TestBoot_CatchesUpInOnePump(t *testing.T) {
	h := newHarness(t)
	h.wait(10 * time.Second)
	h.expectPhase(phase.Menu)

	want := []string{
		"Initializing Kernel...",
		"Loading Drivers...",
		"Connecting to NeuroLink...",
		"Connection Established.",
	}
	if diff := cmp.Diff(want, h.g.LogTexts()[:4]); diff != "" {
		t.Errorf("boot log mismatch (-want +got):\n%s", diff)
	}
}

func TestBoot_IgnoresInput(t *testing.T) {
	h := newHarness(t)
	h.submit("start", "exit")
	got := ProcessIntent(h.g, engineinput.Intent{Action: engineinput.ActionSubmit}, "help")

	if got != "help" {
		t.Errorf("ProcessIntent during boot = %q, want line untouched", got)
	}
	if h.g.History.Len() != 0 {
		t.Errorf("History.Len() = %d, want 0", h.g.History.Len())
	}
	if len(h.g.Logs) != 1 {
		t.Errorf("logs = %v, want only the first boot line", h.g.LogTexts())
	}

	h.wait(time.Hour)
	h.expectPhase(phase.Menu)
}

func TestReset_FreshSession(t *testing.T) {
	h := newHarness(t).toPassword()
	oldFS := h.g.FS
	epoch := h.g.Epoch

	Reset(h.g)

	h.expectPhase(phase.Boot)
	if h.g.Epoch != epoch+1 {
		t.Errorf("Epoch = %d, want %d", h.g.Epoch, epoch+1)
	}
	if h.g.FS == oldFS {
		t.Error("filesystem was not regenerated")
	}
	if h.g.Password != nil || h.g.Trace != nil || h.g.Decryption != nil {
		t.Error("challenges survived reset")
	}
	if h.g.History.Len() != 0 || len(h.g.Path) != 0 {
		t.Error("history or path survived reset")
	}
	if diff := cmp.Diff([]string{"Initializing Kernel..."}, h.g.LogTexts()); diff != "" {
		t.Errorf("log after reset mismatch (-want +got):\n%s", diff)
	}
	if h.g.Sched.Pending() != 1 {
		t.Errorf("Sched.Pending() = %d, want only the next boot step", h.g.Sched.Pending())
	}
}

func TestStale(t *testing.T) {
	g := state.NewGame(state.Options{})
	g.Epoch = 3
	g.Phase = phase.Menu

	tests := []struct {
		name string
		ev   state.Event
		want bool
	}{
		{"current", state.Event{Kind: state.EventBootStep, Phase: phase.Menu, Epoch: 3}, false},
		{"old epoch", state.Event{Kind: state.EventBootStep, Phase: phase.Menu, Epoch: 2}, true},
		{"other phase", state.Event{Kind: state.EventTraceTick, Phase: phase.Trace, Epoch: 3}, true},
		{"reboot across phases", state.Event{Kind: state.EventReboot, Phase: phase.Win, Epoch: 3}, false},
		{"reboot old epoch", state.Event{Kind: state.EventReboot, Phase: phase.Menu, Epoch: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stale(g, tt.ev); got != tt.want {
				t.Errorf("stale(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestPhaseChangesAreLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	clock := &fakeClock{now: start}
	g := NewGame(state.Options{Clock: clock.Now, Generator: fixedTree{}, Logger: zap.New(core)})
	g.TraceChance = 0

	clock.now = clock.now.Add(BootDuration())
	Advance(g)
	Submit(g, "start")

	changes := logs.FilterMessage("phase changed").All()
	if len(changes) != 2 {
		t.Fatalf("got %d phase change entries, want 2", len(changes))
	}
	if got := changes[1].ContextMap()["to"]; got != phase.DirectoryHunt.String() {
		t.Errorf("second change to = %v, want %s", got, phase.DirectoryHunt)
	}
	if logs.FilterMessage("session reset").Len() != 1 {
		t.Error("reset was not logged")
	}
}
