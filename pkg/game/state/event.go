package state

import (
	"time"

	"netbreach/pkg/game/phase"
)

// EventKind identifies a delayed continuation
type EventKind int

const (
	EventBootStep        EventKind = iota // Next line of the boot sequence
	EventTraceTick                        // One second of trace countdown
	EventDecryptionStart                  // Password solved, open the decryption challenge
	EventReboot                           // Session terminated, restart from Boot
)

func (k EventKind) String() string {
	switch k {
	case EventBootStep:
		return "boot_step"
	case EventTraceTick:
		return "trace_tick"
	case EventDecryptionStart:
		return "decryption_start"
	case EventReboot:
		return "reboot"
	default:
		return "unknown"
	}
}

// Event is a scheduled continuation. Phase and Epoch capture the state it was
// scheduled under so stale events can be dropped when they come due.
type Event struct {
	Kind  EventKind
	Phase phase.Phase
	Epoch uint64
	Step  int       // Boot step index
	Due   time.Time // When the event was meant to fire
}
