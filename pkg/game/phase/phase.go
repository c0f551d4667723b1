// Package phase defines the top-level game phases.
package phase

// Phase controls which command set and challenge are live
type Phase int

const (
	Boot Phase = iota
	Menu
	DirectoryHunt
	Trace
	PasswordCracker
	Decryption
	Win
	GameOver
)

var names = map[Phase]string{
	Boot:            "BOOT",
	Menu:            "MENU",
	DirectoryHunt:   "DIRECTORY_HUNT",
	Trace:           "TRACE",
	PasswordCracker: "PASSWORD_CRACKER",
	Decryption:      "DECRYPTION",
	Win:             "WIN",
	GameOver:        "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := names[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Gameplay reports whether the phase is one a trace can interrupt
func (p Phase) Gameplay() bool {
	return p == DirectoryHunt || p == PasswordCracker || p == Decryption
}

// Terminal reports whether the phase ends a run
func (p Phase) Terminal() bool {
	return p == Win || p == GameOver
}
