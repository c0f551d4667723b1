package gameplay

import (
	engineinput "netbreach/pkg/engine/input"
	"netbreach/pkg/engine/fs"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// Complete expands the last token of line against the current directory.
// Only the hunt completes; with several matches the first in sorted order wins.
func Complete(g *state.Game, line string) (string, bool) {
	if g.Phase != phase.DirectoryHunt {
		return line, false
	}
	dir, ok := g.CurrentDir()
	if !ok {
		return line, false
	}
	prefix, token := engineinput.LastToken(line)
	name, ok := fs.Complete(dir, token)
	if !ok {
		return line, false
	}
	return prefix + name, true
}
