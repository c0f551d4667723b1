package gameplay

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "netbreach/pkg/engine/input"
	"netbreach/pkg/game/generator"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// handleHunt is the shell of phase 1
func handleHunt(g *state.Game, cmd engineinput.Command) {
	switch cmd.Name {
	case "help":
		g.AddLog(gotext.Get("HUNT_HELP"), state.System)
	case "pwd":
		g.AddLog(g.Cwd(), state.Info)
	case "ls":
		list(g)
	case "cd":
		changeDir(g, cmd.Arg)
	case "cat":
		cat(g, cmd.Arg)
	default:
		commandNotFound(g, cmd.Name)
	}
}

func list(g *state.Game) {
	dir, ok := g.CurrentDir()
	if !ok {
		g.AddLog(gotext.Get("HUNT_INVALID_DIR"), state.Error)
		return
	}
	g.AddLog(dir.Listing(), state.Success)
}

// changeDir only ever moves to a directory that exists
func changeDir(g *state.Game, arg string) {
	switch arg {
	case "":
		g.Path = nil
		return
	case "..":
		if len(g.Path) > 0 {
			g.Path = g.Path[:len(g.Path)-1]
		}
		return
	}

	dir, ok := g.CurrentDir()
	if ok {
		if child, found := dir.Child(arg); found && child.IsDir() {
			g.Path = append(append([]string(nil), g.Path...), arg)
			return
		}
	}
	g.AddLog(fmt.Sprintf(gotext.Get("HUNT_NO_SUCH_DIR"), arg), state.Error)
}

func cat(g *state.Game, arg string) {
	if arg == "" {
		g.AddLog(gotext.Get("HUNT_CAT_USAGE"), state.Warning)
		return
	}

	dir, ok := g.CurrentDir()
	if ok {
		if file, found := dir.Child(arg); found && file.IsFile() {
			g.AddLines(file.Content, state.Success)
			if strings.Contains(file.Content, generator.FragmentMarker) {
				g.AddLog(gotext.Get("HUNT_FRAGMENT_ACQUIRED"), state.Success)
				fireTrace(g, phase.PasswordCracker)
			}
			return
		}
	}
	g.AddLog(fmt.Sprintf(gotext.Get("HUNT_NO_SUCH_FILE"), arg), state.Error)
}
