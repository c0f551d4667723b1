// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"netbreach/pkg/engine/fs"
	"netbreach/pkg/game/generator"
	"netbreach/pkg/game/state"
)

const fsDumpFilename = "fs.txt"

// WriteTree writes an indented listing of root to w. Files show their
// content size; the key file is flagged.
func WriteTree(w io.Writer, root *fs.Node) {
	root.Walk(func(path []string, n *fs.Node) {
		if len(path) == 0 {
			fmt.Fprintln(w, "/")
			return
		}
		indent := strings.Repeat("  ", len(path)-1)
		if n.IsDir() {
			fmt.Fprintf(w, "%s%s/\n", indent, n.Name)
			return
		}
		marker := ""
		if strings.Contains(n.Content, generator.FragmentMarker) {
			marker = "  <-- key"
		}
		fmt.Fprintf(w, "%s%s (%d bytes)%s\n", indent, n.Name, len(n.Content), marker)
	})
}

// KeyPath returns the path of the first file holding the code fragment
func KeyPath(root *fs.Node) ([]string, bool) {
	var found []string
	root.Walk(func(path []string, n *fs.Node) {
		if found == nil && n.IsFile() && strings.Contains(n.Content, generator.FragmentMarker) {
			found = path
		}
	})
	return found, found != nil
}

// WriteDump writes a debug dump of a generated filesystem: metadata, the
// tree, and where the key ended up.
func WriteDump(w io.Writer, gen generator.FilesystemGenerator, seed int64, root *fs.Node) {
	fmt.Fprintln(w, "=== FILESYSTEM DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generator: %s\n", gen.Name())
	fmt.Fprintf(w, "seed: %d\n", seed)
	if key, ok := KeyPath(root); ok {
		fmt.Fprintf(w, "key_path: %s\n", fs.Format(key))
	} else {
		fmt.Fprintln(w, "key_path: (none)")
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Tree ---")
	WriteTree(w, root)
}

// DumpFilesystemToFile writes the live game's tree and cursor to fs.txt.
func DumpFilesystemToFile(g *state.Game) (string, error) {
	if g.FS == nil {
		return "", fmt.Errorf("no filesystem")
	}

	absPath, err := filepath.Abs(fsDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== FILESYSTEM DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "generator: %s\n", g.Generator.Name())
	fmt.Fprintf(f, "epoch: %d\n", g.Epoch)
	fmt.Fprintf(f, "phase: %s\n", g.Phase)
	fmt.Fprintf(f, "cwd: %s\n", g.Cwd())
	if key, ok := KeyPath(g.FS); ok {
		fmt.Fprintf(f, "key_path: %s\n", fs.Format(key))
	}
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Tree ---")
	WriteTree(f, g.FS)

	return absPath, nil
}
