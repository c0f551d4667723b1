// Package generator builds the filesystem the player explores.
package generator

import (
	"math/rand"
	"strings"

	"netbreach/pkg/engine/fs"
)

// FilesystemGenerator is an interface for filesystem layouts
type FilesystemGenerator interface {
	Generate(rng *rand.Rand) *fs.Node
	Name() string
}

const (
	// KeyFileName is the file holding the access code fragment
	KeyFileName = "key_fragment.dat"
	// DecoyFileName is planted next to the key
	DecoyFileName = "sys_dump.log"
	// FragmentMarker marks file content that advances the hunt
	FragmentMarker = "CODE_FRAGMENT"
	// KeyContent is the content of the key file
	KeyContent = FragmentMarker + ": 7B3A"
	// DecoyContent is flavor text with no effect
	DecoyContent = "System dump 0xFA42... No critical data found."
)

// CandidatePaths are the directories the key may be hidden in.
// Each is drawn with equal probability.
var CandidatePaths = [][]string{
	{"home", "guest", "documents"},
	{"var", "spool", "mail"},
	{"opt", "backup"},
	{"sys", "logs", "audit"},
}

// Available generators
var (
	Mainframe = &MainframeGenerator{}
)

// Default is the default filesystem generator
var Default FilesystemGenerator = Mainframe

// MainframeGenerator builds the guest account's view of the mainframe
type MainframeGenerator struct{}

// Name returns the generator name
func (m *MainframeGenerator) Name() string {
	return "mainframe"
}

// Generate builds a fresh tree and hides the key in one candidate directory
func (m *MainframeGenerator) Generate(rng *rand.Rand) *fs.Node {
	root := skeleton()

	target := CandidatePaths[rng.Intn(len(CandidatePaths))]
	dir := mkdirAll(root, target)
	dir.Add(fs.NewFile(KeyFileName, KeyContent))
	dir.Add(fs.NewFile(DecoyFileName, DecoyContent))

	return root
}

// skeleton returns the fixed part of the tree
func skeleton() *fs.Node {
	return fs.NewDir(fs.RootName,
		fs.NewDir("sys",
			fs.NewFile("config.txt", "sys_ver=4.0.2\nsecurity_level=HIGH"),
			fs.NewDir("logs",
				fs.NewFile("error.log", "[ERR] Failed login attempt from IP 192.168.X.X"),
			),
		),
		fs.NewDir("home",
			fs.NewDir("guest",
				fs.NewFile("notes.txt", "Don't forget to backup the data."),
				fs.NewFile("todo.md", "- Update firewall\n- Rotate encryption keys"),
			),
		),
		fs.NewDir("var",
			fs.NewDir("spool",
				fs.NewDir("mail"),
			),
		),
		fs.NewDir("opt",
			fs.NewDir("backup",
				fs.NewFile("archive.tar", "Binary data..."),
			),
		),
		fs.NewFile("readme.txt", strings.Join([]string{
			"Welcome to NetRunner.",
			"Use 'ls' to look around.",
			"Use 'cd' to move folders.",
			"Use 'cat' to read files.",
			"Find the code to proceed.",
		}, "\n")),
	)
}

// mkdirAll walks path from root, creating any directory that is missing
func mkdirAll(root *fs.Node, path []string) *fs.Node {
	current := root
	for _, segment := range path {
		next, ok := current.Child(segment)
		if !ok || !next.IsDir() {
			next = fs.NewDir(segment)
			current.Add(next)
		}
		current = next
	}
	return current
}
