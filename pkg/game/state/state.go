package state

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"netbreach/pkg/engine/fs"
	"netbreach/pkg/engine/input"
	"netbreach/pkg/engine/sched"
	"netbreach/pkg/game/entities"
	"netbreach/pkg/game/generator"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/wordlist"
)

// DefaultTraceChance is the per-command trace roll during the directory hunt
const DefaultTraceChance = 0.1

// Options configures a new game. Zero fields fall back to defaults.
type Options struct {
	Rand      *rand.Rand
	Clock     func() time.Time
	Words     []string
	Generator generator.FilesystemGenerator
	Logger    *zap.Logger
}

// Game represents the game state for a breach session
type Game struct {
	Phase phase.Phase

	FS   *fs.Node
	Path []string // Directory segments from root; always resolves to a dir

	Logs    []LogEntry
	History *input.History

	Words      []string // Password candidates
	Password   *entities.PasswordChallenge
	Decryption *entities.DecryptionChallenge
	Trace      *entities.Trace
	TraceTimer sched.Handle // The one live countdown tick, zero when none

	Generator generator.FilesystemGenerator
	Rand      *rand.Rand
	Clock     func() time.Time
	Sched     *sched.Scheduler[Event]
	Epoch     uint64 // Bumped on every reset

	TraceChance float64 // Per-command chance of a trace during the hunt

	Log *zap.Logger

	logSeq uint64 // Entries ever added; survives ClearLogs
}

// NewGame creates a new game instance in the Boot phase with an empty tree.
// Callers normally go through gameplay.NewGame, which also starts the boot sequence.
func NewGame(opts Options) *Game {
	g := &Game{
		Phase:     phase.Boot,
		History:   input.NewHistory(),
		Logs:      make([]LogEntry, 0),
		Words:     opts.Words,
		Generator: opts.Generator,
		Rand:      opts.Rand,
		Clock:     opts.Clock,
		Sched:     sched.New[Event](),
		Log:       opts.Logger,

		TraceChance: DefaultTraceChance,
	}
	if g.Rand == nil {
		g.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.Clock == nil {
		g.Clock = time.Now
	}
	if len(g.Words) == 0 {
		g.Words = wordlist.Words(wordlist.Easy)
	}
	if g.Generator == nil {
		g.Generator = generator.Default
	}
	if g.Log == nil {
		g.Log = zap.NewNop()
	}
	return g
}

// CurrentDir returns the directory the player is in
func (g *Game) CurrentDir() (*fs.Node, bool) {
	return fs.ResolveDir(g.FS, g.Path)
}

// Cwd renders the current path for prompts and pwd
func (g *Game) Cwd() string {
	return fs.Format(g.Path)
}

// TraceActive reports whether a trace countdown is running
func (g *Game) TraceActive() bool {
	return g.Phase == phase.Trace && g.Trace != nil
}
