package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"netbreach/pkg/engine/logging"
	"netbreach/pkg/game/config"
	"netbreach/pkg/game/devtools"
	"netbreach/pkg/game/gameplay"
	"netbreach/pkg/game/generator"
	"netbreach/pkg/game/locale"
	"netbreach/pkg/game/renderer"
	"netbreach/pkg/game/renderer/ebiten"
	"netbreach/pkg/game/renderer/tui"
	"netbreach/pkg/game/state"
	"netbreach/pkg/game/wordlist"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// Root flags; each overrides the config file and environment when set
	rendererName string
	wordlistName string
	seed         int64
	configPath   string
	logFile      string
	logLevel     string
	language     string

	// fs flags
	fsSeed int64
)

var rootCmd = &cobra.Command{
	Use:   "netbreach",
	Short: "NETRUNNER // TERMINAL BREACH",
	Long: `A hacking puzzle played at a fake shell prompt.

Find the encrypted key fragment in the mainframe's filesystem, crack the
security password from its likeness hints, then decrypt the payload. Random
intrusion traces must be answered with their override code before the
countdown runs out.`,
	SilenceUsage: true,
	RunE:         runGame,
}

var fsCmd = &cobra.Command{
	Use:   "fs",
	Short: "Print a generated filesystem tree and where the key landed",
	Args:  cobra.NoArgs,
	RunE:  runFS,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "netbreach %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&rendererName, "renderer", config.RendererTUI, "Front-end: tui or gui")
	rootCmd.Flags().StringVar(&wordlistName, "wordlist", wordlist.Easy.String(), "Password word list: easy or hard")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "Preferences file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Diagnostics level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&language, "lang", locale.Default, "Message catalogue language")

	fsCmd.Flags().Int64Var(&fsSeed, "seed", 0, "Random seed (0 picks one from the clock)")

	rootCmd.AddCommand(fsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers the flags the player set over the file and environment
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("renderer") {
		cfg.Renderer = rendererName
	}
	if flags.Changed("wordlist") {
		cfg.Wordlist = wordlistName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("lang") {
		cfg.Language = language
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveSeed turns the "pick one for me" seed into a real one
func resolveSeed(s int64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return s
}

func newRenderer(cfg *config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererGUI {
		return ebiten.New(cfg, configPath)
	}
	return tui.New()
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	lang, err := locale.Init(cfg.Language)
	if err != nil {
		return err
	}
	if lang != cfg.Language {
		logger.Warn("language not available, using fallback",
			zap.String("requested", cfg.Language),
			zap.String("using", lang),
		)
	}

	s := resolveSeed(cfg.Seed)
	logger.Info("starting",
		zap.String("version", version),
		zap.String("renderer", cfg.Renderer),
		zap.String("wordlist", cfg.Wordlist),
		zap.Int64("seed", s),
	)

	g := gameplay.NewGame(state.Options{
		Rand:   rand.New(rand.NewSource(s)),
		Words:  wordlist.Words(cfg.Difficulty()),
		Logger: logger,
	})

	renderer.SetRenderer(newRenderer(cfg))
	if err := renderer.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", cfg.Renderer, err)
	}
	return renderer.Run(g)
}

func runFS(cmd *cobra.Command, args []string) error {
	s := resolveSeed(fsSeed)
	gen := generator.Default
	root := gen.Generate(rand.New(rand.NewSource(s)))
	devtools.WriteDump(cmd.OutOrStdout(), gen, s, root)
	return nil
}
