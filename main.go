// treasure-hunters is a side-scrolling pirate platformer.
//
// Usage:
//
//	treasure-hunters                 - Play, starting on the level select map
//	treasure-hunters levels list     - List the levels in the table
//	treasure-hunters levels check    - Load and validate every level
//
// Global flags:
//
//	--config <file>   - YAML/JSON/TOML settings file (TREASURE_* env vars also apply)
//	--assets <dir>    - Directory holding graphics/ and audio/
//	--levels <file>   - Level table on disk instead of the built-in one
package main

import (
	"fmt"
	"image"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/automoto/treasure-hunters/assets"
	"github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/fonts"
	"github.com/automoto/treasure-hunters/scenes"
	"github.com/automoto/treasure-hunters/shared/clock"
	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/automoto/treasure-hunters/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "treasure-hunters"

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLevels   string
	flagDebug    bool
	flagMute     bool
	flagLevel    int
	flagLogLevel string
	flagSeed     int64
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	session *scenes.Session
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.session.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        "Treasure Hunters - a pirate platformer",
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory holding graphics/ and audio/")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level table file (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision rects and reload edited level files")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with audio muted")
	rootCmd.Flags().IntVar(&flagLevel, "level", -1, "Skip the map and start this level")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Seed for level decoration (0 = per level)")

	rootCmd.AddCommand(levelsCmd)
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*config.FileConfig, *log.Logger, error) {
	fc, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("assets") {
		fc.AssetRoot = flagAssets
	}
	if flags.Changed("levels") {
		fc.LevelTable = flagLevels
	}
	if flags.Changed("log-level") {
		fc.LogLevel = flagLogLevel
	}
	if flags.Changed("debug") {
		fc.Debug = flagDebug
	}
	if flags.Changed("mute") {
		fc.Muted = flagMute
	}
	if flags.Changed("level") {
		fc.StartLevel = flagLevel
	}
	fc.Apply()

	level, err := log.ParseLevel(fc.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if fc.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
	})
	return fc, logger, nil
}

// openLevels returns the level loader and, for a table on disk, the
// directory it lives in.
func openLevels(tablePath string) (*leveldata.Loader, string, error) {
	if tablePath == "" {
		l, err := leveldata.NewLoader(assets.LevelFS, assets.LevelTable)
		return l, "", err
	}
	dir := filepath.Dir(tablePath)
	l, err := leveldata.NewLoader(os.DirFS(dir), filepath.Base(tablePath))
	return l, dir, err
}

func runGame(cmd *cobra.Command, args []string) error {
	fc, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	levels, levelDir, err := openLevels(fc.LevelTable)
	if err != nil {
		return err
	}

	var assetFS fs.FS
	if fc.AssetRoot != "" {
		assetFS = os.DirFS(fc.AssetRoot)
	}
	lib := assets.NewLibrary(assetFS)
	lib.Preload()
	for _, p := range lib.Missing() {
		logger.Debug("using placeholder", "path", p)
	}

	if err := fonts.LoadDefaults(config.UI.FontSize); err != nil {
		return err
	}
	if err := assets.LoadShaders(); err != nil {
		logger.Warn("locked level shader unavailable", "err", err)
	}
	if assetFS != nil {
		systems.InitAudio(assetFS, logger)
	}

	store := systems.OpenStore(appName, logger)
	saved, err := store.Load()
	if err != nil {
		logger.Warn("ignoring saved settings", "err", err)
	}
	systems.ApplySavedSettings(saved)
	systems.SetMuted(systems.Muted() || config.Debug.Muted)

	ctx := &scenes.Context{
		Log:    logger,
		Assets: lib,
		Levels: levels,
		Store:  store,
		Clock:  clock.NewReal(),
	}
	if flagSeed != 0 {
		ctx.Rand = rand.New(rand.NewSource(flagSeed))
	}
	if config.Debug.Enabled && levelDir != "" {
		w, err := scenes.NewWatcher(levelDir, logger)
		if err != nil {
			logger.Warn("level hot reload disabled", "err", err)
		} else {
			defer w.Close()
			ctx.Watcher = w
		}
	}

	g := &Game{}
	g.session = scenes.NewSession(ctx, g)
	if start := config.Debug.StartLevel; start >= 0 {
		g.session.CreateLevel(start)
	} else {
		g.session.CreateOverworld(0)
	}

	ebiten.SetWindowTitle("Treasure Hunters")
	ebiten.SetWindowSize(int(float64(config.C.Width)*fc.Scale), int(float64(config.C.Height)*fc.Scale))
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting", "levels", len(levels.Table().Levels), "debug", config.Debug.Enabled)
	err = ebiten.RunGame(g)
	store.SaveCurrent()
	return err
}
