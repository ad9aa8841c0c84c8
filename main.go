package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/automoto/tkuet-fighter/assets"
	"github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/fonts"
	"github.com/automoto/tkuet-fighter/logging"
	"github.com/automoto/tkuet-fighter/scenes"
	"github.com/automoto/tkuet-fighter/shared/leveldata"
	"github.com/automoto/tkuet-fighter/spectate"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const appName = "tkuet-fighter"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTitleScene(g, session)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Screen.Width, config.Screen.Height)
	return config.Screen.Width, config.Screen.Height
}

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	logDir := flag.String("logs", "", "also write a session log file into this directory")
	watch := flag.String("watch", "", "follow a running game's spectate feed at host:port instead of playing")
	flag.Parse()

	cfgErr := config.Load(*configDir)

	log, closeLog := newLogger(*logDir)
	defer closeLog()
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("using built-in configuration")
	}

	if *watch != "" {
		if err := runWatcher(*watch, log); err != nil {
			log.Error().Err(err).Msg("watch failed")
			os.Exit(1)
		}
		return
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("could not load fonts")
	}

	session := &scenes.Session{
		Log:    log,
		Stage:  loadStage(config.Stage, log),
		Record: systems.OpenRecordBook(appName, log),
		Seed:   time.Now().UnixNano(),
	}

	if config.Spectate.Enabled {
		hub := spectate.NewHub(config.Spectate.Interval, log)
		srv := spectate.NewServer(config.Spectate.Addr, hub, log)
		if _, err := srv.Start(); err != nil {
			log.Warn().Err(err).Str("addr", config.Spectate.Addr).Msg("spectating disabled")
		} else {
			session.Hub = hub
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()
		}
	}

	ebiten.SetWindowSize(config.Screen.Width, config.Screen.Height)
	ebiten.SetWindowTitle("TKUET")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal().Err(err).Msg("game loop stopped")
	}
}

// newLogger writes to stdout and, when logDir is set, a per-session file
func newLogger(logDir string) (zerolog.Logger, func()) {
	writers := []io.Writer{os.Stdout}
	closeFn := func() {}

	if logDir != "" {
		path := logging.LogFilePath(logDir, appName, time.Now())
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.Create(path); err == nil {
				writers = append(writers, f)
				closeFn = func() { _ = f.Close() }
			}
		}
	}

	return logging.New(config.LogLevel, writers...), closeFn
}

// loadStage reads the configured Tiled stage, falling back to the built-in
// layout when it is missing or broken
func loadStage(path string, log zerolog.Logger) *leveldata.StageData {
	if path == "" {
		return nil
	}
	stage, err := assets.LoadStage(path)
	if err != nil {
		log.Warn().Err(err).Str("stage", path).Strs("available", assets.Stages()).Msg("using built-in stage")
		return nil
	}
	log.Debug().Str("stage", stage.Name).Int("platforms", len(stage.Platforms)).Msg("stage loaded")
	return stage
}

// runWatcher follows a spectate feed and logs round results until
// interrupted
func runWatcher(addr string, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := spectate.NewWatcher(log)
	if err := w.Connect(ctx, fmt.Sprintf("ws://%s/ws", addr)); err != nil {
		return err
	}
	defer w.Disconnect()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastState := ""
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if w.State() != spectate.StateConnected {
				log.Info().Uint64("snapshots", w.Received()).Msg("feed ended")
				return w.LastError()
			}
		case s := <-w.Snapshots():
			if len(s.Fighters) == config.PlayerCount {
				log.Debug().
					Uint64("tick", s.Tick).
					Int("hp1", s.Fighters[0].Health).
					Int("hp2", s.Fighters[1].Health).
					Str("remaining", systems.FormatRemaining(s.Remaining)).
					Msg("snapshot")
			}
			if s.State != lastState {
				ev := log.Info().Str("state", s.State)
				if s.Winner != "" {
					ev = ev.Str("winner", s.Winner)
				}
				ev.Msg("round state")
				lastState = s.State
			}
		}
	}
}
