package scenes

import (
	"sync"

	"github.com/automoto/tkuet-fighter/core"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// BattleScene runs the match: it feeds polled input to the core once per
// frame, offers a reset after game over and mirrors snapshots to watchers.
type BattleScene struct {
	sceneChanger SceneChanger
	session      *Session
	match        *core.Match
	intro        *TitleIntro
	once         sync.Once
}

// NewBattleScene creates a new battle scene
func NewBattleScene(sc SceneChanger, session *Session) *BattleScene {
	return &BattleScene{sceneChanger: sc, session: session}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	if systems.AnyKeyJustPressed(cfg.Input.BackKeys) {
		bs.sceneChanger.ChangeScene(NewTitleScene(bs.sceneChanger, bs.session))
		return
	}

	if systems.AnyKeyJustPressed(cfg.Input.DebugKeys) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	bs.match.Tick(systems.PollInput())
	bs.intro.Update(1 / float32(ebiten.TPS()))

	if bs.match.Over() && systems.ResetRequested() {
		bs.match.Reset()
		bs.intro = NewTitleIntro(cfg.Effects.TitleIntro)
	}

	if hub := bs.session.Hub; hub != nil {
		if err := hub.Publish(bs.match.Snapshot()); err != nil {
			bs.session.Log.Warn().Err(err).Msg("could not publish snapshot")
		}
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if bs.match == nil {
		return
	}
	bs.match.Draw(screen)
	bs.intro.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.match = core.New(core.Options{
		Rules:  cfg.CurrentRules(),
		Logger: bs.session.Log,
		Stage:  bs.session.Stage,
		Seed:   bs.session.Seed,
	})

	if record := bs.session.Record; record != nil {
		bs.match.OnMatchEnded(func(ev systems.MatchEndedEvent) {
			if err := record.RecordMatch(ev); err != nil {
				bs.session.Log.Warn().Err(err).Msg("match result not saved")
			}
		})
	}

	bs.intro = NewTitleIntro(cfg.Effects.TitleIntro)
}
