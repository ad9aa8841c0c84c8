package scenes

import (
	"sync"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/automoto/tkuet-fighter/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene shows the control legend and the saved tally until a player
// starts the first match
type TitleScene struct {
	sceneChanger SceneChanger
	session      *Session
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldStart  bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, session *Session) *TitleScene {
	return &TitleScene{sceneChanger: sc, session: session}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	ts.titleUI.Update()

	if ts.shouldStart || systems.AnyKeyJustPressed(cfg.Input.ConfirmKeys) {
		ts.session.Log.Debug().Msg("leaving title screen")
		ts.sceneChanger.ChangeScene(NewBattleScene(ts.sceneChanger, ts.session))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	var record systems.SavedRecord
	if ts.session.Record != nil {
		record = ts.session.Record.Record()
	}
	ts.titleUI = ui.NewTitleUI(record, func() { ts.shouldStart = true })
}
