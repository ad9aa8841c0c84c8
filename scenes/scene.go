package scenes

import (
	"github.com/automoto/tkuet-fighter/shared/leveldata"
	"github.com/automoto/tkuet-fighter/spectate"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/rs/zerolog"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is shared by every scene for the lifetime of the process
type Session struct {
	Log    zerolog.Logger
	Stage  *leveldata.StageData // nil uses the built-in layout
	Record *systems.RecordBook
	Hub    *spectate.Hub // nil when spectating is off
	Seed   int64
}
