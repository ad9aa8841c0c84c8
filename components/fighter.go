package components

import (
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/yohamta/donburi"
)

// FighterData is the identity and presentation state of one combatant
type FighterData struct {
	Slot        int // 0 for player one, 1 for player two
	Profile     cfg.FighterProfile
	FacingRight bool
	Walking     bool
	Dead        bool

	// Presentation only; the melee window is driven by MeleeAttackData.Progress
	Anim  cfg.AnimStateID
	Frame float64
}

var Fighter = donburi.NewComponentType[FighterData]()
