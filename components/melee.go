package components

import (
	"time"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/yohamta/donburi"
)

type MeleeAttackData struct {
	Attacking    bool
	Active       bool    // Hit-box can connect
	Progress     float64 // Attack frames elapsed
	Phase        cfg.MeleePhaseID
	LastAttackAt time.Duration
	NextAttackAt time.Duration
	HitLanded    bool // One hit per swing
	Swings       int  // Started this round, shown by the debug overlay
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()

type ShooterData struct {
	NextShotAt time.Duration
	Fired      int
}

var Shooter = donburi.NewComponentType[ShooterData]()

type SuperData struct {
	Active      bool
	ActivatedAt time.Duration
	Expiry      donburi.Entity // Pending expiry timer
	Activations int
}

var Super = donburi.NewComponentType[SuperData]()
