package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimerKind selects what a timer does when it fires
type TimerKind int

const (
	TimerBurstShot TimerKind = iota
	TimerSuperExpiry
	TimerSuperEffect
)

// TimerData is a scheduled sub-event held in the world until it fires
type TimerData struct {
	Kind      TimerKind
	Owner     donburi.Entity
	Remaining time.Duration
}

var Timer = donburi.NewComponentType[TimerData]()
