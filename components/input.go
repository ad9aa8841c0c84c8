package components

import (
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/yohamta/donburi"
)

// ActionSet is the held state of every action for one player
type ActionSet [cfg.ActionCount]bool

// InputSnapshot is the held state of both players for one tick
type InputSnapshot struct {
	Players [cfg.PlayerCount]ActionSet
}

// Held reports whether slot holds action. Unknown slots or actions read
// as not held.
func (s InputSnapshot) Held(slot int, action cfg.ActionID) bool {
	if slot < 0 || slot >= cfg.PlayerCount || action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return s.Players[slot][action]
}

// Press marks action held for slot; out-of-range values are ignored
func (s *InputSnapshot) Press(slot int, actions ...cfg.ActionID) {
	if slot < 0 || slot >= cfg.PlayerCount {
		return
	}
	for _, a := range actions {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			s.Players[slot][a] = true
		}
	}
}

// Input is the singleton holding the snapshot for the current tick
var Input = donburi.NewComponentType[InputSnapshot]()
