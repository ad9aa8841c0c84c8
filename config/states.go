package config

import "github.com/yohamta/donburi/ecs"

// MatchStateID is the round state
type MatchStateID int

const (
	MatchStateRunning MatchStateID = iota
	MatchStateGameOver
)

func (s MatchStateID) String() string {
	if s == MatchStateGameOver {
		return "game_over"
	}
	return "running"
}

// AnimStateID is the derived animation state of a fighter
type AnimStateID int

const (
	AnimWalk AnimStateID = iota
	AnimJump
	AnimAttack
)

func (s AnimStateID) String() string {
	switch s {
	case AnimJump:
		return "jump"
	case AnimAttack:
		return "attack"
	default:
		return "walk"
	}
}

// MeleePhaseID is the phase of the melee state machine
type MeleePhaseID int

const (
	MeleeIdle MeleePhaseID = iota
	MeleeWindup
	MeleeActive
	MeleeRecovery
)

func (p MeleePhaseID) String() string {
	switch p {
	case MeleeWindup:
		return "windup"
	case MeleeActive:
		return "active"
	case MeleeRecovery:
		return "recovery"
	default:
		return "idle"
	}
}

// NoWinner marks a match without a winner yet
const NoWinner = -1

// DrawWinner marks a match that ended level on health
const DrawWinner = -2

const (
	Default ecs.LayerID = iota
)
