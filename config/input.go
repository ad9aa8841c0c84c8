package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionAttack
	ActionSpecial
	ActionCount // Must be last - used for array sizing
)

// PlayerCount is the number of fighters in a match
const PlayerCount = 2

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// PlayerBindings maps every action of one player to its binding
type PlayerBindings map[ActionID]InputBinding

// InputConfig holds all input mappings
type InputConfig struct {
	Players [PlayerCount]PlayerBindings
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	ResetKeys   []ebiten.Key // Restart after game over
	ConfirmKeys []ebiten.Key // Leave the title screen
	BackKeys    []ebiten.Key // Return to the title screen
	DebugKeys   []ebiten.Key // Toggle the debug overlay
}

// Input is the global input configuration
var Input InputConfig

func init() {
	// Gamepad buttons are shared; player N reads the Nth connected pad.
	pad := map[ActionID][]ebiten.StandardGamepadButton{
		ActionLeft:    {ebiten.StandardGamepadButtonLeftLeft},
		ActionRight:   {ebiten.StandardGamepadButtonLeftRight},
		ActionJump:    {ebiten.StandardGamepadButtonRightBottom},
		ActionAttack:  {ebiten.StandardGamepadButtonRightLeft},
		ActionSpecial: {ebiten.StandardGamepadButtonRightTop},
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Players: [PlayerCount]PlayerBindings{
			{
				ActionLeft:    {Keys: []ebiten.Key{ebiten.KeyA}, StandardGamepadButtons: pad[ActionLeft]},
				ActionRight:   {Keys: []ebiten.Key{ebiten.KeyD}, StandardGamepadButtons: pad[ActionRight]},
				ActionJump:    {Keys: []ebiten.Key{ebiten.KeyW}, StandardGamepadButtons: pad[ActionJump]},
				ActionAttack:  {Keys: []ebiten.Key{ebiten.KeyF}, StandardGamepadButtons: pad[ActionAttack]},
				ActionSpecial: {Keys: []ebiten.Key{ebiten.KeyR}, StandardGamepadButtons: pad[ActionSpecial]},
			},
			{
				ActionLeft:    {Keys: []ebiten.Key{ebiten.KeyArrowLeft}, StandardGamepadButtons: pad[ActionLeft]},
				ActionRight:   {Keys: []ebiten.Key{ebiten.KeyArrowRight}, StandardGamepadButtons: pad[ActionRight]},
				ActionJump:    {Keys: []ebiten.Key{ebiten.KeyArrowUp}, StandardGamepadButtons: pad[ActionJump]},
				ActionAttack:  {Keys: []ebiten.Key{ebiten.KeySlash}, StandardGamepadButtons: pad[ActionAttack]},
				ActionSpecial: {Keys: []ebiten.Key{ebiten.KeyPeriod}, StandardGamepadButtons: pad[ActionSpecial]},
			},
		},
		ResetKeys:   []ebiten.Key{ebiten.KeySpace},
		ConfirmKeys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		BackKeys:    []ebiten.Key{ebiten.KeyEscape},
		DebugKeys:   []ebiten.Key{ebiten.KeyF3},
	}
}

// ActionName returns a short label for legends and logs
func ActionName(id ActionID) string {
	switch id {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionSpecial:
		return "Super"
	default:
		return "None"
	}
}
