package systems

import (
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads the keyboard and gamepads into a snapshot for one tick.
// Player N also reads the Nth connected standard-layout gamepad.
func PollInput() components.InputSnapshot {
	var snapshot components.InputSnapshot

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	var pads []ebiten.GamepadID
	for _, id := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			pads = append(pads, id)
		}
	}

	for slot, bindings := range cfg.Input.Players {
		for actionID, binding := range bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					snapshot.Press(slot, actionID)
				}
			}
			if slot >= len(pads) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(pads[slot], btn) {
					snapshot.Press(slot, actionID)
				}
			}
		}
		if slot < len(pads) {
			pollAnalogStick(&snapshot, slot, pads[slot])
		}
	}

	return snapshot
}

// pollAnalogStick merges the left stick into the directional actions
func pollAnalogStick(snapshot *components.InputSnapshot, slot int, gpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		snapshot.Press(slot, cfg.ActionLeft)
	}
	if horizontal > deadzone {
		snapshot.Press(slot, cfg.ActionRight)
	}
	if vertical < -deadzone {
		snapshot.Press(slot, cfg.ActionJump)
	}
}

// AnyKeyJustPressed reports whether any of keys went down this frame
func AnyKeyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// ResetRequested reports whether a reset key or a pad start button went down
func ResetRequested() bool {
	if AnyKeyJustPressed(cfg.Input.ResetKeys) {
		return true
	}
	for _, id := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
