package ui

import (
	"testing"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/stretchr/testify/assert"
)

func TestLegendText(t *testing.T) {
	assert.Equal(t, "Left A  Right D  Jump W  Attack F  Super R", LegendText(cfg.Input.Players[0]))
	assert.Equal(t, "Left ArrowLeft  Right ArrowRight  Jump ArrowUp  Attack Slash  Super Period", LegendText(cfg.Input.Players[1]))
	assert.Empty(t, LegendText(cfg.PlayerBindings{}))
}

func TestRecordText(t *testing.T) {
	assert.Equal(t, "尚無戰績", RecordText(systems.SavedRecord{}))
	assert.Equal(t, "玩家一 3 : 1 玩家二   平手 2", RecordText(systems.SavedRecord{
		Wins:    [cfg.PlayerCount]int{3, 1},
		Draws:   2,
		Matches: 6,
	}))
}
