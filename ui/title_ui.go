package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	gameTitle    = "TKUET"
	gameSubtitle = "雙人對戰"
	startLabel   = "開始對戰 (Enter)"
)

// legendActions is the order actions appear in the control legend
var legendActions = []cfg.ActionID{
	cfg.ActionLeft,
	cfg.ActionRight,
	cfg.ActionJump,
	cfg.ActionAttack,
	cfg.ActionSpecial,
}

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	OnStart func()

	recordLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen showing the control legend and the
// saved win tally
func NewTitleUI(record systems.SavedRecord, onStart func()) *TitleUI {
	tui := &TitleUI{OnStart: onStart}

	tui.loadFonts()
	tui.buildUI()
	tui.SetRecord(record)

	return tui
}

func (tui *TitleUI) loadFonts() {
	// M+ covers the CJK labels
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   96,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(gameTitle, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Gold,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(gameSubtitle, &tui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	for slot := 0; slot < cfg.PlayerCount; slot++ {
		contentContainer.AddChild(tui.buildLegendRow(slot))
	}

	tui.recordLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 220, 255},
		}),
	)
	contentContainer.AddChild(tui.recordLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(240, 48),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(startLabel, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tui.OnStart != nil {
				tui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) buildLegendRow(slot int) *widget.Container {
	profile := cfg.Fighters[slot]

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(profile.Name, &tui.normalFace, &widget.LabelColor{
			Idle: profile.Color,
		}),
	))
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(LegendText(cfg.Input.Players[slot]), &tui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	return row
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// SetRecord refreshes the tally line
func (tui *TitleUI) SetRecord(r systems.SavedRecord) {
	if tui.recordLabel != nil {
		tui.recordLabel.Label = RecordText(r)
	}
}

func (tui *TitleUI) Update() {
	tui.UI.Update()
}

// LegendText lists the first bound key of every action, e.g. "Left A  Right D"
func LegendText(bindings cfg.PlayerBindings) string {
	parts := make([]string, 0, len(legendActions))
	for _, action := range legendActions {
		b, ok := bindings[action]
		if !ok || len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", cfg.ActionName(action), b.Keys[0].String()))
	}
	return strings.Join(parts, "  ")
}

// RecordText formats the saved tally for the title screen
func RecordText(r systems.SavedRecord) string {
	if r.Matches == 0 {
		return "尚無戰績"
	}
	return fmt.Sprintf("%s %d : %d %s   平手 %d",
		cfg.Fighters[0].Name, r.Wins[0], r.Wins[1], cfg.Fighters[1].Name, r.Draws)
}
