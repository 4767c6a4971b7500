package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var borderColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Widget is anything the Panel can stack vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetPosition(x, y float64)
}

func inside(mx, my int, x, y, w, h float64) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

// Panel is a fixed column of widgets under a title, followed by free text
// lines refreshed every frame (the HUD).
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []Widget
	Lines         []string

	BGColor     color.RGBA
	BorderColor color.RGBA
}

const (
	panelPadding = 10
	titleHeight  = 28
	lineHeight   = 16
)

// NewPanel creates an empty panel
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 20, G: 30, B: 45, A: 230},
		BorderColor: color.RGBA{R: 90, G: 110, B: 140, A: 255},
	}
}

// Add places w under the previous widget and returns it.
func (p *Panel) Add(w Widget) Widget {
	w.SetPosition(p.X+panelPadding, p.Y+p.contentHeight())
	p.Widgets = append(p.Widgets, w)
	return w
}

// AddCheckbox adds a checkbox widget to the panel
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(0, 0, label, value)
	p.Add(c)
	return c
}

// AddButton adds a full width button
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(0, 0, p.Width-2*panelPadding, 24, label, onClick)
	p.Add(b)
	return b
}

func (p *Panel) contentHeight() float64 {
	h := float64(titleHeight)
	for _, w := range p.Widgets {
		h += w.Height()
	}
	return h
}

// Update handles input for all widgets
func (p *Panel) Update() {
	for _, w := range p.Widgets {
		w.Update()
	}
}

// Draw renders the panel, its widgets and the text lines below them
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPadding), int(p.Y+6))
	for _, w := range p.Widgets {
		w.Draw(screen)
	}

	y := p.Y + p.contentHeight() + panelPadding
	for _, line := range p.Lines {
		if y+lineHeight > p.Y+p.Height {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, int(p.X+panelPadding), int(y))
		y += lineHeight
	}
}
