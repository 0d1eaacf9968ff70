package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Element is the base interface for all UI widgets
type Element interface {
	Update() (bool, error)
	Draw(screen *ebiten.Image)
	HandleInput(x, y int) bool // Returns true if input was consumed
	SetPosition(x, y float64)
	GetPosition() (float64, float64)
	GetSize() (float64, float64)
	IsVisible() bool
	SetVisible(visible bool)
}

// BaseElement holds common properties
type BaseElement struct {
	X, Y          float64
	Width, Height float64
	Visible       bool
	Color         color.Color
}

func (b *BaseElement) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

func (b *BaseElement) GetPosition() (float64, float64) {
	return b.X, b.Y
}

func (b *BaseElement) GetSize() (float64, float64) {
	return b.Width, b.Height
}

func (b *BaseElement) IsVisible() bool {
	return b.Visible
}

func (b *BaseElement) SetVisible(visible bool) {
	b.Visible = visible
}

func (b *BaseElement) contains(x, y int) bool {
	return x >= int(b.X) && x <= int(b.X+b.Width) && y >= int(b.Y) && y <= int(b.Y+b.Height)
}

// Button Styles
type ButtonStyle int

const (
	ButtonStylePrimary ButtonStyle = iota
	ButtonStyleSecondary
	ButtonStyleHighlight
)

// Button Widget. With a Subtitle it renders as a tall card.
type Button struct {
	BaseElement
	Text      string
	Subtitle  string
	Badge     string // small tag in the top-right corner
	OnClick   func()
	IsHovered bool
	Style     ButtonStyle
}

func NewButton(x, y, w, h float64, label string, onClick func()) *Button {
	return &Button{
		BaseElement: BaseElement{X: x, Y: y, Width: w, Height: h, Visible: true},
		Text:        label,
		OnClick:     onClick,
		Style:       ButtonStylePrimary,
	}
}

func NewSecondaryButton(x, y, w, h float64, label string, onClick func()) *Button {
	b := NewButton(x, y, w, h, label, onClick)
	b.Style = ButtonStyleSecondary
	return b
}

// Button Widget Update
func (b *Button) Update() (bool, error) {
	if !b.Visible {
		return false, nil
	}

	mx, my := ebiten.CursorPosition()
	b.IsHovered = b.contains(mx, my)

	if b.IsHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b.OnClick != nil {
			b.OnClick()
			return true, nil // Consumed
		}
	}
	return false, nil
}

func (b *Button) Draw(screen *ebiten.Image) {
	if !b.Visible {
		return
	}

	var bgColor, borderColor color.RGBA
	switch b.Style {
	case ButtonStylePrimary:
		bgColor = color.RGBA{60, 60, 180, 255}
		if b.IsHovered {
			bgColor = color.RGBA{100, 100, 200, 255}
		}
		borderColor = color.RGBA{200, 200, 255, 255}
	case ButtonStyleSecondary:
		bgColor = color.RGBA{40, 40, 40, 255}
		if b.IsHovered {
			bgColor = color.RGBA{80, 80, 80, 255}
		}
		borderColor = color.RGBA{100, 100, 100, 255}
	case ButtonStyleHighlight:
		bgColor = color.RGBA{120, 90, 20, 255}
		if b.IsHovered {
			bgColor = color.RGBA{160, 120, 30, 255}
		}
		borderColor = color.RGBA{255, 215, 0, 255}
	}

	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	face := basicfont.Face7x13
	if b.Subtitle == "" {
		textWidth := len(b.Text) * 7
		textX := int(b.X) + (int(b.Width)-textWidth)/2
		if textX < int(b.X)+5 {
			textX = int(b.X) + 5
		}
		text.Draw(screen, b.Text, face, textX, int(b.Y+b.Height/2+4), color.White)
		return
	}

	// Card layout
	text.Draw(screen, b.Text, face, int(b.X)+10, int(b.Y)+24, color.White)
	if b.Badge != "" {
		badgeX := int(b.X+b.Width) - len(b.Badge)*7 - 10
		text.Draw(screen, b.Badge, face, badgeX, int(b.Y)+24, borderColor)
	}
	for i, line := range Wrap(b.Subtitle, int(b.Width-20)/7) {
		text.Draw(screen, line, face, int(b.X)+10, int(b.Y)+52+i*16, color.RGBA{210, 210, 210, 255})
	}
}

func (b *Button) HandleInput(x, y int) bool {
	if !b.Visible {
		return false
	}
	return b.contains(x, y)
}

// Manager handles the UI stack
type Manager struct {
	Elements []Element
}

func NewManager() *Manager {
	return &Manager{
		Elements: make([]Element, 0),
	}
}

func (m *Manager) AddElement(e Element) {
	m.Elements = append(m.Elements, e)
}

// Manager Update
func (m *Manager) Update() error {
	// Top-most elements (added last) handle input first.
	for i := len(m.Elements) - 1; i >= 0; i-- {
		consumed, err := m.Elements[i].Update()
		if err != nil {
			return err
		}
		if consumed {
			break
		}
	}
	return nil
}

func (m *Manager) Draw(screen *ebiten.Image) {
	for _, e := range m.Elements {
		e.Draw(screen)
	}
}
