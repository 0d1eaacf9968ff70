package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Label Widget
type Label struct {
	BaseElement
	Text string
}

func NewLabel(x, y float64, s string) *Label {
	return &Label{
		BaseElement: BaseElement{X: x, Y: y, Visible: true, Color: color.White},
		Text:        s,
	}
}

// Label Update
func (l *Label) Update() (bool, error) {
	return false, nil
}

func (l *Label) Draw(screen *ebiten.Image) {
	if !l.Visible {
		return
	}
	text.Draw(screen, l.Text, basicfont.Face7x13, int(l.X), int(l.Y)+13, l.Color)
}

func (l *Label) HandleInput(x, y int) bool {
	return false
}

// Window Container
type WindowChild struct {
	Element Element
	RelX    float64
	RelY    float64
}

// Window is a titled panel whose children move with it.
type Window struct {
	BaseElement
	Title    string
	Children []WindowChild
}

func NewWindow(x, y, w, h float64, title string) *Window {
	return &Window{
		BaseElement: BaseElement{X: x, Y: y, Width: w, Height: h, Visible: false, Color: color.RGBA{30, 30, 40, 235}},
		Title:       title,
		Children:    make([]WindowChild, 0),
	}
}

// AddChild places e relative to the window's content area.
func (w *Window) AddChild(e Element) {
	rx, ry := e.GetPosition()
	w.Children = append(w.Children, WindowChild{Element: e, RelX: rx, RelY: ry})
	e.SetPosition(w.X+rx, w.Y+ry+20)
}

func (w *Window) SetPosition(x, y float64) {
	w.X, w.Y = x, y
	for _, c := range w.Children {
		c.Element.SetPosition(x+c.RelX, y+c.RelY+20)
	}
}

// ClearChildren drops every child.
func (w *Window) ClearChildren() {
	w.Children = w.Children[:0]
}

// Window Update
func (w *Window) Update() (bool, error) {
	if !w.Visible {
		return false, nil
	}
	for i := len(w.Children) - 1; i >= 0; i-- {
		consumed, err := w.Children[i].Element.Update()
		if err != nil {
			return false, err
		}
		if consumed {
			return true, nil
		}
	}
	// Modal: clicks inside the window never fall through
	mx, my := ebiten.CursorPosition()
	return w.contains(mx, my), nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if !w.Visible {
		return
	}

	x, y, width, height := float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height)
	vector.DrawFilledRect(screen, x, y, width, height, w.Color, false)
	vector.DrawFilledRect(screen, x, y, width, 20, color.RGBA{70, 70, 110, 255}, false)
	vector.StrokeRect(screen, x, y, width, height, 1, color.RGBA{150, 150, 200, 255}, false)

	titleX := int(w.X) + (int(w.Width)-len(w.Title)*7)/2
	text.Draw(screen, w.Title, basicfont.Face7x13, titleX, int(w.Y)+15, color.White)

	for _, c := range w.Children {
		c.Element.Draw(screen)
	}
}

func (w *Window) HandleInput(x, y int) bool {
	if !w.Visible {
		return false
	}
	return w.contains(x, y)
}

// ProgressBar fills left to right with Value/Max.
type ProgressBar struct {
	BaseElement
	Value, Max float64
	Fill       color.Color
	Caption    string
}

func NewProgressBar(x, y, w, h float64, fill color.Color) *ProgressBar {
	return &ProgressBar{
		BaseElement: BaseElement{X: x, Y: y, Width: w, Height: h, Visible: true, Color: color.RGBA{50, 50, 50, 255}},
		Fill:        fill,
	}
}

// Ratio is Value/Max clamped to [0, 1].
func (p *ProgressBar) Ratio() float64 {
	if p.Max <= 0 {
		return 0
	}
	r := p.Value / p.Max
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

func (p *ProgressBar) Update() (bool, error) {
	return false, nil
}

func (p *ProgressBar) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	x, y, w, h := float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height)
	vector.DrawFilledRect(screen, x, y, w, h, p.Color, false)
	vector.DrawFilledRect(screen, x, y, w*float32(p.Ratio()), h, p.Fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{0, 0, 0, 255}, false)
	if p.Caption != "" {
		text.Draw(screen, p.Caption, basicfont.Face7x13, int(p.X)+4, int(p.Y+p.Height/2)+4, color.White)
	}
}

func (p *ProgressBar) HandleInput(x, y int) bool {
	return false
}

// Wrap breaks s into lines of at most width characters on word boundaries.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
