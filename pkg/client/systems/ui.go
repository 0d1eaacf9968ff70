package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"survivor/pkg/sim"
	"survivor/pkg/ui"
)

const (
	cardWidth  = 220
	cardHeight = 150
	cardGap    = 20

	retryWidth  = 140
	retryHeight = 32
)

type UISystem struct {
	Manager *ui.Manager

	HPBar      *ui.ProgressBar
	XPBar      *ui.ProgressBar
	LevelLabel *ui.Label
	KillsLabel *ui.Label
	TimerLabel *ui.Label

	LevelUpWindow *ui.Window
	Cards         [3]*ui.Button
	RetryButton   *ui.Button

	// OnPick is called with the card index clicked in the level-up window.
	OnPick  func(int)
	OnRetry func()

	ShowDebug bool

	width, height int
}

func NewUISystem(width, height int) *UISystem {
	s := &UISystem{
		Manager:    ui.NewManager(),
		HPBar:      ui.NewProgressBar(10, 10, 200, 16, colornames.Crimson),
		XPBar:      ui.NewProgressBar(10, 30, 200, 10, colornames.Deepskyblue),
		LevelLabel: ui.NewLabel(220, 8, ""),
		KillsLabel: ui.NewLabel(220, 26, ""),
		TimerLabel: ui.NewLabel(0, 8, ""),
	}

	windowWidth := 3*cardWidth + 4*cardGap
	s.LevelUpWindow = ui.NewWindow(0, 0, float64(windowWidth), cardHeight+2*cardGap+20, "LEVEL UP!")
	for i := range s.Cards {
		idx := i
		card := ui.NewButton(float64(cardGap+i*(cardWidth+cardGap)), cardGap, cardWidth, cardHeight, "", func() {
			if s.OnPick != nil {
				s.OnPick(idx)
			}
		})
		s.Cards[i] = card
		s.LevelUpWindow.AddChild(card)
	}

	s.RetryButton = ui.NewSecondaryButton(0, 0, retryWidth, retryHeight, "Retry", func() {
		if s.OnRetry != nil {
			s.OnRetry()
		}
	})
	s.RetryButton.SetVisible(false)

	s.Manager.AddElement(s.HPBar)
	s.Manager.AddElement(s.XPBar)
	s.Manager.AddElement(s.LevelLabel)
	s.Manager.AddElement(s.KillsLabel)
	s.Manager.AddElement(s.TimerLabel)
	s.Manager.AddElement(s.LevelUpWindow)
	s.Manager.AddElement(s.RetryButton)

	s.Layout(width, height)
	return s
}

// Layout re-anchors the timer and centres the level-up window.
func (s *UISystem) Layout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.TimerLabel.SetPosition(float64(width/2-20), 8)

	ww, wh := s.LevelUpWindow.GetSize()
	s.LevelUpWindow.SetPosition((float64(width)-ww)/2, (float64(height)-wh)/2)
	s.RetryButton.SetPosition(float64(width-retryWidth)/2, float64(height/2+40))
}

// ShowOffer fills the cards from an offer and opens the window.
func (s *UISystem) ShowOffer(offer sim.Offer) {
	s.LevelUpWindow.Title = fmt.Sprintf("LEVEL %d - CHOOSE AN UPGRADE", offer.Level)
	for i, c := range offer.Choices {
		card := s.Cards[i]
		card.Text = fmt.Sprintf("%d. %s", i+1, c.Title)
		card.Subtitle = c.Description
		card.Badge = ""
		card.Style = ui.ButtonStylePrimary
		if c.IsWeapon {
			if c.IsNew {
				card.Badge = "NEW!"
				card.Style = ui.ButtonStyleHighlight
			} else {
				card.Badge = fmt.Sprintf("Lv %d", c.NextLevel)
			}
		}
	}
	s.LevelUpWindow.SetVisible(true)
}

func (s *UISystem) HideOffer() {
	s.LevelUpWindow.SetVisible(false)
}

// Sync copies the HUD snapshot into the widgets.
func (s *UISystem) Sync(hud sim.HUD) {
	s.HPBar.Value, s.HPBar.Max = float64(hud.HP), float64(hud.MaxHP)
	s.HPBar.Caption = fmt.Sprintf("HP %d/%d", hud.HP, hud.MaxHP)
	s.XPBar.Value, s.XPBar.Max = hud.XP, hud.XPToNextLevel

	s.LevelLabel.Text = fmt.Sprintf("Lv %d", hud.Level)
	s.KillsLabel.Text = fmt.Sprintf("Kills %d", hud.Kills)
	s.TimerLabel.Text = FormatClock(hud.ElapsedSeconds)
	s.RetryButton.SetVisible(hud.Over)
}

func (s *UISystem) Update() error {
	return s.Manager.Update()
}

func (s *UISystem) Draw(screen *ebiten.Image, w *sim.World) {
	ev, over := w.GameOver()
	switch {
	case over:
		dim(screen, 170)
	case s.LevelUpWindow.IsVisible():
		dim(screen, 120)
	}
	s.Manager.Draw(screen)

	if over {
		s.drawGameOver(screen, ev)
	}

	if s.ShowDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f\nenemies %d  shots %d  bones %d  gems %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			len(w.Enemies()), len(w.Projectiles()), len(w.BoneProjectiles()), len(w.Gems())),
			10, s.height-40)
	}
}

func (s *UISystem) drawGameOver(screen *ebiten.Image, ev sim.GameOverEvent) {
	face := basicfont.Face7x13
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Survived %s   Level %d   Kills %d", FormatClock(ev.Elapsed.Seconds()), ev.Level, ev.Kills),
		"Press R or Enter to retry",
	}
	y := s.height/2 - 20
	for i, line := range lines {
		c := color.Color(color.White)
		if i == 0 {
			c = colornames.Crimson
		}
		text.Draw(screen, line, face, (s.width-len(line)*7)/2, y+i*22, c)
	}
}

func dim(screen *ebiten.Image, alpha uint8) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: alpha}, false)
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
