package core

import "fmt"

// Button names understood by the platform. Clicking a button is the same as
// pressing its shortcut key.
const (
	ButtonPause       = "pause"
	ButtonRestart     = "restart"
	ButtonMain        = "main"
	ButtonNewPlayer   = "newplayer"
	ButtonLeaderboard = "leaderboard"
	ButtonBack        = "back"
)

// Button is a named clickable region.
type Button struct {
	Name   string
	Label  string
	Action Action
	Bounds Rect
}

// ButtonBar lays out a row of buttons and maps clicks to them.
type ButtonBar struct {
	buttons []Button
}

// GameButtons returns the button bar shown under the playing field.
func GameButtons() *ButtonBar {
	return NewButtonBar([]Button{
		{Name: ButtonPause, Label: "Pause", Action: ActionPause},
		{Name: ButtonRestart, Label: "Restart", Action: ActionRestart},
		{Name: ButtonMain, Label: "Main", Action: ActionMain},
		{Name: ButtonNewPlayer, Label: "New Player", Action: ActionNewPlayer},
		{Name: ButtonLeaderboard, Label: "Leaderboard", Action: ActionLeaderboard},
	})
}

// BackButton returns the single-button bar of the leaderboard screen.
func BackButton() *ButtonBar {
	return NewButtonBar([]Button{
		{Name: ButtonBack, Label: "Back", Action: ActionBack},
	})
}

// NewButtonBar creates a bar from the given buttons. Call Layout before
// drawing or hit-testing.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{buttons: buttons}
}

// Layout places the buttons on row y, centered within width, one space apart.
func (b *ButtonBar) Layout(y, width int) {
	total := 0
	for _, btn := range b.buttons {
		total += len(btn.text()) + 1
	}
	total--

	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	for i := range b.buttons {
		w := len(b.buttons[i].text())
		b.buttons[i].Bounds = NewRect(x, y, w, 1)
		x += w + 1
	}
}

// HitTest returns the button under (x, y).
func (b *ButtonBar) HitTest(x, y int) (Button, bool) {
	for _, btn := range b.buttons {
		if btn.Bounds.Contains(x, y) {
			return btn, true
		}
	}
	return Button{}, false
}

// Buttons returns the laid out buttons.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Draw renders the bar into the screen at its laid out position.
func (b *ButtonBar) Draw(dst *Screen) {
	for _, btn := range b.buttons {
		dst.DrawTextColored(btn.Bounds.X, btn.Bounds.Y, btn.text(), ColorBrightCyan)
	}
}

func (btn Button) text() string {
	return fmt.Sprintf("[%s]", btn.Label)
}
