package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/rsa-snake/internal/core"
)

const (
	infoLines = 5
	fieldTop  = infoLines + 1 // Below the info panel and its separator
)

// fieldBox returns the bordered field rectangle on a screen of width w.
func (s *Session) fieldBox(w int) core.Rect {
	cw := s.cfg.Field.CellWidth
	boxW := s.env.field.Cols*cw + 2
	boxH := s.env.field.Rows + 2
	return core.NewRect(max(0, (w-boxW)/2), fieldTop, boxW, boxH)
}

// ButtonRow returns the screen row left free for the platform's button bar.
func (s *Session) ButtonRow() int {
	return fieldTop + s.env.field.Rows + 2
}

// MinSize returns the smallest screen the session can render on.
func (s *Session) MinSize() (w, h int) {
	return s.env.field.Cols*s.cfg.Field.CellWidth + 2, s.ButtonRow() + 1
}

// Render draws the info panel, the field, and any overlay.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := s.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		drawOverlay(dst, core.ColorYellow,
			"Window too small",
			fmt.Sprintf("Resize to at least %dx%d", minW, minH))
		return
	}

	for i, line := range s.Info() {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(1, i, line, c)
	}
	dst.DrawHLine(0, infoLines, dst.Width(), '─', core.ColorGray)

	box := s.fieldBox(dst.Width())
	dst.DrawBox(box, core.ColorBlue)
	s.renderFood(dst, box)
	s.renderSnake(dst, box)

	switch {
	case s.phase == PhasePaused:
		drawOverlay(dst, core.ColorBrightCyan,
			"Paused",
			"Press an arrow key to resume")
	case s.ack == AckCiphertext:
		drawOverlay(dst, core.ColorBrightCyan,
			"Encrypted message:",
			joinInts(s.message.Cipher, " "),
			"",
			"Press any key to continue")
	case s.ack == AckRoundResult:
		s.renderResult(dst)
	}
}

// cellOrigin returns the screen position of a grid cell.
func (s *Session) cellOrigin(box core.Rect, c Cell) (int, int) {
	return box.X + 1 + c.Col*s.cfg.Field.CellWidth, box.Y + 1 + c.Row
}

func (s *Session) renderFood(dst *core.Screen, box core.Rect) {
	for _, f := range s.run.stage.food() {
		x, y := s.cellOrigin(box, f.Cell)
		dst.DrawTextColored(x, y, f.Label, core.ColorYellow)
	}
}

func (s *Session) renderSnake(dst *core.Screen, box core.Rect) {
	cw := s.cfg.Field.CellWidth
	for i, seg := range s.env.snake.body {
		if !s.env.field.Contains(seg) {
			continue
		}
		x, y := s.cellOrigin(box, seg)
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		dst.DrawHLine(x, y, cw, '█', c)
	}
}

func (s *Session) renderResult(dst *core.Screen) {
	r := s.result
	verdict := fmt.Sprintf("Decryption Success! Plaintext: %s", r.Plaintext)
	color := core.ColorBrightGreen
	if !r.Success {
		verdict = fmt.Sprintf("Decryption Failed! Expected: %s, got: %s", r.Plaintext, r.Decrypted)
		color = core.ColorBrightRed
	}
	best := ""
	if r.Improved {
		best = "New personal best!"
	}
	drawOverlay(dst, color,
		verdict,
		fmt.Sprintf("Player %s took %.2f seconds", r.Player, r.Elapsed.Seconds()),
		best,
		"Press any key to start a new round")
}

// drawOverlay draws a bordered box with centered lines in the middle of dst.
func drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
