package main

import (
	"tl/launch"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// The launcher box is a one-line text field inside a single-cell border,
// with the text starting at a fixed left margin.
const (
	boxHeight  = 3
	leftMargin = 2
)

func tcellToMods(m tcell.ModMask) modMask {
	var out modMask
	if m&tcell.ModShift != 0 {
		out |= modShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= modCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= modAlt
	}
	return out
}

// translateKey maps a tcell key event onto the dispatcher's key model.
// Ctrl+letter arrives from the terminal as a dedicated key constant, so the
// letters the dispatcher cares about are unfolded back into rune+modCtrl.
func translateKey(ev *tcell.EventKey) keyEvent {
	mods := tcellToMods(ev.Modifiers())
	switch ev.Key() {
	case tcell.KeyUp:
		return keyEvent{key: keyUp, mods: mods}
	case tcell.KeyDown:
		return keyEvent{key: keyDown, mods: mods}
	case tcell.KeyLeft:
		return keyEvent{key: keyLeft, mods: mods}
	case tcell.KeyRight:
		return keyEvent{key: keyRight, mods: mods}
	case tcell.KeyHome:
		return keyEvent{key: keyHome, mods: mods}
	case tcell.KeyEnd:
		return keyEvent{key: keyEnd, mods: mods}
	case tcell.KeyEscape:
		return keyEvent{key: keyEscape, mods: mods}
	case tcell.KeyTAB:
		return keyEvent{key: keyTab, mods: mods}
	case tcell.KeyBacktab:
		return keyEvent{key: keyTab, mods: mods | modShift}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keyEvent{key: keyBackspace, mods: mods}
	case tcell.KeyEnter:
		return keyEvent{key: keyReturn, mods: mods}
	case tcell.KeyCtrlK:
		return keyEvent{key: keyRune, ch: 'k', mods: mods | modCtrl}
	case tcell.KeyCtrlW:
		return keyEvent{key: keyRune, ch: 'w', mods: mods | modCtrl}
	case tcell.KeyCtrlV:
		return keyEvent{key: keyRune, ch: 'v', mods: mods | modCtrl}
	case tcell.KeyRune:
		return keyEvent{key: keyRune, ch: ev.Rune(), mods: mods}
	}
	return keyEvent{key: keyUnknown, mods: mods}
}

// drawLaunch repaints the whole launcher from the line state: background
// band, border, text, caret. The text is measured twice, once in full for
// overflow clipping and once up to the caret for cursor placement.
func drawLaunch(s tcell.Screen, line *launch.Line, fg, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	w, h := s.Size()
	if w < leftMargin+2 || h < boxHeight {
		s.Clear()
		s.Show()
		return
	}
	top := (h - boxHeight) / 2

	for y := top; y < top+boxHeight; y++ {
		fillRow(s, y, w, style)
	}
	drawBox(s, 0, top, w-1, top+boxHeight-1, style)

	ty := top + 1
	x := leftMargin
	for _, r := range line.Buf {
		rw := runewidth.RuneWidth(r)
		if rw <= 0 {
			continue
		}
		if x+rw > w-1 {
			break
		}
		s.SetContent(x, ty, r, nil, style)
		x += rw
	}
	if runewidth.StringWidth(line.String()) > w-1-leftMargin {
		s.SetContent(w-2, ty, '…', nil, style)
	}

	cx := leftMargin + runewidth.StringWidth(string(line.Buf[:line.Caret]))
	if cx < w-1 {
		s.ShowCursor(cx, ty)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func fillRow(s tcell.Screen, y, w int, st tcell.Style) {
	for x := range w {
		s.SetContent(x, y, ' ', nil, st)
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, st tcell.Style) {
	for x := x1 + 1; x < x2; x++ {
		s.SetContent(x, y1, '─', nil, st)
		s.SetContent(x, y2, '─', nil, st)
	}
	for y := y1 + 1; y < y2; y++ {
		s.SetContent(x1, y, '│', nil, st)
		s.SetContent(x2, y, '│', nil, st)
	}
	s.SetContent(x1, y1, '┌', nil, st)
	s.SetContent(x2, y1, '┐', nil, st)
	s.SetContent(x1, y2, '└', nil, st)
	s.SetContent(x2, y2, '┘', nil, st)
}
