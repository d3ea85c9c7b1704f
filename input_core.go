package main

import "unicode"

type modMask uint16

const (
	modShift modMask = 1 << iota
	modCtrl
	modAlt
)

type keyCode int

const (
	keyUnknown keyCode = iota
	keyRune
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyEscape
	keyTab
	keyBackspace
	keyReturn
)

type keyEvent struct {
	key  keyCode
	ch   rune
	mods modMask
}

type action int

const (
	actionNone action = iota
	actionSubmit
	actionQuit
)

// handleKeyEvent feeds one key event through the editing state machine.
// actionSubmit means the buffer holds the final command; actionQuit means
// leave without executing anything. A failed history write parks the error
// on app.err and quits.
func handleKeyEvent(app *appState, e keyEvent) action {
	ch := e.ch
	if e.mods&modShift != 0 {
		ch = unicode.ToUpper(ch)
	}

	// Alt+key is a bookmark lookup; a hit replaces the buffer outright.
	if e.mods&modAlt != 0 {
		if cmd, ok := app.marks.Lookup(ch); ok {
			app.line.SetText(cmd)
			if err := app.hist.Save(cmd); err != nil {
				app.err = err
				return actionQuit
			}
			return actionSubmit
		}
	}

	switch e.key {
	case keyEscape:
		return actionQuit
	case keyBackspace:
		app.comp.Reset()
		app.hist.ResetCursor()
		app.line.DeleteBackward()
		return actionNone
	case keyLeft:
		app.line.MoveCaret(-1)
		return actionNone
	case keyRight:
		app.line.MoveCaret(1)
		return actionNone
	case keyUp:
		app.line.SetText(app.hist.Prev())
		return actionNone
	case keyDown:
		app.line.SetText(app.hist.Next())
		return actionNone
	case keyHome:
		app.line.MoveCaret(-app.line.Len())
		return actionNone
	case keyEnd:
		app.line.MoveCaret(app.line.Len())
		return actionNone
	case keyReturn:
		if err := app.hist.Save(app.line.String()); err != nil {
			app.err = err
			return actionQuit
		}
		return actionSubmit
	case keyTab:
		app.line.SetText(app.comp.Next(app.line.String()))
		return actionNone
	}

	if e.mods&modCtrl != 0 {
		switch ch {
		case 'k':
			app.comp.Reset()
			app.hist.ResetCursor()
			app.line.Clear()
		case 'w':
			app.comp.Reset()
			app.hist.ResetCursor()
			app.line.DeleteWordBack()
		case 'v':
			app.pasteClipboard()
		}
		return actionNone
	}

	if e.key == keyRune && printable(ch) {
		app.comp.Reset()
		app.hist.ResetCursor()
		app.line.Insert(ch)
	}
	return actionNone
}

// pasteClipboard inserts clipboard text at the caret, one rune at a time,
// through the same printable filter as typed input.
func (app *appState) pasteClipboard() {
	if app.clip == nil {
		return
	}
	text, err := app.clip.GetText()
	if err != nil || text == "" {
		return
	}
	app.comp.Reset()
	app.hist.ResetCursor()
	for _, r := range text {
		if printable(r) {
			app.line.Insert(r)
		}
	}
}

// printable accepts ordinary plus extended Latin code points and the keypad
// digit keysym range. Anything outside is silently ignored rather than
// inserted.
func printable(r rune) bool {
	return (r >= 0x20 && r <= 0x13be) || (r >= 0xffb0 && r <= 0xffb9)
}
