package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sfxpool/audio"
)

// screenService owns the terminal; it starts after audio so a failing device is logged before the UI takes over
type screenService struct {
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
}

func newScreenService() *screenService {
	return &screenService{newScreen: tcell.NewScreen}
}

func (s *screenService) Name() string           { return "screen" }
func (s *screenService) Dependencies() []string { return []string{"audio"} }
func (s *screenService) Init(args ...any) error { return nil }

func (s *screenService) Start() error {
	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	s.screen = screen
	return nil
}

func (s *screenService) Stop() error {
	if s.screen == nil {
		return nil
	}
	s.screen.Fini()
	s.screen = nil
	return nil
}

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText   = tcell.StyleDefault
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLoop   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePaused = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// board maps key presses to pool operations and draws the channel table
// sys is nil when audio is disabled
type board struct {
	sys    *audio.System
	sounds []string
	loop   bool
	last   audio.SoundHandle
	status string
}

func newBoard(sys *audio.System) *board {
	b := &board{sys: sys}
	if sys != nil {
		b.sounds = sys.Sounds()
	}
	return b
}

// handleKey applies one key press, returns false to quit
func (b *board) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	if r == 'q' {
		return false
	}
	if b.sys == nil {
		b.status = "audio disabled"
		return true
	}

	switch {
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx >= len(b.sounds) {
			b.status = fmt.Sprintf("no sound on key %c", r)
			return true
		}
		h := b.sys.Play(b.sounds[idx], b.loop)
		if h.IsValid() {
			b.last = h
			b.status = fmt.Sprintf("playing %s as %s", b.sounds[idx], h)
		} else {
			b.status = fmt.Sprintf("couldn't play %s", b.sounds[idx])
		}
	case r == 'L':
		b.loop = !b.loop
		b.status = fmt.Sprintf("loop mode %v", b.loop)
	case r == 'p':
		b.sys.Pause(b.last)
		b.status = fmt.Sprintf("%s %s", b.last, b.sys.State(b.last))
	case r == 'r':
		b.sys.Resume(b.last)
		b.status = fmt.Sprintf("%s %s", b.last, b.sys.State(b.last))
	case r == 's':
		b.sys.Stop(b.last)
		b.status = fmt.Sprintf("%s %s", b.last, b.sys.State(b.last))
	case r == 'x':
		b.sys.StopAll()
		b.status = "stopped all"
	case r == '.':
		b.sys.LogActive()
		b.status = "channel table logged"
	}
	return true
}

func (b *board) draw(screen tcell.Screen) {
	screen.Clear()
	y := 0
	drawText(screen, 0, y, styleTitle, "sfxpool soundboard")
	y += 2

	if b.sys == nil {
		drawText(screen, 0, y, styleDim, "audio disabled, press q to quit")
		screen.Show()
		return
	}

	for i, name := range b.sounds {
		if i >= 9 {
			break
		}
		drawText(screen, 0, y, styleText, fmt.Sprintf("%d  %s", i+1, name))
		y++
	}
	if len(b.sounds) == 0 {
		drawText(screen, 0, y, styleDim, "no sounds cached")
		y++
	}
	y++

	drawText(screen, 0, y, styleDim, fmt.Sprintf("L loop [%v]  p pause  r resume  s stop  x stop all  . log  q quit", b.loop))
	y += 2

	drawText(screen, 0, y, styleTitle, fmt.Sprintf("channels %d/%d", b.sys.ActiveCount(), b.sys.Channels()))
	y++
	for _, ci := range b.sys.Active() {
		style := styleText
		switch {
		case ci.Paused:
			style = stylePaused
		case ci.Looping:
			style = styleLoop
		}
		drawText(screen, 0, y, style, fmt.Sprintf("%2d  %-24s %s looping=%v paused=%v", ci.Channel, ci.Name, ci.Handle, ci.Looping, ci.Paused))
		y++
	}
	y++

	drawText(screen, 0, y, styleDim, b.status)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
