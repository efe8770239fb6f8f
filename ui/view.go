// Package ui is the rendering collaborator: a tcell view registered as
// a loop observer. It reads the world, never mutates it, and feeds key
// input back into player control and loop pause/stop
package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/sondersim/sonder/component"
	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/entity"
)

var (
	styleDefault = tcell.StyleDefault
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFrog    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// View renders the world grid and a status line once per completed
// tick and translates key events into simulation input
type View struct {
	screen tcell.Screen
	loop   *engine.GameLoop
	player *component.PlayerControlComponent

	drawMu    sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

// NewView initializes a tcell screen over the loop
func NewView(loop *engine.GameLoop) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return &View{
		screen: screen,
		loop:   loop,
		done:   make(chan struct{}),
	}, nil
}

// BindPlayer wires key input to the entity's player control component.
// An entity without one leaves the view observer-only
func (v *View) BindPlayer(e *entity.Entity) {
	if p, ok := component.PlayerControl(e); ok {
		v.player = p
	}
}

// Interrupt wakes Run so it can exit after the loop finishes on its own
func (v *View) Interrupt() {
	v.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Fini restores the terminal
func (v *View) Fini() {
	v.screen.Fini()
}

// Done is closed when the user quits
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Observe is the engine.Observer callback, invoked after each tick
// from the loop goroutine. Read-only over the world
func (v *View) Observe(w *engine.World) {
	v.drawMu.Lock()
	defer v.drawMu.Unlock()

	v.screen.Clear()

	screenW, screenH := v.screen.Size()
	viewW, viewH := w.Width, w.Height
	if viewW > screenW {
		viewW = screenW
	}
	if viewH > screenH-1 {
		viewH = screenH - 1
	}

	for y := 0; y < viewH; y++ {
		for x := 0; x < viewW; x++ {
			v.screen.SetContent(x, y, '.', nil, styleGround)
		}
	}

	for _, e := range w.State.Entities() {
		if e.X >= viewW || e.Y >= viewH {
			continue
		}
		glyph, style := appearance(e)
		v.screen.SetContent(e.X, e.Y, glyph, nil, style)
	}

	status := fmt.Sprintf(" tick %d | entities %d ", w.State.TickCount(), w.State.EntityCount())
	if v.loop.Paused() {
		status += "| PAUSED "
	}
	drawText(v.screen, 0, screenH-1, styleStatus, status)

	v.screen.Show()
}

// Run polls terminal events until quit. Blocks; call from its own
// goroutine or the main one while the loop runs elsewhere
func (v *View) Run() {
	defer v.quit()

	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		case *tcell.EventInterrupt:
			return
		case nil:
			return
		}
	}
}

func (v *View) quit() {
	v.closeOnce.Do(func() {
		v.loop.Stop()
		close(v.done)
	})
}

// handleKey returns false when the user asked to quit
func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.pushInput("up")
	case tcell.KeyDown:
		v.pushInput("down")
	case tcell.KeyLeft:
		v.pushInput("left")
	case tcell.KeyRight:
		v.pushInput("right")
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return false
		case ' ':
			if v.loop.Paused() {
				v.loop.Resume()
			} else {
				v.loop.Pause()
			}
		default:
			v.pushInput(string(r))
		}
	}
	return true
}

func (v *View) pushInput(symbol string) {
	if v.player != nil {
		v.player.Push(symbol)
	}
}

func appearance(e *entity.Entity) (rune, tcell.Style) {
	switch {
	case e.HasTag("player"):
		return '@', stylePlayer
	case e.HasTag("frog"):
		return 'F', styleFrog
	default:
		return '?', styleDefault
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
