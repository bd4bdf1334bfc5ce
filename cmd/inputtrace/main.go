// Command inputtrace runs the input pipeline in a terminal and prints the
// live input history, newest segment first.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/automoto/fightinput/shared/inputs"
	"github.com/gdamore/tcell/v2"
)

var terminalBinds = inputs.Keybinds[keyID]{
	{key: tcell.KeyLeft}:  inputs.Left,
	{key: tcell.KeyDown}:  inputs.Down,
	{key: tcell.KeyRight}: inputs.Right,
	{key: tcell.KeyUp}:    inputs.Up,
	runeKey('a'):          inputs.Left,
	runeKey('s'):          inputs.Down,
	runeKey('d'):          inputs.Right,
	runeKey('w'):          inputs.Up,
	runeKey('u'):          inputs.Punch,
	runeKey('i'):          inputs.Kick,
	runeKey('o'):          inputs.Slash,
	runeKey('p'):          inputs.Heavy,
	runeKey('k'):          inputs.Dust,
	runeKey('j'):          inputs.MacroPKS,
	runeKey('l'):          inputs.MacroPK,
	runeKey(';'):          inputs.MacroPD,
	runeKey('h'):          inputs.MacroPKSH,
}

func main() {
	fps := flag.Int("fps", 60, "Frames per second")
	hold := flag.Duration("hold", defaultHoldWindow,
		"How long a key counts as held after its last key event; keep it above the terminal's key repeat delay (usually ~500ms)")
	capacity := flag.Int("history", inputs.DefaultCapacity, "Segments kept in the history")
	flag.Parse()

	if err := checkFlags(*fps, *hold); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	run(screen, events, *fps, newHoldTracker(*hold), inputs.NewHistory(*capacity))
}

func checkFlags(fps int, hold time.Duration) error {
	if fps <= 0 {
		return fmt.Errorf("-fps must be positive, got %d", fps)
	}
	if hold <= 0 {
		return fmt.Errorf("-hold must be positive, got %v", hold)
	}
	return nil
}

func run(screen tcell.Screen, events <-chan tcell.Event, fps int, tracker *holdTracker, history *inputs.History) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	macros := inputs.DefaultMacros()
	var held []keyID
	frame := 0

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				tracker.press(keyOf(ev), ev.When())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			held = tracker.held(held[:0], now)
			history.Append(inputs.Resolve(held, terminalBinds, macros, frame))
			draw(screen, history, frame)
			frame++
		}
	}
}

func draw(screen tcell.Screen, history *inputs.History, frame int) {
	screen.Clear()
	header := fmt.Sprintf("frame %d  segments %d/%d  (esc to quit)", frame, history.Len(), history.Capacity())
	drawText(screen, 0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	for i, line := range inputs.Trace(history) {
		drawText(screen, 0, i+2, line, tcell.StyleDefault)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
