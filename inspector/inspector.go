// Package inspector is an interactive terminal UI for querying a
// built distance oracle: move a cursor with vi-style hjkl keys, mark
// a source cell, and see every other walkable cell shaded by its
// oracle distance from the source.
package inspector

import (
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
	"github.com/lixenwraith/gridoracle/oracle"
)

// Inspector owns the terminal screen, the graph being inspected and
// the oracle answering distance queries. It queries only; it never
// mutates the graph or recomputes the oracle, honoring the "not an
// online/incremental oracle" non-goal.
type Inspector struct {
	screen tcell.Screen
	graph  *grid.Graph
	oracle *oracle.Oracle

	cursorX, cursorY int
	source           *core.Node

	low, high colorful.Color
}

// New builds an Inspector over an already-built graph and oracle,
// initializing the tcell screen.
func New(graph *grid.Graph, o *oracle.Oracle) (*Inspector, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &Inspector{
		screen: screen,
		graph:  graph,
		oracle: o,
		low:    colorful.Color{R: 0.05, G: 0.05, B: 0.45},
		high:   colorful.Color{R: 0.95, G: 0.15, B: 0.1},
	}, nil
}

// Close tears down the terminal screen.
func (in *Inspector) Close() {
	in.screen.Fini()
}

// Run drives the event loop: a 60fps redraw tick plus an input
// channel fed by a dedicated PollEvent goroutine, mirroring the
// teacher's own run loop in main.go.
func (in *Inspector) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- in.screen.PollEvent()
		}
	}()

	in.draw()
	for {
		select {
		case ev := <-events:
			if !in.handleInput(ev) {
				return
			}
		case <-ticker.C:
			in.draw()
		}
	}
}

func (in *Inspector) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				in.move(-1, 0)
			case 'l':
				in.move(1, 0)
			case 'k':
				in.move(0, -1)
			case 'j':
				in.move(0, 1)
			case ' ':
				in.toggleSource()
			}
		}
	case *tcell.EventResize:
		in.screen.Sync()
	}
	return true
}

func (in *Inspector) move(dx, dy int) {
	nx, ny := in.cursorX+dx, in.cursorY+dy
	if nx < 0 || ny < 0 || nx >= in.graph.Width() || ny >= in.graph.Height() {
		return
	}
	in.cursorX, in.cursorY = nx, ny
}

func (in *Inspector) toggleSource() {
	n := core.Node{Row: in.cursorY, Col: in.cursorX}
	if in.source != nil && *in.source == n {
		in.source = nil
		return
	}
	in.source = &n
}

// maxFiniteDistance returns the largest non-UNREACHABLE distance from
// source to any walkable node, the gradient's upper bound.
func (in *Inspector) maxFiniteDistance(source core.Node) core.Distance {
	var max core.Distance
	for _, n := range in.graph.Nodes() {
		d := in.oracle.FindDistance(source, n)
		if d != core.Unreachable && d > max {
			max = d
		}
	}
	return max
}

func (in *Inspector) draw() {
	in.screen.Clear()

	var maxDist core.Distance
	if in.source != nil {
		maxDist = in.maxFiniteDistance(*in.source)
	}

	for _, n := range in.graph.Nodes() {
		glyph := '.'
		style := tcell.StyleDefault

		if !in.graph.IsWalkable(n) {
			glyph = '#'
			style = style.Foreground(tcell.ColorGray)
		} else if in.source != nil {
			d := in.oracle.FindDistance(*in.source, n)
			if d != core.Unreachable && maxDist > 0 {
				t := float64(d) / float64(maxDist)
				c := in.low.BlendLab(in.high, t)
				r, g, b := c.RGB255()
				style = style.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			}
		}

		col := n.Col
		if runewidth.RuneWidth(glyph) > 1 {
			col *= 2
		}
		in.screen.SetContent(col, n.Row, glyph, nil, style)
	}

	if in.source != nil {
		in.screen.SetContent(in.source.Col, in.source.Row, 'S', nil,
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}

	in.screen.SetContent(in.cursorX, in.cursorY, ' ', nil, tcell.StyleDefault.Reverse(true))
	in.screen.Show()
}
