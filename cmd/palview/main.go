// Command palview is an interactive terminal browser for palette files.
//
// Each color set is one row of true-color swatches. Arrow keys or hjkl
// move the selection, the bottom line describes the selected color, and
// q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/goprism/prism"
	"github.com/goprism/prism/palette"
)

const swatchWidth = 4

type viewer struct {
	screen tcell.Screen
	pal    *palette.Palette
	sets   []palette.Set

	width, height int
	nameW         int

	set, col int // selection
	rowOff   int // first visible set
	colOff   int // first visible swatch column
}

func newViewer(pal *palette.Palette) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &viewer{
		screen: screen,
		pal:    pal,
		sets:   pal.Sets(),
	}
	v.width, v.height = screen.Size()
	for _, s := range v.sets {
		if len(s.Name) > v.nameW {
			v.nameW = len(s.Name)
		}
	}
	v.nameW += 2
	return v, nil
}

func (v *viewer) cleanup() {
	v.screen.Fini()
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			v.width, v.height = v.screen.Size()
			v.screen.Sync()
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveSet(-1)
	case tcell.KeyDown:
		v.moveSet(1)
	case tcell.KeyLeft:
		v.moveCol(-1)
	case tcell.KeyRight:
		v.moveCol(1)
	case tcell.KeyHome:
		v.col = 0
	case tcell.KeyEnd:
		v.col = len(v.sets[v.set].Colors) - 1
		v.clampCol()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.moveSet(-1)
		case 'j':
			v.moveSet(1)
		case 'h':
			v.moveCol(-1)
		case 'l':
			v.moveCol(1)
		}
	}
	return true
}

func (v *viewer) moveSet(d int) {
	v.set += d
	if v.set < 0 {
		v.set = 0
	}
	if v.set >= len(v.sets) {
		v.set = len(v.sets) - 1
	}
	v.clampCol()
}

func (v *viewer) moveCol(d int) {
	v.col += d
	v.clampCol()
}

func (v *viewer) clampCol() {
	n := len(v.sets[v.set].Colors)
	if v.col >= n {
		v.col = n - 1
	}
	if v.col < 0 {
		v.col = 0
	}
}

func (v *viewer) draw() {
	v.screen.Clear()

	rows := v.height - 1 // keep the last line for the info bar
	if rows < 1 {
		rows = 1
	}
	v.scrollTo(rows)

	for i := 0; i < rows && v.rowOff+i < len(v.sets); i++ {
		v.drawSet(v.rowOff+i, i)
	}
	v.drawInfo()
	v.screen.Show()
}

// scrollTo adjusts the scroll offsets so the selection stays on screen.
func (v *viewer) scrollTo(rows int) {
	if v.set < v.rowOff {
		v.rowOff = v.set
	}
	if v.set >= v.rowOff+rows {
		v.rowOff = v.set - rows + 1
	}

	perRow := (v.width - v.nameW) / (swatchWidth + 1)
	if perRow < 1 {
		perRow = 1
	}
	if v.col < v.colOff {
		v.colOff = v.col
	}
	if v.col >= v.colOff+perRow {
		v.colOff = v.col - perRow + 1
	}
}

func (v *viewer) drawSet(si, y int) {
	set := v.sets[si]
	nameStyle := tcell.StyleDefault
	if si == v.set {
		nameStyle = nameStyle.Bold(true)
	}
	v.drawText(0, y, set.Name, nameStyle)

	for ci := v.colOff; ci < len(set.Colors); ci++ {
		x := v.nameW + (ci-v.colOff)*(swatchWidth+1)
		if x+swatchWidth > v.width {
			break
		}
		style := tcell.StyleDefault.Background(cellColor(set.Colors[ci]))
		for dx := 0; dx < swatchWidth; dx++ {
			v.screen.SetContent(x+dx, y, ' ', nil, style)
		}
		if si == v.set && ci == v.col {
			v.screen.SetContent(x-1, y, '[', nil, tcell.StyleDefault)
			v.screen.SetContent(x+swatchWidth, y, ']', nil, tcell.StyleDefault)
		}
	}
}

func (v *viewer) drawInfo() {
	y := v.height - 1
	set := v.sets[v.set]
	if len(set.Colors) == 0 {
		v.drawText(0, y, set.Name+": empty set", tcell.StyleDefault)
		return
	}
	c := set.Colors[v.col]
	name, _ := v.pal.Name(c)
	line := fmt.Sprintf("%s/%s  #%s  %s", set.Name, name, prism.Hex(c), palette.Info{Color: c})
	v.drawText(0, y, line, tcell.StyleDefault)
}

func (v *viewer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func cellColor(c prism.SRGB24Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func main() {
	builtin := flag.Bool("builtin", false, "browse the built-in SVG colors instead of a file")
	flag.Parse()

	var pal *palette.Palette
	switch {
	case *builtin:
		pal = palette.Builtin()
	case flag.NArg() == 1:
		var err error
		pal, err = palette.ParseFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("Failed to load palette: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: palview [flags] palette.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if len(pal.Sets()) == 0 {
		log.Fatalf("palette has no color sets")
	}

	v, err := newViewer(pal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.cleanup()

	v.run()
}
