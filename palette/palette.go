// Package palette parses named color collections from a simple line format.
//
// A palette file looks like this:
//
//	material:
//	* red        #F44336
//	* light blue #03A9F4
//
// A line containing ':' opens a color set named by everything before the
// first colon. A line starting with '*' adds a color to the most recently
// opened set, labeled by the text between the '*' and the '#RRGGBB' code.
// Every other line is skipped; skipped non-blank lines are reported at
// debug level through the prism logger.
package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/goprism/prism"
	"golang.org/x/image/colornames"
)

// The set pattern is tried first, so a starred line containing a colon
// opens a set rather than adding a color.
var (
	setNameRE   = regexp.MustCompile(`^(.*?):`)
	colorLineRE = regexp.MustCompile(`^\*\s*([^#]+?)\s*#([0-9a-fA-F]{6})`)
)

// Set is a named, ordered collection of colors.
type Set struct {
	Name   string
	Colors []prism.SRGB24Color
}

// Palette holds the color sets of a palette file in file order, plus a
// reverse index from color value to label.
type Palette struct {
	names map[prism.SRGB24Color]string
	sets  []Set
}

// ColorWithoutSetError reports a color line that appeared before any set
// header.
type ColorWithoutSetError struct {
	Name string // lowercased color label
	Line int    // 1-based line number
}

func (e *ColorWithoutSetError) Error() string {
	return fmt.Sprintf("palette: color %q on line %d appears before any set header", e.Name, e.Line)
}

// Parse reads a palette from r.
//
// Color labels are lowercased. When the same color value is labeled more
// than once, the last label wins in the reverse index; every occurrence
// still appears in its set.
func Parse(r io.Reader) (*Palette, error) {
	p := &Palette{names: make(map[prism.SRGB24Color]string)}
	log := prism.Logger()

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()

		if m := setNameRE.FindStringSubmatch(line); m != nil {
			p.sets = append(p.sets, Set{Name: m[1]})
			continue
		}
		if m := colorLineRE.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(m[1])
			if len(p.sets) == 0 {
				return nil, &ColorWithoutSetError{Name: name, Line: lineno}
			}
			c, _ := prism.ParseHex(m[2]) // the pattern guarantees six hex digits
			set := &p.sets[len(p.sets)-1]
			set.Colors = append(set.Colors, c)
			p.names[c] = name
			continue
		}
		if line != "" {
			log.Debug("palette: skipping line", "line", lineno, "text", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("palette: reading input: %w", err)
	}
	return p, nil
}

// ParseFile reads a palette from the file at path.
func ParseFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Sets returns the color sets in file order. The returned slice is shared
// with the palette; treat it as read-only.
func (p *Palette) Sets() []Set {
	return p.sets
}

// Name returns the label recorded for a color value.
func (p *Palette) Name(c prism.SRGB24Color) (string, bool) {
	name, ok := p.names[c]
	return name, ok
}

// Builtin returns a palette with one set holding the SVG 1.1 named colors.
// Where several SVG names share a value ("aqua" and "cyan"), the
// alphabetically last name labels it, matching Parse's last-wins rule.
func Builtin() *Palette {
	p := &Palette{names: make(map[prism.SRGB24Color]string, len(colornames.Names))}
	set := Set{Name: "svg", Colors: make([]prism.SRGB24Color, 0, len(colornames.Names))}
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		rgb := prism.SRGB24(c.R, c.G, c.B)
		set.Colors = append(set.Colors, rgb)
		p.names[rgb] = name
	}
	p.sets = []Set{set}
	return p
}
