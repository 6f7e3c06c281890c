// Command palinfo prints a human-readable report of a palette file.
//
// Every color is shown with its byte sRGB triple, HSV form, relative
// luminance and shade classification, plus a color swatch when the output
// is a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/goprism/prism"
	"github.com/goprism/prism/ansi"
	"github.com/goprism/prism/palette"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	var (
		colorMode = flag.String("color", "auto", "colorize output: auto, always or never")
		builtin   = flag.Bool("builtin", false, "report the built-in SVG colors instead of a file")
		verbose   = flag.Bool("v", false, "log skipped palette lines to stderr")
	)
	flag.Parse()

	if *verbose {
		prism.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	colorize := false
	switch *colorMode {
	case "auto":
		colorize = term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		colorize = true
	case "never":
	default:
		log.Fatalf("invalid -color mode %q (want auto, always or never)", *colorMode)
	}

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
		fmt.Fprintln(os.Stderr, "usage: palinfo [flags] palette.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}

	report(os.Stdout, pal, colorize)
}

var titler = cases.Title(language.English)

func report(w io.Writer, pal *palette.Palette, colorize bool) {
	for _, set := range pal.Sets() {
		fmt.Fprintf(w, "Colorset `%s`:\n", set.Name)
		for _, c := range set.Colors {
			name, _ := pal.Name(c)
			label := fmt.Sprintf("'%s':", titler.String(name))
			swatch := ""
			if colorize {
				swatch = ansi.Paint(c, "  ") + " "
			}
			fmt.Fprintf(w, "  Color %-20s %s%s\n", label, swatch, palette.Info{Color: c})
		}
	}
}
