package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/Robin329/netpbm/internal/cut"
)

// A cmdline is everything the user said, parsed into a form the core can
// use directly.
type cmdline struct {
	inputFile string
	opts      cut.Options
}

// parseCommandLine handles both syntaxes pamcut has ever had.
//
// Preferred: pamcut [-left=N] [-right=N] [-top=N] [-bottom=N] [-width=N]
// [-height=N] [-pad] [-verbose] [inputfile]. Negative N means relative to
// the far edge, except for -width and -height, which may not be negative.
//
// Legacy: pamcut left top width height [inputfile], plus the 0-argument
// whole-image form. A positive third or fourth argument is a width or
// height; a zero or negative value is reinterpreted as a right or bottom
// edge of value-1, far-edge-relative when negative.
func parseCommandLine(args []string) (cmdline, error) {
	fs := flag.NewFlagSet("pamcut", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	left := fs.Int("left", 0, "leftmost column to keep")
	right := fs.Int("right", 0, "rightmost column to keep")
	top := fs.Int("top", 0, "topmost row to keep")
	bottom := fs.Int("bottom", 0, "bottommost row to keep")
	width := fs.Int("width", 0, "number of columns to keep")
	height := fs.Int("height", 0, "number of rows to keep")
	pad := fs.Bool("pad", false, "fill out-of-bounds regions with black instead of failing")
	verbose := fs.Bool("verbose", false, "report the resolved cut rectangle on stderr")

	if err := fs.Parse(args); err != nil {
		return cmdline{}, err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["width"] && *width < 0 {
		return cmdline{}, fmt.Errorf("-width may not be negative")
	}
	if set["height"] && *height < 0 {
		return cmdline{}, fmt.Errorf("-height may not be negative")
	}

	cl := cmdline{inputFile: "-"}
	cl.opts.Pad = *pad
	cl.opts.Verbose = *verbose
	if set["left"] {
		cl.opts.Spec.Left = cut.FromInt(*left)
	}
	if set["right"] {
		cl.opts.Spec.Right = cut.FromInt(*right)
	}
	if set["top"] {
		cl.opts.Spec.Top = cut.FromInt(*top)
	}
	if set["bottom"] {
		cl.opts.Spec.Bottom = cut.FromInt(*bottom)
	}
	if set["width"] {
		cl.opts.Spec.Width = cut.Absolute(*width)
	}
	if set["height"] {
		cl.opts.Spec.Height = cut.Absolute(*height)
	}

	rem := fs.Args()
	switch len(rem) {
	case 0:
	case 1:
		cl.inputFile = rem[0]
	case 4, 5:
		vals := make([]int, 4)
		names := [4]string{"left column", "top row", "width", "height"}
		for i := 0; i < 4; i++ {
			v, err := strconv.Atoi(rem[i])
			if err != nil {
				return cmdline{}, fmt.Errorf("invalid number %q for %s argument", rem[i], names[i])
			}
			vals[i] = v
		}
		cl.opts.Spec.Left = cut.FromInt(vals[0])
		cl.opts.Spec.Top = cut.FromInt(vals[1])
		if vals[2] > 0 {
			cl.opts.Spec.Width = cut.Absolute(vals[2])
			cl.opts.Spec.Right = cut.Unspec()
		} else {
			cl.opts.Spec.Width = cut.Unspec()
			cl.opts.Spec.Right = cut.FromInt(vals[2] - 1)
		}
		if vals[3] > 0 {
			cl.opts.Spec.Height = cut.Absolute(vals[3])
			cl.opts.Spec.Bottom = cut.Unspec()
		} else {
			cl.opts.Spec.Height = cut.Unspec()
			cl.opts.Spec.Bottom = cut.FromInt(vals[3] - 1)
		}
		if len(rem) == 5 {
			cl.inputFile = rem[4]
		}
	default:
		return cmdline{}, fmt.Errorf("wrong number of arguments: %d; the only argument in the "+
			"preferred syntax is an optional input file name, and the older syntax has "+
			"forms with 4 and 5 arguments", len(rem))
	}

	return cl, nil
}
