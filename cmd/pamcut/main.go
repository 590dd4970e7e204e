// Pamcut cuts a rectangle out of a Netpbm (PBM/PGM/PPM/PAM) image read
// from a file or standard input and writes it to standard output. With
// -pad, the rectangle may extend beyond the image and the excess is
// filled with black. Multi-image streams are cut image by image.
package main

import (
	"log"
	"os"

	"github.com/Robin329/netpbm/internal/cut"
	"github.com/Robin329/netpbm/internal/netpbm"
)

func main() {
	// Diagnostics go to stderr; stdout carries the raster stream.
	log.SetFlags(0)
	log.SetPrefix("pamcut: ")
	log.SetOutput(os.Stderr)

	cl, err := parseCommandLine(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	in := os.Stdin
	if cl.inputFile != "-" {
		f, err := os.Open(cl.inputFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	r := netpbm.NewReader(in)
	w := netpbm.NewWriter(os.Stdout)
	if err := cut.CutStream(r, w, cl.opts); err != nil {
		log.Fatal(err)
	}
}
