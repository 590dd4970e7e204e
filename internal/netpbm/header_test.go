package netpbm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Header
	}{
		{
			"raw pgm",
			"P5\n640 480\n255\n",
			Header{Width: 640, Height: 480, Depth: 1, Maxval: 255, Format: PGMRaw},
		},
		{
			"raw ppm 16 bit",
			"P6\n2 3\n65535\n",
			Header{Width: 2, Height: 3, Depth: 3, Maxval: 65535, Format: PPMRaw},
		},
		{
			"raw pbm has implicit depth and maxval",
			"P4\n13 7\n",
			Header{Width: 13, Height: 7, Depth: 1, Maxval: 1, Format: PBMRaw},
		},
		{
			"plain pgm",
			"P2\n3 2\n15\n",
			Header{Width: 3, Height: 2, Depth: 1, Maxval: 15, Format: PGMPlain},
		},
		{
			"comments and odd whitespace",
			"P5 # raw graymap\n # made by hand\n 640\t480 # dims\n255\n",
			Header{Width: 640, Height: 480, Depth: 1, Maxval: 255, Format: PGMRaw},
		},
		{
			"pam",
			"P7\nWIDTH 4\nHEIGHT 5\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n",
			Header{Width: 4, Height: 5, Depth: 4, Maxval: 255, Format: PAM, TupleType: "RGB_ALPHA"},
		},
		{
			"pam with comments and reordered fields",
			"P7\n# a pam file\nDEPTH 1\nMAXVAL 9\nHEIGHT 2\nWIDTH 3\nENDHDR\n",
			Header{Width: 3, Height: 2, Depth: 1, Maxval: 9, Format: PAM},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(strings.NewReader(tt.input)).ReadHeader()
			if err != nil {
				t.Fatalf("ReadHeader failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadHeader_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad magic", "Q5\n2 2\n255\n"},
		{"magic out of range", "P8\n2 2\n255\n"},
		{"missing height", "P5\n2\n"},
		{"zero width", "P5\n0 2\n255\n"},
		{"zero maxval", "P5\n2 2\n0\n"},
		{"maxval too large", "P5\n2 2\n70000\n"},
		{"junk in header", "P5\n2 x\n255\n"},
		{"pam missing endhdr", "P7\nWIDTH 2\nHEIGHT 2\nDEPTH 1\nMAXVAL 255\n"},
		{"pam missing depth", "P7\nWIDTH 2\nHEIGHT 2\nMAXVAL 255\nENDHDR\n"},
		{"pam unknown field", "P7\nWIDTH 2\nHEIGHT 2\nDEPTH 1\nMAXVAL 255\nWAT 1\nENDHDR\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.input)).ReadHeader()
			var fe FormatError
			if !errors.As(err, &fe) {
				t.Errorf("got %v, want FormatError", err)
			}
		})
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	headers := []Header{
		{Width: 7, Height: 3, Depth: 1, Maxval: 1, Format: PBMRaw},
		{Width: 7, Height: 3, Depth: 1, Maxval: 255, Format: PGMRaw},
		{Width: 7, Height: 3, Depth: 3, Maxval: 1023, Format: PPMRaw},
		{Width: 7, Height: 3, Depth: 2, Maxval: 255, Format: PAM, TupleType: "GRAYSCALE_ALPHA"},
	}
	for _, hd := range headers {
		t.Run(hd.Format.Magic(), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if err := w.WriteHeader(hd); err != nil {
				t.Fatalf("WriteHeader failed: %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
			got, err := NewReader(&buf).ReadHeader()
			if err != nil {
				t.Fatalf("ReadHeader failed: %v", err)
			}
			if diff := cmp.Diff(hd, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteHeader_RejectsPlain(t *testing.T) {
	err := NewWriter(&bytes.Buffer{}).WriteHeader(Header{
		Width: 2, Height: 2, Depth: 1, Maxval: 255, Format: PGMPlain,
	})
	if err == nil {
		t.Error("plain format accepted by writer")
	}
}

func TestFormat(t *testing.T) {
	if got := PGMPlain.Raw(); got != PGMRaw {
		t.Errorf("PGMPlain.Raw() = %v, want PGMRaw", got)
	}
	if got := PAM.Raw(); got != PAM {
		t.Errorf("PAM.Raw() = %v, want PAM", got)
	}
	if !PBMPlain.Bitmap() || !PBMRaw.Bitmap() || PGMRaw.Bitmap() {
		t.Error("Bitmap() misclassifies formats")
	}
	if PBMRaw.Magic() != "P4" || PAM.Magic() != "P7" {
		t.Error("Magic() wrong")
	}
}
