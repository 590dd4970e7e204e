package netpbm

import (
	"fmt"
	"image"
	"image/color"
)

// Decode reads the full raster of the image described by h and returns it
// as a standard image.Image, scaling samples from [0, Maxval] to the full
// 8- or 16-bit range.
//
// The concrete type depends on depth and maxval:
//   - depth 1: *image.Gray, or *image.Gray16 for maxval above 255
//   - depth 2 (gray+alpha): *image.NRGBA or *image.NRGBA64
//   - depth 3: *image.NRGBA or *image.NRGBA64
//   - depth 4: *image.NRGBA or *image.NRGBA64
//
// This is the only whole-image operation in the package; the streaming
// row interface stays the right tool for filters. Decode consumes exactly
// the image's raster, so MoreImagesFollow remains usable afterwards.
func Decode(h Header, r *Reader) (image.Image, error) {
	if h.Depth < 1 || h.Depth > 4 {
		return nil, fmt.Errorf("netpbm: cannot decode depth %d to image.Image", h.Depth)
	}

	wide := h.Maxval > 255
	var img image.Image
	switch {
	case h.Depth == 1 && !wide:
		img = image.NewGray(image.Rect(0, 0, h.Width, h.Height))
	case h.Depth == 1:
		img = image.NewGray16(image.Rect(0, 0, h.Width, h.Height))
	case !wide:
		img = image.NewNRGBA(image.Rect(0, 0, h.Width, h.Height))
	default:
		img = image.NewNRGBA64(image.Rect(0, 0, h.Width, h.Height))
	}

	row := make([]uint16, h.SamplesPerRow())
	for y := 0; y < h.Height; y++ {
		if err := r.ReadRow(h, row); err != nil {
			return nil, err
		}
		for x := 0; x < h.Width; x++ {
			px := row[x*h.Depth : x*h.Depth+h.Depth]
			setPixel(img, x, y, px, h.Maxval)
		}
	}
	return img, nil
}

func setPixel(img image.Image, x, y int, px []uint16, maxval int) {
	switch im := img.(type) {
	case *image.Gray:
		im.SetGray(x, y, color.Gray{Y: scale8(px[0], maxval)})
	case *image.Gray16:
		im.SetGray16(x, y, color.Gray16{Y: scale16(px[0], maxval)})
	case *image.NRGBA:
		im.SetNRGBA(x, y, nrgba8(px, maxval))
	case *image.NRGBA64:
		im.SetNRGBA64(x, y, nrgba16(px, maxval))
	}
}

func nrgba8(px []uint16, maxval int) color.NRGBA {
	switch len(px) {
	case 2:
		y := scale8(px[0], maxval)
		return color.NRGBA{R: y, G: y, B: y, A: scale8(px[1], maxval)}
	case 3:
		return color.NRGBA{R: scale8(px[0], maxval), G: scale8(px[1], maxval), B: scale8(px[2], maxval), A: 0xff}
	default:
		return color.NRGBA{R: scale8(px[0], maxval), G: scale8(px[1], maxval), B: scale8(px[2], maxval), A: scale8(px[3], maxval)}
	}
}

func nrgba16(px []uint16, maxval int) color.NRGBA64 {
	switch len(px) {
	case 2:
		y := scale16(px[0], maxval)
		return color.NRGBA64{R: y, G: y, B: y, A: scale16(px[1], maxval)}
	case 3:
		return color.NRGBA64{R: scale16(px[0], maxval), G: scale16(px[1], maxval), B: scale16(px[2], maxval), A: 0xffff}
	default:
		return color.NRGBA64{R: scale16(px[0], maxval), G: scale16(px[1], maxval), B: scale16(px[2], maxval), A: scale16(px[3], maxval)}
	}
}

func scale8(v uint16, maxval int) uint8 {
	return uint8((int(v)*255 + maxval/2) / maxval)
}

func scale16(v uint16, maxval int) uint16 {
	return uint16((int(v)*65535 + maxval/2) / maxval)
}
