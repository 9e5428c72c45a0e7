package codec

import (
	"errors"
	"image"
)

// BytesPerPixel is how many payload bytes one pixel stores, one per
// color channel. The alpha channel is left alone so viewers render the
// image normally and premultiplied readers do not disturb the colors.
const BytesPerPixel = 3

var ErrCapacityExceeded = errors.New("Pixel grid is too small for the frame.")

/*
 * Pack copies frame bytes into the RGB channels of a width x height image,
 * row-major, and zero-fills whatever capacity is left over. The frame must
 * fit: callers are expected to size the grid with SolveDimensions first,
 * so ErrCapacityExceeded signals a bug in the caller rather than bad input.
 */
func Pack(frame []byte, width, height int) (*image.NRGBA, error) {
	capacity := width * height * BytesPerPixel
	if len(frame) > capacity {
		return nil, ErrCapacityExceeded
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < capacity; i++ {
		var b byte
		if i < len(frame) {
			b = frame[i]
		}
		// byte i lands in channel i%3 of pixel i/3
		img.Pix[(i/BytesPerPixel)*4+i%BytesPerPixel] = b
	}
	for p := 0; p < width*height; p++ {
		img.Pix[p*4+3] = 0xff
	}
	return img, nil
}

/*
 * Unpack flattens the RGB channels of an image back into a byte sequence,
 * in the exact order used by Pack. It has no idea where the real data ends;
 * separating payload from padding is DecodeFrame's job.
 */
func Unpack(img image.Image) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	data := make([]byte, 0, width*height*BytesPerPixel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			data = append(data, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return data
}
