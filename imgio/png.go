package imgio

import (
	"image"
	"image/png"
	"io"
)

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func DecodePNG(r io.Reader) (image.Image, error) {
	return png.Decode(r)
}
