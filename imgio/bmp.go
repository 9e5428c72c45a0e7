package imgio

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

func EncodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

func DecodeBMP(r io.Reader) (image.Image, error) {
	return bmp.Decode(r)
}
