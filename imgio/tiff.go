package imgio

import (
	"image"
	"io"

	"golang.org/x/image/tiff"
)

func EncodeTIFF(w io.Writer, img image.Image) error {
	// deflate keeps the container lossless while shrinking the zero padding
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func DecodeTIFF(r io.Reader) (image.Image, error) {
	return tiff.Decode(r)
}
