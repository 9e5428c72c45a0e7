package imgio

import (
	"image"
	"io"

	"github.com/xfmoulet/qoi"
)

func EncodeQOI(w io.Writer, img image.Image) error {
	return qoi.Encode(w, img)
}

func DecodeQOI(r io.Reader) (image.Image, error) {
	return qoi.Decode(r)
}
