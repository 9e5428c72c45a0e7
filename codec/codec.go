package codec

import (
	"image"
)

/*
 * package codec maps an arbitrary byte sequence to a lossless raster
 * image and back. The payload is wrapped into a length-prefixed frame,
 * the smallest near-square pixel grid able to hold the frame is chosen,
 * and the frame bytes are laid into the RGB channels row-major with zero
 * padding at the tail. Decoding walks the same steps backwards. Every
 * buffer involved is freshly allocated and used once; nothing is retained
 * between calls.
 */

// Encode wraps payload into a frame and packs it into a fresh image.
func Encode(payload []byte) (*image.NRGBA, error) {
	frame := EncodeFrame(payload)
	minPixels := (len(frame) + BytesPerPixel - 1) / BytesPerPixel
	width, height := SolveDimensions(minPixels)
	return Pack(frame, width, height)
}

// Decode recovers the exact payload bytes from an image produced by Encode.
func Decode(img image.Image) ([]byte, error) {
	return DecodeFrame(Unpack(img))
}
