package imgio

import (
	"bytes"
	"fmt"
	"image"
	"strings"
)

/*
 * package imgio reads and writes the pixel grid as an actual image file.
 * Only lossless 8-bit RGB containers are supported: a lossy format would
 * silently corrupt the stored bytes, and paletted formats like GIF cannot
 * represent arbitrary channel values at all.
 */

// Formats lists the supported container formats by canonical extension.
var Formats = []string{"png", "bmp", "tiff", "qoi"}

func Encode(format string, img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		err = EncodePNG(buf, img)
	case "bmp":
		err = EncodeBMP(buf, img)
	case "tif", "tiff":
		err = EncodeTIFF(buf, img)
	case "qoi":
		err = EncodeQOI(buf, img)
	default:
		return nil, fmt.Errorf("Unsupported image format: %s.", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decode(data []byte) (image.Image, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("Unsupported image format.")
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		// a png image
		return DecodePNG(bytes.NewReader(data))
	}
	if data[0] == 0x42 && data[1] == 0x4d {
		// bmp image
		return DecodeBMP(bytes.NewReader(data))
	}
	if (data[0] == 0x49 && data[1] == 0x49 && data[2] == 0x2a && data[3] == 0x00) ||
		(data[0] == 0x4d && data[1] == 0x4d && data[2] == 0x00 && data[3] == 0x2a) {
		// tiff image, either byte order
		return DecodeTIFF(bytes.NewReader(data))
	}
	if data[0] == 0x71 && data[1] == 0x6f && data[2] == 0x69 && data[3] == 0x66 {
		// qoi image
		return DecodeQOI(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("Unsupported image format.")
}
