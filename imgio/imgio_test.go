package imgio

import (
	"image"
	"image/color"
	"testing"
)

func makeTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 17) ^ (y * 31)),
				G: uint8((x * 43) + (y * 13)),
				B: uint8((x * 7) ^ (y * 11)),
				A: 255,
			})
		}
	}
	return img
}

func samePixels(t *testing.T, a, b image.Image) {
	t.Helper()
	if a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy() {
		t.Fatalf("bounds mismatch: %v != %v", a.Bounds(), b.Bounds())
	}
	for y := 0; y < a.Bounds().Dy(); y++ {
		for x := 0; x < a.Bounds().Dx(); x++ {
			ar, ag, ab, _ := a.At(x, y).RGBA()
			br, bg, bb, _ := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb {
				t.Fatalf("pixel (%d, %d) changed: (%d, %d, %d) != (%d, %d, %d)",
					x, y, ar>>8, ag>>8, ab>>8, br>>8, bg>>8, bb>>8)
			}
		}
	}
}

func TestRoundTripAllFormats(t *testing.T) {
	src := makeTestImage(33, 21)

	for _, format := range Formats {
		data, err := Encode(format, src)
		if err != nil {
			t.Errorf("Failed to encode %s image: %v", format, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s encoder produced no bytes", format)
			continue
		}
		// Decode sniffs the format from the data alone
		decoded, err := Decode(data)
		if err != nil {
			t.Errorf("Failed to decode %s image: %v", format, err)
			continue
		}
		samePixels(t, src, decoded)
	}
}

func TestEncodeExtensionForms(t *testing.T) {
	src := makeTestImage(4, 4)
	for _, format := range []string{".png", "PNG", "tif", ".TIFF"} {
		if _, err := Encode(format, src); err != nil {
			t.Errorf("Encode rejected format spelling %q: %v", format, err)
		}
	}
}

func TestUnsupportedFormat(t *testing.T) {
	src := makeTestImage(4, 4)
	for _, format := range []string{"jpg", "jpeg", "gif", "webp", ""} {
		if _, err := Encode(format, src); err == nil {
			t.Errorf("Encode accepted lossy or unknown format %q", format)
		}
	}

	if _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Errorf("Decode accepted garbage input")
	}
	if _, err := Decode(nil); err == nil {
		t.Errorf("Decode accepted empty input")
	}
}
