package codec

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	random := func(size int) []byte {
		buf := make([]byte, size)
		rnd.Read(buf)
		return buf
	}

	tests := [][]byte{
		nil,
		{},
		{0},
		{0xff},
		[]byte("AB"),
		[]byte("abc"),
		random(4),
		bytes.Repeat([]byte{0x00}, 1000),
		bytes.Repeat([]byte{0xff}, 1000),
		random(1000),
		random(1_000_000),
	}

	for _, payload := range tests {
		img, err := Encode(payload)
		if err != nil {
			t.Fatalf("Encode failed for %d bytes: %v", len(payload), err)
		}
		decoded, err := Decode(img)
		if err != nil {
			t.Fatalf("Decode failed for %d bytes: %v", len(payload), err)
		}
		if bytes.Equal(decoded, payload) == false {
			t.Errorf("round trip spoiled a %d-byte payload", len(payload))
		}
	}
}

func TestEncodeKnownGeometry(t *testing.T) {
	// 2-byte payload -> 10-byte frame -> 4 pixels -> 2x2 square
	img, err := Encode([]byte("AB"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("expected a 2x2 image, got %v", img.Bounds())
	}

	// empty payload -> 8-byte frame -> 3 pixels -> 1x3 strip
	img, err = Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 3 {
		t.Errorf("expected a 1x3 image, got %v", img.Bounds())
	}
}

func TestRoundTripZeroSuffix(t *testing.T) {
	payload := append([]byte("data"), 0, 0, 0, 0, 0)
	img, err := Encode(payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bytes.Equal(decoded, payload) == false {
		t.Errorf("trailing zero bytes were lost: %v != %v", decoded, payload)
	}
}
