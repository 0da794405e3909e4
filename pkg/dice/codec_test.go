package dice

import (
	"errors"
	"testing"
)

func TestEncodeStandardD20(t *testing.T) {
	code, err := Encode("red", "medium", 20, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if code != "REDM02002000" {
		t.Fatalf("unexpected code: %q", code)
	}
}

func TestEncodeAlwaysTwelveChars(t *testing.T) {
	cases := []struct {
		color, size  string
		sides, faces int
		flags        int
	}{
		{"black", "small", 1, 1, 0},
		{"off white", "gigantic", 999, 999, 31},
		{"transparent", "medium", 10, 20, 16},
		{"gold", "huge", 100, 100, 7},
	}
	for _, c := range cases {
		code, err := Encode(c.color, c.size, c.sides, c.faces, c.flags)
		if err != nil {
			t.Fatalf("Encode(%q, %q, %d, %d, %d): %v", c.color, c.size, c.sides, c.faces, c.flags, err)
		}
		if len(code) != CodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), CodeLength)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	cases := []struct {
		name         string
		color, size  string
		sides, faces int
		flags        int
		want         error
	}{
		{"unknown color", "mauve", "medium", 6, 6, 0, ErrInvalidColor},
		{"unknown size", "red", "enormous", 6, 6, 0, ErrInvalidSize},
		{"color key not a name", "RED", "medium", 6, 6, 0, ErrInvalidColor},
		{"zero sides", "red", "medium", 0, 6, 0, ErrOutOfRange},
		{"sides too big", "red", "medium", 1000, 6, 0, ErrOutOfRange},
		{"zero faces", "red", "medium", 6, 0, 0, ErrOutOfRange},
		{"negative flags", "red", "medium", 6, 6, -1, ErrOutOfRange},
		{"flags too big", "red", "medium", 6, 6, 32, ErrOutOfRange},
	}
	for _, c := range cases {
		_, err := Encode(c.color, c.size, c.sides, c.faces, c.flags)
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestDecodeStandardD20(t *testing.T) {
	d, err := New("REDM02002000", 1)
	if err != nil {
		t.Fatal(err)
	}
	if d.Color != "red" || d.Size != "medium" || d.Sides != 20 || d.Faces != 20 {
		t.Fatalf("unexpected die: %+v", d)
	}
	if d.ArtPip || d.Material || d.OddShape || d.OddPip || d.OddFace {
		t.Fatalf("expected all flags clear: %+v", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"REDM020020", ErrMalformedCode},
		{"", ErrMalformedCode},
		{"REDM0200200001", ErrMalformedCode},
		{"XXXM02002000", ErrUnknownColorCode},
		{"REDX02002000", ErrUnknownSizeCode},
		{"REDMxx002000", ErrMalformedCode},
		{"REDM020xx000", ErrMalformedCode},
		{"REDM020020xx", ErrMalformedCode},
	}
	for _, c := range cases {
		_, err := New(c.code, 1)
		if !errors.Is(err, c.want) {
			t.Errorf("New(%q): got %v, want %v", c.code, err, c.want)
		}
	}
}

func TestRoundTripAllFlags(t *testing.T) {
	for flags := 0; flags <= 31; flags++ {
		code, err := Encode("green", "large", 12, 12, flags)
		if err != nil {
			t.Fatalf("flags %d: %v", flags, err)
		}
		d, err := New(code, 1)
		if err != nil {
			t.Fatalf("flags %d: %v", flags, err)
		}
		got := 0
		if d.ArtPip {
			got |= 1
		}
		if d.Material {
			got |= 2
		}
		if d.OddShape {
			got |= 4
		}
		if d.OddPip {
			got |= 8
		}
		if d.OddFace {
			got |= 16
		}
		if got != flags {
			t.Fatalf("flags %d decoded as %d", flags, got)
		}
	}
}

func TestRoundTripAllColorsAndSizes(t *testing.T) {
	for _, color := range Colors {
		for _, size := range Sizes {
			code, err := Encode(color, size, 6, 6, 0)
			if err != nil {
				t.Fatalf("Encode(%q, %q): %v", color, size, err)
			}
			d, err := New(code, 1)
			if err != nil {
				t.Fatalf("New(%q): %v", code, err)
			}
			if d.Color != color || d.Size != size {
				t.Fatalf("round trip of %q/%q gave %q/%q", color, size, d.Color, d.Size)
			}
		}
	}
}

func TestFlagBitIndependence(t *testing.T) {
	for bit := 0; bit < 5; bit++ {
		code, err := Encode("blue", "small", 8, 8, 1<<bit)
		if err != nil {
			t.Fatal(err)
		}
		d, err := New(code, 1)
		if err != nil {
			t.Fatal(err)
		}
		for i, name := range FlagNames {
			on, ok := d.Flag(name)
			if !ok {
				t.Fatalf("unknown flag %q", name)
			}
			if on != (i == bit) {
				t.Fatalf("bit %d set: flag %q = %v", bit, name, on)
			}
		}
	}
}
