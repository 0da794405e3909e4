package dice

import (
	"errors"
	"fmt"
	"strconv"
)

// CodeLength is the fixed width of every die code.
const CodeLength = 12

var (
	ErrInvalidColor     = errors.New("invalid color name")
	ErrInvalidSize      = errors.New("invalid size name")
	ErrOutOfRange       = errors.New("value out of range")
	ErrUnknownColorCode = errors.New("unknown color code")
	ErrUnknownSizeCode  = errors.New("unknown size code")
	ErrMalformedCode    = errors.New("malformed die code")
)

// Encode translates the features of a die into its 12-character code:
// a 3-letter color key, a 1-letter size key, zero-padded 3-digit sides and
// faces, and a zero-padded 2-digit flag mask.
func Encode(color, size string, sides, faces, flags int) (string, error) {
	colorKey, ok := colorKeys[color]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	sizeKey, ok := sizeKeys[size]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	if sides < 1 || sides > 999 {
		return "", fmt.Errorf("%w: sides %d", ErrOutOfRange, sides)
	}
	if faces < 1 || faces > 999 {
		return "", fmt.Errorf("%w: faces %d", ErrOutOfRange, faces)
	}
	if flags < 0 || flags > 31 {
		return "", fmt.Errorf("%w: flags %d", ErrOutOfRange, flags)
	}
	return fmt.Sprintf("%s%s%03d%03d%02d", colorKey, sizeKey, sides, faces, flags), nil
}

// descriptor holds the fields parsed out of a die code.
type descriptor struct {
	color string
	size  string
	sides int
	faces int
	flags int
}

// decode slices the fixed-width fields out of a code and resolves the color
// and size keys to their full names.
func decode(code string) (descriptor, error) {
	var d descriptor
	if len(code) != CodeLength {
		return d, fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}
	color, ok := Colors[code[0:3]]
	if !ok {
		return d, fmt.Errorf("%w: %q", ErrUnknownColorCode, code[0:3])
	}
	size, ok := Sizes[code[3:4]]
	if !ok {
		return d, fmt.Errorf("%w: %q", ErrUnknownSizeCode, code[3:4])
	}
	sides, err := strconv.Atoi(code[4:7])
	if err != nil {
		return d, fmt.Errorf("%w: bad sides in %q", ErrMalformedCode, code)
	}
	faces, err := strconv.Atoi(code[7:10])
	if err != nil {
		return d, fmt.Errorf("%w: bad faces in %q", ErrMalformedCode, code)
	}
	flags, err := strconv.Atoi(code[10:12])
	if err != nil {
		return d, fmt.Errorf("%w: bad flags in %q", ErrMalformedCode, code)
	}
	d = descriptor{color: color, size: size, sides: sides, faces: faces, flags: flags}
	return d, nil
}
