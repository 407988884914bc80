package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSize reports a malformed size string.
var ErrInvalidSize = errors.New("invalid size, expected WxH (e.g. 400x300)")

// ParseSize parses a "WxH" token into a SizeSpec. The separator is
// case-insensitive and both dimensions must be positive integers.
func ParseSize(raw string) (SizeSpec, error) {
	parts := strings.Split(strings.ToLower(raw), "x")
	if len(parts) != 2 {
		return SizeSpec{}, fmt.Errorf("%w: %q", ErrInvalidSize, raw)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return SizeSpec{}, fmt.Errorf("%w: width %q is not an integer", ErrInvalidSize, parts[0])
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return SizeSpec{}, fmt.Errorf("%w: height %q is not an integer", ErrInvalidSize, parts[1])
	}
	if width <= 0 || height <= 0 {
		return SizeSpec{}, fmt.Errorf("%w: dimensions must be positive", ErrInvalidSize)
	}

	return SizeSpec{Width: width, Height: height}, nil
}
