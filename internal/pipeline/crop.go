package pipeline

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/disintegration/imaging"

	"imgcrop/internal/codec"
)

// CropToCover decodes the candidate, scales it with a cover fit, extracts the
// centered target window, and re-encodes in the format the source decoded as.
// It never writes to disk.
func CropToCover(candidate Candidate, target SizeSpec) ([]byte, error) {
	file, err := os.Open(candidate.Path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	src, kind, err := codec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// Fill picks the smallest uniform scale that covers the target box in both
	// dimensions, then trims the overflow evenly around the center.
	cropped := imaging.Fill(src, target.Width, target.Height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := codec.Encode(&buf, cropped, kind); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return buf.Bytes(), nil
}

// CoverWindow reports the geometry a cover fit of a w-by-h source into target
// produces: the scaled dimensions and the centered crop offsets within them.
func CoverWindow(w, h int, target SizeSpec) (scaledW, scaledH, offsetX, offsetY int) {
	scale := math.Max(
		float64(target.Width)/float64(w),
		float64(target.Height)/float64(h),
	)

	scaledW = int(math.Round(float64(w) * scale))
	scaledH = int(math.Round(float64(h) * scale))
	if scaledW < target.Width {
		scaledW = target.Width
	}
	if scaledH < target.Height {
		scaledH = target.Height
	}

	offsetX = (scaledW - target.Width) / 2
	offsetY = (scaledH - target.Height) / 2
	return scaledW, scaledH, offsetX, offsetY
}
