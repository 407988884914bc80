package pipeline

import (
	"fmt"
	"io"
	"os"

	exif "github.com/dsoprea/go-exif/v3"

	"imgcrop/internal/codec"
	"imgcrop/pkg/imgutil"
)

// Report describes one candidate for the read-only scan command.
type Report struct {
	FileName    string
	Format      string
	Width       int
	Height      int
	Orientation string // EXIF orientation, empty when absent
	Err         error
}

// Inspect decodes each candidate to report its native geometry, detected
// format, and EXIF orientation. Candidates that fail to decode get an Err
// entry instead; the rest of the list is unaffected.
func Inspect(candidates []Candidate) []Report {
	reports := make([]Report, 0, len(candidates))
	for _, candidate := range candidates {
		reports = append(reports, inspectOne(candidate))
	}
	return reports
}

func inspectOne(candidate Candidate) Report {
	report := Report{FileName: candidate.FileName}

	file, err := os.Open(candidate.Path)
	if err != nil {
		report.Err = err
		return report
	}
	defer file.Close()

	img, kind, err := codec.Decode(file)
	if err != nil {
		report.Err = fmt.Errorf("decode: %w", err)
		return report
	}

	bounds := img.Bounds()
	report.Format = kind.String()
	report.Width = bounds.Dx()
	report.Height = bounds.Dy()

	if kind == imgutil.KindJPEG {
		report.Orientation = exifOrientation(file)
	}
	return report
}

func exifOrientation(rs io.ReadSeeker) string {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return ""
	}

	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(rs, nil, true)
	if err != nil {
		return ""
	}

	for _, tag := range tags {
		if tag.TagName == "Orientation" {
			return tag.FormattedFirst
		}
	}
	return ""
}
