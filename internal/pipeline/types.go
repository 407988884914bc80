package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Config carries one batch run's settings. It is built once by the caller and
// passed by value; the pipeline keeps no state between runs.
type Config struct {
	InputDir  string
	OutputDir string
	Size      string // WxH, parsed during validation
	Workers   int    // 0 picks runtime.NumCPU
}

// SizeSpec is a validated target size in pixels.
type SizeSpec struct {
	Width  int
	Height int
}

// Candidate is one input file selected by the scanner.
type Candidate struct {
	Path     string
	FileName string
}

// Failure records one candidate that could not be cropped or written.
type Failure struct {
	FileName string
	Reason   string
}

// Summary aggregates one run's outcome. Failures keep scan order.
type Summary struct {
	RunID     uuid.UUID
	Attempted int
	Succeeded int
	Failures  []Failure
	Elapsed   time.Duration
}

// ProgressUpdate is a delta event for the live display.
type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	FailedDelta    int
}
