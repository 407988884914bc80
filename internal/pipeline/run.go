package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxWorkers caps the pool; decode/encode is CPU-bound and more buys nothing.
const maxWorkers = 64

type job struct {
	index     int
	candidate Candidate
}

// Run executes one batch: validate, scan, process, summarize. The returned
// error is fatal and means nothing was processed; per-file failures never
// abort the batch and are reported through the Summary, in scan order.
func Run(ctx context.Context, cfg Config, logger *zap.Logger, updates chan<- ProgressUpdate) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	started := time.Now()
	summary := Summary{RunID: uuid.New()}

	target, err := ParseSize(cfg.Size)
	if err != nil {
		return summary, err
	}

	candidates, err := Scan(cfg.InputDir)
	if err != nil {
		return summary, err
	}

	if err := EnsureOutputDir(cfg.OutputDir); err != nil {
		return summary, err
	}

	logger.Info("starting batch",
		zap.String("run_id", summary.RunID.String()),
		zap.String("input", cfg.InputDir),
		zap.String("output", cfg.OutputDir),
		zap.Int("width", target.Width),
		zap.Int("height", target.Height),
		zap.Int("candidates", len(candidates)),
	)

	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(candidates)}
	}

	summary.Attempted = len(candidates)
	if len(candidates) == 0 {
		summary.Elapsed = time.Since(started)
		return summary, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	// Each slot belongs to exactly one candidate, so workers write their own
	// index without locking and the failure list comes out in scan order no
	// matter which file finishes first.
	failures := make([]*Failure, len(candidates))

	jobs := make(chan job)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for jb := range jobs {
				failures[jb.index] = processOne(jb.candidate, target, cfg.OutputDir, logger, updates)
			}
		}()
	}

dispatch:
	for i, candidate := range candidates {
		select {
		case jobs <- job{index: i, candidate: candidate}:
		case <-ctx.Done():
			for j := i; j < len(candidates); j++ {
				failures[j] = &Failure{FileName: candidates[j].FileName, Reason: ctx.Err().Error()}
			}
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	for _, failure := range failures {
		if failure == nil {
			summary.Succeeded++
		} else {
			summary.Failures = append(summary.Failures, *failure)
		}
	}
	summary.Elapsed = time.Since(started)

	logger.Info("batch complete",
		zap.String("run_id", summary.RunID.String()),
		zap.Int("attempted", summary.Attempted),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", len(summary.Failures)),
		zap.Duration("elapsed", summary.Elapsed),
	)

	return summary, nil
}

func processOne(candidate Candidate, target SizeSpec, outputDir string, logger *zap.Logger, updates chan<- ProgressUpdate) *Failure {
	data, err := CropToCover(candidate, target)
	if err != nil {
		logger.Warn("crop failed",
			zap.String("file", candidate.FileName),
			zap.Error(err),
		)
		if updates != nil {
			updates <- ProgressUpdate{FailedDelta: 1}
		}
		return &Failure{FileName: candidate.FileName, Reason: err.Error()}
	}

	outputPath, err := WriteOutput(outputDir, candidate.FileName, data)
	if err != nil {
		logger.Warn("write failed",
			zap.String("file", candidate.FileName),
			zap.Error(err),
		)
		if updates != nil {
			updates <- ProgressUpdate{FailedDelta: 1}
		}
		return &Failure{FileName: candidate.FileName, Reason: fmt.Sprintf("write: %v", err)}
	}

	logger.Debug("cropped",
		zap.String("file", candidate.FileName),
		zap.String("output", outputPath),
	)
	if updates != nil {
		updates <- ProgressUpdate{ProcessedDelta: 1}
	}
	return nil
}
