package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"imgcrop/internal/pipeline"
	"imgcrop/internal/tui"
)

var (
	cropInputDir  string
	cropOutputDir string
	cropSize      string
	cropWorkers   int
	cropVerbose   bool
)

var cropCmd = &cobra.Command{
	Use:   "crop",
	Short: "Crop every image in a directory to WxH",
	Long:  "Crop reads jpg/jpeg/png/gif/webp files from the input directory and writes cover-fit, center-cropped copies to the output directory. Outputs keep the source file name and format. A file that fails to decode or write is reported and skipped; the batch keeps going.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipeline.Config{
			InputDir:  cropInputDir,
			OutputDir: cropOutputDir,
			Size:      cropSize,
			Workers:   cropWorkers,
		}

		var summary pipeline.Summary
		var runErr error

		if cropVerbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			summary, runErr = pipeline.Run(context.Background(), cfg, logger, nil)
		} else {
			updates := make(chan pipeline.ProgressUpdate, 64)
			model := tui.NewModel(updates)
			program := tea.NewProgram(model)

			uiDone := make(chan struct{})
			go func() {
				_, _ = program.Run()
				close(uiDone)
			}()

			summary, runErr = pipeline.Run(context.Background(), cfg, nil, updates)
			close(updates)
			<-uiDone
		}
		if runErr != nil {
			return runErr
		}

		rows := []tui.SummaryRow{
			{Label: "Images attempted", Value: fmt.Sprintf("%d", summary.Attempted)},
			{Label: "Cropped", Value: fmt.Sprintf("%d", summary.Succeeded)},
			{Label: "Failed", Value: fmt.Sprintf("%d", len(summary.Failures))},
			{Label: "Elapsed", Value: summary.Elapsed.Round(time.Millisecond).String()},
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

		if len(summary.Failures) > 0 {
			fmt.Fprintln(os.Stdout, tui.RenderFailureList(summary.Failures))
		}

		outPath := cropOutputDir
		if abs, absErr := filepath.Abs(cropOutputDir); absErr == nil {
			outPath = abs
		}
		fmt.Fprintf(os.Stdout, "Cropped files written to: %s\n", outPath)

		return nil
	},
}

func init() {
	cropCmd.Flags().StringVarP(&cropInputDir, "input", "i", "", "input directory containing images")
	cropCmd.Flags().StringVarP(&cropOutputDir, "output", "o", "cropped", "destination folder for cropped copies")
	cropCmd.Flags().StringVarP(&cropSize, "size", "s", "", "crop size in WxH format (e.g. 400x300)")
	cropCmd.Flags().IntVarP(&cropWorkers, "workers", "c", 0, "number of parallel workers (default: number of CPUs)")
	cropCmd.Flags().BoolVar(&cropVerbose, "verbose", false, "log each file instead of showing the progress display")
	_ = cropCmd.MarkFlagRequired("input")
	_ = cropCmd.MarkFlagRequired("size")

	rootCmd.AddCommand(cropCmd)
}
