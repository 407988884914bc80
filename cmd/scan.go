package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"imgcrop/internal/pipeline"
	"imgcrop/internal/tui"
)

var (
	scanInputDir string
	scanSize     string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Report candidate images without writing anything",
	Long:  "Scan lists every image the crop command would pick up, with its native dimensions, detected format, and EXIF orientation. With --size it also shows the cover scale and crop window each file would get.",
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates, err := pipeline.Scan(scanInputDir)
		if err != nil {
			return err
		}

		var target *pipeline.SizeSpec
		if scanSize != "" {
			spec, err := pipeline.ParseSize(scanSize)
			if err != nil {
				return err
			}
			target = &spec
		}

		if len(candidates) == 0 {
			fmt.Fprintln(os.Stdout, scanDimStyle.Render("no candidate images found"))
			return nil
		}

		for i, report := range pipeline.Inspect(candidates) {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "%s\n", scanFileStyle.Render(report.FileName))

			if report.Err != nil {
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					scanBulletStyle.Render("-"),
					scanErrStyle.Render(report.Err.Error()),
				)
				continue
			}

			geometry := fmt.Sprintf("%dx%d %s", report.Width, report.Height, report.Format)
			if report.Orientation != "" {
				geometry += ", orientation " + report.Orientation
			}
			fmt.Fprintf(os.Stdout, "  %s %s\n",
				scanBulletStyle.Render("-"),
				scanValueStyle.Render(geometry),
			)

			if target != nil {
				scaledW, scaledH, offsetX, offsetY := pipeline.CoverWindow(report.Width, report.Height, *target)
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					scanBulletStyle.Render("-"),
					scanValueStyle.Render(fmt.Sprintf("scale to %dx%d, crop %dx%d at (%d,%d)",
						scaledW, scaledH, target.Width, target.Height, offsetX, offsetY)),
				)
			}
		}

		return nil
	},
}

var (
	scanFileStyle   = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	scanValueStyle  = lipgloss.NewStyle().Foreground(tui.ColorInk)
	scanDimStyle    = lipgloss.NewStyle().Foreground(tui.ColorDim)
	scanBulletStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
	scanErrStyle    = lipgloss.NewStyle().Foreground(tui.ColorError)
)

func init() {
	scanCmd.Flags().StringVarP(&scanInputDir, "input", "i", "", "input directory containing images")
	scanCmd.Flags().StringVarP(&scanSize, "size", "s", "", "optional crop size in WxH format to preview the crop window")
	_ = scanCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scanCmd)
}
