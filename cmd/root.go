package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imgcrop",
	Short: "imgcrop - batch center-crop images to an exact pixel size",
	Long:  "imgcrop crops every image in a directory to an exact WxH using a cover fit: scale until the target box is filled, then trim the overflow evenly around the center.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
