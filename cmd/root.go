package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	logger  = log.NewNopLogger()
)

var rootCmd = &cobra.Command{
	Use:   "imgconv",
	Short: "Convert an image into PNG, JPEG, WebP or GIF",
	Long: `imgconv decodes an image of any supported format (png, jpeg, gif,
webp, bmp, tiff; detected from content, not the file name) and re-encodes
it as one of: png, jpg, jpeg, webp, gif.

The same converter is exported to browsers as convert_image by the
js/wasm build in ./wasm.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgconv %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// newLogger returns a logfmt logger on w. Debug lines pass only when
// verbose is set.
func newLogger(w io.Writer, verbose bool) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC, "app", "imgconv")
	if verbose {
		return level.NewFilter(l, level.AllowDebug())
	}
	return level.NewFilter(l, level.AllowInfo())
}
