package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/imgconv/internal/convert"
	"github.com/AnyUserName/imgconv/internal/hasher"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

var (
	convertTo        string
	convertOut       string
	convertPrintHash bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert one image to the requested format",
	Long: `Reads <input> ("-" for stdin), detects its format from content and
writes it re-encoded as --to. The output defaults to <input> with its
extension replaced by the target token ("-" for stdout when reading stdin).

Nothing is written when conversion fails.`,
	Example: `  imgconv convert banner.png --to webp
  imgconv convert scan.tiff --to jpg -o scan.jpg
  cat icon.gif | imgconv convert - --to png > icon.png`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target format: "+strings.Join(formatTokens(), ", "))
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", `output path ("-" for stdout)`)
	convertCmd.Flags().BoolVar(&convertPrintHash, "print-hash", false, "print xxhash64 of the output to stderr")
	convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	data, err := readInput(cmd, input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	level.Debug(logger).Log("msg", "read input", "path", input, "bytes", len(data))

	if name, err := convert.Sniff(data); err == nil {
		level.Debug(logger).Log("msg", "detected source format", "format", name)
	}

	out, err := convert.Convert(data, convertTo)
	if err != nil {
		return err
	}

	dst, err := outputPath(input, convertOut, convertTo)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, dst, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	hash := hasher.ContentHash(out, 16)
	level.Debug(logger).Log(
		"msg", "converted",
		"to", convertTo,
		"out", dst,
		"bytes", len(out),
		"hash", hash,
		"took", time.Since(start).Round(time.Microsecond),
	)
	if convertPrintHash {
		fmt.Fprintln(cmd.ErrOrStderr(), hash)
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// outputPath picks the destination: explicit --out, stdout for stdin input,
// or the input path with the token as its extension.
func outputPath(input, out, token string) (string, error) {
	if out != "" {
		return out, nil
	}
	if input == "-" {
		return "-", nil
	}
	dst := strings.TrimSuffix(input, filepath.Ext(input)) + "." + token
	if filepath.Clean(dst) == filepath.Clean(input) {
		return "", fmt.Errorf("output %s would overwrite input; pass --out", dst)
	}
	return dst, nil
}
