package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List accepted target format tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		for _, tok := range formatTokens() {
			f, _ := encoder.Resolve(tok)
			fmt.Fprintf(w, "  %-5s  %-5s  %s\n", tok, f.Extension(), f.MIMEType())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func formatTokens() []string { return encoder.Tokens() }
