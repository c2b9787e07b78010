package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the board file in canonical form",
	Long: `Parse the board file and write it back: one "## heading" line per
column, one card line per card, a single blank line between columns.
Date and time annotations keep their original digits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		doc, err := env.loadDocument()
		if err != nil {
			return err
		}
		if fmtCheck {
			data, err := os.ReadFile(env.boardPath())
			if err != nil {
				return err
			}
			if string(data) != doc.Encode() {
				return fmt.Errorf("%s is not canonically formatted", env.boardPath())
			}
			return nil
		}
		return env.saveDocument(doc)
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit non-zero if the file is not canonical")
	rootCmd.AddCommand(fmtCmd)
}
