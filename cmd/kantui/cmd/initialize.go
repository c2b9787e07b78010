package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavdaly/kantui/internal/board"
	"github.com/gavdaly/kantui/internal/document"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new board file with the configured columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		path := env.boardPath()

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		doc := &document.Document{Board: board.New(env.cfg.Board.Columns...)}
		if err := doc.Save(path); err != nil {
			return err
		}
		fmt.Printf("Created %s with columns: %v\n", path, env.cfg.Board.Columns)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing board file")
	rootCmd.AddCommand(initCmd)
}
