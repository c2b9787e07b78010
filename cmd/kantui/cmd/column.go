package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Column commands",
}

var columnAddCmd = &cobra.Command{
	Use:   "add HEADING",
	Short: "Add a new column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		doc, err := env.loadDocument()
		if err != nil {
			return err
		}

		doc.Board.AddColumn(args[0])
		return env.saveDocument(doc)
	},
}

var columnListCmd = &cobra.Command{
	Use:   "list HEADING",
	Short: "List the cards in a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		doc, err := env.loadDocument()
		if err != nil {
			return err
		}

		col, err := doc.Board.Column(args[0])
		if err != nil {
			return err
		}
		for i, card := range col.Cards {
			fmt.Printf("%d. %s\n", i+1, card)
		}
		return nil
	},
}

var columnRemoveCmd = &cobra.Command{
	Use:   "remove HEADING",
	Short: "Remove a column and its cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		doc, err := env.loadDocument()
		if err != nil {
			return err
		}

		if err := doc.Board.RemoveColumn(args[0]); err != nil {
			return err
		}
		return env.saveDocument(doc)
	},
}

var columnRenameCmd = &cobra.Command{
	Use:   "rename HEADING NEW_HEADING",
	Short: "Rename a column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		doc, err := env.loadDocument()
		if err != nil {
			return err
		}

		if err := doc.Board.RenameColumn(args[0], args[1]); err != nil {
			return err
		}
		return env.saveDocument(doc)
	},
}

func init() {
	columnCmd.AddCommand(columnAddCmd, columnListCmd, columnRemoveCmd, columnRenameCmd)
	rootCmd.AddCommand(columnCmd)
}
