package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCards bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board's columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		doc, err := env.loadDocument()
		if err != nil {
			return err
		}

		for _, col := range doc.Board.Columns {
			fmt.Printf("%s (%d cards)\n", col.Heading, len(col.Cards))
			if !listCards {
				continue
			}
			for i, card := range col.Cards {
				fmt.Printf("  %d. %s\n", i+1, card)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listCards, "cards", false, "also list each column's cards")
	rootCmd.AddCommand(listCmd)
}
