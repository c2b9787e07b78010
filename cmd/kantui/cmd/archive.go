package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gavdaly/kantui/internal/board"
	"github.com/gavdaly/kantui/internal/log"
	"github.com/gavdaly/kantui/internal/store"
)

var (
	archiveList   bool
	archiveColumn string
	archiveLimit  int
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move completed cards into the archive",
	Long: `Move every completed card off the board and into the archive
database. With --list, print archived cards instead of archiving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		arch, err := store.Open(env.cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer arch.Close()

		if archiveList {
			return listArchive(cmd, arch)
		}
		return archiveBoard(cmd, env, arch)
	},
}

func archiveBoard(cmd *cobra.Command, e *env, arch store.Archive) error {
	doc, err := e.loadDocument()
	if err != nil {
		return err
	}

	var entries []*store.Entry
	for _, col := range doc.Board.Columns {
		kept := col.Cards[:0]
		for _, card := range col.Cards {
			if card.Status == board.Complete {
				entries = append(entries, store.NewEntry(col.Heading, card))
			} else {
				kept = append(kept, card)
			}
		}
		col.Cards = kept
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to archive")
		return nil
	}

	n, err := arch.PutBatch(cmd.Context(), entries)
	if err != nil {
		return err
	}
	if err := e.saveDocument(doc); err != nil {
		return err
	}
	e.logger.Info("archived cards", log.Fields{"count": n})
	fmt.Fprintf(cmd.OutOrStdout(), "archived %d card(s)\n", n)
	return nil
}

func listArchive(cmd *cobra.Command, arch store.Archive) error {
	entries, err := arch.List(cmd.Context(), store.Filter{Column: archiveColumn, Limit: archiveLimit})
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s  - [%s] %s\n",
			e.ArchivedAt.Format("2006-01-02 15:04"), e.Column, e.Status, e.Text)
	}
	return nil
}

func init() {
	archiveCmd.Flags().BoolVarP(&archiveList, "list", "l", false, "list archived cards")
	archiveCmd.Flags().StringVarP(&archiveColumn, "column", "c", "", "filter by column heading")
	archiveCmd.Flags().IntVarP(&archiveLimit, "limit", "n", 0, "limit the number of listed cards")
	rootCmd.AddCommand(archiveCmd)
}
