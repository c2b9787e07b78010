package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gavdaly/kantui/internal/board"
)

var (
	cardAddColumn string
	cardAddDone   bool
	cardAddDate   string
	cardAddTime   string
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Card commands",
	Long: `Card commands. Existing cards are addressed as COLUMN/INDEX with a
1-based index, e.g. "Todo/2" for the second card of the Todo column.`,
}

var cardAddCmd = &cobra.Command{
	Use:   "add TEXT",
	Short: "Add a card to a column",
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

		builder := board.NewCard().Text(args[0])
		if cardAddDone {
			builder.Status(board.Complete)
		}
		if cardAddDate != "" {
			date, err := board.ParseDate(cardAddDate)
			if err != nil {
				return err
			}
			builder.Date(date)
		}
		if cardAddTime != "" {
			t, err := board.ParseTime(cardAddTime)
			if err != nil {
				return err
			}
			builder.Time(t)
		}
		card, err := builder.Build()
		if err != nil {
			return err
		}

		column := cardAddColumn
		if column == "" {
			column = doc.Board.Columns[0].Heading
		}
		if err := doc.Board.AddCard(column, card); err != nil {
			return err
		}
		return env.saveDocument(doc)
	},
}

var cardRemoveCmd = &cobra.Command{
	Use:   "remove COLUMN/INDEX",
	Short: "Remove a card",
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

		heading, index, err := parseCardRef(args[0])
		if err != nil {
			return err
		}
		col, err := doc.Board.Column(heading)
		if err != nil {
			return err
		}
		if _, err := col.RemoveCard(index); err != nil {
			return err
		}
		return env.saveDocument(doc)
	},
}

var cardRenameCmd = &cobra.Command{
	Use:   "rename COLUMN/INDEX TEXT",
	Short: "Change a card's text",
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

		heading, index, err := parseCardRef(args[0])
		if err != nil {
			return err
		}
		col, err := doc.Board.Column(heading)
		if err != nil {
			return err
		}
		card, err := col.Card(index)
		if err != nil {
			return err
		}
		card.Text = args[1]
		return env.saveDocument(doc)
	},
}

var cardMoveCmd = &cobra.Command{
	Use:   "move COLUMN/INDEX TO_COLUMN",
	Short: "Move a card to another column",
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

		heading, index, err := parseCardRef(args[0])
		if err != nil {
			return err
		}
		if err := doc.Board.MoveCard(heading, index, args[1]); err != nil {
			return err
		}
		return env.saveDocument(doc)
	},
}

var cardDoneCmd = &cobra.Command{
	Use:   "done COLUMN/INDEX",
	Short: "Toggle a card's completion state",
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

		heading, index, err := parseCardRef(args[0])
		if err != nil {
			return err
		}
		col, err := doc.Board.Column(heading)
		if err != nil {
			return err
		}
		card, err := col.Card(index)
		if err != nil {
			return err
		}
		card.Status = card.Status.Toggle()
		return env.saveDocument(doc)
	},
}

func init() {
	cardAddCmd.Flags().StringVarP(&cardAddColumn, "column", "c", "", "column heading (default: first column)")
	cardAddCmd.Flags().BoolVar(&cardAddDone, "done", false, "mark the card complete")
	cardAddCmd.Flags().StringVar(&cardAddDate, "date", "", "date annotation (YYYY-MM-DD)")
	cardAddCmd.Flags().StringVar(&cardAddTime, "time", "", "time annotation (HH:MM)")
	cardCmd.AddCommand(cardAddCmd, cardRemoveCmd, cardRenameCmd, cardMoveCmd, cardDoneCmd)
	rootCmd.AddCommand(cardCmd)
}
