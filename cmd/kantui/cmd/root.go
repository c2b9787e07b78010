package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gavdaly/kantui/internal/tui"
)

var (
	cfgFile   string
	boardFile string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "kantui",
	Short: "A kanban board that lives in a plain-text file",
	Long: `kantui keeps a kanban board in a plain-text file you can edit with
anything. Columns are "## Heading" lines; cards are "- [ ]" or "- [x]"
lines with optional @{YYYY-MM-DD} and @@{HH:MM} annotations.

Without a command, kantui opens the interactive board view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/kantui/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&boardFile, "board", "b", "", "board file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	doc, err := env.loadDocument()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewModel(env.boardPath(), doc, env.logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board view: %w", err)
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
