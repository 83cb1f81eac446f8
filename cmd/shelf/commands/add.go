package commands

import (
	"github.com/dyluth/shelf/internal/printer"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add PREFIX NUMBER TITLE AUTHOR",
	Short: "Add a book to the catalog",
	Long: `Add a book whose id is built from a two character hex PREFIX and a
non-negative NUMBER, e.g. 'shelf add ab 12 "Dune" "Frank Herbert"' adds ab-12.

Ids are not required to be unique.`,
	Args: cobra.ExactArgs(4),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	book, err := a.svc.Add(cmd.Context(), args[0], args[1], args[2], args[3])
	if err != nil {
		return a.fail(err)
	}

	printer.Success("%s added as %s\n", book.Title, book.ID)
	return nil
}
