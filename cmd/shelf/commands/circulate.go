package commands

import (
	"github.com/dyluth/shelf/internal/printer"
	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout ID",
	Short: "Check out a book",
	Long: `Mark the book with ID (e.g. ab-12) as checked out.

Fails if the book is already checked out or no book carries the id.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckout,
}

var returnCmd = &cobra.Command{
	Use:   "return ID",
	Short: "Return a checked out book",
	Long: `Take the book with ID (e.g. ab-12) back into stock.

Fails if the book is already in stock.`,
	Args: cobra.ExactArgs(1),
	RunE: runReturn,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(returnCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.svc.Checkout(cmd.Context(), args[0])
	if err != nil {
		return a.fail(err)
	}

	printer.Success("Checked out %s\n", id)
	return nil
}

func runReturn(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.svc.Return(cmd.Context(), args[0])
	if err != nil {
		return a.fail(err)
	}

	printer.Success("Returned %s\n", id)
	return nil
}
