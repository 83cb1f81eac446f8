package commands

import (
	"github.com/dyluth/shelf/internal/listing"
	"github.com/dyluth/shelf/internal/printer"
	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/spf13/cobra"
)

var (
	listOutput string
	listQuery  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every book with its status",
	Long: `List every book in insertion order with its lending status.

Use --query to keep only books whose id, title or author contains the term.

Output formats:
  default  Human-readable table
  jsonl    One JSON object per line`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of books in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCount,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only list books matching this term")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "default", "Output format (default or jsonl)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(countCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := parseOutput(listOutput)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	books := a.svc.Books()
	if listQuery != "" {
		books, err = a.svc.SearchAll(cmd.Context(), listQuery)
		if err != nil {
			return a.fail(err)
		}
	}

	return listing.Write(cmd.OutOrStdout(), books, a.statusOf, format)
}

func runCount(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	printer.Success("Library has %d books\n", a.svc.Count())
	return nil
}

// statusOf adapts the service to listing.StatusFunc.
func (a *app) statusOf(id catalog.BookID) string {
	return string(a.svc.StatusOf(id))
}

func parseOutput(s string) (listing.OutputFormat, error) {
	format, err := listing.ParseOutputFormat(s)
	if err != nil {
		return "", printer.Error("invalid output format", err.Error(), []string{
			"Use --output=default or --output=jsonl",
		})
	}
	return format, nil
}
