package commands

import (
	"github.com/dyluth/shelf/internal/circulation"
	"github.com/dyluth/shelf/internal/listing"
	"github.com/dyluth/shelf/internal/printer"
	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/spf13/cobra"
)

var (
	searchAll     bool
	searchPattern bool
	searchOutput  string
)

var searchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "Find a book by id, title or author",
	Long: `Search the catalog for TERM in each book's id, title and author,
ignoring case. The first match in insertion order is shown.

Examples:
  # First book mentioning dune
  shelf search dune

  # Every book by an author
  shelf search --all "le guin"

  # Treat the term as a regular expression
  shelf search --pattern '^ab-1[0-9]$'

  # Machine readable
  shelf search --all --output=jsonl tolkien`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "Show every match instead of the first")
	searchCmd.Flags().BoolVar(&searchPattern, "pattern", false, "Match TERM as a regular expression")
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", "default", "Output format (default or jsonl)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := parseOutput(searchOutput)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	svc := a.svc
	if searchPattern {
		svc = circulation.New(a.inv, catalog.SearchPattern, a.log)
	}

	out := cmd.OutOrStdout()

	if searchAll {
		books, err := svc.SearchAll(cmd.Context(), args[0])
		if err != nil {
			return a.fail(err)
		}
		return listing.Write(out, books, a.statusOf, format)
	}

	book, status, err := svc.Search(cmd.Context(), args[0])
	if catalog.IsNotFound(err) {
		printer.Warning("No book found (searched id, title, and author)\n")
		return err
	}
	if err != nil {
		return a.fail(err)
	}

	if format == listing.OutputFormatJSONL {
		return listing.FormatSingleJSON(out, book, a.statusOf)
	}
	printer.Success("Found a book:\n")
	listing.FormatDetail(out, book, string(status))
	return nil
}
