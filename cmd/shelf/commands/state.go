package commands

import (
	"github.com/dyluth/shelf/internal/listing"
	"github.com/spf13/cobra"
)

var stateOutput string

var stateCmd = &cobra.Command{
	Use:   "state ID",
	Short: "Show whether a book is in stock or checked out",
	Args:  cobra.ExactArgs(1),
	RunE:  runState,
}

func init() {
	stateCmd.Flags().StringVarP(&stateOutput, "output", "o", "default", "Output format (default or jsonl)")
	rootCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	format, err := parseOutput(stateOutput)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	book, status, err := a.svc.State(cmd.Context(), args[0])
	if err != nil {
		return a.fail(err)
	}

	if format == listing.OutputFormatJSONL {
		return listing.FormatSingleJSON(cmd.OutOrStdout(), book, a.statusOf)
	}
	listing.FormatDetail(cmd.OutOrStdout(), book, string(status))
	return nil
}
