package commands

import (
	"github.com/dyluth/shelf/internal/config"
	"github.com/dyluth/shelf/internal/printer"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default shelf.yml",
	Long: `Write a commented default configuration to shelf.yml (or the path given by
--config / $SHELF_CONFIG).

No configuration is required to use shelf; init only gives you a file to edit
when you want another storage backend, pattern search or a different log file.

Use --force to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	// Note: Cannot use -f shorthand to keep it free for future global flags
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()

	if err := config.WriteDefault(path, forceInit); err != nil {
		return printer.ErrorWithContext(
			"initialization failed",
			err.Error(),
			map[string]string{"Config": path},
			[]string{"Use 'shelf init --force' to overwrite the existing configuration"},
		)
	}

	printer.Success("Wrote %s\n", path)
	printer.Info("\nNext steps:\n")
	printer.Step("Pick a storage backend in %s (file, redis or memory)\n", path)
	printer.Step("Run 'shelf' to open the interactive menu\n")
	return nil
}
