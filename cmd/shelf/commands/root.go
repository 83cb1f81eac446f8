package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dyluth/shelf/internal/config"
	"github.com/dyluth/shelf/internal/shell"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// Global flags
var (
	configPath  string
	dataPath    string
	backendFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "shelf - a small library catalog",
	Long: `shelf keeps a catalog of books and tracks which ones are checked out.

Run without a subcommand to open the interactive menu. Every menu action is
also available as a one-shot subcommand for scripting.

The inventory is saved after every change to the configured backend
(a local file by default, see 'shelf init').`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runShell,
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to shelf.yml (default $SHELF_CONFIG or ./shelf.yml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Inventory file path (implies the file backend)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend override: file, redis or memory")
}

// resolveConfigPath applies flag > SHELF_CONFIG > default precedence.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("SHELF_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := shell.Options{Ephemeral: a.cfg.Storage.Backend == config.BackendMemory}
	if err := shell.Run(cmd.Context(), a.svc, opts); err != nil {
		return a.fail(err)
	}
	return nil
}
