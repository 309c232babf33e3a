package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"booknerd/cmd/booknerd/browse"
	"booknerd/internal/catalog"
	"booknerd/internal/config"
	"booknerd/internal/logging"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	libraryPath string

	// Wired up by PersistentPreRunE
	logger *zap.Logger
	appCfg *config.Config
	store  *catalog.Store
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "booknerd",
	Short: "bookNERD - Terminal Library Catalog",
	Long: `bookNERD keeps a personal book catalog in a single JSON library file.

Every change is validated and written to disk before it is acknowledged, so
the file on disk is always the whole truth.

Run without arguments to open the interactive shell; the subcommands cover
the same operations for scripts and one-liners.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appCfg, err = config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		if libraryPath != "" {
			appCfg.Library.Path = libraryPath
		}

		logCfg := appCfg.Logging
		if verbose {
			logCfg.Enabled = true
			logCfg.Level = "debug"
		}
		logger, err = logging.Setup(logCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if logCfg.Audit {
			if err := logging.InitAudit(logCfg.AuditFile); err != nil {
				logger.Warn("audit trail unavailable", zap.Error(err))
			}
		}

		// init creates the library; help and completion never touch it.
		switch cmd.Name() {
		case "init", "help", "completion":
			return nil
		}

		store, err = openStore()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAudit()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive shell
		return runBrowse()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose file logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.booknerd/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", "", "Library file (overrides config)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
}

// resolveConfigPath honors --config before falling back to the default.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	path, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}

// openStore loads the whole catalog into memory, turning a missing library
// into advice instead of a bare error.
func openStore() (*catalog.Store, error) {
	st := catalog.NewStore(appCfg.Library.Path)

	start := time.Now()
	err := st.Load()
	logging.Audit(logging.AuditCatalogLoad, 0, appCfg.Library.Path, start, err)
	if err != nil {
		if errors.Is(err, catalog.ErrStorageUnavailable) {
			return nil, fmt.Errorf("cannot open library %s: %w (run 'booknerd init' to create one)",
				appCfg.Library.Path, err)
		}
		return nil, fmt.Errorf("cannot load library %s: %w", appCfg.Library.Path, err)
	}

	logger.Info("catalog loaded", zap.String("path", st.Path()), zap.Int("books", st.Len()))
	return st, nil
}

func runBrowse() error {
	p := tea.NewProgram(
		browse.New(store, appCfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
