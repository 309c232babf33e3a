package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCmd creates the data directory and an empty library
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and an empty library",
	Long: `Sets up bookNERD for first use:

  1. Creates the data directory (./.booknerd if present, else ~/.booknerd)
  2. Writes an empty library file
  3. Writes a starter config if none exists

An existing library is never overwritten.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	libPath := appCfg.Library.Path

	if _, err := os.Stat(libPath); err == nil {
		return fmt.Errorf("library already exists at %s", libPath)
	}

	if err := os.MkdirAll(filepath.Dir(libPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(libPath, []byte("[]\n"), 0644); err != nil {
		return fmt.Errorf("failed to create library: %w", err)
	}
	fmt.Printf("✓ Library created: %s\n", libPath)

	cfgPath := resolveConfigPath()
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			if err := appCfg.Save(cfgPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("✓ Config written: %s\n", cfgPath)
		}
	}

	fmt.Println("Run 'booknerd' to open the catalog.")
	return nil
}
