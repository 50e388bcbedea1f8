// Package main provides the shelf CLI entry point.
package main

import (
	"os"

	"github.com/mkline/shelf/internal/config"
	"github.com/mkline/shelf/internal/inventory"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// libraryDirFlag overrides the library directory when set via --dir
var libraryDirFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Personal book catalog manager",
	Long: `shelf is a CLI for managing a personal book catalog.

Books live in a plain bookInventory snapshot file, with an ephemeral SQLite
index for full-text queries. All commands output JSON by default for easy
scripting; pass --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&libraryDirFlag, "dir", "", "Library directory (default: $SHELF_DIR, configured library_path, or the working directory)")
	rootCmd.Version = Version
}

// mustLibraryDir resolves the library directory or exits.
func mustLibraryDir() string {
	dir, err := config.LibraryDir(libraryDirFlag)
	if err != nil {
		exitWithError(ExitConfigError, "resolving library directory: %v", err)
	}
	return dir
}

// openStore opens the inventory store for the resolved library directory.
func openStore() *inventory.Store {
	return inventory.Open(mustLibraryDir())
}
