package main

import (
	"fmt"
	"strconv"

	"github.com/mkline/shelf/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set global configuration",
	Long: `Get or set values in the global config file
(~/.config/shelf/config.yml).

Keys: library_path, openlibrary_user_agent, openlibrary_rps`,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

// UpdateResponse is the response for config set.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	if humanOutput {
		fmt.Printf("library_path:           %s\n", cfg.LibraryPath)
		fmt.Printf("openlibrary_user_agent: %s\n", cfg.OpenLibraryUserAgent)
		fmt.Printf("openlibrary_rps:        %d\n", cfg.OpenLibraryRPS)
	} else {
		outputJSON(cfg)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	switch key {
	case "library_path":
		cfg.LibraryPath = config.ExpandTilde(value)
	case "openlibrary_user_agent":
		cfg.OpenLibraryUserAgent = value
	case "openlibrary_rps":
		rps, err := strconv.Atoi(value)
		if err != nil || rps <= 0 {
			exitWithError(ExitDataError, "openlibrary_rps must be a positive integer")
		}
		cfg.OpenLibraryRPS = rps
	default:
		exitWithError(ExitDataError, "unknown config key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	return nil
}
