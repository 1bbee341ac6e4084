package main

import (
	"fmt"
	"os"

	"finfo/internal/app"
	"finfo/internal/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "finfo [flags] [path ...]",
	Short:   "Lists filesystem entries with metadata",
	Version: "0.2",
	Args:    cobra.ArbitraryArgs,
	Long: `Lists filesystem entries with metadata.

Each path argument resolves either to a single entry or, for directories,
to the set of immediate children. Naming exactly one path that resolves
directly prints a detailed report; everything else prints one row per entry.

entry types:
  b - block device
  c - char device
  d - directory
  p - fifo pipe
  l - symbolic link file
  f - regular file
  s - socket
  ? - unknown

permissions:
  <owner><group><other>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if brief, _ := cmd.Flags().GetBool("brief-description"); brief {
			fmt.Println("lists directory")
			return nil
		}

		recursive, _ := cmd.Flags().GetBool("recursive")

		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}

		a, err := app.NewApp(cfg, "List")
		if err != nil {
			return fmt.Errorf("initializing app: %w", err)
		}

		listErr := a.List(args, recursive)

		// A failed release of the app's resources is fatal even when the
		// listing itself succeeded.
		if err := a.Close(); err != nil {
			return fmt.Errorf("closing app: %w", err)
		}

		return listErr
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Generate a new host ID
		hostID := uuid.New().String()

		// Create config with defaults
		cfg := config.NewConfig(hostID, defaults["base_dir"])

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Host ID: %s\n", hostID)
		fmt.Printf("Log Dir: %s\n", cfg.LogDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Read config
		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		// Display config
		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Host ID: %s\n", cfg.HostID)
		fmt.Printf("Log Dir: %s\n", cfg.LogDir)
		fmt.Printf("Color:   %s\n", cfg.Output.Color)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolP("recursive", "r", false,
		"Recurse into subdirectories (accepted but not implemented; subdirectories are skipped)")
	rootCmd.Flags().Bool("brief-description", false, "Print a one-line description and exit")
	rootCmd.Flags().MarkHidden("brief-description")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
