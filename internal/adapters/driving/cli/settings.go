package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cerca-cli/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent defaults",
	Long: `View and configure persistent defaults for scans.

Settings live in ~/.cerca/config.toml and are overridden by command-line
flags on any individual run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set a persistent default.

Known keys:
  workers            - parallel worker count (integer)
  line_width         - context line truncation width (integer)
  editor             - editor command for opening matched files
  exclude_dirs       - comma-separated directory names to skip
  exclude_globs      - comma-separated path patterns to skip
  binary_extensions  - comma-separated extensions treated as binary`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Scan]")
	printIntSetting(cmd, "Workers", file.KeyWorkers)
	printIntSetting(cmd, "Line width", file.KeyLineWidth)
	cmd.Println()

	cmd.Println("[Filters]")
	printListSetting(cmd, "Excluded dirs", file.KeyExcludeDirs)
	printListSetting(cmd, "Excluded globs", file.KeyExcludeGlobs)
	printListSetting(cmd, "Binary extensions", file.KeyBinaryExtensions)
	cmd.Println()

	cmd.Println("[Editor]")
	if editorCmd := configStore.GetString(file.KeyEditor); editorCmd != "" {
		cmd.Printf("  Command: %s\n", editorCmd)
	} else {
		cmd.Println("  Command: (EDITOR environment variable)")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case file.KeyWorkers, file.KeyLineWidth:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
		if err := configStore.Set(key, n); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}

	case file.KeyEditor:
		if err := configStore.Set(key, value); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}

	case file.KeyExcludeDirs, file.KeyExcludeGlobs, file.KeyBinaryExtensions:
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		if err := configStore.Set(key, list); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}

	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func printIntSetting(cmd *cobra.Command, label, key string) {
	if v := configStore.GetInt(key); v > 0 {
		cmd.Printf("  %s: %d\n", label, v)
	} else {
		cmd.Printf("  %s: (default)\n", label)
	}
}

func printListSetting(cmd *cobra.Command, label, key string) {
	if v := configStore.GetStringSlice(key); len(v) > 0 {
		cmd.Printf("  %s: %s\n", label, strings.Join(v, ", "))
	} else {
		cmd.Printf("  %s: (default)\n", label)
	}
}
