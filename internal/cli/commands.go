package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmaged/salat/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long:  "Display current configuration, or use subcommands to modify it.\nWhen run without subcommands, shows the current configuration.",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  salat config set latitude 30.0444\n  salat config set longitude 31.2357\n  salat config set timezone 2\n  salat config set asr_method hanafi\n  salat config set time_format 12h",
			strings.Join(config.ValidKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Configuration (%s)\n\n", path)

	for _, key := range config.ValidKeys {
		val, _ := cfg.Get(key)
		display := val
		if display == "" {
			display = "(not set)"
		}
		fmt.Printf("  %-12s %s\n", key, display)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// runConfigReset deletes the config file.
func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Println("Configuration reset to defaults.")
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// asrMethods lists the supported Asr juristic conventions.
var asrMethods = []struct {
	Name   string
	Factor string
	Desc   string
}{
	{"standard", "1x", "Shadow equals object height plus noon shadow (majority opinion)"},
	{"shafi", "1x", "Same as standard; kept as an explicit alias"},
	{"hanafi", "2x", "Shadow equals twice the object height plus noon shadow"},
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List Asr calculation methods",
		Long:  "Print the supported Asr juristic methods and their shadow factors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Supported Asr methods:")
			fmt.Println()
			fmt.Printf("  %-10s %-7s %s\n", "Name", "Shadow", "Description")
			fmt.Printf("  %-10s %-7s %s\n", "────", "──────", "───────────")
			for _, m := range asrMethods {
				fmt.Printf("  %-10s %-7s %s\n", m.Name, m.Factor, m.Desc)
			}
			fmt.Println()
			fmt.Println("Use --asr-method <name> to select one. Fajr and Isha always use the")
			fmt.Println("Egyptian General Authority twilight angles (-19.5 / -17.5 degrees).")
			return nil
		},
	}
}
