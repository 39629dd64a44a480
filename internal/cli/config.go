package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/moriware/rncreate/internal/branding"
	"github.com/moriware/rncreate/internal/config"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.

Keys: %s, %s, %s. The environment variables %s, %s and %s
and a %s file in the project directory take precedence over the stored
values.`,
			branding.HomeDir(), config.KeyDelay, config.KeySrcDir, config.KeyNoColor,
			branding.EnvVar(config.KeyDelay), branding.EnvVar(config.KeySrcDir), branding.EnvVar(config.KeyNoColor),
			branding.ProjectFile()),
	}
	cmd.AddCommand(a.newConfigSetCmd(), a.newConfigGetCmd())
	return cmd
}

func (a *App) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			typed, err := config.CheckSetting(key, value)
			if err != nil {
				return errors.WithHintf(err, "valid keys: %s, %s, %s",
					config.KeyDelay, config.KeySrcDir, config.KeyNoColor)
			}
			if err := config.Set(key, typed); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func (a *App) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	}
}
