package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/config"
	"github.com/madellimac/hulotte/internal/notify"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write Hulotte settings stored at ~/.hulotte/config.yaml.

Keys:
  sound.preset     hoot sound: classic, deep, vibrato or soft
  sound.wav        path to a WAV file played instead of the preset
  install.jobs     parallel make jobs for "hulotte install"
  repos.streampu   StreamPU clone URL
  repos.aff3ct     AFF3CT clone URL`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

// validateSetting rejects values the commands reading them cannot use.
func validateSetting(key, value string) error {
	switch key {
	case config.KeySoundPreset:
		if _, err := notify.HootWAV(value); err != nil {
			return err
		}
	case config.KeyInstallJobs:
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
	case config.KeySoundWAV, config.KeyStreamPURepo, config.KeyAFF3CTRepo:
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
