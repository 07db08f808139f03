package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timing/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or check the game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would use, after the search order
(--config, ~/.timing/configs/timing.yaml, ./configs/timing.yaml, built-in
defaults) and the --preset flag are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a configuration file",
	Long: `Load and validate a configuration file. Without a path, the
configuration found by the normal search order is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) == 1 {
			path = args[0]
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config OK: resting_y=%d rise=%d-%d speed=%d-%d hold=%d-%dms gravity=%d fps=%d\n",
			cfg.RestingY(),
			cfg.Rise.MinDistance, cfg.Rise.MaxDistance,
			cfg.Rise.MinSpeed, cfg.Rise.MaxSpeed,
			cfg.Hold.MinMs, cfg.Hold.MaxMs,
			cfg.Physics.Gravity, cfg.Physics.FrameRate,
		)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}
