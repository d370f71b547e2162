package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haesol/sajukit/internal/cli"
	"github.com/haesol/sajukit/internal/config"
)

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List interpretation presets",
		Long:  `Show the built-in interpretation schools and their effective settings.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range config.PresetNames() {
				fmt.Println(cli.BoldStyle.Render(name))
			}
			return nil
		},
	}

	cmd.AddCommand(presetsShowCmd())

	return cmd
}

func presetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <school>",
		Short: "Show a preset's effective configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.ForSchool(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}
