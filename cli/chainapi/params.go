package clichainapi

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	configFlag = "config"

	configFlagDesc = "path to config json file (default: config.json next to the executable)"
)

type initParams struct {
	config string
}

func (ip *initParams) validateFlags() error {
	if ip.config == "" {
		return nil
	}

	if _, err := os.Stat(ip.config); err != nil {
		return fmt.Errorf("invalid --%s value %s: %w", configFlag, ip.config, err)
	}

	return nil
}

func (ip *initParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&ip.config,
		configFlag,
		"",
		configFlagDesc,
	)
}
