// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cvparseproj/cvparse-mcp/internal/config"
	"github.com/cvparseproj/cvparse-mcp/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "cvparse",
		Short: "CV section segmentation and field extraction",
		Long: "cvparse reads a CV from a PDF or image file, splits its text into canonical sections " +
			"and extracts contact details, skills, experience, education and languages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (overrides the configuration)")

	cmd.AddCommand(newParseCmd(opts), newSegmentCmd(opts), newServeCmd(opts))
	return cmd
}

// load reads the configuration and initialises logging on the command's
// stderr.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, logging.Init(cfg.Log, cmd.ErrOrStderr()), nil
}
