// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/scenery"
	"github.com/gogpu/scenery/drawable"
)

type options struct {
	verbose bool
	config  string
	out     string
	width   int
	height  int
	frames  int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "scenerydemo",
		Short:        "Render a demo scene with every scenery renderer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			scenery.SetLogger(slogFor(logger))
			defer scenery.SetLogger(nil)

			cfg := drawable.DefaultConfig()
			if opts.config != "" {
				var err error
				if cfg, err = drawable.LoadConfig(opts.config); err != nil {
					return err
				}
			}
			if err := os.MkdirAll(opts.out, 0o755); err != nil {
				return err
			}
			return run(cmd.Context(), logger, cfg, opts)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVarP(&opts.config, "config", "c", "", "TOML pool policy file")
	f.StringVarP(&opts.out, "out", "o", ".", "output directory")
	f.IntVar(&opts.width, "width", 320, "scene width")
	f.IntVar(&opts.height, "height", 240, "scene height")
	f.IntVar(&opts.frames, "frames", 3, "animation frames before writing output")
	return cmd
}
