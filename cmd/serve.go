// Copyright 2025 The Filmrate Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"filmrate/api"

	"github.com/spf13/cobra"
)

type serveOptions struct {
	ConfigPath string
	LogLevel   string
}

func newServeCommand() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:          "serve",
		SilenceUsage: true,
		Short:        "serve starts the filmrate API server",

		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.ConfigPath, "config", "c", "deploy/conf.yaml", "config file path")
	fs.StringVarP(&opts.LogLevel, "log-level", "", "", "log level (silent, info, error, warning, verbose); overrides config")
	return cmd
}

func runServe(opts serveOptions) error {
	return api.Start(opts.ConfigPath, opts.LogLevel)
}
