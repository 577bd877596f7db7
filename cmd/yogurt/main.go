// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command yogurt is the subgraph toolchain's command-line front end: init,
// codegen, build, test, validate and deploy, mirroring the Cobra-based
// command tree style of the example toolchains in this codebase.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var jsonLogs bool
	var envFile string

	root := &cobra.Command{
		Use:           "yogurt",
		Short:         "Toolchain for Go subgraph mappings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if jsonLogs {
				log.SetFormatter(&logrus.JSONFormatter{})
			} else {
				log.SetFormatter(&logrus.TextFormatter{})
			}
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				// a missing default ".env" is not an error; an explicitly
				// named file that can't be loaded is.
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&jsonLogs, "json", false, "emit logs as JSON")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load configuration from")

	root.AddCommand(newInitCmd())
	root.AddCommand(newCodegenCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newTestCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newDeployCmd())
	return root
}
