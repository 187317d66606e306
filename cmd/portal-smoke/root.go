package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portal-smoke",
		Short:         "Smoke checks against a running portal gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newSmokeCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
