/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package cli implements the spot-drainer command line, used to replay
// recorded interruption events outside Lambda.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for spot-drainer.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-drainer",
		Short: "Drain spot instances from load balancers on interruption",
		Long: "spot-drainer responds to EC2 Spot Instance Interruption Warnings by\n" +
			"deregistering the instance from its load balancers and bumping the\n" +
			"desired capacity of a designated on-demand auto scaling group.\n\n" +
			"The production entrypoint is the Lambda handler; this CLI replays a\n" +
			"recorded event against real AWS for local testing:\n\n" +
			"  ROLE_NAME=spot-drainer spot-drainer simulate --event event.json",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(newSimulateCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
