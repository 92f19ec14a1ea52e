/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaordic/lambda-spot-interruption/internal/version"
)

// newVersionCommand creates the "version" command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of spot-drainer",
		Long:  "Print the version of spot-drainer",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("spot-drainer", version.GetVersion())
			return nil
		},
	}
}
