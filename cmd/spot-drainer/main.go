/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package main

import (
	"os"

	"github.com/chaordic/lambda-spot-interruption/cmd/spot-drainer/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
