// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package main

import (
	"fmt"
	"os"

	"github.com/coredds/go-enigma-core/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
