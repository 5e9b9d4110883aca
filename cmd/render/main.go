// Package main renders the MDA landing page to static HTML.
package main

import (
	"fmt"
	"os"

	"github.com/web3infra-foundation/mda-site/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
