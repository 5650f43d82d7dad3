// cubefit packs rectangular items into containers and picks the container a
// set of items should go into.
//
// Build:
//
//	go build -o cubefit ./cmd/cubefit
package main

import (
	"os"

	"github.com/piwi3910/cubefit/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.UserError("%v", err)
		os.Exit(exitCode(err))
	}
}
