// Dressroom is the configuration engine for the Modern Heim modular
// wardrobe system.
//
// Build:
//
//	go build -o dressroom ./cmd/dressroom
package main

import (
	"os"

	"github.com/modernheim/dressroom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
