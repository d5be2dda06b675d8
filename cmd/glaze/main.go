// glaze is a CLI tool for generating and installing Ghostty color themes
package main

import (
	"os"

	"github.com/vibejam/glaze/cmd/glaze/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
