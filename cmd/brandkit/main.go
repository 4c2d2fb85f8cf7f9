// Command brandkit builds, validates and resolves design token trees.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/brandkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
