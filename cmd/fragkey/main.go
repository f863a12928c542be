// FragKey - Theoretical fragment ion generation tool
package main

import (
	"fmt"
	"os"

	"github.com/ChrisMcGann/FragKey/cmd/fragkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
