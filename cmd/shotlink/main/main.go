package main

import (
	"fmt"
	"os"

	"github.com/shotlink/shotlink/cmd/shotlink"
	"github.com/shotlink/shotlink/pkg/ui/styles"
)

func main() {
	rootCmd := shotlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
