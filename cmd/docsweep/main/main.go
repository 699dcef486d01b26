package main

import (
	"fmt"
	"os"

	"github.com/voxelpromo/docsweep/cmd/docsweep"
	"github.com/voxelpromo/docsweep/pkg/style"
)

func main() {
	rootCmd := docsweep.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := style.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
