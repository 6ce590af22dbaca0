package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/autokanshi/cmd/autokanshi"
	"github.com/arthur-debert/autokanshi/internal/version"
)

func main() {
	rootCmd := autokanshi.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "AUTOKANSHI",
		Section: "1",
		Source:  "autokanshi " + version.Version,
		Manual:  "autokanshi manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
