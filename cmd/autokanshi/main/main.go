package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/autokanshi/cmd/autokanshi"
	"github.com/arthur-debert/autokanshi/pkg/style"
)

func main() {
	rootCmd := autokanshi.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var reported *autokanshi.ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
