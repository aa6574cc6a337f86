// Command resumatch serves the candidate search API and runs searches and
// access checks from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resumatch",
	Short:        "ResuMatch candidate search",
	Long:         "ResuMatch offers role-based login, resume upload and keyword candidate search over HTTP.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
