// Command quiz plays the animal quiz in the terminal and manages bank files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quiz",
		Short:         "Find out which animal you are",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlayCmd(), newBankCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
