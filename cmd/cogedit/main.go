// Command cogedit benchmarks the cograph editing strategies against batches
// of disturbed random cographs and reports per-method edit statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cogedit",
		Short:         "cograph editing experiment harness",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(benchCommand())
	return root
}
