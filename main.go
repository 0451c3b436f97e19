package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aledsdavies/flightql/internal/query"
	"github.com/aledsdavies/flightql/internal/source"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "flightql <input-file>",
		Short:         "Query a static batch of flight records with a small filter language",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], os.Stdout)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "flightql: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, stdout *os.File) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	flights, queries, err := source.Load(string(data))
	if err != nil {
		return err
	}

	engine := query.NewEngine(flights)

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	for _, q := range queries {
		results := engine.Run(q)
		if err := source.WriteResult(w, q, results); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	return nil
}
