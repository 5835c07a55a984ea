// Package main implements the symls command-line entry point: load,
// preprocess, and execute a .symls file, or fall into an interactive
// session when no file is given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath      string
	preprocessOnly  bool
	dumpSubroutines string
	dumpVars        bool
	dumpConfig      bool
)

var rootCmd = &cobra.Command{
	Use:   "symls [path]",
	Short: "symls runs SYMLS interpreter programs",
	Long: `symls is the interpreter for the SYMLS language: a small
imperative language whose keywords, operators, and data-type spellings
are rebindable through symlsConfig.json.

With a path argument, the named file is loaded (appending .symls if no
extension is present), preprocessed to a normalised file, and executed.
With no path, symls runs an interactive line-at-a-time session.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runSymls,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Flags().StringVar(&configPath, "config", "symlsConfig.json", "path to the keyword/IO configuration file")
	rootCmd.Flags().BoolVar(&preprocessOnly, "preprocess-only", false, "write the normalised program and exit without executing it")
	rootCmd.Flags().StringVar(&dumpSubroutines, "dump-subroutines", "", "print the harvested subroutine table as yaml or json and exit")
	rootCmd.Flags().BoolVar(&dumpVars, "dump-vars", false, "print the final variable store after execution")
	rootCmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "write the current configuration (built-in defaults plus any loaded overrides) to the --config path and exit")
	return rootCmd.Execute()
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
