// Package cmd implements jink's command-line surface: a single binary with
// a small set of top-level flags, built on the teacher's flag-parsing
// engine (cobra) but collapsed onto one RunE instead of a command tree,
// since jink's CLI surface is a flat handful of flags rather than a set
// of verbs like the teacher's run/lex/parse/fmt subcommands.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jink-lang/jink/internal/interp"
	"github.com/jink-lang/jink/internal/stdlib"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
	interactive bool
	debug       bool
	noStdLib    bool
)

var rootCmd = &cobra.Command{
	Use:   "jink [file]",
	Short: "jink interpreter",
	Long: `jink is an interpreter for a small statically-typed expression
language with user-defined record types, functions, variables, field
access, source-file imports, and interpreter directives.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
	// SilenceUsage/SilenceErrors: a failing script is not a CLI usage
	// mistake, so don't print the usage block for it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter the line-reader loop after loading")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable the debug diagnostic sink")
	rootCmd.Flags().BoolVar(&noStdLib, "no-std-lib", false, "skip loading the bundled standard library")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps a returned error to a process exit code. jink's fatal
// directives (@quit, @error) call os.Exit themselves before Execute ever
// returns, so any error reaching here is a top-level load/parse/run
// failure and always maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func run(_ *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("jink version %s\n", stdlib.Version())
		return nil
	}

	out := os.Stdout
	interpreter := interp.New(out, interp.WithDebug(debug), interp.WithNoStdLib(noStdLib))

	if len(args) == 1 {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := interpreter.RunSource(string(content), path); err != nil {
			if !interactive {
				return err
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if interactive {
		repl(interpreter)
	}

	return nil
}

// repl is the minimal line-reader loop: each line is parsed and executed
// as its own top-level run, so a line's error never prevents the next
// line from being tried, the same line-at-a-time shape as the teacher's
// own -e/--eval single-shot execution, extended here to run continuously.
func repl(interpreter *interp.Interpreter) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stdout, "jink> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			if err := interpreter.RunSource(line, ""); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		fmt.Fprint(os.Stdout, "jink> ")
	}
}
