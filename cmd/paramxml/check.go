package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check that configuration files parse",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	failed := checkFiles(cmd.OutOrStdout(), args, func(path string) error {
		_, err := parseFile(path, logger)
		return err
	})
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// checkFiles reports one status line per file and returns the failure count.
func checkFiles(w io.Writer, paths []string, check func(string) error) int {
	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	failed := 0
	for _, path := range paths {
		if err := check(path); err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", fail("FAIL"), path, err)
			continue
		}
		fmt.Fprintf(w, "%s   %s\n", ok("ok"), path)
	}
	return failed
}
