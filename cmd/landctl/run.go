package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/landkit/internal/logger"
	"github.com/joshuapare/landkit/internal/script"
)

var (
	keepGoing bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after a failed command")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a command script against a fresh registry",
		Long: `The run command parses a script and applies it line by line to a new,
empty registry. Use "-" to read the script from stdin.

Commands:
  add <city> <addr> <region> <id>     register an unowned parcel
  del-addr <city> <addr>              delete by location
  del-id <region> <id>                delete by region key
  owner-addr <city> <addr>            print the owner
  owner-id <region> <id>              print the owner
  chown-addr <city> <addr> <owner>    transfer ownership
  chown-id <region> <id> <owner>      transfer ownership
  count <owner>                       count parcels of owner (case-insensitive)
  list                                list all parcels by location
  list-owner <owner>                  list parcels of owner by acquisition
  stats                               print registry metrics

Example:
  landctl run parcels.land
  landctl run parcels.land --index btree --verify
  cat parcels.land | landctl run - --json --keep-going`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

func runRun(args []string) error {
	path := args[0]

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	printVerbose("Parsing script: %s\n", path)
	logger.Debug("parsing script", "path", path)
	cmds, err := script.Parse(in)
	if err != nil {
		return err
	}
	return execScript(cmds)
}

// execScript runs cmds against a new registry and prints the outcome.
func execScript(cmds []script.Command) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	printVerbose("Running %d command(s) with %s index\n", len(cmds), indexName)
	logger.Info("script started", "commands", len(cmds), "index", indexName, "verify", verifyOps)

	r := newRunner(reg)
	runErr := r.run(cmds)
	if runErr != nil {
		logger.Warn("script stopped", "executed", len(r.results), "failed", r.failed, "error", runErr)
	} else {
		logger.Info("script finished", "executed", len(r.results), "parcels", reg.Len())
	}

	if jsonOut {
		if err := printJSON(r.results); err != nil {
			return err
		}
	} else if runErr == nil {
		printVerbose("%d command(s) ok, %d parcel(s) registered\n", len(r.results), reg.Len())
	}
	return runErr
}
