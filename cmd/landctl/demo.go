package main

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/landkit/internal/script"
)

//go:embed demo.land
var demoScript []byte

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in sample scenario",
		Long: `The demo command registers five sample parcels, moves them between owners
and deletes two of them, printing every listing along the way.

Example:
  landctl demo
  landctl demo --index btree --verify
  landctl demo --print-script > sample.land`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	cmd.Flags().BoolVar(&demoPrintScript, "print-script", false, "Print the demo script instead of running it")
	return cmd
}

var demoPrintScript bool

func runDemo() error {
	if demoPrintScript {
		_, err := os.Stdout.Write(demoScript)
		return err
	}
	cmds, err := script.Parse(bytes.NewReader(demoScript))
	if err != nil {
		return err
	}
	return execScript(cmds)
}
