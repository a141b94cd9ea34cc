// Package cli is the command line front end of the estimator.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	outputAuto = "auto"
	outputText = "text"
	outputJSON = "json"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the klimacli root command.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "klimacli",
		Short:         "Canteen climate footprint calculator",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewEstimateCmd())

	return cmd
}
