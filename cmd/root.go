package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ostacklab/heatup/pkg/plan"
)

// NewRootCommand returns the root of all heatup commands.
func NewRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "heatup",
		Short: "Heat deployment tool",
		Long: `Heat deployment tool (heatup)
Provision a development deployment of the orchestration service with:
    heatup install
    heatup configure
    heatup init
    heatup start
and tear it down again with:
    heatup stop
    heatup cleanup
`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
		Hidden: true,
	}

	command.PersistentFlags().StringP("config", "c", "", "The deployment config file (empty runs with defaults).")
	command.PersistentFlags().IntP("verbosity", "v", 0, "Log verbosity, higher numbers produce more output.")

	for _, op := range []plan.Operation{
		plan.OpInstall, plan.OpConfigure, plan.OpInit, plan.OpStart, plan.OpStop, plan.OpCleanup,
	} {
		command.AddCommand(NewCmdOperation(op))
	}
	command.AddCommand(NewCmdStatus())

	return command
}
