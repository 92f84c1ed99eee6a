package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewCmdStatus returns a command that shows the deployment phase and the
// last known step results.
func NewCmdStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the deployment phase and step results",
		Run: func(c *cobra.Command, args []string) {
			rt, err := newRuntime(c)
			exitOnError(err)

			status, err := rt.planner.ReadStatus()
			exitOnError(err)

			phase := string(status.Phase)
			if phase == "" {
				phase = "Uninstalled"
			}
			fmt.Printf("phase: %s\n", phase)

			var names []string
			for n := range status.Steps {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				s := status.Steps[n]
				fmt.Printf("%-10s %-8s %s %s\n", n, s.State, s.LastUpdate.Format("2006-01-02 15:04:05"), s.Message)
			}
		},
	}
}
