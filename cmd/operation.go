package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ostacklab/heatup/pkg/executor"
	"github.com/ostacklab/heatup/pkg/plan"
	"github.com/ostacklab/heatup/pkg/step"
)

var operationShort = map[plan.Operation]string{
	plan.OpInstall:   "Fetch sources and install the service packages",
	plan.OpConfigure: "Write the service configuration and register identity accounts",
	plan.OpInit:      "Recreate the database schema (destructive)",
	plan.OpStart:     "Start the engine and api services",
	plan.OpStop:      "Stop all services",
	plan.OpCleanup:   "Remove generated configuration and caches",
}

// NewCmdOperation returns a command that performs a lifecycle operation.
func NewCmdOperation(op plan.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   string(op),
		Short: operationShort[op],
		Run: func(c *cobra.Command, args []string) {
			rt, err := newRuntime(c)
			exitOnError(err)

			exitOnError(rt.run(context.Background(), op))
		},
	}
}

// Run performs op: select the steps that are valid in the current phase,
// execute them in order and persist the results.
func (rt *runtime) run(ctx context.Context, op plan.Operation) error {
	status, err := rt.planner.ReadStatus()
	if err != nil {
		return err
	}

	pl, err := rt.planner.SelectPlan(op, status.Phase, rt.spec.Standalone)
	if err != nil {
		return err
	}

	var steps []step.Step
	for _, t := range pl {
		stp, err := step.New(t, rt.tools, rt.hash)
		if err != nil {
			return err
		}
		steps = append(steps, stp)
	}

	ex := &executor.Executor{
		UpdateSink: executor.UpdaterFunc(func(stp step.Step) {
			rt.planner.UpdateStatusStep(status, stp)
		}),
		Log: rt.log,
	}

	if err := ex.Run(ctx, steps); err != nil {
		// keep the partial step results for heatup status.
		_ = rt.planner.WriteStatus(status)
		return err
	}

	status.Phase = plan.PhaseAfter(op, status.Phase)

	return rt.planner.WriteStatus(status)
}
