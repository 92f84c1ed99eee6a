// Package executor runs the steps of a plan.
package executor

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ostacklab/heatup/pkg/step"
)

var (
	MetricSteps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "heatup_steps_total",
			Help: "Number of steps executed",
		},
	)
	MetricStepFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "heatup_step_failures_total",
			Help: "Number of failed steps",
		},
	)
)

func init() {
	prometheus.MustRegister(MetricSteps, MetricStepFailures)
}

// Updater is notified after a step has executed.
type Updater interface {
	Update(step.Step)
}

// UpdaterFunc is a function that conforms to the Updater interface.
type UpdaterFunc func(step.Step)

// Update is an adaptor from Update method to UpdaterFunc.
func (f UpdaterFunc) Update(stp step.Step) {
	f(stp)
}

// Executor runs Steps strictly in order.
// Execution is fail-fast; a failed step aborts the remainder of the plan.
type Executor struct {
	// UpdateSink is notified when a step has changed state.
	UpdateSink Updater

	Log logr.Logger
}

// Run executes steps one by one and returns an error when a step failed.
func (ex *Executor) Run(ctx context.Context, steps []step.Step) error {
	for _, stp := range steps {
		n := stp.Meta().ID.ShortName()

		MetricSteps.Inc()
		ok := stp.Execute(ctx, ex.Log.WithValues("step", n))
		if ex.UpdateSink != nil {
			ex.UpdateSink.Update(stp)
		}
		if !ok {
			MetricStepFailures.Inc()
			return fmt.Errorf("step %s: %s", n, stp.Meta().Msg)
		}
	}

	return nil
}
