// Package plan decides what steps to run for a lifecycle operation.
// It can be viewed as a mediator between the persisted deployment status
// (current phase) and the steps executor: SelectPlan() maps an operation to
// an ordered list of steps, UpdateStatusStep() puts step results back in the
// status.
package plan

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ostacklab/heatup/pkg/step"
)

// Operation is a lifecycle operation as requested on the command line.
type Operation string

const (
	OpInstall   Operation = "install"
	OpConfigure Operation = "configure"
	OpInit      Operation = "init"
	OpStart     Operation = "start"
	OpStop      Operation = "stop"
	OpCleanup   Operation = "cleanup"
)

// Phase of a deployment. Phases advance when an operation completes.
type Phase string

const (
	PhaseUninstalled Phase = ""
	PhaseInstalled   Phase = "Installed"
	PhaseConfigured  Phase = "Configured"
	PhaseInitialized Phase = "Initialized"
	PhaseRunning     Phase = "Running"
	PhaseStopped     Phase = "Stopped"
)

// Planner decides what steps need to be taken to perform an operation and
// records the results.
type Planner struct {
	// Path is the location of the persisted status file.
	Path string

	Log logr.Logger
}

// Plan is a sequence of steps to perform.
type Plan []step.Type

// Allowed maps each operation to the phases it may run in.
// Cleanup is absent; it is valid in any phase.
var allowed = map[Operation][]Phase{
	OpInstall:   {PhaseUninstalled, PhaseInstalled, PhaseConfigured, PhaseInitialized, PhaseStopped},
	OpConfigure: {PhaseInstalled, PhaseConfigured, PhaseInitialized, PhaseStopped},
	OpInit:      {PhaseConfigured, PhaseInitialized, PhaseStopped},
	OpStart:     {PhaseInitialized, PhaseStopped},
	// a failed start leaves the phase at Initialized with processes running,
	// so stop must be valid there too.
	OpStop: {PhaseInitialized, PhaseRunning, PhaseStopped},
}

// SelectPlan returns the steps that perform op.
// An operation that is not valid in the current phase returns an error;
// running services must be stopped before their deployment is changed.
func (p *Planner) SelectPlan(op Operation, phase Phase, standalone bool) (Plan, error) {
	if ps, ok := allowed[op]; ok {
		if !phaseIn(phase, ps) {
			return nil, fmt.Errorf("%s: not allowed in phase %q", op, phase)
		}
	}

	switch op {
	case OpInstall:
		return Plan{step.TypeInstall}, nil
	case OpConfigure:
		r := Plan{step.TypeConfigure}
		if !standalone {
			r = append(r, step.TypeAccounts)
		}
		return r, nil
	case OpInit:
		return Plan{step.TypeInit}, nil
	case OpStart:
		return Plan{step.TypeStart}, nil
	case OpStop:
		return Plan{step.TypeStop}, nil
	case OpCleanup:
		return Plan{step.TypeCleanup}, nil
	}

	return nil, fmt.Errorf("unexpected operation: %v", op)
}

// PhaseAfter returns the phase a deployment is in after op completed
// successfully in the given phase.
func PhaseAfter(op Operation, phase Phase) Phase {
	switch op {
	case OpInstall:
		if phase == PhaseUninstalled {
			return PhaseInstalled
		}
	case OpConfigure:
		if phase == PhaseInstalled {
			return PhaseConfigured
		}
	case OpInit:
		return PhaseInitialized
	case OpStart:
		return PhaseRunning
	case OpStop:
		return PhaseStopped
	case OpCleanup:
		return PhaseUninstalled
	}

	return phase
}

func phaseIn(phase Phase, ps []Phase) bool {
	for _, p := range ps {
		if p == phase {
			return true
		}
	}
	return false
}
