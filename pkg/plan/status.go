package plan

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"time"

	"github.com/ostacklab/heatup/pkg/step"
)

// Status is the deployment state persisted between CLI invocations.
type Status struct {
	// Phase the deployment is in.
	Phase Phase `json:"phase"`
	// Steps holds the last known state per executed step.
	Steps map[string]StepStatus `json:"steps,omitempty"`
}

// StepStatus is the execution result of a single step.
type StepStatus struct {
	State step.State `json:"state"`
	// Message helps explaining the state.
	Message string `json:"message,omitempty"`
	// Hash of the config the step completed with, set on Ready only.
	Hash string `json:"hash,omitempty"`
	// LastUpdate is the time of the last state change.
	LastUpdate time.Time `json:"lastUpdate"`
}

// ReadStatus returns the persisted status.
// A missing file yields the zero Status; the deployment is uninstalled.
func (p *Planner) ReadStatus() (*Status, error) {
	b, err := ioutil.ReadFile(p.Path)
	if os.IsNotExist(err) {
		return &Status{}, nil
	}
	if err != nil {
		return nil, err
	}

	r := &Status{}
	if err := json.Unmarshal(b, r); err != nil {
		return nil, err
	}

	return r, nil
}

// WriteStatus persists the status.
func (p *Planner) WriteStatus(status *Status) error {
	b, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(p.Path, b, 0644)
}

// UpdateStatusStep saves the step state in the status.
func (p *Planner) UpdateStatusStep(status *Status, stp step.Step) {
	m := stp.Meta()

	s := StepStatus{
		State:      m.State,
		Message:    m.Msg,
		LastUpdate: m.LastUpdate,
	}

	if m.State == step.StateReady {
		// step is completed successfully
		s.Hash = m.Hash
	}

	if status.Steps == nil {
		status.Steps = make(map[string]StepStatus)
	}
	status.Steps[m.ID.ShortName()] = s
}
