// Package step implements the deployment lifecycle operations as steps.
package step

import (
	"context"
	"time"

	"github.com/go-logr/logr"
)

// Step is a unit of execution.
type Step interface {
	// Meta returns a reference to the data all steps have in common.
	Meta() *Metaa
	// Execute a step. Returns true on success.
	Execute(ctx context.Context, log logr.Logger) bool
}

// State of step execution; "" is the initial state.
type State string

const (
	StateRunning State = "Running"
	StateReady   State = "Ready"
	StateError   State = "Error"
)

// Metaa is the data that all steps have in common.
// (it is embedded in all Steps types)
type Metaa struct {
	// ID uniquely identifies a step.
	ID ID
	// Hash is unique for the config/parameters applied by a step.
	Hash string
	// State indicates if a step is running, ready or is in error.
	State State
	// Msg helps explaining the state. Mandatory for StateError.
	Msg string
	// LastUpdate is the time of the last state change.
	LastUpdate time.Time
}

// Update sets Step state.
func (m *Metaa) update(state State, msg string) {
	m.State = state
	m.Msg = msg
	m.LastUpdate = time.Now()
}

// Error2 logs err and sets Error state.
func (m *Metaa) error2(log logr.Logger, err error, msg string) bool {
	log.Error(err, msg)
	m.update(StateError, msg+": "+err.Error())

	return false
}

// ID uniquely identifies a Step.
type ID struct {
	// Type is the type of step, for example; Install, Configure.
	Type Type
}

// ShortName returns a name that's unique within a deployment.
func (si ID) ShortName() string {
	return string(si.Type)
}

// Type of step.
type Type string

const (
	TypeInstall   Type = "Install"
	TypeConfigure Type = "Configure"
	TypeAccounts  Type = "Accounts"
	TypeInit      Type = "Init"
	TypeStart     Type = "Start"
	TypeStop      Type = "Stop"
	TypeCleanup   Type = "Cleanup"
)

// Types is an enumeration of all types.
var Types = []Type{TypeInstall, TypeConfigure, TypeAccounts, TypeInit, TypeStart, TypeStop, TypeCleanup}

// IsStateFinal returns true if state is a final state.
// A step in final state has stopped executing.
func IsStateFinal(state State) bool {
	return state == StateReady || state == StateError
}
