package executor

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mmlt/testr"
	"github.com/stretchr/testify/assert"

	"github.com/ostacklab/heatup/pkg/step"
)

// StepFake records execution and succeeds or fails on demand.
type stepFake struct {
	step.Metaa
	fail     bool
	executed *[]string
}

func (s *stepFake) Meta() *step.Metaa {
	return &s.Metaa
}

func (s *stepFake) Execute(ctx context.Context, log logr.Logger) bool {
	*s.executed = append(*s.executed, s.ID.ShortName())
	if s.fail {
		s.Msg = "boom"
		s.State = step.StateError
		return false
	}
	s.State = step.StateReady
	return true
}

func fakeSteps(executed *[]string, failAt int, types ...step.Type) []step.Step {
	var r []step.Step
	for i, t := range types {
		s := &stepFake{fail: i == failAt, executed: executed}
		s.ID = step.ID{Type: t}
		r = append(r, s)
	}
	return r
}

func TestExecutorRun(t *testing.T) {
	var executed []string
	var updated []string

	ex := Executor{
		UpdateSink: UpdaterFunc(func(stp step.Step) {
			updated = append(updated, stp.Meta().ID.ShortName())
		}),
		Log: testr.New(t),
	}

	err := ex.Run(context.Background(),
		fakeSteps(&executed, -1, step.TypeConfigure, step.TypeAccounts))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Configure", "Accounts"}, executed)
	assert.Equal(t, []string{"Configure", "Accounts"}, updated)
}

func TestExecutorFailFast(t *testing.T) {
	var executed []string

	ex := Executor{Log: testr.New(t)}

	err := ex.Run(context.Background(),
		fakeSteps(&executed, 0, step.TypeConfigure, step.TypeAccounts))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "step Configure: boom")
	assert.Equal(t, []string{"Configure"}, executed)
}
