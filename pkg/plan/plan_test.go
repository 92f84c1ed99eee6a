package plan

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostacklab/heatup/pkg/step"
)

func TestSelectPlan(t *testing.T) {
	tests := []struct {
		it         string
		op         Operation
		phase      Phase
		standalone bool
		want       Plan
		wantErr    string
	}{
		{
			it:    "should install on a fresh deployment",
			op:    OpInstall,
			phase: PhaseUninstalled,
			want:  Plan{step.TypeInstall},
		},
		{
			it:    "should configure and register accounts after install",
			op:    OpConfigure,
			phase: PhaseInstalled,
			want:  Plan{step.TypeConfigure, step.TypeAccounts},
		},
		{
			it:         "should skip account registration in standalone mode",
			op:         OpConfigure,
			phase:      PhaseInstalled,
			standalone: true,
			want:       Plan{step.TypeConfigure},
		},
		{
			it:      "should refuse to configure before install",
			op:      OpConfigure,
			phase:   PhaseUninstalled,
			wantErr: "not allowed in phase",
		},
		{
			it:      "should refuse to start before init",
			op:      OpStart,
			phase:   PhaseConfigured,
			wantErr: "not allowed in phase",
		},
		{
			it:    "should start again after stop",
			op:    OpStart,
			phase: PhaseStopped,
			want:  Plan{step.TypeStart},
		},
		{
			it:      "should refuse to install while running",
			op:      OpInstall,
			phase:   PhaseRunning,
			wantErr: "not allowed in phase",
		},
		{
			it:    "should allow stop of a stopped deployment",
			op:    OpStop,
			phase: PhaseStopped,
			want:  Plan{step.TypeStop},
		},
		{
			it:    "should allow stop after a failed start",
			op:    OpStop,
			phase: PhaseInitialized,
			want:  Plan{step.TypeStop},
		},
		{
			it:    "should cleanup from any phase",
			op:    OpCleanup,
			phase: PhaseRunning,
			want:  Plan{step.TypeCleanup},
		},
	}

	p := &Planner{}
	for _, tst := range tests {
		t.Run(tst.it, func(t *testing.T) {
			got, err := p.SelectPlan(tst.op, tst.phase, tst.standalone)
			if tst.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tst.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tst.want, got)
		})
	}
}

func TestPhaseAfter(t *testing.T) {
	assert.Equal(t, PhaseInstalled, PhaseAfter(OpInstall, PhaseUninstalled))
	// re-running an operation does not regress the phase.
	assert.Equal(t, PhaseInitialized, PhaseAfter(OpConfigure, PhaseInitialized))
	assert.Equal(t, PhaseRunning, PhaseAfter(OpStart, PhaseStopped))
	assert.Equal(t, PhaseStopped, PhaseAfter(OpStop, PhaseRunning))
	assert.Equal(t, PhaseUninstalled, PhaseAfter(OpCleanup, PhaseRunning))
}

func TestStatusRoundtrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "plan_test_")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p := &Planner{Path: filepath.Join(dir, "state.json")}

	// missing file reads as uninstalled.
	st, err := p.ReadStatus()
	require.NoError(t, err)
	assert.Equal(t, PhaseUninstalled, st.Phase)

	st.Phase = PhaseConfigured
	stp, err := step.New(step.TypeConfigure, step.Tools{}, "h1")
	require.NoError(t, err)
	stp.Meta().State = step.StateReady
	p.UpdateStatusStep(st, stp)

	require.NoError(t, p.WriteStatus(st))

	got, err := p.ReadStatus()
	require.NoError(t, err)
	assert.Equal(t, PhaseConfigured, got.Phase)
	assert.Equal(t, step.StateReady, got.Steps["Configure"].State)
	assert.Equal(t, "h1", got.Steps["Configure"].Hash)
}

func TestStatusHashOnlyWhenReady(t *testing.T) {
	p := &Planner{}
	st := &Status{}

	stp, err := step.New(step.TypeInstall, step.Tools{}, "h1")
	require.NoError(t, err)
	stp.Meta().State = step.StateError
	p.UpdateStatusStep(st, stp)

	assert.Empty(t, st.Steps["Install"].Hash)
}
