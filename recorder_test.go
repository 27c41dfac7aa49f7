package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solved_state_for_recorder(t *testing.T) *SolvedState {
	t.Helper()

	unit := test_unit(t, 0.1)
	state, err := unit.solve_lin(get_theta_s_0())
	require.NoError(t, err)
	return state
}

func Test_state_point_rows(t *testing.T) {
	state := solved_state_for_recorder(t)

	rows := state_point_rows(state)
	require.Len(t, rows, 6)

	assert.Equal(t, "0 outdoor", rows[0].Point)
	assert.Equal(t, "5 indoor", rows[5].Point)

	// outdoor point echoes the inputs, humidity reported in g/kgDA
	assert.InDelta(t, 32.0, rows[0].Theta, 1e-9)
	assert.InDelta(t, get_w(32.0, 0.5)*1000.0, rows[0].W, 1e-9)
	assert.InDelta(t, 0.5, rows[0].Phi, 1e-9)
}

func Test_heat_flow_rows(t *testing.T) {
	state := solved_state_for_recorder(t)

	rows := heat_flow_rows(state)
	require.Len(t, rows, 6)

	assert.Equal(t, "CC", rows[0].Element)
	assert.Equal(t, "total", rows[0].Kind)
	assert.InDelta(t, state.q_t_cc/1000.0, rows[0].Q, 1e-9)
	assert.InDelta(t, rows[0].Q, rows[1].Q+rows[2].Q, 1e-9)
}

func Test_save_results(t *testing.T) {
	state := solved_state_for_recorder(t)

	dir := t.TempDir()
	require.NoError(t, save_results(dir, state))

	points, err := os.ReadFile(filepath.Join(dir, "state_points.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(points), "point,theta_degC,w_g_per_kgDA,phi"))
	assert.Contains(t, string(points), "5 indoor")

	flows, err := os.ReadFile(filepath.Join(dir, "heat_flows.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(flows), "element,kind,q_kW"))
	assert.Contains(t, string(flows), "TZ")
}
