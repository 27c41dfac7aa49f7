package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// One state point of the circuit, as written to state_points.csv.
type StatePointRow struct {
	Point string  `csv:"point"`
	Theta float64 `csv:"theta_degC"`
	W     float64 `csv:"w_g_per_kgDA"`
	Phi   float64 `csv:"phi"`
}

// One heat flow of the circuit, as written to heat_flows.csv.
type HeatFlowRow struct {
	Element string  `csv:"element"`
	Kind    string  `csv:"kind"`
	Q       float64 `csv:"q_kW"`
}

var state_point_labels = []string{
	"0 outdoor",
	"1 mixed",
	"2 coil outlet",
	"3 mixed 2",
	"4 supply",
	"5 indoor",
}

func state_point_rows(state *SolvedState) []*StatePointRow {
	thetas := state.thetas()
	ws := state.ws()

	rows := make([]*StatePointRow, len(state_point_labels))
	for i, label := range state_point_labels {
		rows[i] = &StatePointRow{
			Point: label,
			Theta: thetas[i],
			W:     ws[i] * 1000.0, // kg/kgDA -> g/kgDA
			Phi:   get_phi(thetas[i], ws[i]),
		}
	}

	return rows
}

func heat_flow_rows(state *SolvedState) []*HeatFlowRow {
	return []*HeatFlowRow{
		{Element: "CC", Kind: "total", Q: state.q_t_cc / 1000.0},
		{Element: "CC", Kind: "sensible", Q: state.q_s_cc / 1000.0},
		{Element: "CC", Kind: "latent", Q: state.q_l_cc / 1000.0},
		{Element: "HC", Kind: "sensible", Q: state.q_s_hc / 1000.0},
		{Element: "TZ", Kind: "sensible", Q: state.q_s_tz / 1000.0},
		{Element: "TZ", Kind: "latent", Q: state.q_l_tz / 1000.0},
	}
}

/*
Saves the solved state as two CSV files in the output directory:
state_points.csv and heat_flows.csv.

    Args:
        output_data_dir: output directory, created by the caller
        state: solved state of the circuit
*/
func save_results(output_data_dir string, state *SolvedState) error {
	points_path := filepath.Join(output_data_dir, "state_points.csv")
	file, err := os.Create(points_path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows := state_point_rows(state)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return err
	}

	flows_path := filepath.Join(output_data_dir, "heat_flows.csv")
	file2, err := os.Create(flows_path)
	if err != nil {
		return err
	}
	defer file2.Close()

	flows := heat_flow_rows(state)
	return gocsv.MarshalFile(&flows, file2)
}

// Prints the solved state the way the model is usually read: the state
// point table, the heat flows in kW and the coil summary line.
func print_state(state *SolvedState) {
	fmt.Println()
	fmt.Printf("%-14s %10s %10s %8s\n", "point", "theta [C]", "w [g/kg]", "phi [-]")
	for _, row := range state_point_rows(state) {
		fmt.Printf("%-14s %10.2f %10.2f %8.3f\n", row.Point, row.Theta, row.W, row.Phi)
	}

	fmt.Println()
	for _, row := range heat_flow_rows(state) {
		fmt.Printf("%-2s %-8s %10.2f kW\n", row.Element, row.Kind, row.Q)
	}

	fmt.Println()
	fmt.Printf("apparatus dew point temperature: %.3f C\n", state.theta_2)
	fmt.Printf("total load on the cooling coil: %.2f W\n", state.q_t_cc)
	fmt.Printf("m = %.3f kg/s, mo = %.3f kg/s, beta = %.3f\n",
		state.params.m, state.params.mo, state.params.beta)
}
