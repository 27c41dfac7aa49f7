package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"
)

type ScenarioJson struct {
	Problem    string         `json:"problem"` // direct | vbp | vav
	Target     string         `json:"target"`  // theta_S | phi_I
	SetPoint   float64        `json:"set_point"`
	Parameters ParametersJson `json:"parameters"`
	Inputs     InputsJson     `json:"inputs"`
	Building   *BuildingJson  `json:"building"`
}

type ParametersJson struct {
	M      float64 `json:"m"`
	Mo     float64 `json:"mo"`
	Beta   float64 `json:"beta"`
	KTheta float64 `json:"k_theta"`
	KW     float64 `json:"k_w"`
}

type InputsJson struct {
	ThetaO   float64 `json:"theta_o"`
	PhiO     float64 `json:"phi_o"`
	ThetaISp float64 `json:"theta_i_sp"`
	PhiISp   float64 `json:"phi_i_sp"`
	Mi       float64 `json:"mi"`
	UA       float64 `json:"ua"`
	QSa      float64 `json:"q_sa"`
	QLa      float64 `json:"q_la"`
}

type BuildingJson struct {
	CValue         float64 `json:"c_value"`
	Volume         float64 `json:"volume"`
	Story          int     `json:"story"`
	InsidePressure string  `json:"inside_pressure"`
}

/*
Runs one scenario: loads the scenario JSON, solves the requested
problem and reports the solved state.

    Args:
        scenario_path: path or http URL of the scenario JSON file
        output_data_dir: output directory for the CSV results, "" to skip
*/
func run(scenario_path string, output_data_dir string) {
	log.Printf("loading scenario from `%s`", scenario_path)
	var scenario ScenarioJson
	if len(scenario_path) >= 4 && scenario_path[0:4] == "http" {
		resp, err := http.Get(scenario_path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(body, &scenario); err != nil {
			log.Fatal(err)
		}
	} else {
		bytes, err := ioutil.ReadFile(scenario_path)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(bytes, &scenario); err != nil {
			log.Fatal(err)
		}
	}

	pj := scenario.Parameters
	params, err := NewParameters(pj.M, pj.Mo, pj.Beta, pj.KTheta, pj.KW)
	if err != nil {
		log.Fatal(err)
	}

	ij := scenario.Inputs
	mi := ij.Mi
	if scenario.Building != nil {
		// no measured infiltration flow, estimate it from the leakage data
		story, err := StoryFromInt(scenario.Building.Story)
		if err != nil {
			log.Fatal(err)
		}
		ip, err := InsidePressureFromString(scenario.Building.InsidePressure)
		if err != nil {
			log.Fatal(err)
		}
		building, err := NewBuilding(scenario.Building.CValue, scenario.Building.Volume, story, ip)
		if err != nil {
			log.Fatal(err)
		}
		mi = building.get_infiltration(ij.ThetaISp, ij.ThetaO)
		log.Printf("estimated infiltration mass flow rate: %.3f kg/s", mi)
	}

	inputs, err := NewInputs(ij.ThetaO, ij.PhiO, ij.ThetaISp, ij.PhiISp, mi, ij.UA, ij.QSa, ij.QLa)
	if err != nil {
		log.Fatal(err)
	}

	unit, err := NewAirHandlingUnit(params, inputs)
	if err != nil {
		log.Fatal(err)
	}

	var state *SolvedState
	switch scenario.Problem {
	case "direct":
		log.Printf("direct solve at m = %g kg/s, beta = %g", pj.M, pj.Beta)
		state, err = unit.solve_lin(get_theta_s_0())
	case "vbp":
		log.Printf("searching by-pass factor for %s = %g", scenario.Target, scenario.SetPoint)
		var beta float64
		beta, state, err = unit.find_bypass_factor(ControlTarget(scenario.Target), scenario.SetPoint)
		if err == nil {
			log.Printf("converged: beta = %.4f", beta)
		}
	case "vav":
		log.Printf("searching supply mass flow rate for %s = %g", scenario.Target, scenario.SetPoint)
		var m float64
		m, state, err = unit.find_mass_flow(ControlTarget(scenario.Target), scenario.SetPoint)
		if err == nil {
			log.Printf("converged: m = %.4f kg/s", m)
		}
	default:
		log.Fatalf("unknown problem %q, want one of direct, vbp, vav", scenario.Problem)
	}

	if err != nil {
		var not_converged *DidNotConvergeError
		switch {
		case errors.Is(err, ErrInfeasibleTarget):
			log.Fatalf("set point not reachable: %v", err)
		case errors.As(err, &not_converged):
			log.Printf("%v", err)
			if not_converged.best_state != nil {
				log.Printf("best trial found (not authoritative):")
				print_state(not_converged.best_state)
			}
			os.Exit(1)
		default:
			log.Fatal(err)
		}
	}

	print_state(state)

	if output_data_dir != "" {
		if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
			os.Mkdir(output_data_dir, 0755)
		}
		log.Printf("saving results to `%s`", output_data_dir)
		if err := save_results(output_data_dir, state); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	var scenario_path string
	flag.StringVar(&scenario_path, "i", "example/scenario_direct.json", "scenario JSON file or http URL")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", "", "output directory for the CSV results")

	flag.Parse()

	fmt.Printf("scenario: %s\n", scenario_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)

	start := time.Now()

	run(scenario_path, output_data_dir)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v", elapsedTime)
}
