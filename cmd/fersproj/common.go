package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fersproj/internal/config"
	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/registry"
	"github.com/rgehrsitz/fersproj/internal/transform"
)

// loadRegistry loads the regulatory config named by the --regulatory-config
// flag, falling back to regulatory.yaml in the working directory if it
// exists, following the teacher's fileExists fallback convention.
func loadRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	parser := config.NewInputParser()
	regFile, _ := cmd.Flags().GetString("regulatory-config")
	if regFile == "" {
		if !fileExists("regulatory.yaml") {
			return nil, fmt.Errorf("no --regulatory-config given and regulatory.yaml does not exist")
		}
		regFile = "regulatory.yaml"
	}
	return parser.LoadRegulatoryConfig(regFile)
}

// loadScenario loads the SimulationInput scenario file and applies any
// --transform specs in order, per the teacher's --with comma-separated
// template convention (ParseTransformSpec grammar here instead of named
// templates).
func loadScenario(cmd *cobra.Command, scenarioFile string) (domain.SimulationInput, error) {
	parser := config.NewInputParser()
	in, err := parser.LoadScenario(scenarioFile)
	if err != nil {
		return domain.SimulationInput{}, err
	}

	specs, _ := cmd.Flags().GetStringSlice("transform")
	if len(specs) == 0 {
		return *in, nil
	}

	reg := transform.NewRegistry()
	current := *in
	for _, spec := range specs {
		tr, err := reg.ParseTransformSpec(spec)
		if err != nil {
			return domain.SimulationInput{}, fmt.Errorf("parsing transform %q: %w", spec, err)
		}
		current, err = tr.Apply(current)
		if err != nil {
			return domain.SimulationInput{}, fmt.Errorf("applying transform %q: %w", spec, err)
		}
	}
	return current, nil
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().String("regulatory-config", "", "Path to regulatory config file (default: regulatory.yaml if it exists)")
	cmd.Flags().StringSlice("transform", nil, "Apply a what-if transform, 'name:k1=v1,k2=v2' (repeatable)")
}
