package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fersproj/internal/projection"
	"github.com/rgehrsitz/fersproj/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file without running a projection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenarioFile := args[0]

		reg, err := loadRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}

		in, err := loadScenario(cmd, scenarioFile)
		if err != nil {
			log.Fatal(err)
		}

		resolved, resolveWarnings, err := projection.ResolveConfig(reg, in)
		if err != nil {
			log.Fatal(err)
		}

		configWarnings, err := validate.Config(resolved.Config)
		if err != nil {
			log.Fatal(err)
		}

		for _, w := range resolveWarnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
		}
		for _, w := range configWarnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
		}

		fmt.Printf("Scenario file %s is valid (eligibility: %s)\n", scenarioFile, resolved.Eligibility)
	},
}

func init() {
	addScenarioFlags(validateCmd)
}
