package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fersproj/internal/csvio"
	"github.com/rgehrsitz/fersproj/internal/projection"
)

var importCSVCmd = &cobra.Command{
	Use:   "import-csv [activity-file]",
	Short: "Import a TSP.gov account-activity CSV export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		transactions, err := csvio.ImportActivity(f)
		if err != nil {
			log.Fatal(err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(transactions); err != nil {
			log.Fatal(err)
		}
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv [scenario-file]",
	Short: "Run a deterministic projection and export it as CSV",
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

		resolved, warnings, err := projection.ResolveConfig(reg, in)
		if err != nil {
			log.Fatal(err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
		}

		engine := projection.NewEngine(reg)
		result, err := engine.Run(resolved.Config)
		if err != nil {
			log.Fatal(err)
		}

		if err := csvio.ExportProjection(os.Stdout, result); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	addScenarioFlags(exportCSVCmd)
}
