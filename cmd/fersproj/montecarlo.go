package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fersproj/internal/montecarlo"
	"github.com/rgehrsitz/fersproj/internal/projection"
)

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo [scenario-file]",
	Short: "Run a Monte Carlo stochastic retirement simulation",
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

		trials, _ := cmd.Flags().GetInt("trials")
		seed, _ := cmd.Flags().GetInt64("seed")

		result := montecarlo.Run(reg, resolved.Config, trials, seed)

		fmt.Println("MONTE CARLO SIMULATION RESULTS")
		fmt.Println("===============================")
		fmt.Printf("Trials: %d, seed: %d\n", result.NumTrials, result.Seed)
		fmt.Printf("Overall success rate: %s%%\n", result.OverallSuccessRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
		fmt.Printf("Success rate at age 85: %s%%\n", result.SuccessRateAtAge85.Mul(decimal.NewFromInt(100)).StringFixed(2))
		if result.MedianDepletionAge != nil {
			fmt.Printf("Median depletion age: %d\n", *result.MedianDepletionAge)
		} else {
			fmt.Println("Median depletion age: never depletes")
		}
		fmt.Println()

		fmt.Println("Balance percentiles by age:")
		for _, b := range result.Bands {
			fmt.Printf("  age %3d: P10 $%12s  P25 $%12s  P50 $%12s  P75 $%12s  P90 $%12s  success %s%%\n",
				b.Age, b.P10.StringFixed(0), b.P25.StringFixed(0), b.P50.StringFixed(0),
				b.P75.StringFixed(0), b.P90.StringFixed(0), b.SuccessRate.Mul(decimal.NewFromInt(100)).StringFixed(1))
		}
	},
}

func init() {
	addScenarioFlags(montecarloCmd)
	montecarloCmd.Flags().IntP("trials", "n", montecarlo.DefaultNumTrials, "Number of Monte Carlo trials to run")
	montecarloCmd.Flags().Int64P("seed", "s", 42, "Root random seed")
}
