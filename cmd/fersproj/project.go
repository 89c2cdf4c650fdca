package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fersproj/internal/csvio"
	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/projection"
)

var projectCmd = &cobra.Command{
	Use:   "project [scenario-file]",
	Short: "Run a deterministic retirement projection",
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

		targetAge, _ := cmd.Flags().GetInt("break-even-depletion-age")
		if targetAge > 0 {
			runBreakEven(engine, resolved, targetAge)
			return
		}

		result, err := engine.Run(resolved.Config)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch outputFormat {
		case "csv":
			if err := csvio.ExportProjection(os.Stdout, result); err != nil {
				log.Fatal(err)
			}
		default:
			printProjectionSummary(resolved.Eligibility, result)
		}
	},
}

func printProjectionSummary(eligibility domain.EligibilityClass, result domain.FullSimulationResult) {
	fmt.Println("RETIREMENT PROJECTION")
	fmt.Println("=====================")
	fmt.Printf("Eligibility: %s\n", eligibility)
	fmt.Printf("Retirement year: %d, end age: %d\n", result.Config.RetirementYear, result.Config.EndAge)
	fmt.Printf("High-3 salary: $%s\n", result.Config.High3Salary.StringFixed(2))
	fmt.Println()

	for _, y := range result.Years {
		fmt.Printf("Age %3d (%d): gross $%12s  after-tax $%12s  TSP trad $%12s  TSP roth $%12s\n",
			y.Age, y.Year,
			y.GrossIncome.StringFixed(2), y.AfterTaxIncome.StringFixed(2),
			y.TradHighBalance.Add(y.TradLowBalance).StringFixed(2),
			y.RothHighBalance.Add(y.RothLowBalance).StringFixed(2))
	}

	fmt.Println()
	if result.FirstDepletionAge != nil {
		fmt.Printf("TSP depletes at age %d\n", *result.FirstDepletionAge)
	} else {
		fmt.Printf("TSP balance at age 85: $%s\n", result.BalanceAtAge85.StringFixed(2))
	}
	fmt.Printf("Lifetime after-tax income: $%s\n", result.Lifetime.TotalAfterTaxIncome.StringFixed(2))
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func runBreakEven(engine *projection.Engine, resolved projection.Resolved, targetAge int) {
	minRate := decimal.NewFromFloat(0.0)
	maxRate := decimal.NewFromFloat(0.20)
	be, err := engine.BreakEvenWithdrawalRate(resolved.Config, targetAge, minRate, maxRate)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("BREAK-EVEN TSP WITHDRAWAL RATE")
	fmt.Println("==============================")
	fmt.Printf("Target depletion age: %d\n", targetAge)
	fmt.Printf("Break-even withdrawal rate: %s%%\n", be.WithdrawalRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	if be.DepletionAge != nil {
		fmt.Printf("Resulting depletion age: %d\n", *be.DepletionAge)
	} else {
		fmt.Println("Resulting depletion age: never depletes within horizon")
	}
	fmt.Printf("Iterations: %d\n", be.Iterations)
}

func init() {
	addScenarioFlags(projectCmd)
	projectCmd.Flags().StringP("format", "f", "console", "Output format (console, csv)")
	projectCmd.Flags().Int("break-even-depletion-age", 0, "Solve for the TSP withdrawal rate that depletes the account at this age instead of running a single projection")
}
