package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"stratasample/adapters/excel"
	"stratasample/adapters/export"
	"stratasample/adapters/rng"
	"stratasample/app"
	"stratasample/domain/audit"
	"stratasample/domain/sampling"
	"stratasample/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "stratasample",
		Short: "Stratified audit sampling with reproducible draws",
	}

	rootCmd.AddCommand(
		newDrawCmd(),
		newVerifyCmd(),
		newRecommendCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDrawCmd() *cobra.Command {
	var (
		seed      int64
		z         float64
		margin    float64
		threshold int
		minSize   int
		maxSize   int
		noCensus  bool
		outPath   string
		htmlPath  string
	)

	cmd := &cobra.Command{
		Use:   "draw [population-file]",
		Short: "Draw a reproducible stratified sample and emit its audit record",
		Long: `Draw a stratified random sample from an Excel or CSV population file.

The file needs id, stratum, and cost columns; extra columns are carried as
attributes. The audit record is written as JSON so the draw can be verified
later with the same file and record.

Example: stratasample draw population.xlsx --seed 42 --out audit.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			reader := excel.NewDataReader(excel.Config{
				FilePath:      args[0],
				SheetName:     cfg.Data.SheetName,
				IDColumn:      cfg.Data.IDColumn,
				StratumColumn: cfg.Data.StratumColumn,
				CostColumn:    cfg.Data.CostColumn,
			})
			entries, err := reader.ReadEntries()
			if err != nil {
				return err
			}

			params := sampling.DefaultParameters()
			params.ConfidenceZ = z
			params.MarginOfError = margin
			params.SmallPopulationThreshold = threshold
			params.MinSampleSize = minSize
			params.MaxSampleSize = maxSize
			params.FullCensusBelowThreshold = !noCensus

			service := app.NewRunService(rng.New(), nil)
			record, err := service.Execute(context.Background(), entries, params, seed)
			if err != nil {
				return err
			}

			printSummary(cmd, record)

			if outPath != "" {
				data, err := record.MarshalStable()
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write audit record: %w", err)
				}
				cmd.Printf("Audit record written to %s\n", outPath)
			}
			if htmlPath != "" {
				if err := os.WriteFile(htmlPath, export.RenderHTML(record), 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				cmd.Printf("Report written to %s\n", htmlPath)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Base seed for deterministic draws")
	cmd.Flags().Float64Var(&z, "z", sampling.DefaultConfidenceZ, "Confidence z value")
	cmd.Flags().Float64Var(&margin, "margin", sampling.DefaultMarginOfError, "Margin of error")
	cmd.Flags().IntVar(&threshold, "threshold", sampling.DefaultSmallPopulationThreshold, "Small-population full census threshold")
	cmd.Flags().IntVar(&minSize, "min", 0, "Minimum sample size per stratum (0 = unset)")
	cmd.Flags().IntVar(&maxSize, "max", 0, "Maximum sample size per stratum (0 = unset)")
	cmd.Flags().BoolVar(&noCensus, "no-census", false, "Disable the small-population full census rule")
	cmd.Flags().StringVar(&outPath, "out", "audit.json", "Path for the audit record JSON")
	cmd.Flags().StringVar(&htmlPath, "report", "", "Optional path for an HTML report")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [audit.json] [population-file]",
		Short: "Recount a stored audit record against a population file",
		Long: `Verify that a stored audit record reproduces exactly from the given
population file: the population fingerprint must match and an independent
redraw under the recorded parameters and seeds must select the same IDs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read audit record: %w", err)
			}
			var record audit.Record
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("failed to parse audit record: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reader := excel.NewDataReader(excel.Config{
				FilePath:      args[1],
				SheetName:     cfg.Data.SheetName,
				IDColumn:      cfg.Data.IDColumn,
				StratumColumn: cfg.Data.StratumColumn,
				CostColumn:    cfg.Data.CostColumn,
			})
			entries, err := reader.ReadEntries()
			if err != nil {
				return err
			}

			service := app.NewRunService(rng.New(), nil)
			if err := service.Verify(&record, entries); err != nil {
				return fmt.Errorf("verification FAILED: %w", err)
			}
			cmd.Printf("Verification OK: run %s reproduces from this population\n", record.RunID)
			return nil
		},
	}
	return cmd
}

func newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [total-records]",
		Short: "Show tiered documentation count recommendations for a portfolio size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil || total < 0 {
				return fmt.Errorf("total-records must be a non-negative integer")
			}

			rec := sampling.Recommend(total)
			cmd.Printf("Portfolio of %d records:\n", rec.TotalRecords)
			cmd.Printf("  Conservative: %d\n", rec.Conservative)
			cmd.Printf("  Moderate:     %d\n", rec.Moderate)
			cmd.Printf("  Aggressive:   %d\n", rec.Aggressive)
			for _, note := range rec.Notes {
				cmd.Printf("  - %s\n", note)
			}
			return nil
		},
	}
	return cmd
}

func printSummary(cmd *cobra.Command, record *audit.Record) {
	cmd.Printf("Run %s\n", record.RunID)
	cmd.Printf("Fingerprint %s\n", record.PopulationFingerprint)
	cmd.Printf("Base seed %d (%s)\n\n", record.BaseSeed, record.SeedDerivation)
	for _, d := range record.Decisions {
		result, _ := record.ResultFor(d.Stratum)
		cmd.Printf("%-20s N=%-5d sigma=%-10.2f n=%-5d method=%-11s seed=%d\n",
			d.Stratum, d.PopulationSize, d.StdDev, d.AppliedN, d.Method, result.Seed)
	}
	cmd.Printf("\nTotal selected: %d\n", record.TotalSelected())
}
