package main

import (
	"fmt"
	"math"
	"os"

	"gohappy/adapters/tabular"
	"gohappy/domain/happiness"
	"gohappy/internal"
	"gohappy/internal/analysis"
	"gohappy/internal/config"
	"gohappy/internal/report"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "happiness",
		Short: "Statistical exploration of the World Happiness Report 2020 dataset",
		Long: `happiness loads the World Happiness Report dataset once and answers
statistical queries over it: descriptive statistics, rankings, regional
aggregates, correlations, z-score outliers, country profiles and
percentile ranks.

Run without arguments to print the full analysis report. The dataset path
comes from the DATASET_FILE environment variable (or .env).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport()
		},
	}

	rootCmd.AddCommand(
		newStatsCmd(),
		newTopCmd(),
		newBottomCmd(),
		newRegionCmd(),
		newRegionsCmd(),
		newCorrCmd(),
		newOutliersCmd(),
		newProfileCmd(),
		newPercentileCmd(),
		newColumnsCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadAnalyzer wires config -> reader -> analyzer for every command.
func loadAnalyzer() (*analysis.Analyzer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	ds, err := tabular.NewDataReader(cfg.Data.DatasetFile).Read()
	if err != nil {
		return nil, err
	}
	return analysis.New(ds), nil
}

func runReport() error {
	a, err := loadAnalyzer()
	if err != nil {
		return err
	}
	rep, err := report.Build(a)
	if err != nil {
		return err
	}
	rep.RenderText(os.Stdout)
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [column]",
		Short: "Basic statistics (mean, median, std, min, max) for a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			s, err := a.BasicStatistics(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (n=%d)\n", args[0], s.Count)
			fmt.Printf("  Mean:   %.4f\n", s.Mean)
			fmt.Printf("  Median: %.4f\n", s.Median)
			fmt.Printf("  Std:    %.4f\n", s.StdDev)
			fmt.Printf("  Min:    %.4f\n", s.Min)
			fmt.Printf("  Max:    %.4f\n", s.Max)
			return nil
		},
	}
}

func newTopCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top [column]",
		Short: "Highest-ranked countries for a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			ranking, err := a.Top(args[0], n)
			if err != nil {
				return err
			}
			printRanking(ranking)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", analysis.DefaultTopN, "Number of countries to show")
	return cmd
}

func newBottomCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "bottom [column]",
		Short: "Lowest-ranked countries for a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			ranking, err := a.Bottom(args[0], n)
			if err != nil {
				return err
			}
			printRanking(ranking)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", analysis.DefaultTopN, "Number of countries to show")
	return cmd
}

func newRegionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "region [label]",
		Short: "List the countries of one region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			subset := a.FilterByRegion(args[0])
			if subset.Len() == 0 {
				fmt.Printf("No countries found for region %q\n", args[0])
				return nil
			}
			scores := subset.Values[report.ScoreColumn]
			for i, country := range subset.Countries {
				if scores != nil {
					fmt.Printf("  %-30s %.3f\n", country, scores[i])
				} else {
					fmt.Printf("  %s\n", country)
				}
			}
			return nil
		},
	}
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [column]",
		Short: "Compare per-region statistics for a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			results, err := a.CompareRegions(args[0])
			if err != nil {
				return err
			}
			// Labels in data order keep the output deterministic.
			for _, region := range a.Dataset().RegionLabels() {
				s := results[region]
				fmt.Printf("  %-35s Mean: %.3f (±%.3f, n=%d)\n", region, s.Mean, s.StdDev, s.Count)
			}
			return nil
		},
	}
}

func newCorrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corr [column] [column...]",
		Short: "Pearson correlation matrix over two or more columns",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			matrix, err := a.CorrelationMatrix(args)
			if err != nil {
				return err
			}
			for i, rowName := range matrix.Columns {
				for j, colName := range matrix.Columns {
					if j <= i {
						continue
					}
					r := matrix.At(i, j)
					if math.IsNaN(r) {
						fmt.Printf("  %s vs %s: n/a (zero variance)\n", rowName, colName)
					} else {
						fmt.Printf("  %s vs %s: r = %.3f\n", rowName, colName, r)
					}
				}
			}
			return nil
		},
	}
}

func newOutliersCmd() *cobra.Command {
	var threshold float64
	cmd := &cobra.Command{
		Use:   "outliers [column]",
		Short: "Countries whose |z-score| exceeds the threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			outliers, err := a.FindOutliers(args[0], threshold)
			if err != nil {
				return err
			}
			if len(outliers) == 0 {
				fmt.Println("No outliers found.")
				return nil
			}
			for _, o := range outliers {
				fmt.Printf("  %-30s Value: %.3f, Z-score: %.2f\n", o.Country, o.Value, o.ZScore)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", analysis.DefaultOutlierThreshold, "Z-score threshold (> 0)")
	return cmd
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [country]",
		Short: "Every indicator value for one country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			profile, err := a.CountryProfile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Country: %s\n", profile.Country)
			fmt.Printf("Region:  %s\n", profile.Region)
			for _, name := range a.Dataset().ColumnNames {
				fmt.Printf("  %-35s %.3f\n", name, profile.Values[name])
			}
			return nil
		},
	}
}

func newPercentileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "percentile [country] [column]",
		Short: "Percentile rank of a country within a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			rank, err := a.PercentileRank(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s ranks at the %.1f percentile for %s\n", args[0], rank, args[1])
			return nil
		},
	}
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Basic statistics for every numeric column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			summaries, err := a.SummarizeColumns()
			if err != nil {
				return err
			}
			fmt.Printf("  %-35s %10s %10s %10s %10s %10s\n", "Column", "Mean", "Median", "Std", "Min", "Max")
			for _, cs := range summaries {
				fmt.Printf("  %-35s %10.4f %10.4f %10.4f %10.4f %10.4f\n",
					cs.Column, cs.Stats.Mean, cs.Stats.Median, cs.Stats.StdDev, cs.Stats.Min, cs.Stats.Max)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full analysis report as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnalyzer()
			if err != nil {
				return err
			}
			rep, err := report.Build(a)
			if err != nil {
				return err
			}
			if err := report.ExportXLSX(rep, out); err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "happiness_report.xlsx", "Output workbook path")
	return cmd
}

func printRanking(ranking []happiness.RankedCountry) {
	for i, rc := range ranking {
		fmt.Printf("  %2d. %-30s %.3f\n", i+1, rc.Country, rc.Value)
	}
}
