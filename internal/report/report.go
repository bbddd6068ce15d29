package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"gohappy/domain/happiness"
	"gohappy/internal/analysis"
)

// The fixed report contract: which columns and country the default run covers.
const (
	ScoreColumn    = "Ladder score"
	ProfileCountry = "India"
	OutlierColumn  = "Logged GDP per capita"
)

// FactorColumns are correlated against the happiness score, in report order.
var FactorColumns = []string{
	"Logged GDP per capita",
	"Social support",
	"Healthy life expectancy",
	"Freedom to make life choices",
}

// RegionStat is one region's entry in the regional comparison section.
type RegionStat struct {
	Region string
	Stats  happiness.BasicStats
}

// FactorCorrelation is one factor's Pearson coefficient against the score.
type FactorCorrelation struct {
	Factor      string
	Coefficient float64
}

// Report is the materialized default analysis run, consumed by the text
// renderer and the XLSX exporter.
type Report struct {
	GeneratedAt time.Time
	Source      string
	LoadID      string
	Rows        int
	Columns     int

	ScoreStats        happiness.BasicStats
	Top               []happiness.RankedCountry
	Bottom            []happiness.RankedCountry
	RegionStats       []RegionStat // sorted by mean, descending
	Correlations      []FactorCorrelation
	Profile           happiness.CountryProfile
	ProfilePercentile float64
	Outliers          []happiness.Outlier
}

// Build runs every section of the default report against the analyzer.
func Build(a *analysis.Analyzer) (*Report, error) {
	ds := a.Dataset()
	rep := &Report{
		GeneratedAt: time.Now(),
		Source:      ds.Source,
		LoadID:      ds.LoadID.String(),
		Rows:        ds.Len(),
		Columns:     ds.ColumnCount(),
	}

	var err error
	if rep.ScoreStats, err = a.BasicStatistics(ScoreColumn); err != nil {
		return nil, err
	}
	if rep.Top, err = a.Top(ScoreColumn, analysis.DefaultTopN); err != nil {
		return nil, err
	}
	if rep.Bottom, err = a.Bottom(ScoreColumn, analysis.DefaultTopN); err != nil {
		return nil, err
	}

	regions, err := a.CompareRegions(ScoreColumn)
	if err != nil {
		return nil, err
	}
	for region, s := range regions {
		rep.RegionStats = append(rep.RegionStats, RegionStat{Region: region, Stats: s})
	}
	sort.SliceStable(rep.RegionStats, func(i, j int) bool {
		if rep.RegionStats[i].Stats.Mean != rep.RegionStats[j].Stats.Mean {
			return rep.RegionStats[i].Stats.Mean > rep.RegionStats[j].Stats.Mean
		}
		return rep.RegionStats[i].Region < rep.RegionStats[j].Region
	})

	for _, factor := range FactorColumns {
		r, err := a.Correlation(ScoreColumn, factor)
		if err != nil {
			return nil, err
		}
		rep.Correlations = append(rep.Correlations, FactorCorrelation{Factor: factor, Coefficient: r})
	}

	if rep.Profile, err = a.CountryProfile(ProfileCountry); err != nil {
		return nil, err
	}
	if rep.ProfilePercentile, err = a.PercentileRank(ProfileCountry, ScoreColumn); err != nil {
		return nil, err
	}
	if rep.Outliers, err = a.FindOutliers(OutlierColumn, analysis.DefaultOutlierThreshold); err != nil {
		return nil, err
	}

	return rep, nil
}

// RenderText writes the report as human-readable text in the fixed
// section order of the default run mode.
func (r *Report) RenderText(w io.Writer) {
	rule := strings.Repeat("=", 80)
	sub := strings.Repeat("-", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "WORLD HAPPINESS REPORT DATA ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Source: %s (%d countries, %d indicators)\n", r.Source, r.Rows, r.Columns)

	fmt.Fprintf(w, "\n1. BASIC STATISTICS FOR %s\n%s\n", strings.ToUpper(ScoreColumn), sub)
	fmt.Fprintf(w, "  Mean:   %.4f\n", r.ScoreStats.Mean)
	fmt.Fprintf(w, "  Median: %.4f\n", r.ScoreStats.Median)
	fmt.Fprintf(w, "  Std:    %.4f\n", r.ScoreStats.StdDev)
	fmt.Fprintf(w, "  Min:    %.4f\n", r.ScoreStats.Min)
	fmt.Fprintf(w, "  Max:    %.4f\n", r.ScoreStats.Max)

	fmt.Fprintf(w, "\n2. TOP %d HAPPIEST COUNTRIES\n%s\n", len(r.Top), sub)
	for i, rc := range r.Top {
		fmt.Fprintf(w, "  %2d. %-30s %.3f\n", i+1, rc.Country, rc.Value)
	}

	fmt.Fprintf(w, "\n3. BOTTOM %d COUNTRIES BY HAPPINESS SCORE\n%s\n", len(r.Bottom), sub)
	for i, rc := range r.Bottom {
		fmt.Fprintf(w, "  %2d. %-30s %.3f\n", i+1, rc.Country, rc.Value)
	}

	fmt.Fprintf(w, "\n4. HAPPINESS SCORE BY REGION\n%s\n", sub)
	for _, rs := range r.RegionStats {
		fmt.Fprintf(w, "  %-35s Mean: %.3f (±%.3f, n=%d)\n", rs.Region, rs.Stats.Mean, rs.Stats.StdDev, rs.Stats.Count)
	}

	fmt.Fprintf(w, "\n5. CORRELATION WITH %s\n%s\n", strings.ToUpper(ScoreColumn), sub)
	for _, fc := range r.Correlations {
		fmt.Fprintf(w, "  %-35s r = %s\n", fc.Factor, formatCoefficient(fc.Coefficient))
	}

	fmt.Fprintf(w, "\n6. DETAILED DATA FOR %s\n%s\n", strings.ToUpper(r.Profile.Country), sub)
	fmt.Fprintf(w, "  Country: %s\n", r.Profile.Country)
	fmt.Fprintf(w, "  Region:  %s\n", r.Profile.Region)
	fmt.Fprintf(w, "  %s: %.3f\n", ScoreColumn, r.Profile.Values[ScoreColumn])
	for _, factor := range FactorColumns {
		fmt.Fprintf(w, "  %s: %.3f\n", factor, r.Profile.Values[factor])
	}
	fmt.Fprintf(w, "  Percentile rank (%s): %.1f%%\n", ScoreColumn, r.ProfilePercentile)

	fmt.Fprintf(w, "\n7. OUTLIER DETECTION FOR %s\n%s\n", strings.ToUpper(OutlierColumn), sub)
	if len(r.Outliers) == 0 {
		fmt.Fprintln(w, "  No outliers found.")
	} else {
		fmt.Fprintf(w, "  Found %d outliers:\n", len(r.Outliers))
		for _, o := range r.Outliers {
			fmt.Fprintf(w, "  %-30s Value: %.3f, Z-score: %.2f\n", o.Country, o.Value, o.ZScore)
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}

// formatCoefficient renders a Pearson coefficient, printing "n/a" for the
// undefined (zero-variance) case instead of a number.
func formatCoefficient(r float64) string {
	if math.IsNaN(r) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", r)
}
