package report

import (
	"math"

	"gohappy/adapters/tabular"
	"gohappy/domain/happiness"
)

// ExportXLSX writes the report as a workbook with one sheet per section.
func ExportXLSX(r *Report, path string) error {
	sheets := []tabular.Sheet{
		summarySheet(r),
		rankingSheet("Top", r.Top),
		rankingSheet("Bottom", r.Bottom),
		regionSheet(r),
		correlationSheet(r),
		profileSheet(r),
		outlierSheet(r),
	}
	return tabular.WriteWorkbook(path, sheets)
}

func summarySheet(r *Report) tabular.Sheet {
	return tabular.Sheet{
		Name: "Summary",
		Rows: [][]interface{}{
			{"Source", r.Source},
			{"Load ID", r.LoadID},
			{"Generated at", r.GeneratedAt.Format("2006-01-02 15:04:05")},
			{"Countries", r.Rows},
			{"Indicators", r.Columns},
			{},
			{"Statistic", ScoreColumn},
			{"Mean", r.ScoreStats.Mean},
			{"Median", r.ScoreStats.Median},
			{"Std", r.ScoreStats.StdDev},
			{"Min", r.ScoreStats.Min},
			{"Max", r.ScoreStats.Max},
		},
	}
}

func rankingSheet(name string, ranking []happiness.RankedCountry) tabular.Sheet {
	rows := [][]interface{}{{"Rank", "Country", ScoreColumn}}
	for i, rc := range ranking {
		rows = append(rows, []interface{}{i + 1, rc.Country, rc.Value})
	}
	return tabular.Sheet{Name: name, Rows: rows}
}

func regionSheet(r *Report) tabular.Sheet {
	rows := [][]interface{}{{"Region", "Mean", "Median", "Std", "Min", "Max", "Countries"}}
	for _, rs := range r.RegionStats {
		rows = append(rows, []interface{}{
			rs.Region, rs.Stats.Mean, rs.Stats.Median, rs.Stats.StdDev,
			rs.Stats.Min, rs.Stats.Max, rs.Stats.Count,
		})
	}
	return tabular.Sheet{Name: "Regions", Rows: rows}
}

func correlationSheet(r *Report) tabular.Sheet {
	rows := [][]interface{}{{"Factor", "Pearson r vs " + ScoreColumn}}
	for _, fc := range r.Correlations {
		if math.IsNaN(fc.Coefficient) {
			rows = append(rows, []interface{}{fc.Factor, "n/a"})
			continue
		}
		rows = append(rows, []interface{}{fc.Factor, fc.Coefficient})
	}
	return tabular.Sheet{Name: "Correlations", Rows: rows}
}

func profileSheet(r *Report) tabular.Sheet {
	rows := [][]interface{}{
		{"Country", r.Profile.Country},
		{"Region", r.Profile.Region},
		{"Percentile rank (" + ScoreColumn + ")", r.ProfilePercentile},
		{},
		{"Indicator", "Value"},
	}
	rows = append(rows, []interface{}{ScoreColumn, r.Profile.Values[ScoreColumn]})
	for _, factor := range FactorColumns {
		rows = append(rows, []interface{}{factor, r.Profile.Values[factor]})
	}
	return tabular.Sheet{Name: "Profile", Rows: rows}
}

func outlierSheet(r *Report) tabular.Sheet {
	rows := [][]interface{}{{"Country", OutlierColumn, "Z-score"}}
	for _, o := range r.Outliers {
		rows = append(rows, []interface{}{o.Country, o.Value, o.ZScore})
	}
	return tabular.Sheet{Name: "Outliers", Rows: rows}
}
