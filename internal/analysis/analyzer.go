package analysis

import (
	"math"
	"sort"

	"gohappy/domain/happiness"
	"gohappy/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Defaults for the ranking and outlier operations.
const (
	DefaultTopN             = 10
	DefaultOutlierThreshold = 2.0
)

// Analyzer answers stateless statistical queries over a loaded Dataset.
// Every operation is a pure read; the Analyzer holds no other state.
type Analyzer struct {
	ds *happiness.Dataset
}

// New creates an Analyzer over the given dataset.
func New(ds *happiness.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// Dataset returns the underlying dataset.
func (a *Analyzer) Dataset() *happiness.Dataset {
	return a.ds
}

// BasicStatistics computes mean, median, population standard deviation, min
// and max over every value of the named column.
func (a *Analyzer) BasicStatistics(column string) (happiness.BasicStats, error) {
	values, err := a.ds.Column(column)
	if err != nil {
		return happiness.BasicStats{}, err
	}
	return summarize(values)
}

// ColumnSummary pairs a column name with its basic statistics.
type ColumnSummary struct {
	Column string
	Stats  happiness.BasicStats
}

// SummarizeColumns computes basic statistics for every numeric column,
// in declared column order.
func (a *Analyzer) SummarizeColumns() ([]ColumnSummary, error) {
	summaries := make([]ColumnSummary, 0, a.ds.ColumnCount())
	for _, name := range a.ds.ColumnNames {
		s, err := a.BasicStatistics(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ColumnSummary{Column: name, Stats: s})
	}
	return summaries, nil
}

// Top returns the n highest-valued countries for the column, descending.
// Ties keep original row order. n is clamped to the dataset size.
func (a *Analyzer) Top(column string, n int) ([]happiness.RankedCountry, error) {
	return a.rank(column, n, true)
}

// Bottom returns the n lowest-valued countries for the column, ascending.
func (a *Analyzer) Bottom(column string, n int) ([]happiness.RankedCountry, error) {
	return a.rank(column, n, false)
}

func (a *Analyzer) rank(column string, n int, descending bool) ([]happiness.RankedCountry, error) {
	if n < 1 {
		return nil, errors.InvalidArgumentf("ranking size must be >= 1, got %d", n)
	}
	values, err := a.ds.Column(column)
	if err != nil {
		return nil, err
	}

	ranked := make([]happiness.RankedCountry, a.ds.Len())
	for i := range values {
		ranked[i] = happiness.RankedCountry{Country: a.ds.Countries[i], Value: values[i]}
	}
	// Stable sort keeps ties in original row order, so results are deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Value < ranked[j].Value
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n], nil
}

// FilterByRegion returns the rows whose region label matches exactly.
// An unmatched label yields an empty subset, not an error.
func (a *Analyzer) FilterByRegion(region string) *happiness.RegionSubset {
	rows := a.ds.RegionRows(region)
	subset := &happiness.RegionSubset{
		Region:    region,
		Countries: make([]string, 0, len(rows)),
		Values:    make(map[string][]float64, a.ds.ColumnCount()),
	}
	for _, i := range rows {
		subset.Countries = append(subset.Countries, a.ds.Countries[i])
	}
	for _, name := range a.ds.ColumnNames {
		values, _ := a.ds.Column(name)
		sub := make([]float64, 0, len(rows))
		for _, i := range rows {
			sub = append(sub, values[i])
		}
		subset.Values[name] = sub
	}
	return subset
}

// CompareRegions groups rows by region label and computes basic statistics
// per group. The region set comes from the data itself.
func (a *Analyzer) CompareRegions(column string) (map[string]happiness.BasicStats, error) {
	values, err := a.ds.Column(column)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]float64)
	for i, region := range a.ds.Regions {
		groups[region] = append(groups[region], values[i])
	}

	results := make(map[string]happiness.BasicStats, len(groups))
	for region, groupValues := range groups {
		s, err := summarize(groupValues)
		if err != nil {
			return nil, err
		}
		results[region] = s
	}
	return results, nil
}

// CorrelationMatrix computes the Pearson coefficient for every ordered pair
// of the given columns. The diagonal is exactly 1.0 and the matrix is
// symmetric by construction. A zero-variance column produces NaN entries,
// which mean "correlation undefined" and must not be read as zero.
func (a *Analyzer) CorrelationMatrix(columns []string) (*happiness.CorrelationMatrix, error) {
	if len(columns) < 2 {
		return nil, errors.InvalidArgumentf("correlation needs at least 2 columns, got %d", len(columns))
	}
	data := make([][]float64, len(columns))
	for i, name := range columns {
		values, err := a.ds.Column(name)
		if err != nil {
			return nil, err
		}
		data[i] = values
	}

	coeffs := make([][]float64, len(columns))
	for i := range coeffs {
		coeffs[i] = make([]float64, len(columns))
		coeffs[i][i] = 1.0
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := stat.Correlation(data[i], data[j], nil)
			coeffs[i][j] = r
			coeffs[j][i] = r
		}
	}

	labels := make([]string, len(columns))
	copy(labels, columns)
	return happiness.NewCorrelationMatrix(labels, coeffs), nil
}

// Correlation computes the Pearson coefficient for a single pair of columns.
func (a *Analyzer) Correlation(columnX, columnY string) (float64, error) {
	x, err := a.ds.Column(columnX)
	if err != nil {
		return 0, err
	}
	y, err := a.ds.Column(columnY)
	if err != nil {
		return 0, err
	}
	return stat.Correlation(x, y, nil), nil
}

// FindOutliers returns the rows whose |z-score| exceeds the threshold,
// sorted descending by |z-score| (ties keep original row order). A
// zero-variance column has no defined z-scores and yields no outliers.
func (a *Analyzer) FindOutliers(column string, threshold float64) ([]happiness.Outlier, error) {
	if threshold <= 0 {
		return nil, errors.InvalidArgumentf("outlier threshold must be > 0, got %g", threshold)
	}
	values, err := a.ds.Column(column)
	if err != nil {
		return nil, err
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, errors.Wrapf(err, "mean of %q", column)
	}
	std, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return nil, errors.Wrapf(err, "standard deviation of %q", column)
	}
	if std == 0 {
		return []happiness.Outlier{}, nil
	}

	outliers := make([]happiness.Outlier, 0)
	for i, v := range values {
		z := (v - mean) / std
		if math.Abs(z) > threshold {
			outliers = append(outliers, happiness.Outlier{
				Country: a.ds.Countries[i],
				Value:   v,
				ZScore:  z,
			})
		}
	}
	sort.SliceStable(outliers, func(i, j int) bool {
		return math.Abs(outliers[i].ZScore) > math.Abs(outliers[j].ZScore)
	})
	return outliers, nil
}

// CountryProfile returns every column value for one country plus its region.
// The first matching row wins if a name is duplicated.
func (a *Analyzer) CountryProfile(country string) (happiness.CountryProfile, error) {
	row, ok := a.ds.CountryIndex(country)
	if !ok {
		return happiness.CountryProfile{}, errors.UnknownCountry(country)
	}

	profile := happiness.CountryProfile{
		Country: a.ds.Countries[row],
		Region:  a.ds.Regions[row],
		Values:  make(map[string]float64, a.ds.ColumnCount()),
	}
	for _, name := range a.ds.ColumnNames {
		v, err := a.ds.Value(row, name)
		if err != nil {
			return happiness.CountryProfile{}, err
		}
		profile.Values[name] = v
	}
	return profile, nil
}

// PercentileRank returns 100 * (rows with value <= the country's value) / N.
// The rank is inclusive, so the column maximum scores 100 and the minimum
// scores 100/N.
func (a *Analyzer) PercentileRank(country, column string) (float64, error) {
	values, err := a.ds.Column(column)
	if err != nil {
		return 0, err
	}
	row, ok := a.ds.CountryIndex(country)
	if !ok {
		return 0, errors.UnknownCountry(country)
	}

	target := values[row]
	atOrBelow := 0
	for _, v := range values {
		if v <= target {
			atOrBelow++
		}
	}
	return float64(atOrBelow) / float64(len(values)) * 100, nil
}

// summarize computes the shared statistics record used by BasicStatistics
// and CompareRegions. StdDev is the population standard deviation.
func summarize(values []float64) (happiness.BasicStats, error) {
	if len(values) == 0 {
		return happiness.BasicStats{}, errors.InvalidArgument("cannot summarize an empty column")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return happiness.BasicStats{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return happiness.BasicStats{}, err
	}
	std, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return happiness.BasicStats{}, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return happiness.BasicStats{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return happiness.BasicStats{}, err
	}

	return happiness.BasicStats{
		Mean:   mean,
		Median: median,
		StdDev: std,
		Min:    min,
		Max:    max,
		Count:  len(values),
	}, nil
}
