package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gohappy/domain/happiness"
	"gohappy/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture(t *testing.T) *analysis.Analyzer {
	t.Helper()

	countries := []string{
		"Finland", "Denmark", "Switzerland", "Iceland", "Norway",
		"India", "Afghanistan", "Zimbabwe", "Brazil", "Mexico",
	}
	regions := []string{
		"Western Europe", "Western Europe", "Western Europe", "Western Europe", "Western Europe",
		"South Asia", "South Asia", "Sub-Saharan Africa",
		"Latin America and Caribbean", "Latin America and Caribbean",
	}
	names := []string{
		"Ladder score",
		"Logged GDP per capita",
		"Social support",
		"Healthy life expectancy",
		"Freedom to make life choices",
	}
	columns := [][]float64{
		{7.809, 7.646, 7.560, 7.504, 7.488, 3.573, 2.567, 3.299, 6.376, 6.465},
		{10.639, 10.774, 10.980, 10.773, 11.088, 8.850, 7.463, 7.866, 9.570, 9.798},
		{0.954, 0.956, 0.943, 0.975, 0.952, 0.592, 0.470, 0.763, 0.882, 0.831},
		{71.901, 72.403, 74.102, 73.000, 73.201, 60.216, 52.590, 55.617, 66.601, 68.299},
		{0.949, 0.951, 0.921, 0.949, 0.936, 0.881, 0.396, 0.711, 0.804, 0.862},
	}

	ds, err := happiness.NewDataset("fixture", countries, regions, names, columns)
	require.NoError(t, err)
	return analysis.New(ds)
}

func TestBuild(t *testing.T) {
	rep, err := Build(newReportFixture(t))
	require.NoError(t, err)

	assert.Equal(t, 10, rep.Rows)
	assert.Equal(t, 5, rep.Columns)
	assert.Len(t, rep.Top, 10)
	assert.Len(t, rep.Bottom, 10)
	assert.Equal(t, "Finland", rep.Top[0].Country)
	assert.Equal(t, "Afghanistan", rep.Bottom[0].Country)

	// Region stats come sorted by mean, descending.
	require.Len(t, rep.RegionStats, 4)
	assert.Equal(t, "Western Europe", rep.RegionStats[0].Region)
	for i := 1; i < len(rep.RegionStats); i++ {
		assert.GreaterOrEqual(t,
			rep.RegionStats[i-1].Stats.Mean, rep.RegionStats[i].Stats.Mean)
	}

	require.Len(t, rep.Correlations, len(FactorColumns))
	for i, fc := range rep.Correlations {
		assert.Equal(t, FactorColumns[i], fc.Factor)
		assert.False(t, math.IsNaN(fc.Coefficient))
	}

	assert.Equal(t, "India", rep.Profile.Country)
	assert.Equal(t, "South Asia", rep.Profile.Region)
	assert.InDelta(t, 30.0, rep.ProfilePercentile, 1e-12)
	assert.NotEmpty(t, rep.LoadID)
}

func TestRenderText_SectionOrder(t *testing.T) {
	rep, err := Build(newReportFixture(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	rep.RenderText(&buf)
	out := buf.String()

	sections := []string{
		"WORLD HAPPINESS REPORT DATA ANALYSIS",
		"1. BASIC STATISTICS FOR LADDER SCORE",
		"2. TOP 10 HAPPIEST COUNTRIES",
		"3. BOTTOM 10 COUNTRIES BY HAPPINESS SCORE",
		"4. HAPPINESS SCORE BY REGION",
		"5. CORRELATION WITH LADDER SCORE",
		"6. DETAILED DATA FOR INDIA",
		"7. OUTLIER DETECTION FOR LOGGED GDP PER CAPITA",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.NotEqual(t, -1, idx, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}

	assert.Contains(t, out, "Finland")
	assert.Contains(t, out, "Percentile rank (Ladder score): 30.0%")
}

func TestFormatCoefficient(t *testing.T) {
	assert.Equal(t, "n/a", formatCoefficient(math.NaN()))
	assert.Equal(t, "0.912", formatCoefficient(0.9123))
	assert.Equal(t, "-0.500", formatCoefficient(-0.5))
}
