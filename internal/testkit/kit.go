package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"gohappy/domain/happiness"
)

// FixtureColumns is the numeric schema of generated datasets, a trimmed
// version of the World Happiness Report layout.
var FixtureColumns = []string{
	"Ladder score",
	"Logged GDP per capita",
	"Social support",
	"Healthy life expectancy",
	"Freedom to make life choices",
	"Generosity",
	"Perceptions of corruption",
}

// FixtureRegions are cycled over generated rows.
var FixtureRegions = []string{
	"Western Europe",
	"South Asia",
	"Sub-Saharan Africa",
	"Latin America and Caribbean",
}

// Generator produces deterministic synthetic happiness datasets. The same
// seed always yields the same data.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Dataset builds an in-memory dataset of n synthetic countries. Ladder score
// and GDP are positively coupled so correlation tests have signal to find.
func (g *Generator) Dataset(n int) (*happiness.Dataset, error) {
	countries := make([]string, n)
	regions := make([]string, n)
	columns := make([][]float64, len(FixtureColumns))
	for i := range columns {
		columns[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		countries[i] = fmt.Sprintf("Country %03d", i+1)
		regions[i] = FixtureRegions[i%len(FixtureRegions)]

		score := clamp(5.5+g.rng.NormFloat64()*1.1, 2.0, 8.0)
		columns[0][i] = round3(score)
		columns[1][i] = round3(7.0 + 0.45*score + g.rng.NormFloat64()*0.3) // GDP tracks score
		columns[2][i] = round3(clamp(0.55+0.05*score+g.rng.NormFloat64()*0.05, 0, 1))
		columns[3][i] = round3(50 + 2.5*score + g.rng.NormFloat64()*2)
		columns[4][i] = round3(clamp(0.6+g.rng.NormFloat64()*0.12, 0, 1))
		columns[5][i] = round3(g.rng.NormFloat64() * 0.15)
		columns[6][i] = round3(clamp(0.75+g.rng.NormFloat64()*0.15, 0, 1))
	}

	return happiness.NewDataset("testkit", countries, regions, FixtureColumns, columns)
}

// WriteCSV writes an n-row synthetic dataset as a loader-compatible CSV.
func (g *Generator) WriteCSV(path string, n int) error {
	ds, err := g.Dataset(n)
	if err != nil {
		return err
	}
	return WriteDatasetCSV(path, ds)
}

// WriteDatasetCSV serializes any dataset back to the loader's CSV format.
func WriteDatasetCSV(path string, ds *happiness.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{"Country name", "Regional indicator"}, ds.ColumnNames...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < ds.Len(); i++ {
		record := []string{ds.Countries[i], ds.Regions[i]}
		for _, name := range ds.ColumnNames {
			v, err := ds.Value(i, name)
			if err != nil {
				return err
			}
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
