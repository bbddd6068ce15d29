package happiness

import (
	"testing"

	"gohappy/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewDataset("test",
		[]string{"Finland", "India", "Brazil"},
		[]string{"Western Europe", "South Asia", "Latin America and Caribbean"},
		[]string{"Ladder score", "Social support"},
		[][]float64{
			{7.809, 3.573, 6.376},
			{0.954, 0.592, 0.882},
		})
	require.NoError(t, err)
	return ds
}

func TestNewDataset_AlignmentChecks(t *testing.T) {
	tests := []struct {
		name      string
		countries []string
		regions   []string
		colNames  []string
		columns   [][]float64
	}{
		{
			name:      "region count mismatch",
			countries: []string{"A", "B"},
			regions:   []string{"R"},
			colNames:  []string{"X"},
			columns:   [][]float64{{1, 2}},
		},
		{
			name:      "column name count mismatch",
			countries: []string{"A"},
			regions:   []string{"R"},
			colNames:  []string{"X", "Y"},
			columns:   [][]float64{{1}},
		},
		{
			name:      "short column",
			countries: []string{"A", "B"},
			regions:   []string{"R", "R"},
			colNames:  []string{"X"},
			columns:   [][]float64{{1}},
		},
		{
			name:      "duplicate column name",
			countries: []string{"A"},
			regions:   []string{"R"},
			colNames:  []string{"X", "X"},
			columns:   [][]float64{{1}, {2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataset("bad", tt.countries, tt.regions, tt.colNames, tt.columns)
			require.Error(t, err)
			assert.Equal(t, errors.CodeMalformedData, errors.GetCode(err))
		})
	}
}

func TestDataset_ColumnLookup(t *testing.T) {
	ds := newDataset(t)

	assert.True(t, ds.HasColumn("Ladder score"))
	assert.False(t, ds.HasColumn("ladder score"))

	values, err := ds.Column("Ladder score")
	require.NoError(t, err)
	assert.Equal(t, []float64{7.809, 3.573, 6.376}, values)

	_, err = ds.Column("Missing")
	assert.Equal(t, errors.CodeUnknownColumn, errors.GetCode(err))

	v, err := ds.Value(1, "Social support")
	require.NoError(t, err)
	assert.Equal(t, 0.592, v)
}

func TestDataset_CountryIndex(t *testing.T) {
	ds := newDataset(t)

	idx, ok := ds.CountryIndex("India")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = ds.CountryIndex("india")
	assert.False(t, ok)
}

func TestDataset_Regions(t *testing.T) {
	ds := newDataset(t)

	assert.Equal(t, []string{"Western Europe", "South Asia", "Latin America and Caribbean"},
		ds.RegionLabels())
	assert.Equal(t, []int{1}, ds.RegionRows("South Asia"))
	assert.Empty(t, ds.RegionRows("Atlantis"))
}

func TestDataset_FreshLoadID(t *testing.T) {
	a := newDataset(t)
	b := newDataset(t)
	assert.NotEqual(t, a.LoadID, b.LoadID)
	assert.False(t, a.LoadID.String() == "")
}
