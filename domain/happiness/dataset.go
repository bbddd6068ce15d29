package happiness

import (
	"gohappy/domain/core"
	"gohappy/internal/errors"
)

// Dataset is the immutable in-memory table the query façade reads from.
// Countries, Regions and every numeric column are row-aligned: row i refers
// to the same country everywhere. It is constructed once by the loader and
// never mutated afterwards, so it is safe to share freely.
type Dataset struct {
	LoadID core.LoadID
	Source string

	Countries   []string
	Regions     []string
	ColumnNames []string

	columnIndex map[string]int
	columns     [][]float64 // one slice per numeric column, each of length len(Countries)
}

// NewDataset assembles a Dataset from row-aligned slices. columns must hold
// one value slice per entry of columnNames, each the same length as countries.
func NewDataset(source string, countries, regions, columnNames []string, columns [][]float64) (*Dataset, error) {
	n := len(countries)
	if len(regions) != n {
		return nil, errors.MalformedDataf("region count %d does not match country count %d", len(regions), n)
	}
	if len(columns) != len(columnNames) {
		return nil, errors.MalformedDataf("column data count %d does not match column name count %d", len(columns), len(columnNames))
	}
	index := make(map[string]int, len(columnNames))
	for i, name := range columnNames {
		if _, dup := index[name]; dup {
			return nil, errors.MalformedDataf("duplicate column name %q", name)
		}
		if len(columns[i]) != n {
			return nil, errors.MalformedDataf("column %q has %d values, expected %d", name, len(columns[i]), n)
		}
		index[name] = i
	}
	return &Dataset{
		LoadID:      core.NewLoadID(),
		Source:      source,
		Countries:   countries,
		Regions:     regions,
		ColumnNames: columnNames,
		columnIndex: index,
		columns:     columns,
	}, nil
}

// Len returns the number of rows (countries).
func (d *Dataset) Len() int {
	return len(d.Countries)
}

// ColumnCount returns the number of numeric columns.
func (d *Dataset) ColumnCount() int {
	return len(d.ColumnNames)
}

// HasColumn reports whether a numeric column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columnIndex[name]
	return ok
}

// Column returns the values of a numeric column in row order. The returned
// slice is the dataset's backing storage and must not be modified.
func (d *Dataset) Column(name string) ([]float64, error) {
	idx, ok := d.columnIndex[name]
	if !ok {
		return nil, errors.UnknownColumn(name)
	}
	return d.columns[idx], nil
}

// Value returns a single cell by row index and column name.
func (d *Dataset) Value(row int, column string) (float64, error) {
	values, err := d.Column(column)
	if err != nil {
		return 0, err
	}
	return values[row], nil
}

// CountryIndex returns the row index of the first country with the given
// name (exact, case-sensitive). The second return is false when absent.
func (d *Dataset) CountryIndex(name string) (int, bool) {
	for i, c := range d.Countries {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// RegionLabels returns the distinct region labels in first-appearance order.
func (d *Dataset) RegionLabels() []string {
	seen := make(map[string]bool, 16)
	labels := make([]string, 0, 16)
	for _, r := range d.Regions {
		if !seen[r] {
			seen[r] = true
			labels = append(labels, r)
		}
	}
	return labels
}

// RegionRows returns the row indices whose region label matches exactly,
// in original row order.
func (d *Dataset) RegionRows(region string) []int {
	var rows []int
	for i, r := range d.Regions {
		if r == region {
			rows = append(rows, i)
		}
	}
	return rows
}
