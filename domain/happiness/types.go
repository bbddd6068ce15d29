package happiness

// BasicStats summarizes one numeric column (or one region's slice of it).
// StdDev is the population standard deviation (divide by N, not N-1).
type BasicStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// RankedCountry is one entry of a top/bottom ranking.
type RankedCountry struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// Outlier is a row whose |z-score| exceeded the detection threshold.
type Outlier struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
	ZScore  float64 `json:"z_score"`
}

// CountryProfile is a single row materialized as column -> value pairs.
type CountryProfile struct {
	Country string             `json:"country"`
	Region  string             `json:"region"`
	Values  map[string]float64 `json:"values"`
}

// RegionSubset holds the rows matching one region label. Countries and every
// Values slice are row-aligned, in original dataset order.
type RegionSubset struct {
	Region    string               `json:"region"`
	Countries []string             `json:"countries"`
	Values    map[string][]float64 `json:"values"`
}

// Len returns the number of rows in the subset.
func (s *RegionSubset) Len() int {
	return len(s.Countries)
}

// CorrelationMatrix is a symmetric grid of Pearson coefficients over an
// ordered set of column labels. The diagonal is exactly 1.0; a coefficient
// involving a zero-variance column is NaN, meaning "undefined", never zero.
type CorrelationMatrix struct {
	Columns []string
	coeffs  [][]float64
}

// NewCorrelationMatrix wraps an already-computed coefficient grid.
// The grid must be square with side len(columns).
func NewCorrelationMatrix(columns []string, coeffs [][]float64) *CorrelationMatrix {
	return &CorrelationMatrix{Columns: columns, coeffs: coeffs}
}

// At returns the coefficient at grid position (i, j).
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.coeffs[i][j]
}

// Coefficient looks up the coefficient for a pair of column names.
// The second return is false when either name is not part of the matrix.
func (m *CorrelationMatrix) Coefficient(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, name := range m.Columns {
		if name == a && ai == -1 {
			ai = i
		}
		if name == b && bi == -1 {
			bi = i
		}
	}
	if ai == -1 || bi == -1 {
		return 0, false
	}
	return m.coeffs[ai][bi], true
}

// Size returns the number of columns spanned by the matrix.
func (m *CorrelationMatrix) Size() int {
	return len(m.Columns)
}
