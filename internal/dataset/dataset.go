// Package dataset loads a numeric feature table and its aligned label vector
// from delimited text.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Dataset is a fixed-shape feature table with one label per row
type Dataset struct {
	FeatureNames []string
	LabelName    string
	Features     [][]float64
	Labels       []float64
}

// Shape returns the row and column counts of the feature table
func (d *Dataset) Shape() (rows, cols int) {
	if len(d.Features) == 0 {
		return 0, len(d.FeatureNames)
	}
	return len(d.Features), len(d.Features[0])
}

// LabelShape returns the length of the label vector
func (d *Dataset) LabelShape() int {
	return len(d.Labels)
}

// Option configures CSV loading
type Option func(*options)

type options struct {
	labelColumn int
	comma       rune
}

// WithLabelColumn selects the label column. Negative values count from the
// end, so -1 (the default) is the last column.
func WithLabelColumn(col int) Option {
	return func(o *options) {
		o.labelColumn = col
	}
}

// WithComma sets the field delimiter
func WithComma(r rune) Option {
	return func(o *options) {
		o.comma = r
	}
}

// LoadCSV reads the dataset stored at path
func LoadCSV(path string, opts ...Option) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := ReadCSV(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV reads a dataset from r. A first record that is not fully numeric is
// taken as the header. Every data row must have the same width and parse as
// numbers.
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	o := options{labelColumn: -1, comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.comma
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records")
	}

	width := len(records[0])
	labelCol := o.labelColumn
	if labelCol < 0 {
		labelCol += width
	}
	if labelCol < 0 || labelCol >= width {
		return nil, fmt.Errorf("label column %d out of range for %d columns", o.labelColumn, width)
	}

	ds := &Dataset{}
	if !numeric(records[0]) {
		ds.LabelName = records[0][labelCol]
		for i, name := range records[0] {
			if i != labelCol {
				ds.FeatureNames = append(ds.FeatureNames, name)
			}
		}
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	ds.Features = make([][]float64, 0, len(records))
	ds.Labels = make([]float64, 0, len(records))
	for i, rec := range records {
		x := make([]float64, 0, width-1)
		var y float64
		for j, s := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
			if j == labelCol {
				y = v
			} else {
				x = append(x, v)
			}
		}
		ds.Features = append(ds.Features, x)
		ds.Labels = append(ds.Labels, y)
	}

	return ds, nil
}

func numeric(rec []string) bool {
	for _, s := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return false
		}
	}
	return true
}
