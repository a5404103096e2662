package dataset

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensuslabs/model-builder/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisSample = `sepal_length,sepal_width,petal_length,petal_width,species
5.1,3.5,1.4,0.2,0
7.0,3.2,4.7,1.4,1
6.3,3.3,6.0,2.5,2
`

func TestReadCSVWithHeader(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(irisSample))
	require.NoError(t, err)

	rows, cols := ds.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, ds.LabelShape())
	assert.Equal(t, []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}, ds.FeatureNames)
	assert.Equal(t, "species", ds.LabelName)
	assert.Equal(t, []float64{0, 1, 2}, ds.Labels)
	assert.Equal(t, []float64{7.0, 3.2, 4.7, 1.4}, ds.Features[1])
}

func TestReadCSVLabelColumn(t *testing.T) {
	data := "1,10,100\n2,20,200\n"

	tests := []struct {
		name     string
		col      int
		labels   []float64
		features []float64
	}{
		{name: "default last", col: -1, labels: []float64{100, 200}, features: []float64{1, 10}},
		{name: "first", col: 0, labels: []float64{1, 2}, features: []float64{10, 100}},
		{name: "middle from end", col: -2, labels: []float64{10, 20}, features: []float64{1, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadCSV(strings.NewReader(data), WithLabelColumn(tt.col))
			require.NoError(t, err)
			assert.Empty(t, ds.FeatureNames)
			assert.Equal(t, tt.labels, ds.Labels)
			assert.Equal(t, tt.features, ds.Features[0])
		})
	}
}

func TestReadCSVDelimiter(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("1;2\n3;4\n"), WithComma(';'))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, ds.Labels)
}

func TestReadCSVRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts []Option
		want string
	}{
		{name: "empty", data: "", want: "no records"},
		{name: "header only", data: "a,b\n", want: "no data rows"},
		{name: "ragged row", data: "1,2\n3\n", want: "wrong number of fields"},
		{name: "text in data", data: "a,b\n1,2\n3,x\n", want: "row 2 column 2"},
		{name: "label out of range", data: "1,2\n", opts: []Option{WithLabelColumn(5)}, want: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.data), tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	tmp := t.TempDir()
	path := testhelper.WriteFile(t, tmp, "iris.csv", irisSample)

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	rows, cols := ds.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	_, err = LoadCSV(filepath.Join(tmp, "missing.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	bad := testhelper.WriteFile(t, tmp, "bad.csv", "a,b\n")
	_, err = LoadCSV(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
