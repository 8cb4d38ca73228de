// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadFromHeader(t *testing.T) {
	cols, err := ReadFrom(strings.NewReader(`# posterior draws
tv, radio ,search
0.1,1,2
0.2,,3
0.3
`))
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Name: "tv", Values: []float64{0.1, 0.2, 0.3}},
		{Name: "radio", Values: []float64{1}},
		{Name: "search", Values: []float64{2, 3}},
	}, cols)

	c, ok := Lookup(cols, "search")
	require.True(t, ok)
	assert.Equal(t, []float64{2, 3}, c.Values)
	_, ok = Lookup(cols, "print")
	assert.False(t, ok)
}

func TestReadFromNoHeader(t *testing.T) {
	cols, err := ReadFrom(strings.NewReader("1.5\n-2\n3e2\n"))
	require.NoError(t, err)
	assert.Equal(t, []Column{{Name: "x", Values: []float64{1.5, -2, 300}}}, cols)

	cols, err = ReadFrom(strings.NewReader("1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, "x", cols[0].Name)
	assert.Equal(t, "x2", cols[1].Name)
	assert.Equal(t, "x3", cols[2].Name)
	assert.Equal(t, []float64{3, 6}, cols[2].Values)
}

func TestReadFromErrors(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"empty", ""},
		{"header only", "a,b\n"},
		{"empty column", "a,b\n1,\n2,\n"},
		{"bad cell", "a\n1\nabc\n"},
		{"nan", "a\n1\nNaN\n"},
		{"inf", "1\n+Inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFrom(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := ReadFrom(strings.NewReader("a,b\n1,\n"))
	assert.ErrorIs(t, err, ErrNoData)

	_, err = ReadFrom(strings.NewReader("tv,radio, tv\n1,2,3\n"))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.ErrorContains(t, err, `"tv"`)
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prior.csv")
	require.NoError(t, os.WriteFile(path, []byte("tv\n1\n2\n"), 0o644))
	cols, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []Column{{Name: "tv", Values: []float64{1, 2}}}, cols)

	_, err = Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	cells := [][]any{
		{"tv", "radio"},
		{0.5, 1.0},
		{0.25, nil},
		{0.75, 3.0},
	}
	for r, row := range cells {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "posterior.xlsx")
	require.NoError(t, f.SaveAs(path))

	cols, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Name: "tv", Values: []float64{0.5, 0.25, 0.75}},
		{Name: "radio", Values: []float64{1, 3}},
	}, cols)
}
