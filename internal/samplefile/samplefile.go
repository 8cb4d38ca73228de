// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplefile reads named sample collections, such as the
// prior or posterior draws of each model parameter, from CSV and XLSX
// files.
//
// Each column of the file is one collection. If any cell of the first
// row is not a number, that row is a header naming the columns;
// otherwise columns are named x, x2, x3 and so on. Empty cells are
// skipped, so columns may have different lengths.
package samplefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoData is returned for files or columns without any values.
var ErrNoData = errors.New("no sample values")

// ErrDuplicateName is returned when two columns share a name.
var ErrDuplicateName = errors.New("duplicate column name")

// Column is one named sample collection.
type Column struct {
	Name   string
	Values []float64
}

// Read reads the columns of the file at path. Files with an .xlsx
// extension are read from their first sheet; anything else is read
// as CSV.
func Read(path string) ([]Column, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cols, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

// ReadFrom reads CSV columns from r. Lines starting with # are
// ignored.
func ReadFrom(r io.Reader) ([]Column, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func readXLSX(path string) ([]Column, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheets[0], err)
	}
	cols, err := fromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

// fromRows converts rows of cells into columns.
func fromRows(rows [][]string) ([]Column, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	var names []string
	if isHeader(rows[0]) {
		names = rows[0]
		rows = rows[1:]
	}

	width := len(names)
	for _, row := range rows {
		width = max(width, len(row))
	}
	cols := make([]Column, width)
	seen := make(map[string]bool, width)
	for i := range cols {
		if i < len(names) && strings.TrimSpace(names[i]) != "" {
			cols[i].Name = strings.TrimSpace(names[i])
		} else {
			cols[i].Name = defaultName(i)
		}
		if seen[cols[i].Name] {
			return nil, fmt.Errorf("column %q: %w", cols[i].Name, ErrDuplicateName)
		}
		seen[cols[i].Name] = true
	}

	for r, row := range rows {
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", r+1, cols[i].Name, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d, column %q: non-finite value %s", r+1, cols[i].Name, cell)
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	for _, c := range cols {
		if len(c.Values) == 0 {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrNoData)
		}
	}
	return cols, nil
}

func isHeader(row []string) bool {
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return true
		}
	}
	return false
}

func defaultName(i int) string {
	if i == 0 {
		return "x"
	}
	return "x" + strconv.Itoa(i+1)
}

// Lookup returns the column named name.
func Lookup(cols []Column, name string) (Column, bool) {
	for _, c := range cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
