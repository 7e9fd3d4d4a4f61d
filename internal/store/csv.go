package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// table is a parsed CSV file with lower-cased headers. Source CSVs arrive
// with inconsistent header casing (PLAYER vs star_player), so all column
// lookups go through the normalized header index.
type table struct {
	source  string
	columns map[string]int
	rows    [][]string
}

// readTable parses a CSV file and validates that every required column is
// present. Column matching is case-insensitive; missing optional columns are
// simply absent from the index.
func readTable(path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, record)
	}

	return &table{source: path, columns: columns, rows: rows}, nil
}

// has reports whether an optional column exists.
func (t *table) has(column string) bool {
	_, ok := t.columns[column]
	return ok
}

// str returns the trimmed cell value for a column, or "" when the column is
// absent from the file.
func (t *table) str(row int, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][idx])
}

func (t *table) float(row int, column string) (float64, error) {
	raw := t.str(row, column)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d column %s: invalid number %q", row+2, column, raw)
	}
	return v, nil
}

func (t *table) int(row int, column string) (int, error) {
	raw := t.str(row, column)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("row %d column %s: invalid integer %q", row+2, column, raw)
	}
	return v, nil
}

// optFloat returns a nullable float for columns where blank cells are
// allowed (tendency metrics on partial rows).
func (t *table) optFloat(row int, column string) (*float64, error) {
	raw := t.str(row, column)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("row %d column %s: invalid number %q", row+2, column, raw)
	}
	return &v, nil
}

// madeFlag parses the shot made flag, accepting the 0/1 encoding of the
// source export.
func (t *table) madeFlag(row int, column string) (bool, error) {
	switch t.str(row, column) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("row %d column %s: invalid made flag %q", row+2, column, t.str(row, column))
	}
}
