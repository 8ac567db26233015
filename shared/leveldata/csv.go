package leveldata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadGrid parses one comma separated layer. Every row must have the same
// number of fields.
func ReadGrid(r io.Reader) (Grid, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	grid := make(Grid, 0, len(records))
	for i, rec := range records {
		row := make([]int, len(rec))
		for j, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			row[j] = v
		}
		grid = append(grid, row)
	}
	return grid, nil
}
