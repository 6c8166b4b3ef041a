package board

import (
	"strings"

	"github.com/xaca/triviaboard-go/internal/model"
)

// Board wire format: 5 rows of 5 comma-separated "0"/"1" tokens joined
// by ";", row-major, zero-indexed. A "1" marks the cell answered.

// EmptyBoard returns the all-zero board string a fresh session starts with
func EmptyBoard() string {
	row := strings.Repeat("0,", model.BoardSize-1) + "0"
	rows := make([]string, model.BoardSize)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, ";")
}

// DecodeBoard parses a raw board string into the set of answered
// positions. The 5x5 shape is validated before any cell is interpreted;
// any other shape fails with ErrMalformedBoard.
func DecodeBoard(raw string) (map[model.Position]bool, error) {
	rows, err := splitBoard(raw)
	if err != nil {
		return nil, err
	}

	answered := make(map[model.Position]bool)
	for r, cells := range rows {
		for c, cell := range cells {
			if cell == "1" {
				answered[model.Position{Row: r, Col: c}] = true
			}
		}
	}
	return answered, nil
}

// patchCell returns a board string identical to raw except that the
// given cell is forced to "1". Additive only: no path resets a cell.
func patchCell(raw string, pos model.Position) (string, error) {
	rows, err := splitBoard(raw)
	if err != nil {
		return "", err
	}

	rows[pos.Row][pos.Col] = "1"

	joined := make([]string, len(rows))
	for i, cells := range rows {
		joined[i] = strings.Join(cells, ",")
	}
	return strings.Join(joined, ";"), nil
}

// splitBoard splits and shape-checks a raw board string
func splitBoard(raw string) ([][]string, error) {
	rows := strings.Split(raw, ";")
	if len(rows) != model.BoardSize {
		return nil, model.ErrMalformedBoard
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = strings.Split(row, ",")
		if len(cells[i]) != model.BoardSize {
			return nil, model.ErrMalformedBoard
		}
	}
	return cells, nil
}
