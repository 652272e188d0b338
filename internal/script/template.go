package script

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/entity"
)

// ParseTemplate reads an ASCII picture of a board. '.' is empty, 'x' is Cross, 'o' is Naught.
// The top-left character is (0, 0); plays come back in row-major order.
//
//	.x..
//	.x..
//	..o.
func ParseTemplate(template string) ([]entity.Play, error) {
	lines := strings.Split(strings.TrimRight(template, "\n"), "\n")

	width := -1
	var plays []entity.Play

	for row, line := range lines {
		line = strings.TrimSpace(line)

		rowWidth := utf8.RuneCountInString(line)
		if width == -1 {
			width = rowWidth
		}
		if rowWidth != width {
			return nil, fmt.Errorf("%w: row %d is %d wide, expected %d", apperror.ErrRaggedTemplate, row+1, rowWidth, width)
		}

		column := 0
		for _, char := range line {
			switch char {
			case '.':
			case 'x', 'X':
				plays = append(plays, entity.Play{Player: entity.Cross, At: entity.At(int64(column), int64(row))})
			case 'o', 'O':
				plays = append(plays, entity.Play{Player: entity.Naught, At: entity.At(int64(column), int64(row))})
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", apperror.ErrInvalidTemplate, char, row+1, column+1)
			}
			column++
		}
	}

	return plays, nil
}
