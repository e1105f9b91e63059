package visualize

import (
	"fmt"
	"math"

	"github.com/hepworks/fitstack/pkg/errors"
)

// CorrelationFigure is a pruned correlation matrix ready for rendering as a
// heatmap. Matrix is square with one row and label per remaining parameter.
type CorrelationFigure struct {
	Labels []string
	Matrix [][]float64
}

// CorrelationMatrix validates a correlation matrix and prunes parameters
// whose off-diagonal correlations all stay below minCorrelation in absolute
// value. Row and column order follows the input labels.
func CorrelationMatrix(matrix [][]float64, labels []string, minCorrelation float64) (*CorrelationFigure, error) {
	n := len(labels)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "correlation matrix has no parameters")
	}
	if len(matrix) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("correlation matrix has %d rows for %d labels", len(matrix), n))
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("correlation matrix row %d has %d entries, expected %d", i, len(row), n))
		}
	}

	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if math.Abs(matrix[i][j]) >= minCorrelation {
				keep = append(keep, i)
				break
			}
		}
	}
	if minCorrelation <= 0 {
		keep = keep[:0]
		for i := 0; i < n; i++ {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
			"no parameter passes the correlation threshold",
			map[string]any{"minCorrelation": minCorrelation})
	}

	fig := &CorrelationFigure{
		Labels: make([]string, len(keep)),
		Matrix: make([][]float64, len(keep)),
	}
	for ri, i := range keep {
		fig.Labels[ri] = labels[i]
		fig.Matrix[ri] = make([]float64, len(keep))
		for ci, j := range keep {
			fig.Matrix[ri][ci] = matrix[i][j]
		}
	}
	return fig, nil
}
