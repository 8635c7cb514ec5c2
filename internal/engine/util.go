package engine

import "golang.org/x/exp/constraints"

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Ray directions as (file, rank) deltas.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightDirs   = [8][2]int{{-2, -1}, {-2, 1}, {2, -1}, {2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}}
	kingDirs     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)
