package snake

import "math/rand"

// maxFoodAttempts bounds the reject-and-resample loop before falling back
// to an explicit scan of free cells.
const maxFoodAttempts = 32

// FoodPlacer picks food cells uniformly from the board
type FoodPlacer struct {
	totalCells int
	intn       func(n int) int
}

// NewFoodPlacer draws from 1..totalCells using intn, or math/rand when intn is nil.
func NewFoodPlacer(totalCells int, intn func(n int) int) *FoodPlacer {
	if intn == nil {
		intn = rand.Intn
	}
	return &FoodPlacer{totalCells: totalCells, intn: intn}
}

// Place returns a cell for which occupied is false. It resamples a bounded
// number of times, then chooses among the remaining free cells, and returns
// ErrBoardFull when there are none.
func (p *FoodPlacer) Place(occupied func(index int) bool) (int, error) {
	for i := 0; i < maxFoodAttempts; i++ {
		cell := p.intn(p.totalCells) + 1
		if !occupied(cell) {
			return cell, nil
		}
	}

	free := make([]int, 0, p.totalCells)
	for cell := 1; cell <= p.totalCells; cell++ {
		if !occupied(cell) {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		return 0, ErrBoardFull
	}
	return free[p.intn(len(free))], nil
}
