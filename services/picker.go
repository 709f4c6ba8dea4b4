package services

import "math/rand/v2"

// TablePicker chooses one table number out of the free set. free is never empty.
type TablePicker interface {
	Pick(free []int) int
}

type TablePickerFunc func(free []int) int

func (f TablePickerFunc) Pick(free []int) int {
	return f(free)
}

type randomPicker struct {
	rnd *rand.Rand
}

// RandomPicker picks uniformly from the free set.
func RandomPicker() TablePicker {
	return randomPicker{}
}

// SeededPicker is RandomPicker with a fixed seed. Not safe for concurrent use.
func SeededPicker(seed uint64) TablePicker {
	return randomPicker{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (p randomPicker) Pick(free []int) int {
	if p.rnd != nil {
		return free[p.rnd.IntN(len(free))]
	}
	return free[rand.IntN(len(free))]
}
