package computer

import "math/rand"

var computerNames = []string{
	"BESM", "DeathStation 9000", "ENIAC", "ILLIAC", "MANIAC I", "OPREMA",
	"PDP-11", "TRADIC", "WEIZAC", "Zuse Z1",
}

// NamePicker hands out computer names. Two consecutive picks always differ,
// so two computer players in one game are told apart.
type NamePicker struct {
	rng  *rand.Rand
	prev int
}

// NewNamePicker returns a picker whose sequence is fixed by seed.
func NewNamePicker(seed int64) *NamePicker {
	return &NamePicker{rng: rand.New(rand.NewSource(seed)), prev: -1}
}

// Pick returns the next name.
func (n *NamePicker) Pick() string {
	i := n.rng.Intn(len(computerNames))
	for i == n.prev {
		i = n.rng.Intn(len(computerNames))
	}
	n.prev = i
	return computerNames[i]
}
