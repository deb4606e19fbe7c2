package frontier

// Popcount exposes the bitset population count to the external tests.
func Popcount(s State) int { return s.popcount() }
