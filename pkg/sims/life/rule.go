package life

// RuleString names the rule in the notation used by RLE headers.
const RuleString = "B3/S23"

// Rule applies B3/S23: a live cell survives with two or three neighbors and a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
