package life

// Next applies B3/S23 to a cell with n active neighbors: an active cell
// survives on 2 or 3, an inactive cell is born on exactly 3.
func Next(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}
