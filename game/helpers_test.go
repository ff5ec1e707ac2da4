package game

// boardFromRows builds a board from one string per X row, 'B' and 'W' for disks and
// any other character for an empty cell.
func boardFromRows(rows ...string) Board {
	var b Board
	for x, row := range rows {
		for y, c := range row {
			switch c {
			case 'B':
				b[x][y] = Black
			case 'W':
				b[x][y] = White
			}
		}
	}
	return b
}

func totalDisks(b Board) int {
	return b.Count(Black) + b.Count(White)
}
