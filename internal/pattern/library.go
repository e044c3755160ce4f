package pattern

func init() {
	Register("block", fixed(`
OO
OO`))
	Register("blinker", fixed(`
OOO`))
	Register("glider", fixed(`
.O.
..O
OOO`))
	Register("lwss", fixed(`
.O..O
O....
O...O
OOOO.`))
	Register("r-pentomino", fixed(`
.OO
OO.
.O.`))
	Register("acorn", fixed(`
.O.....
...O...
OO..OOO`))
	Register("gosper-gun", fixed(`
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`))
	Register("soup", Soup)
}
