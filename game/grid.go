package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Cell is the content of a single square in a fixture grid.
type Cell byte

const (
	Empty      Cell = '-'
	BlackStone Cell = 'b'
	WhiteStone Cell = 'w'
)

// LoadGrid replaces the whole board with cells, indexed x + 8*y.
func (b *Board) LoadGrid(cells [BoardSize * BoardSize]Cell) {
	b.taken, b.black = 0, 0
	for i, c := range cells {
		x, y := i%BoardSize, i/BoardSize
		switch c {
		case BlackStone:
			b.Place(Black, x, y)
		case WhiteStone:
			b.Place(White, x, y)
		}
	}
}

// Grid reads the board back cell by cell.
func (b Board) Grid() [BoardSize * BoardSize]Cell {
	var cells [BoardSize * BoardSize]Cell
	for i := range cells {
		x, y := i%BoardSize, i/BoardSize
		switch {
		case b.ColorAt(Black, x, y):
			cells[i] = BlackStone
		case b.ColorAt(White, x, y):
			cells[i] = WhiteStone
		default:
			cells[i] = Empty
		}
	}
	return cells
}

// ParseGrid reads 64 cells written as 'b', 'w' and '-' (or '.'), row by row.
// Whitespace is ignored so fixtures can be laid out as an 8x8 block.
func ParseGrid(text string) (Board, error) {
	var cells [BoardSize * BoardSize]Cell
	n := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if n == len(cells) {
			return Board{}, fmt.Errorf("grid has more than %d cells", len(cells))
		}
		switch r {
		case 'b', 'B':
			cells[n] = BlackStone
		case 'w', 'W':
			cells[n] = WhiteStone
		case '-', '.':
			cells[n] = Empty
		default:
			return Board{}, fmt.Errorf("grid cell %d: unexpected %q", n, r)
		}
		n++
	}
	if n != len(cells) {
		return Board{}, fmt.Errorf("grid has %d cells, want %d", n, len(cells))
	}
	var b Board
	b.LoadGrid(cells)
	return b, nil
}

// MustParseGrid is ParseGrid for fixtures known to be well formed.
func MustParseGrid(text string) Board {
	b, err := ParseGrid(text)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) MarshalText() ([]byte, error) {
	cells := b.Grid()
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byte(c)
	}
	return out, nil
}

func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseGrid(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	cells := b.Grid()
	for y := 0; y < BoardSize; y++ {
		fmt.Fprintf(&sb, "%d", y+1)
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(' ')
			sb.WriteByte(byte(cells[x+BoardSize*y]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
