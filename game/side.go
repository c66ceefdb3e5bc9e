package game

import "fmt"

// Side is the color of the player to move.
type Side int8

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// ParseSide reads "black"/"b" or "white"/"w".
func ParseSide(text string) (Side, error) {
	switch text {
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	case "white", "White", "WHITE", "w", "W":
		return White, nil
	}
	return Black, fmt.Errorf("unknown side %q", text)
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}
