package types

// Direction is the decoded stick position. Values are mutually exclusive.
type Direction uint8

const (
	Neutral Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "neutral"
	}
}

func (d Direction) MarshalJSON() ([]byte, error) { return []byte(`"` + d.String() + `"`), nil }

// ParseDirection accepts the String() spellings; anything else is Neutral.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "neutral", "":
		return Neutral, true
	}
	return Neutral, false
}
