package types

// ------------------------
// Serial
// ------------------------

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

func (p Parity) MarshalJSON() ([]byte, error) { return []byte(`"` + p.String() + `"`), nil }

// SerialConfig describes a host serial port carrying the link. 8 data
// bits and one stop bit match the reference wiring.
type SerialConfig struct {
	Port     string `json:"port"`
	Baud     uint32 `json:"baud"`
	DataBits uint8  `json:"data_bits,omitempty"`
	StopBits uint8  `json:"stop_bits,omitempty"`
	Parity   Parity `json:"parity,omitempty"`
	RXSize   int    `json:"rx_size,omitempty"` // power of two; defaulted if zero
}
