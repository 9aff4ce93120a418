package types

// Rounding selects how fractional results are resolved.
type Rounding uint8

const (
	RoundingDown Rounding = iota
	RoundingUp
)
