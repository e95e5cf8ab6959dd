package stats

import "strings"

// Position is one of the five canonical lineup slots.
type Position string

const (
	PositionBase     Position = "Base"
	PositionEscolta  Position = "Escolta"
	PositionAlero    Position = "Alero"
	PositionAlaPivot Position = "Ala-Pivot"
	PositionPivot    Position = "Pivot"
)

// Positions lists the canonical slots in lineup order.
var Positions = []Position{
	PositionBase,
	PositionEscolta,
	PositionAlero,
	PositionAlaPivot,
	PositionPivot,
}

// ParsePosition validates a slot name as-is.
func ParsePosition(s string) (Position, bool) {
	for _, p := range Positions {
		if s == string(p) {
			return p, true
		}
	}
	return "", false
}

// PrincipalPosition extracts the principal slot from a free-text position
// string: the substring before the first "/", trimmed, matched
// case-sensitively against the canonical slots. "Alero/Escolta" -> Alero.
// Returns false when nothing matches.
func PrincipalPosition(s string) (Position, bool) {
	principal, _, _ := strings.Cut(s, "/")
	return ParsePosition(strings.TrimSpace(principal))
}
