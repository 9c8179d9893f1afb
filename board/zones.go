package board

// Zone is one of the three fixed board regions used to localize metrics.
type Zone string

// The fixed zones, in the canonical aggregation order.
const (
	ZoneCenter    Zone = "center"
	ZoneKingside  Zone = "kingside"
	ZoneQueenside Zone = "queenside"
)

// Zones returns the three zones in canonical order. The slice is freshly
// allocated; callers may reorder their copy freely.
func Zones() []Zone {
	return []Zone{ZoneCenter, ZoneKingside, ZoneQueenside}
}

// ZoneOf classifies a square: the 4 central squares (d4, d5, e4, e5) form
// the center; remaining squares on files e..h are kingside, files a..d
// queenside.
func ZoneOf(c Coord) Zone {
	if (c.File == 3 || c.File == 4) && (c.Rank == 3 || c.Rank == 4) {
		return ZoneCenter
	}
	if c.File >= 4 {
		return ZoneKingside
	}

	return ZoneQueenside
}
