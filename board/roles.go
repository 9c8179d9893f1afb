package board

// Role is a chess-theoretic pawn classification.
type Role string

// Pawn roles. A pawn may carry several at once (e.g. isolated and passed).
const (
	RoleIsolated    Role = "isolated"
	RolePassed      Role = "passed"
	RoleChainMember Role = "chain_member"
	RoleBackward    Role = "backward"
)

// PawnRoles classifies the pawn on c. It returns nil when c does not hold
// a pawn. Rules:
//
//   - isolated:     no friendly pawn on an adjacent file
//   - passed:       no enemy pawn ahead on the same or an adjacent file
//   - chain_member: diagonally supported by a friendly pawn from behind
//   - backward:     no friendly pawn on an adjacent file at the same rank
//     or ahead of it
func PawnRoles(p *Position, c Coord) []Role {
	pi, ok := p.PieceAt(c)
	if !ok || !pi.IsPawn() {
		return nil
	}
	forward := 1
	if pi.Color == Black {
		forward = -1
	}

	var (
		roles    []Role
		isolated = true
		passed   = true
		backward = true
	)
	for _, other := range AllCoords() {
		if other == c {
			continue
		}
		opi, occupied := p.PieceAt(other)
		if !occupied || !opi.IsPawn() {
			continue
		}
		adjacentFile := abs(other.File-c.File) == 1
		sameOrAdjacent := abs(other.File-c.File) <= 1
		ahead := forward*(other.Rank-c.Rank) > 0
		if opi.Color == pi.Color {
			if adjacentFile {
				isolated = false
				if forward*(other.Rank-c.Rank) >= 0 {
					backward = false
				}
			}
		} else if sameOrAdjacent && ahead {
			passed = false
		}
	}
	if isolated {
		roles = append(roles, RoleIsolated)
	}
	if passed {
		roles = append(roles, RolePassed)
	}
	if chainMember(p, c, pi.Color, forward) {
		roles = append(roles, RoleChainMember)
	}
	if backward {
		roles = append(roles, RoleBackward)
	}

	return roles
}

// chainMember reports whether a friendly pawn defends c from behind.
func chainMember(p *Position, c Coord, color Color, forward int) bool {
	for _, df := range []int{-1, 1} {
		behind := Coord{File: c.File + df, Rank: c.Rank - forward}
		if !behind.InBounds() {
			continue
		}
		pi, ok := p.PieceAt(behind)
		if ok && pi.IsPawn() && pi.Color == color {
			return true
		}
	}

	return false
}
