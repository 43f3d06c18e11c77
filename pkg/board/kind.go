package board

// Kind represents the kind of chess piece occupying a square, or the
// absence of one. 3 bits.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

const (
	ZeroKind Kind = Pawn
	NumKinds Kind = King + 1
)

// ParseKind parses an uppercase piece letter, as used in SAN and FEN. 'P'
// is accepted for pawn, matching the PGN SAN grammar.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'P':
		return Pawn, true
	case 'R':
		return Rook, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return Empty, false
	}
}

// IsPromotable returns true iff the kind is a valid promotion choice: rook,
// knight, bishop or queen.
func (k Kind) IsPromotable() bool {
	switch k {
	case Rook, Knight, Bishop, Queen:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case Pawn:
		return "P"
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// PromotionKinds are the four pieces a pawn may promote to, in the fixed
// order the move generator emits them.
var PromotionKinds = [4]Kind{Rook, Knight, Bishop, Queen}
