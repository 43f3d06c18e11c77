package pgn

import (
	"strings"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// decodeSAN classifies a single movetext word as a SAN move, reading
// right-to-left: check/mate suffix, then promotion suffix, then
// castling/destination square, then capture flag, then disambiguation,
// then the leading piece letter.
func decodeSAN(tok string) (SanMove, error) {
	orig := tok
	m := SanMove{Text: orig, PieceKind: board.Pawn}

	if tok == "" {
		return SanMove{}, &SyntaxErrorError{Reason: "empty SAN token"}
	}

	if tok[len(tok)-1] == '+' {
		m.Check = true
		tok = tok[:len(tok)-1]
	} else if tok[len(tok)-1] == '#' {
		m.Checkmate = true
		tok = tok[:len(tok)-1]
	}

	if idx := strings.LastIndexByte(tok, '='); idx != -1 {
		if idx != len(tok)-2 {
			return SanMove{}, &SyntaxErrorError{Reason: "malformed promotion suffix in `" + orig + "`"}
		}
		kind, ok := board.ParseKind(upper(tok[idx+1]))
		if !ok || !kind.IsPromotable() {
			return SanMove{}, &SyntaxErrorError{Reason: "invalid promotion piece in `" + orig + "`"}
		}
		m.Promotion = lang.Some(kind)
		tok = tok[:idx]
	}

	switch tok {
	case "O-O-O", "0-0-0":
		m.QueenSideCastle = true
		return m, nil
	case "O-O", "0-0":
		m.KingSideCastle = true
		return m, nil
	}

	if len(tok) < 2 {
		return SanMove{}, &SyntaxErrorError{Reason: "SAN token too short: `" + orig + "`"}
	}

	rankCh := tok[len(tok)-1]
	fileCh := tok[len(tok)-2]
	if !isRankDigit(rankCh) || !isFileLetter(fileCh) {
		return SanMove{}, &SyntaxErrorError{Reason: "malformed destination square in `" + orig + "`"}
	}
	m.DestFile = lang.Some(int(fileCh - 'a'))
	m.DestRank = lang.Some(int(rankCh - '1'))
	tok = tok[:len(tok)-2]

	if tok != "" && tok[len(tok)-1] == 'x' {
		m.Capture = true
		tok = tok[:len(tok)-1]
	}

	if tok != "" {
		c := tok[0]
		if c >= 'A' && c <= 'Z' {
			kind, ok := board.ParseKind(rune(c))
			if !ok {
				return SanMove{}, &SyntaxErrorError{Reason: "unknown piece letter in `" + orig + "`"}
			}
			m.PieceKind = kind
			tok = tok[1:]
		}
	}

	switch len(tok) {
	case 0:
		// no disambiguation
	case 1:
		c := tok[0]
		if isFileLetter(c) {
			m.SrcFile = lang.Some(int(c - 'a'))
		} else if isRankDigit(c) {
			m.SrcRank = lang.Some(int(c - '1'))
		} else {
			return SanMove{}, &SyntaxErrorError{Reason: "malformed disambiguation in `" + orig + "`"}
		}
	case 2:
		if !isFileLetter(tok[0]) || !isRankDigit(tok[1]) {
			return SanMove{}, &SyntaxErrorError{Reason: "malformed disambiguation in `" + orig + "`"}
		}
		m.SrcFile = lang.Some(int(tok[0] - 'a'))
		m.SrcRank = lang.Some(int(tok[1] - '1'))
	default:
		return SanMove{}, &SyntaxErrorError{Reason: "malformed SAN token `" + orig + "`"}
	}

	return m, nil
}

func isFileLetter(c byte) bool { return c >= 'a' && c <= 'h' }
func isRankDigit(c byte) bool  { return c >= '1' && c <= '8' }

func upper(c byte) rune {
	if c >= 'a' && c <= 'z' {
		return rune(c - ('a' - 'A'))
	}
	return rune(c)
}
