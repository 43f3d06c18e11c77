// Package pgn implements a streaming lexer and move parser for Portable
// Game Notation text: tag pairs, movetext, SAN tokens, comments,
// numeric annotation glyphs, recursive alternatives and termination
// markers.
package pgn

import (
	"fmt"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TerminationKind classifies a PGN game-termination marker.
type TerminationKind uint8

const (
	InProgress TerminationKind = iota
	WhiteWin
	BlackWin
	Draw
)

func (k TerminationKind) String() string {
	switch k {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// SanMove is a single parsed SAN token, disambiguation fields left unset
// (None) where the token did not specify them.
type SanMove struct {
	DestFile, DestRank lang.Optional[int]
	SrcFile, SrcRank   lang.Optional[int]
	PieceKind          board.Kind // defaults to board.Pawn
	Promotion          lang.Optional[board.Kind]
	Capture            bool
	Check              bool
	Checkmate          bool
	KingSideCastle     bool
	QueenSideCastle    bool
	Text               string // verbatim source token, for diagnostics
}

func (m SanMove) String() string {
	return m.Text
}

// EventKind tags the variant held by an Event.
type EventKind uint8

const (
	TagPairOpen EventKind = iota
	TagPairName
	TagPairValue
	TagPairClose
	MoveNumber
	ColourIndicator
	SanMoveEvent
	AlternativeOpen
	AlternativeClose
	TerminationMarker
	SyntaxErrorEvent
)

// Event is one lexical unit produced by the Lexer. Only the fields
// relevant to Kind are populated.
type Event struct {
	Kind        EventKind
	Text        string          // TagPairName / TagPairValue
	Number      int             // MoveNumber
	Colour      board.Color     // ColourIndicator
	San         SanMove         // SanMoveEvent
	Termination TerminationKind // TerminationMarker
	Err         error           // SyntaxErrorEvent
}

func (e Event) String() string {
	switch e.Kind {
	case TagPairName, TagPairValue:
		return fmt.Sprintf("%v(%q)", e.Kind, e.Text)
	case MoveNumber:
		return fmt.Sprintf("MoveNumber(%v)", e.Number)
	case ColourIndicator:
		return fmt.Sprintf("ColourIndicator(%v)", e.Colour)
	case SanMoveEvent:
		return fmt.Sprintf("SanMove(%v)", e.San)
	case TerminationMarker:
		return fmt.Sprintf("Termination(%v)", e.Termination)
	case SyntaxErrorEvent:
		return fmt.Sprintf("SyntaxError(%v)", e.Err)
	default:
		return e.Kind.String()
	}
}

func (k EventKind) String() string {
	switch k {
	case TagPairOpen:
		return "TagPairOpen"
	case TagPairName:
		return "TagPairName"
	case TagPairValue:
		return "TagPairValue"
	case TagPairClose:
		return "TagPairClose"
	case MoveNumber:
		return "MoveNumber"
	case ColourIndicator:
		return "ColourIndicator"
	case SanMoveEvent:
		return "SanMove"
	case AlternativeOpen:
		return "AlternativeOpen"
	case AlternativeClose:
		return "AlternativeClose"
	case TerminationMarker:
		return "TerminationMarker"
	case SyntaxErrorEvent:
		return "SyntaxError"
	default:
		return "?"
	}
}

// Visitor receives one callback per Event kind, in emission order. Each
// callback gets the relevant Event field by value, never the Event itself.
type Visitor interface {
	VisitTagPairOpen()
	VisitTagPairName(name string)
	VisitTagPairValue(value string)
	VisitTagPairClose()
	VisitMoveNumber(n int)
	VisitColourIndicator(c board.Color)
	VisitSanMove(m SanMove)
	VisitAlternativeOpen()
	VisitAlternativeClose()
	VisitTermination(k TerminationKind)
	VisitSyntaxError(err error)
}

// dispatch invokes the Visitor method matching e.Kind.
func dispatch(v Visitor, e Event) {
	switch e.Kind {
	case TagPairOpen:
		v.VisitTagPairOpen()
	case TagPairName:
		v.VisitTagPairName(e.Text)
	case TagPairValue:
		v.VisitTagPairValue(e.Text)
	case TagPairClose:
		v.VisitTagPairClose()
	case MoveNumber:
		v.VisitMoveNumber(e.Number)
	case ColourIndicator:
		v.VisitColourIndicator(e.Colour)
	case SanMoveEvent:
		v.VisitSanMove(e.San)
	case AlternativeOpen:
		v.VisitAlternativeOpen()
	case AlternativeClose:
		v.VisitAlternativeClose()
	case TerminationMarker:
		v.VisitTermination(e.Termination)
	case SyntaxErrorEvent:
		v.VisitSyntaxError(e.Err)
	}
}
