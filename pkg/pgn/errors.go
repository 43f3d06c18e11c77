package pgn

import "fmt"

// SyntaxErrorError reports malformed PGN text. The lexer emits one as a
// SyntaxErrorEvent and then transitions to its terminal error state,
// emitting no further events.
type SyntaxErrorError struct {
	Offset int // byte offset into the stream, best effort
	Reason string
}

func (e *SyntaxErrorError) Error() string {
	return fmt.Sprintf("pgn syntax error at offset %v: %v", e.Offset, e.Reason)
}

// IncompleteGameError reports that the stream ended mid-game: a tag
// section or movetext began but no termination marker appeared before
// EOF.
type IncompleteGameError struct{}

func (e *IncompleteGameError) Error() string {
	return "pgn: incomplete game (no termination marker before end of stream)"
}
