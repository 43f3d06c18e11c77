package pgn

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/seekerror/logw"
)

// lexState is the explicit state the lexer advances through. Kept as an
// enum with per-state handling rather than regex: the escape handling in
// tag values and the comment/EOF interaction do not regex cleanly.
type lexState uint8

const (
	stateExpectTagOpenOrMovetext lexState = iota
	stateExpectTagName
	stateExpectTagValue
	stateExpectTagClose
	stateExpectColourIndicator
	stateExpectMovetext
	stateError
	stateDone
)

// Lexer turns a PGN byte stream into a sequence of Events, one per call
// to Next. It is a cooperative state machine: Next consumes whitespace,
// comments and numeric annotation glyphs internally (these produce no
// event) until it can emit exactly one lexical unit, or the stream ends.
type Lexer struct {
	r      *bufio.Reader
	state  lexState
	offset int

	// pendingDots carries the dot-run length read while still in
	// stateExpectMovetext, consumed by the following call once the
	// machine has advanced to stateExpectColourIndicator.
	pendingDots int
}

// NewLexer returns a Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), state: stateExpectTagOpenOrMovetext}
}

// Next produces the next Event and dispatches it to v, returning true.
// It returns false once the stream is exhausted with no more events to
// produce. A non-nil error indicates a stream I/O failure (not a PGN
// syntax error, which is reported as a SyntaxErrorEvent instead).
func (l *Lexer) Next(ctx context.Context, v Visitor) (bool, error) {
	for {
		switch l.state {
		case stateDone, stateError:
			return false, nil
		}

		l.skipWhitespace()

		c, ok, err := l.peek()
		if err != nil {
			return false, err
		}
		if !ok {
			l.state = stateDone
			return false, nil
		}

		switch l.state {
		case stateExpectTagOpenOrMovetext:
			if c == '[' {
				l.readByte()
				l.state = stateExpectTagName
				dispatch(v, Event{Kind: TagPairOpen})
				return true, nil
			}
			l.state = stateExpectMovetext
			continue

		case stateExpectTagName:
			name, err := l.readTagName()
			if err != nil {
				return l.fail(ctx, v, err.Error())
			}
			l.state = stateExpectTagValue
			dispatch(v, Event{Kind: TagPairName, Text: name})
			return true, nil

		case stateExpectTagValue:
			value, err := l.readTagValue()
			if err != nil {
				return l.fail(ctx, v, err.Error())
			}
			l.state = stateExpectTagClose
			dispatch(v, Event{Kind: TagPairValue, Text: value})
			return true, nil

		case stateExpectTagClose:
			if c != ']' {
				return l.fail(ctx, v, "expected ']' closing tag pair")
			}
			l.readByte()
			l.state = stateExpectTagOpenOrMovetext
			dispatch(v, Event{Kind: TagPairClose})
			return true, nil

		case stateExpectColourIndicator:
			colour, err := l.readColourIndicator()
			if err != nil {
				return l.fail(ctx, v, err.Error())
			}
			l.state = stateExpectMovetext
			dispatch(v, Event{Kind: ColourIndicator, Colour: colour})
			return true, nil

		case stateExpectMovetext:
			produced, more, err := l.stepMovetext(v, c)
			if err != nil {
				return l.fail(ctx, v, err.Error())
			}
			if produced {
				return true, nil
			}
			if !more {
				continue // comment/NAG discarded; loop for the next real token
			}
		}
	}
}

func (l *Lexer) fail(ctx context.Context, v Visitor, reason string) (bool, error) {
	l.state = stateError
	err := &SyntaxErrorError{Offset: l.offset, Reason: reason}
	logw.Errorf(ctx, "pgn lexer: %v", err)
	dispatch(v, Event{Kind: SyntaxErrorEvent, Err: err})
	return true, nil
}

// stepMovetext handles one movetext-state decision. produced=true means
// an event was dispatched and Next should return; produced=false with
// more=false means a comment/NAG/whitespace was discarded and the caller
// should loop for an actual token.
func (l *Lexer) stepMovetext(v Visitor, c byte) (produced bool, more bool, err error) {
	switch {
	case c == '{':
		if err := l.skipComment(); err != nil {
			return false, false, err
		}
		return false, false, nil

	case c == '$':
		l.skipNAG()
		return false, false, nil

	case c == '(':
		l.readByte()
		dispatch(v, Event{Kind: AlternativeOpen})
		return true, true, nil

	case c == ')':
		l.readByte()
		dispatch(v, Event{Kind: AlternativeClose})
		return true, true, nil

	case isDigit(c):
		return l.stepDigitLed(v)

	default:
		tok, err := l.readRun()
		if err != nil {
			return false, false, err
		}
		ev, err := classifyToken(tok)
		if err != nil {
			return false, false, err
		}
		if ev.Kind == TerminationMarker {
			l.state = stateExpectTagOpenOrMovetext
		}
		dispatch(v, ev)
		return true, true, nil
	}
}

// stepDigitLed handles a token beginning with a digit: either a move
// number (digits immediately followed by one or more '.') or a
// termination marker / syntax error (e.g. "1-0", "1/2-1/2").
func (l *Lexer) stepDigitLed(v Visitor) (bool, bool, error) {
	digits := l.readWhile(isDigit)

	c, ok, err := l.peek()
	if err != nil {
		return false, false, err
	}
	if ok && c == '.' {
		l.readByte()
		dots := 1
		for {
			c, ok, err := l.peek()
			if err != nil {
				return false, false, err
			}
			if !ok || c != '.' {
				break
			}
			l.readByte()
			dots++
		}

		n := atoi(digits)
		l.pendingDots = dots
		l.state = stateExpectColourIndicator
		dispatch(v, Event{Kind: MoveNumber, Number: n})
		return true, true, nil
	}

	// Not a move number: re-read the rest of the run and classify as a
	// termination marker (e.g. "1-0") or syntax error.
	rest, err := l.readRun()
	if err != nil {
		return false, false, err
	}
	tok := digits + rest
	ev, err := classifyToken(tok)
	if err != nil {
		return false, false, err
	}
	if ev.Kind == TerminationMarker {
		l.state = stateExpectTagOpenOrMovetext
	}
	dispatch(v, ev)
	return true, true, nil
}

func (l *Lexer) readColourIndicator() (board.Color, error) {
	switch l.pendingDots {
	case 1:
		return board.White, nil
	case 3:
		return board.Black, nil
	default:
		return 0, &SyntaxErrorError{Offset: l.offset, Reason: "move number must be followed by '.' or '...'"}
	}
}

// classifyToken recognizes a movetext word as a termination marker or a
// SAN move; an unrecognized shape is a syntax error.
func classifyToken(tok string) (Event, error) {
	switch tok {
	case "1-0":
		return Event{Kind: TerminationMarker, Termination: WhiteWin}, nil
	case "0-1":
		return Event{Kind: TerminationMarker, Termination: BlackWin}, nil
	case "1/2-1/2":
		return Event{Kind: TerminationMarker, Termination: Draw}, nil
	case "*":
		return Event{Kind: TerminationMarker, Termination: InProgress}, nil
	}
	san, err := decodeSAN(tok)
	if err != nil {
		return Event{}, err
	}
	return Event{Kind: SanMoveEvent, San: san}, nil
}

func (l *Lexer) skipComment() error {
	l.readByte() // '{'
	for {
		c, ok, err := l.readByteChecked()
		if err != nil {
			return err
		}
		if !ok {
			return &SyntaxErrorError{Offset: l.offset, Reason: "unterminated comment"}
		}
		if c == '}' {
			return nil
		}
	}
}

func (l *Lexer) skipNAG() {
	l.readByte() // '$'
	l.readWhile(isDigit)
}

func (l *Lexer) readTagName() (string, error) {
	name := l.readWhile(func(c byte) bool {
		return c == '_' || isDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
	})
	if name == "" {
		return "", &SyntaxErrorError{Offset: l.offset, Reason: "expected tag pair name"}
	}
	return name, nil
}

func (l *Lexer) readTagValue() (string, error) {
	l.skipWhitespace()
	c, ok, err := l.peek()
	if err != nil {
		return "", err
	}
	if !ok || c != '"' {
		return "", &SyntaxErrorError{Offset: l.offset, Reason: "expected opening '\"' for tag value"}
	}
	l.readByte()

	var sb strings.Builder
	for {
		c, ok, err := l.readByteChecked()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &SyntaxErrorError{Offset: l.offset, Reason: "unterminated tag value"}
		}
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			next, ok, err := l.readByteChecked()
			if err != nil {
				return "", err
			}
			if !ok {
				return "", &SyntaxErrorError{Offset: l.offset, Reason: "unterminated escape in tag value"}
			}
			if next != '\\' && next != '"' {
				return "", &SyntaxErrorError{Offset: l.offset, Reason: "invalid escape in tag value"}
			}
			sb.WriteByte(next)
		case '\n', ']':
			return "", &SyntaxErrorError{Offset: l.offset, Reason: "unescaped newline or ']' in tag value"}
		default:
			sb.WriteByte(c)
		}
	}
}

// readRun reads a maximal run of non-whitespace, non-paren, non-brace
// characters: a candidate SAN/termination token.
func (l *Lexer) readRun() (string, error) {
	return l.readWhile(func(c byte) bool {
		return !isSpace(c) && c != '(' && c != ')' && c != '{' && c != '}'
	}), nil
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	var sb strings.Builder
	for {
		c, ok, err := l.peek()
		if err != nil || !ok || !pred(c) {
			break
		}
		l.readByte()
		sb.WriteByte(c)
	}
	return sb.String()
}

func (l *Lexer) skipWhitespace() {
	for {
		c, ok, err := l.peek()
		if err != nil || !ok || !isSpace(c) {
			return
		}
		l.readByte()
	}
}

func (l *Lexer) peek() (byte, bool, error) {
	b, err := l.r.Peek(1)
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b[0], true, nil
}

func (l *Lexer) readByte() {
	_, _ = l.r.ReadByte()
	l.offset++
}

func (l *Lexer) readByteChecked() (byte, bool, error) {
	c, err := l.r.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	l.offset++
	return c, true, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
