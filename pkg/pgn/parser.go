package pgn

import (
	"context"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// MoveParser drives a Lexer and assembles the SAN moves of each game,
// discarding tag-pair metadata, comments and recursive alternatives. It
// implements Visitor itself.
type MoveParser struct {
	lex *Lexer

	altDepth    int
	currentMove lang.Optional[SanMove]
	termination lang.Optional[TerminationKind]
	syntaxErr   error

	game []SanMove
}

// NewMoveParser returns a MoveParser reading games from lex.
func NewMoveParser(lex *Lexer) *MoveParser {
	return &MoveParser{lex: lex}
}

// NextGame drives the lexer until a termination marker is observed
// (returning the game's SAN moves), EOF is reached cleanly between games
// (returning ok=false, err=nil), or EOF occurs mid-game (returning
// IncompleteGameError).
func (p *MoveParser) NextGame(ctx context.Context) (moves []SanMove, ok bool, err error) {
	p.game = nil
	p.currentMove = lang.None[SanMove]()
	p.termination = lang.None[TerminationKind]()
	p.altDepth = 0
	p.syntaxErr = nil

	sawEvent := false
	for {
		more, err := p.lex.Next(ctx, p)
		if err != nil {
			return nil, false, err
		}
		if p.syntaxErr != nil {
			return nil, false, p.syntaxErr
		}
		if more {
			sawEvent = true
		}

		if san, done := p.currentMove.V(); done {
			p.game = append(p.game, san)
			p.currentMove = lang.None[SanMove]()
		}
		if _, done := p.termination.V(); done {
			return p.game, true, nil
		}

		if !more {
			if !sawEvent {
				return nil, false, nil
			}
			logw.Errorf(ctx, "pgn move parser: stream ended mid-game after %v move(s)", len(p.game))
			return nil, false, &IncompleteGameError{}
		}
	}
}

func (p *MoveParser) VisitTagPairOpen()              {}
func (p *MoveParser) VisitTagPairName(name string)   {}
func (p *MoveParser) VisitTagPairValue(value string) {}
func (p *MoveParser) VisitTagPairClose()             {}
func (p *MoveParser) VisitMoveNumber(n int)          {}
func (p *MoveParser) VisitColourIndicator(c board.Color) {}

// VisitSanMove buffers the move, unless it belongs to an alternative line.
func (p *MoveParser) VisitSanMove(m SanMove) {
	if p.altDepth > 0 {
		return
	}
	p.currentMove = lang.Some(m)
}

func (p *MoveParser) VisitAlternativeOpen() {
	p.altDepth++
}

func (p *MoveParser) VisitAlternativeClose() {
	if p.altDepth > 0 {
		p.altDepth--
	}
}

// VisitTermination records the game's outcome, unless it belongs to an
// alternative line (a termination marker nested in `(...)` is discarded,
// not propagated).
func (p *MoveParser) VisitTermination(k TerminationKind) {
	if p.altDepth > 0 {
		return
	}
	p.termination = lang.Some(k)
}

func (p *MoveParser) VisitSyntaxError(err error) {
	p.syntaxErr = err
}
