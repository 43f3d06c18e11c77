// pgnvalidate reads one or more PGN files and reports, for each game
// found, whether its recorded moves resolve and apply cleanly against
// the standard starting position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rookwise/chesscore/pkg/pgn"
	"github.com/rookwise/chesscore/pkg/validate"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 0, 0)

func main() {
	ctx := context.Background()
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		logw.Exitf(ctx, "No PGN files given")
	}

	var failures int
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			logw.Errorf(ctx, "Could not open %v: %v", path, err)
			failures++
			continue
		}

		games, errs := validateFile(ctx, f)
		_ = f.Close()

		for i, result := range games {
			if result.Failure != nil {
				fmt.Printf("%v: game %v: %v\n", path, i+1, result.Failure)
				failures++
			}
		}
		for _, err := range errs {
			fmt.Printf("%v: %v\n", path, err)
			failures++
		}
		fmt.Printf("%v: %v game(s) checked\n", path, len(games))
	}

	if failures > 0 {
		logw.Exitf(ctx, "pgnvalidate %v: %v failure(s) found", version, failures)
	}
}

func validateFile(ctx context.Context, f *os.File) ([]validate.ValidationResult, []error) {
	lex := pgn.NewLexer(f)
	p := pgn.NewMoveParser(lex)

	var results []validate.ValidationResult
	var errs []error
	for {
		moves, ok, err := p.NextGame(ctx)
		if err != nil {
			errs = append(errs, err)
			return results, errs
		}
		if !ok {
			return results, errs
		}
		results = append(results, validate.Validate(ctx, moves))
	}
}
