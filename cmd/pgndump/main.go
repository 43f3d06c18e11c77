// pgndump counts the games found in each PGN file given on the command
// line, reporting any file that is not a regular file or that ends
// mid-game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rookwise/chesscore/pkg/pgn"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 0, 0)

func main() {
	ctx := context.Background()
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		logw.Exitf(ctx, "pgndump %v: no PGN files given", version)
	}

	var failed bool
	for _, path := range paths {
		if err := dump(ctx, path); err != nil {
			logw.Errorf(ctx, "%v: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open: %w", err)
	}
	defer f.Close()

	p := pgn.NewMoveParser(pgn.NewLexer(f))

	var count int
	for {
		moves, ok, err := p.NextGame(ctx)
		if err != nil {
			fmt.Printf("%v contains %v game(s), then: %v\n", path, count, err)
			return nil
		}
		if !ok {
			fmt.Printf("%v contains %v game(s).\n", path, count)
			return nil
		}
		count++
		logw.Debugf(ctx, "%v: game %v has %v move(s)", path, count, len(moves))
	}
}
