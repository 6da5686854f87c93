// Command widgets-list scans persisted content and prints every occurrence
// of a widget type, one per line, as slug:dotPath. Intended for interactive
// debugging, not machine parsing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	widgets "github.com/goliatone/go-widgets"
	"github.com/goliatone/go-widgets/internal/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "content.db", "path to the SQLite content database")
	typeName := flag.String("type", "", "widget type name to list occurrences of")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if *typeName == "" {
		logger.Fatal().Msg("a widget type name is required (-type)")
	}

	st, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Fatal().Err(err).Str("db", *dbPath).Msg("open content database")
	}
	defer st.Close()

	ctx := context.Background()
	count := 0
	err = widgets.ListOccurrences(ctx, st, *typeName, func(slug, path string) error {
		count++
		_, err := fmt.Fprintf(os.Stdout, "%s:%s\n", slug, path)
		return err
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("list widget occurrences")
	}

	logger.Debug().Int("occurrences", count).Str("type", *typeName).Msg("scan complete")
}
