// Command indexer builds a BM25 inverted index from a corpus root
// ("indexer -p <corpus_root>") and writes it to <corpus_root>/<id>-<size>.index.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/comp3009j/ranksearch/internal/analyze"
	"github.com/comp3009j/ranksearch/internal/cliutil"
	"github.com/comp3009j/ranksearch/internal/config"
	"github.com/comp3009j/ranksearch/internal/corpus"
	"github.com/comp3009j/ranksearch/internal/index"
)

func main() {
	var (
		root       = flag.String("p", "", "Path to the corpus root")
		configPath = flag.String("config", "", "Path to configuration file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `indexer - build a BM25 inverted index over a document corpus

Usage:
    indexer -p /path/to/corpus_root [-config path]

Reads <corpus_root>/documents/* and <corpus_root>/files/stopwords.txt,
writes <corpus_root>/<id>-<size>.index.
`)
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(*root, *configPath, logger); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(root, configPath string, logger *slog.Logger) error {
	start := time.Now()

	if err := cliutil.ResolveRoot(root); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	stopwordsPath, err := cliutil.ResolveFile(root, "files/stopwords.txt")
	if err != nil {
		return err
	}
	stopwords, err := corpus.LoadStopwords(stopwordsPath)
	if err != nil {
		return err
	}
	logger.Info("stopwords loaded", "count", len(stopwords))

	var rawDocs []corpus.RawDocument
	if cfg.Postgres.Enabled {
		rawDocs, err = corpus.LoadDocumentsFromPostgres(context.Background(), corpus.PostgresSource{
			Host:       cfg.Postgres.Host,
			Port:       cfg.Postgres.Port,
			Database:   cfg.Postgres.Database,
			Username:   cfg.Postgres.Username,
			Password:   cfg.Postgres.Password,
			SSLMode:    cfg.Postgres.SSLMode,
			Table:      cfg.Postgres.Table,
			IDColumn:   cfg.Postgres.IDColumn,
			TextColumn: cfg.Postgres.TextColumn,
		})
	} else {
		rawDocs, err = corpus.LoadDocuments(root)
	}
	if err != nil {
		return err
	}
	logger.Info("documents loaded", "count", len(rawDocs), "elapsed", time.Since(start))

	normalizer := analyze.New(analyze.NewStopwordSet(stopwords))
	docs := make([]index.Document, len(rawDocs))
	for i, d := range rawDocs {
		docs[i] = index.Document{ID: index.DocID(d.ID), Terms: normalizer.Normalize(d.Content)}
	}
	logger.Info("documents normalized", "elapsed", time.Since(start))

	idx := index.Build(docs, index.Params{K1: cfg.BM25.K1, B: cfg.BM25.B})
	logger.Info("index built", "terms", len(idx.Terms), "n", idx.N, "avgdl", idx.AvgDL, "elapsed", time.Since(start))

	outPath := cliutil.OutputPath(root, corpus.DeriveBaseName(root)+".index")
	if err := corpus.WriteIndexFile(outPath, idx); err != nil {
		return err
	}
	logger.Info("index written", "path", outPath, "elapsed", time.Since(start))

	return nil
}
