// Command query answers queries against a previously built BM25 index,
// either reading a queries file and writing a results file
// ("query -m automatic -p <corpus_root>") or prompting on stdin
// ("query -m interactive -p <corpus_root>").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/comp3009j/ranksearch/internal/analyze"
	"github.com/comp3009j/ranksearch/internal/cliutil"
	"github.com/comp3009j/ranksearch/internal/config"
	"github.com/comp3009j/ranksearch/internal/corpus"
	"github.com/comp3009j/ranksearch/internal/query"
)

func main() {
	var (
		mode       = flag.String("m", "", "Query mode: interactive or automatic")
		root       = flag.String("p", "", "Path to the corpus root")
		configPath = flag.String("config", "", "Path to configuration file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `query - rank documents against a BM25 index

Usage:
    query -m {interactive,automatic} -p /path/to/corpus_root [-config path]

automatic mode reads <corpus_root>/files/queries.txt and writes
<corpus_root>/<id>-<size>.results. interactive mode prompts on stdin and
prints ranked results to stdout.
`)
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(*mode, *root, *configPath, logger); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(mode, root, configPath string, logger *slog.Logger) error {
	if err := cliutil.ResolveRoot(root); err != nil {
		return err
	}
	if err := cliutil.ResolveMode(mode); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	indexPath := cliutil.OutputPath(root, corpus.DeriveBaseName(root)+".index")
	idx, err := corpus.ReadIndexFile(indexPath)
	if err != nil {
		return err
	}
	logger.Info("index loaded", "terms", len(idx.Terms), "n", idx.N, "k1", cfg.BM25.K1, "b", cfg.BM25.B)

	stopwordsPath, err := cliutil.ResolveFile(root, "files/stopwords.txt")
	if err != nil {
		return err
	}
	stopwords, err := corpus.LoadStopwords(stopwordsPath)
	if err != nil {
		return err
	}

	normalizer := analyze.New(analyze.NewStopwordSet(stopwords))
	engine := query.New(idx, normalizer)

	if mode == "interactive" {
		return runInteractive(engine)
	}
	return runAutomatic(engine, root, logger)
}

func runAutomatic(engine *query.Engine, root string, logger *slog.Logger) error {
	queriesPath, err := cliutil.ResolveFile(root, "files/queries.txt")
	if err != nil {
		return err
	}
	queries, err := corpus.LoadQueries(queriesPath)
	if err != nil {
		return err
	}

	outPath := cliutil.OutputPath(root, corpus.DeriveBaseName(root)+".results")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create results file %s: %w", outPath, err)
	}
	defer f.Close()

	for _, q := range queries {
		results := engine.Query(q.Text)
		if err := corpus.WriteAutomaticResults(f, q.ID, results); err != nil {
			return err
		}
	}
	logger.Info("results written", "path", outPath, "queries", len(queries))
	return nil
}

func runInteractive(engine *query.Engine) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Enter a query (empty line to quit):")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			break
		}

		results := engine.Query(text)
		if len(results) == 0 {
			fmt.Println("(no results)")
			continue
		}
		for i, r := range results {
			if err := corpus.WriteInteractiveResult(os.Stdout, i+1, r); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
