// Command evaluator compares a results file against a qrels file and
// prints the classical IR metrics table ("evaluator -p <corpus_root>").
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/comp3009j/ranksearch/internal/cliutil"
	"github.com/comp3009j/ranksearch/internal/corpus"
	"github.com/comp3009j/ranksearch/internal/eval"
)

func main() {
	root := flag.String("p", "", "Path to the corpus root")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `evaluator - compute IR metrics for a results file against qrels

Usage:
    evaluator -p /path/to/corpus_root

Reads <corpus_root>/<id>-<size>.results and
<corpus_root>/files/qrels.txt, prints a metrics table to stdout.
`)
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(*root, logger); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(root string, logger *slog.Logger) error {
	if err := cliutil.ResolveRoot(root); err != nil {
		return err
	}

	resultsPath := cliutil.OutputPath(root, corpus.DeriveBaseName(root)+".results")
	results, err := corpus.LoadResults(resultsPath)
	if err != nil {
		return err
	}

	qrelsPath, err := cliutil.ResolveFile(root, "files/qrels.txt")
	if err != nil {
		return err
	}
	qrels, err := corpus.LoadQrels(qrelsPath)
	if err != nil {
		return err
	}

	// Grade-0 qrels entries are dropped at load time (spec.md §4.5/§9),
	// so the judged-non-relevant set is always empty and BPref
	// degenerates; see internal/eval.BPref's doc comment.
	metrics := eval.All(results, qrels, nil)

	logger.Info("evaluation complete",
		"queries", len(results),
		"precision", metrics.Precision,
		"recall", metrics.Recall,
		"map", metrics.MAP,
	)

	fmt.Println("+----------Evaluation Metrics----------+")
	fmt.Printf("Precision: %.3f\n", metrics.Precision)
	fmt.Printf("Recall: %.3f\n", metrics.Recall)
	fmt.Printf("R-Precision: %.3f\n", metrics.RPrecision)
	fmt.Printf("P@15: %.3f\n", metrics.PAt15)
	fmt.Printf("MAP: %.3f\n", metrics.MAP)
	fmt.Printf("NDCG@15: %.3f\n", metrics.NDCGAt15)
	fmt.Printf("bpref: %.3f\n", metrics.BPref)

	return nil
}
