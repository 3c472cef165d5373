package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/tsawler/lexis"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	base, err := envConfig()
	if err != nil {
		newLogger(stderr, "info", "text").Error("load config", "error", err)
		return 2
	}

	fs := flag.NewFlagSet("lexis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := parseFlags(fs, args, base)
	if err != nil {
		newLogger(stderr, base.LogLevel, base.LogFormat).Error("parse flags", "error", err)
		return 2
	}

	logger := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	if cfg.Schema != "" {
		if err := writeSchema(stdout, cfg.Schema); err != nil {
			logger.Error("write schema", "error", err)
			return 1
		}
		return 0
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		logger.Error("build analyzer", "error", err)
		return 1
	}

	if cfg.TextPath != "" {
		text, err := readText(cfg.TextPath, stdin)
		if err != nil {
			logger.Error("read text", "path", cfg.TextPath, "error", err)
			return 1
		}
		report := analyzer.Analyze(text)
		logger.Info("analyzed text",
			"path", cfg.TextPath,
			"tokens", report.Tokens,
			"unique", report.Unique,
			"sentiment", report.Sentiment.Label)
		if err := writeOutput(stdout, cfg.Format, report); err != nil {
			logger.Error("write report", "error", err)
			return 1
		}
		return 0
	}

	docs, err := readPosts(cfg.PostsPath, stdin)
	if err != nil {
		logger.Error("read posts", "path", cfg.PostsPath, "error", err)
		return 1
	}
	assigned := ensureIDs(docs)
	report := analyzer.AnalyzeCollection(docs)
	logger.Info("mined patterns",
		"path", cfg.PostsPath,
		"documents", report.Documents,
		"generated_ids", assigned,
		"patterns", len(report.Patterns))
	if err := writeOutput(stdout, cfg.Format, report); err != nil {
		logger.Error("write report", "error", err)
		return 1
	}
	return 0
}

func buildAnalyzer(cfg Config) (*lexis.Analyzer, error) {
	patterns := lexis.DefaultPatternConfig()
	patterns.Limit = cfg.PatternLimit

	opts := []lexis.AnalyzerOpt{
		lexis.WithTopTerms(cfg.TopTerms),
		lexis.WithPatternConfig(patterns),
		lexis.WithStopWords(cfg.StopWords),
	}
	if cfg.LexiconPath != "" {
		lexicon, err := lexis.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lexis.UsingLexicon(lexicon))
	}
	return lexis.NewAnalyzer(opts...), nil
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func readText(path string, stdin io.Reader) (string, error) {
	f, err := openInput(path, stdin)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return lexis.ReadText(f)
}

func readPosts(path string, stdin io.Reader) ([]lexis.Document, error) {
	f, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexis.DecodeDocuments(f)
}

// ensureIDs gives every document without an ID a random one and returns how
// many were assigned.
func ensureIDs(docs []lexis.Document) int {
	n := 0
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.NewString()
			n++
		}
	}
	return n
}

func writeSchema(w io.Writer, kind string) error {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	var schema *jsonschema.Schema
	if kind == "collection" {
		schema = reflector.Reflect(&lexis.CollectionReport{})
	} else {
		schema = reflector.Reflect(&lexis.TextReport{})
	}
	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeOutput(w io.Writer, format string, report interface{}) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch r := report.(type) {
	case *lexis.TextReport:
		writeTextReport(tw, r)
	case *lexis.CollectionReport:
		writeCollectionReport(tw, r)
	default:
		return fmt.Errorf("unsupported report type %T", report)
	}
	return tw.Flush()
}

func writeTextReport(w io.Writer, r *lexis.TextReport) {
	fmt.Fprintf(w, "tokens\t%d\n", r.Tokens)
	fmt.Fprintf(w, "unique\t%d\n", r.Unique)
	fmt.Fprintf(w, "sentences\t%d\n", r.Sentences)
	fmt.Fprintf(w, "sentiment\t%s\t+%d/-%d\n", r.Sentiment.Label, r.Sentiment.PositiveHits, r.Sentiment.NegativeHits)
	if r.Language.Code != "" {
		fmt.Fprintf(w, "language\t%s\t%s (%s)\n", r.Language.Code, r.Language.Name, r.Language.Script)
	}
	fmt.Fprintf(w, "entropy\t%.3f\n", r.Stats.Entropy)
	for i, tc := range r.TopTerms {
		fmt.Fprintf(w, "%d.\t%s\t%d\n", i+1, tc.Term, tc.Count)
	}
}

func writeCollectionReport(w io.Writer, r *lexis.CollectionReport) {
	fmt.Fprintf(w, "documents\t%d\n", r.Documents)
	fmt.Fprintf(w, "tokens\t%d\n", r.Tokens)
	fmt.Fprintf(w, "sentiment\t+%d\t=%d\t-%d\n",
		r.Sentiment[lexis.Positive], r.Sentiment[lexis.Neutral], r.Sentiment[lexis.Negative])
	for i, p := range r.Patterns {
		fmt.Fprintf(w, "%d.\t%s\t%d\t%d docs\n", i+1, p.Term, p.Count, p.Documents)
	}
}
