package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/glossa/internal/adapter"
	"github.com/mouse-blink/glossa/internal/controller"
	"github.com/mouse-blink/glossa/internal/domain/lexicon"
	"github.com/mouse-blink/glossa/internal/domain/protect"
	m "github.com/mouse-blink/glossa/internal/model"
)

const outputPerm = 0o644

var (
	// ErrSourceNotFound is returned when an input path does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrAmbiguousOutput is returned when an explicit output path is combined with several inputs.
	ErrAmbiguousOutput = errors.New("--out requires exactly one input document")
	// ErrNoSources is returned when the inputs expand to no documents.
	ErrNoSources = errors.New("no input documents found")
)

// SourceArgs selects the documents and dictionary for a run.
type SourceArgs struct {
	Paths     []m.Path
	Lang      string
	Dict      m.Path
	Ext       string
	OutSuffix string
}

// TranslateArgs contains the arguments for rewriting documents.
type TranslateArgs struct {
	SourceArgs
	// Out overrides the derived output path; only valid with one document.
	Out     m.Path
	Threads int
	// Reports is the directory for run reports; empty disables them.
	Reports m.Path
}

// ScanArgs contains the arguments for classifying literals without writing.
type ScanArgs struct {
	SourceArgs
}

// ViewArgs contains the arguments for listing stored run reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Translate(args TranslateArgs) error
	Scan(args ScanArgs) error
	Languages() error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	loader      adapter.DictionaryLoader
	reportStore adapter.ReportStore
	ui          controller.UI
	rules       protect.RuleSet
	now         func() time.Time
	newRunID    func() string
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	loader adapter.DictionaryLoader,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		loader:      loader,
		reportStore: reportStore,
		ui:          ui,
		rules:       protect.Default(),
		now:         time.Now,
		newRunID:    func() string { return uuid.New().String() },
	}
}

// documentResult is the rewrite of one input, kept in argument order.
type documentResult struct {
	source m.Path
	input  []byte
	result m.Result
}

// Translate rewrites every input document. All inputs are read and rewritten
// before the first output is written, so a missing input leaves nothing behind.
func (w *workflow) Translate(args TranslateArgs) error {
	paths, err := w.collect(args.SourceArgs)
	if err != nil {
		return err
	}

	if args.Out != "" && len(paths) != 1 {
		return ErrAmbiguousOutput
	}

	dict, lang := w.buildDictionary(args.Lang, args.Dict)
	rw := NewRewriterWithRules(dict, w.rules)

	results, err := w.rewriteAll(rw, lang, paths, args.Threads)
	if err != nil {
		return err
	}

	runID := w.newRunID()

	for _, res := range results {
		out := args.Out
		if out == "" {
			out = w.fsAdapter.OutputPath(res.source, outSuffix(args.OutSuffix))
		}

		if err := w.fsAdapter.WriteFile(out, []byte(res.result.Text), outputPerm); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		report := m.Report{
			RunID:      runID,
			Source:     res.source,
			Output:     out,
			Lang:       lang,
			SourceHash: w.fsAdapter.Fingerprint(res.input),
			OutputHash: w.fsAdapter.Fingerprint([]byte(res.result.Text)),
			Translated: res.result.Translated,
			Skipped:    res.result.Skipped,
			Changes:    res.result.Changes,
			CreatedAt:  w.now().UTC(),
		}

		w.displayChanges(res.source, res.result.Changes)

		if err := w.ui.DisplaySummary(report); err != nil {
			return err
		}

		w.saveReport(args.Reports, report)
	}

	return nil
}

// Scan reports the decision for every literal without writing anything.
// Without a language only the eligibility heuristics are applied.
func (w *workflow) Scan(args ScanArgs) error {
	paths, err := w.collect(args.SourceArgs)
	if err != nil {
		return err
	}

	var (
		rw   Rewriter
		lang string
	)

	if args.Lang != "" {
		var dict *m.Dictionary

		dict, lang = w.buildDictionary(args.Lang, args.Dict)
		rw = NewRewriterWithRules(dict, w.rules)
	}

	classifier := NewClassifier(w.rules)

	for _, path := range paths {
		data, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		doc := MarkIgnored(ParseDocument(path, string(data)), lang)
		changes := make([]m.Change, 0, len(doc.Spans))

		for _, span := range doc.Spans {
			if rw != nil {
				changes = append(changes, rw.Decide(span))
				continue
			}

			changes = append(changes, m.Change{
				Line:     span.Line,
				Name:     span.Name,
				Original: span.Body,
				Skip:     classifier.Classify(span),
			})
		}

		if err := w.ui.DisplayScan(path, changes); err != nil {
			return err
		}
	}

	return nil
}

// Languages lists the built-in dictionaries.
func (w *workflow) Languages() error {
	return w.ui.DisplayLanguages(lexicon.Languages())
}

// View lists stored run reports.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.ui.DisplayReports(reports)
}

func (w *workflow) collect(args SourceArgs) ([]m.Path, error) {
	paths, err := w.fsAdapter.Get(args.Paths, args.Ext, outSuffix(args.OutSuffix))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}

		return nil, err
	}

	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	return paths, nil
}

// rewriteAll reads and rewrites documents concurrently; each document is
// processed by a single goroutine and results keep the input order.
func (w *workflow) rewriteAll(rw Rewriter, lang string, paths []m.Path, threads int) ([]documentResult, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([]documentResult, len(paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			data, err := w.fsAdapter.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			results[i] = documentResult{
				source: path,
				input:  data,
				result: rw.Rewrite(MarkIgnored(ParseDocument(path, string(data)), lang)),
			}

			log.Debug().
				Str("path", string(path)).
				Int("translated", results[i].result.Translated).
				Int("skipped", results[i].result.Skipped).
				Msg("Rewrote document")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// buildDictionary assembles the built-in table for lang merged with the
// override file. Problems with either are logged and never fatal.
func (w *workflow) buildDictionary(lang string, dictPath m.Path) (*m.Dictionary, string) {
	code := lexicon.Normalize(lang)

	base, ok := lexicon.Lookup(code)
	if !ok {
		log.Warn().
			Str("lang", lang).
			Msg("No built-in dictionary for language, using empty base")
	}

	if dictPath == "" {
		return base, code
	}

	file, err := w.loader.Load(dictPath)
	if err != nil {
		event := log.Warn().Str("path", string(dictPath))

		switch {
		case errors.Is(err, fs.ErrNotExist):
			event.Msg("Custom dictionary file not found")
		case errors.Is(err, adapter.ErrNotObject):
			event.Msg("Custom dictionary must be a mapping of strings to strings")
		default:
			event.Err(err).Msg("Failed to load custom dictionary")
		}

		return base, code
	}

	if dropped := file.Dropped(); dropped > 0 {
		log.Debug().
			Str("path", string(dictPath)).
			Int("dropped", dropped).
			Msg("Dropped non-string dictionary entries")
	}

	log.Info().
		Str("path", string(dictPath)).
		Str("format", file.Format).
		Int("entries", file.Declared).
		Msg("Custom dictionary merged")

	return base.Merge(file.Entries...), code
}

func (w *workflow) displayChanges(source m.Path, changes []m.Change) {
	for _, change := range changes {
		if change.Translated() {
			w.ui.DisplayChange(source, change)
		}
	}
}

func (w *workflow) saveReport(dir m.Path, report m.Report) {
	if dir == "" {
		return
	}

	path, err := w.reportStore.SaveReport(dir, report)
	if err != nil {
		log.Warn().
			Err(err).
			Str("source", string(report.Source)).
			Msg("Failed to save run report")

		return
	}

	log.Debug().Str("path", string(path)).Msg("Saved run report")
}

func outSuffix(suffix string) string {
	if suffix == "" {
		return "_OUT"
	}

	return suffix
}
