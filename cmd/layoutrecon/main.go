// Command layoutrecon is the CLI surface named in spec §6: it wires the
// config, OCR/PDF collaborators, the pipeline Driver, and the Markdown
// emitter into a single "process" subcommand. Structure directly adapted
// from ivanvanderbyl-pdfmarkdown/example/main.go's cli.Command flag/action
// shape, retargeted from that example's single hard-wired pdfium converter
// onto this module's pluggable, build-tag-gated collaborators.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tsawler/layoutrecon/config"
	"github.com/tsawler/layoutrecon/errs"
	"github.com/tsawler/layoutrecon/markdown"
	"github.com/tsawler/layoutrecon/pipeline"
)

// Exit codes named in spec §6.
const (
	exitInputNotFound = 2
	exitOCRFailure    = 3
	exitIOFailure     = 4
)

// exitError carries the process exit code a failure should produce,
// alongside the underlying error, so main can set the code after
// cmd.Run returns without depending on a particular urfave/cli error type.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) *exitError { return &exitError{code: code, err: err} }

func main() {
	cmd := &cli.Command{
		Name:  "layoutrecon",
		Usage: "convert a page-based document to structured Markdown",
		Commands: []*cli.Command{
			{
				Name:   "process",
				Usage:  "OCR a PDF or image and emit Markdown",
				Action: runProcess,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output Markdown file path (default: stdout)",
					},
					&cli.StringFlag{
						Name:  "pages",
						Usage: "page ranges to process, e.g. \"1-3,5\" (1-indexed, PDF input only)",
					},
					&cli.StringFlag{
						Name:  "ocr-language",
						Usage: "OCR recognition language(s), e.g. \"eng\" or \"eng+chi_sim\"",
						Value: "eng",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a YAML configuration file",
					},
					&cli.BoolFlag{
						Name:  "enable-llm",
						Usage: "reserved for forward compatibility; currently a no-op",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "layoutrecon:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(exitIOFailure)
	}
}

func runProcess(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() == 0 {
		return fail(exitInputNotFound, fmt.Errorf("missing input path"))
	}
	inputPath := args.Get(0)

	if _, err := os.Stat(inputPath); err != nil {
		return fail(exitInputNotFound, errs.Wrap(errs.ErrDocumentNotFound, 0, err))
	}

	cfg := config.Default()
	if p := cmd.String("config"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return fail(exitIOFailure, fmt.Errorf("loading config: %w", err))
		}
		cfg = loaded
	}
	if l := cmd.String("ocr-language"); l != "" {
		cfg.OCR.Languages = strings.Split(l, "+")
	}
	cfg.Reasoning = cmd.Bool("enable-llm")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rec := newRecognizer()
	driver := pipeline.NewDriver(rec, cfg, logger)

	var result pipeline.Result
	var err error

	switch ext := strings.ToLower(filepath.Ext(inputPath)); ext {
	case ".pdf":
		src, openErr := openPDFSource(inputPath)
		if openErr != nil {
			return fail(exitInputNotFound, errs.Wrap(errs.ErrUnsupportedFormat, 0, openErr))
		}
		if pages := cmd.String("pages"); pages != "" {
			subset, subsetErr := newPageSubset(src, pages)
			if subsetErr != nil {
				return fail(exitInputNotFound, subsetErr)
			}
			src = subset
		}
		result, err = driver.ProcessDocument(ctx, src)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
		data, readErr := os.ReadFile(inputPath)
		if readErr != nil {
			return fail(exitIOFailure, fmt.Errorf("reading input: %w", readErr))
		}
		w, h, decErr := decodeImageSize(data)
		if decErr != nil {
			return fail(exitInputNotFound, errs.Wrap(errs.ErrUnsupportedFormat, 0, decErr))
		}
		result, err = driver.ProcessImage(ctx, data, w, h)
	default:
		return fail(exitInputNotFound, errs.Wrap(errs.ErrUnsupportedFormat, 0, fmt.Errorf("unrecognized extension %q", ext)))
	}

	if err != nil {
		if errors.Is(err, errs.ErrOCRFailed) {
			return fail(exitOCRFailure, err)
		}
		return fail(exitIOFailure, err)
	}

	for _, w := range result.Warnings {
		logger.Warn("page processing warning", "page", w.Page, "kind", w.Kind)
	}

	emitter := markdown.NewBuilderEmitter()
	out, err := emitter.Emit(ctx, result.ByPage(), markdown.Options{
		AddTableOfContents: cfg.FileManagement.AddTableOfContents,
	})
	if err != nil {
		return fail(exitIOFailure, fmt.Errorf("rendering markdown: %w", err))
	}

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fail(exitIOFailure, fmt.Errorf("writing output: %w", err))
		}
	} else {
		fmt.Println(string(out))
	}

	return nil
}

// parsePageRanges parses a "--pages" value like "1-3,5" into a sorted,
// de-duplicated list of 1-indexed page numbers.
func parsePageRanges(spec string) ([]int, error) {
	seen := map[int]bool{}
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		lo, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil || lo < 1 {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		hi := lo
		if len(bounds) == 2 {
			hi, err = strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil || hi < lo {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		for p := lo; p <= hi; p++ {
			if !seen[p] {
				seen[p] = true
				pages = append(pages, p)
			}
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages specified")
	}
	sort.Ints(pages)
	return pages, nil
}
