// Package pipeline implements the Pipeline Driver (§4.9): the per-document
// orchestrator that sequences the Page Filter, Header-and-List Detector,
// Language Detector, Sentence Merger, Cross-Page Optimizer, and Header
// Optimizer over a document's pages, holding exactly one page of look-back
// so cross-page stitching can run before a page commits.
//
// Grounded in tsawler-tabula/layout/analyzer.go's Analyzer.Analyze
// orchestration (sequencing leaf detectors into one AnalysisResult) and its
// AnalyzeWithHeaderFooterFiltering driver-level loop, adapted from "all
// pages available upfront" to "one look-back page, suspend at collaborator
// boundaries" per §5.
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/tsawler/layoutrecon/config"
	"github.com/tsawler/layoutrecon/crosspage"
	"github.com/tsawler/layoutrecon/detect"
	"github.com/tsawler/layoutrecon/errs"
	"github.com/tsawler/layoutrecon/filter"
	"github.com/tsawler/layoutrecon/headeropt"
	"github.com/tsawler/layoutrecon/lang"
	"github.com/tsawler/layoutrecon/merge"
	"github.com/tsawler/layoutrecon/model"
	"github.com/tsawler/layoutrecon/ocrsrc"
	"github.com/tsawler/layoutrecon/pdfsrc"
)

// renderDPI is the rasterization resolution requested from the PDF
// collaborator for pages that need OCR.
const renderDPI = 300

// Result is the outcome of processing a whole document: the committed
// element stream in commit order, plus any per-page warnings recorded
// while processing continued (§7 propagation policy).
type Result struct {
	Elements []model.Element
	Warnings []*errs.PipelineError
}

// ByPage groups the committed element stream into per-page slices, in
// commit order, for consumption by the Markdown emitter (§6). Commit order
// is ascending PageNumber (§8), so a single pass suffices.
func (r Result) ByPage() [][]model.Element {
	var pages [][]model.Element
	var current []model.Element
	currentPage := 0
	for _, e := range r.Elements {
		if len(current) > 0 && e.PageNumber != currentPage {
			pages = append(pages, current)
			current = nil
		}
		currentPage = e.PageNumber
		current = append(current, e)
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}

// Driver sequences the layout reconstruction pipeline over a document's
// pages. It is a per-run value: construct one per document, it is not
// safe for concurrent use across documents (§5, §1 non-goals).
type Driver struct {
	OCR    ocrsrc.Recognizer
	Config config.Config
	Logger *slog.Logger

	prevPage []model.Element
	prevLang string
	haveLook bool
	result   Result
}

// NewDriver constructs a Driver. logger may be nil, in which case
// slog.Default() is used; the logger is a field on the Driver rather than
// a package-level singleton (§9 design notes: global mutable singletons
// removed).
func NewDriver(ocr ocrsrc.Recognizer, cfg config.Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{OCR: ocr, Config: cfg, Logger: logger}
}

// ProcessDocument drives a multi-page PDF document through OCR and the full
// layout reconstruction pipeline, honoring the one-page look-back (§4.9).
// ctx cancellation is honored at each suspension point (§5); a cancelled
// run returns the elements committed so far and the context error.
func (d *Driver) ProcessDocument(ctx context.Context, src pdfsrc.Source) (Result, error) {
	n, err := src.PageCount(ctx)
	if err != nil {
		return d.result, errs.Wrap(errs.ErrDocumentNotFound, 0, err)
	}

	for i := 0; i < n; i++ {
		pageNumber := i + 1
		if err := ctx.Err(); err != nil {
			return d.result, err
		}

		page, err := src.RenderPage(ctx, i, renderDPI)
		if err != nil {
			return d.result, errs.Wrap(errs.ErrImageProcessingFailed, pageNumber, err)
		}

		embeddedText, err := src.ExtractEmbeddedText(ctx, i)
		if err != nil {
			d.Logger.Warn("embedded text extraction failed, falling back to OCR text for language detection",
				"page", pageNumber, "error", err)
			embeddedText = ""
		}

		obs, ocrErr := d.OCR.Recognize(ctx, page.Image, ocrsrc.RecognizeOptions{
			Language:   strings.Join(d.Config.OCR.Languages, "+"),
			PageWidth:  page.Width,
			PageHeight: page.Height,
		})
		if ocrErr != nil {
			// §7: a single page's OCR failure is logged and recorded as a
			// warning; processing continues with subsequent pages.
			d.Logger.Warn("OCR failed, page will contribute no elements", "page", pageNumber, "error", ocrErr)
			d.result.Warnings = append(d.result.Warnings, errs.Wrap(errs.ErrOCRFailed, pageNumber, ocrErr))
			obs = nil
		}

		d.feed(pageNumber, obs, embeddedText)
	}

	d.finish()
	return d.result, nil
}

// ProcessImage drives a single raster image (a non-PDF input) through the
// pipeline. Non-PDF single-image inputs bypass cross-page logic entirely:
// the page is committed directly (§4.9, §1).
func (d *Driver) ProcessImage(ctx context.Context, image []byte, width, height int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return d.result, err
	}

	obs, err := d.OCR.Recognize(ctx, image, ocrsrc.RecognizeOptions{
		Language:   strings.Join(d.Config.OCR.Languages, "+"),
		PageWidth:  width,
		PageHeight: height,
	})
	if err != nil {
		return d.result, errs.Wrap(errs.ErrOCRFailed, 1, err)
	}

	elements, pageLang, _ := d.buildPage(obs, 1, "")
	elements = merge.Apply(elements, pageLang)
	elements = normalizeListItems(elements)
	d.commit(elements)
	return d.result, nil
}

// feed runs steps 1-7 of §4.9 for one page, then applies the look-back
// handling of step 8: check suppression, run the Cross-Page Optimizer
// against the held-back previous page, merge/normalize/commit the
// previous page, and hold the current page as the new look-back.
func (d *Driver) feed(pageNumber int, obs []model.Observation, embeddedText string) {
	elements, pageLang, isTOC := d.buildPage(obs, pageNumber, embeddedText)

	if d.haveLook {
		result := crosspage.Optimize(d.prevPage, elements, d.prevLang)
		prev := result.PrevPage
		elements = result.CurrPage
		if result.Stitched {
			d.Logger.Debug("cross-page stitch applied", "prev_page_elements", len(prev))
		}

		prev = merge.Apply(prev, d.prevLang)
		prev = normalizeListItems(prev)
		d.commit(prev)
	}

	d.prevPage = elements
	d.prevLang = pageLang
	d.haveLook = true
	d.Logger.Debug("page built", "page", pageNumber, "elements", len(elements), "lang", pageLang, "toc", isTOC)
}

// finish flushes the held-back final page after the last page has been fed
// (§4.9 step 10).
func (d *Driver) finish() {
	if !d.haveLook {
		return
	}
	prev := merge.Apply(d.prevPage, d.prevLang)
	prev = normalizeListItems(prev)
	d.commit(prev)
	d.prevPage = nil
	d.haveLook = false
}

// buildPage runs §4.9 steps 1-7 for a single page: page filter, typing,
// sort, language detection, same-line merge, header re-detection, and
// either the TOC path (orphan repair + TOC normalization) or the non-TOC
// path (false-header filter, then orphan repair).
//
// Resolves an ambiguity between §2's data-flow summary ("TOC path: TOC
// repair + TOC normalize") and §4.7's prose (which describes orphan repair
// as a Header Optimizer pass without restricting it to non-TOC pages, and
// whose own worked example 5 repairs an orphan on a TOC page): RepairOrphans
// runs on both paths — as "TOC repair" standing alone on the TOC path, and
// as the second Header Optimizer pass following FilterFalseHeaders on the
// non-TOC path (matching worked example 6, which repairs an orphan on an
// explicitly non-TOC page). FilterFalseHeaders, which assumes a normal
// single-sequence numbering scheme, only runs on the non-TOC path: a TOC
// page's own numbering frequently restarts per top-level section, which
// would read as "incoherent" to the frontier rule. See DESIGN.md.
func (d *Driver) buildPage(obs []model.Observation, pageNumber int, embeddedText string) ([]model.Element, string, bool) {
	obs = filter.Apply(obs, filterConfig(d.Config))

	elements := make([]model.Element, len(obs))
	for i, o := range obs {
		e := model.New(model.TypeParagraph, o.BoundingBox, o.Text, o.Confidence, pageNumber)
		elements[i] = detect.ClassifyType(e)
	}

	sort.SliceStable(elements, func(i, j int) bool {
		return model.Less(elements[i], elements[j])
	})

	pageLang := lang.Detect(embeddedText, concatText(elements)).Lang

	mergeCfg := mergeConfig(d.Config)
	elements = detect.MergeSameLine(elements, pageLang, mergeCfg)
	for i := range elements {
		elements[i] = detect.ClassifyType(elements[i])
	}

	isTOC := detect.IsTOCPage(elements)
	if isTOC {
		elements = headeropt.RepairOrphans(elements)
		for i := range elements {
			elements[i].Text = detect.NormalizeTOCEntry(elements[i].Text)
		}
	} else {
		elements = headeropt.FilterFalseHeaders(elements)
		elements = headeropt.RepairOrphans(elements)
	}

	return elements, pageLang, isTOC
}

// commit appends page to the result in commit order and releases it from
// the driver's working set (§5 resource discipline: the previous page's
// memory is released once its ownership transfers to the sink).
func (d *Driver) commit(page []model.Element) {
	d.result.Elements = append(d.result.Elements, page...)
}

func normalizeListItems(elements []model.Element) []model.Element {
	out := make([]model.Element, len(elements))
	for i, e := range elements {
		out[i] = detect.NormalizeListItem(e)
	}
	return out
}

func concatText(elements []model.Element) string {
	var b strings.Builder
	for _, e := range elements {
		b.WriteString(e.Text)
		b.WriteString(" ")
	}
	return b.String()
}

func filterConfig(cfg config.Config) filter.Config {
	return filter.Config{
		Enabled: cfg.Processing.EnableHeaderFooterDetection,
		Header: filter.Strip{
			Lo: cfg.Processing.PageHeaderRegion.MinY,
			Hi: cfg.Processing.PageHeaderRegion.MaxY,
		},
		Footer: filter.Strip{
			Lo: cfg.Processing.PageFooterRegion.MinY,
			Hi: cfg.Processing.PageFooterRegion.MaxY,
		},
	}
}

func mergeConfig(cfg config.Config) model.MergeConfig {
	return model.MergeConfig{
		MergeDistanceThreshold:               cfg.Processing.MergeDistanceThreshold,
		HorizontalMergeThreshold:             cfg.Processing.HorizontalMergeThreshold,
		IsMergeDistanceNormalized:            cfg.Processing.IsMergeDistanceNormalized,
		IsHorizontalMergeThresholdNormalized: cfg.Processing.IsHorizontalMergeThresholdNormalized,
	}
}
