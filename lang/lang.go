// Package lang implements the Language Detector (§4.5): classifying a
// page's text into one of the supported languages, preferring embedded PDF
// text over OCR text when both are available.
package lang

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Supported language tags. These are the minimum required by §4.5; the
// detector never returns anything outside this set.
const (
	English              = "en"
	ChineseSimplified    = "zh-Hans"
	ChineseTraditional   = "zh-Hant"
	defaultWhenAmbiguous = English
)

// Result is the outcome of language detection for a page.
type Result struct {
	Lang       string
	Confidence float64
}

// Detect classifies the dominant language of a page. When embeddedText is
// non-empty it is preferred over ocrText, since it carries no recognition
// noise (§4.5 "preferred implementation").
func Detect(embeddedText, ocrText string) Result {
	if text := embeddedText; text != "" {
		return detect(text)
	}
	return detect(ocrText)
}

func detect(text string) Result {
	text = norm.NFC.String(text)
	if text == "" {
		return Result{Lang: defaultWhenAmbiguous, Confidence: 0}
	}

	var han, simplifiedOnly, traditionalOnly, latin, other int
	for _, r := range text {
		switch {
		case isHan(r):
			han++
			switch hanVariant(r) {
			case variantSimplifiedOnly:
				simplifiedOnly++
			case variantTraditionalOnly:
				traditionalOnly++
			}
		case isLatinLetter(r):
			latin++
		case unicode.IsLetter(r):
			other++
		}
	}

	total := han + latin + other
	if total == 0 {
		return Result{Lang: defaultWhenAmbiguous, Confidence: 0}
	}

	if han > latin {
		confidence := float64(han) / float64(total)
		if traditionalOnly > simplifiedOnly {
			return Result{Lang: ChineseTraditional, Confidence: confidence}
		}
		return Result{Lang: ChineseSimplified, Confidence: confidence}
	}

	return Result{Lang: English, Confidence: float64(latin) / float64(total)}
}

// isHan reports whether r is a CJK Unified Ideograph, grounded in
// tsawler-tabula/text/direction.go's isCJK but narrowed to the Han-script
// block alone: the spec only discriminates Han-script variants, not
// Hiragana/Katakana/Hangul.
func isHan(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

type hanVariantKind int

const (
	variantNeutral hanVariantKind = iota
	variantSimplifiedOnly
	variantTraditionalOnly
)

// simplifiedOnlyRunes and traditionalOnlyRunes are small, high-frequency
// sets of characters whose simplified and traditional forms are distinct
// code points. Their relative frequency is enough to break the tie between
// zh-Hans and zh-Hant for any page with a non-trivial amount of body text;
// characters unified across both variants (the vast majority of Han
// characters) are deliberately left out of both sets.
var simplifiedOnlyRunes = map[rune]bool{
	'国': true, '为': true, '会': true, '学': true, '这': true, '个': true,
	'们': true, '时': true, '后': true, '应': true, '体': true, '来': true,
	'关': true, '开': true, '说': true, '进': true, '现': true, '实': true,
	'业': true, '产': true,
}

var traditionalOnlyRunes = map[rune]bool{
	'國': true, '為': true, '會': true, '學': true, '這': true, '個': true,
	'們': true, '時': true, '後': true, '應': true, '體': true, '來': true,
	'關': true, '開': true, '說': true, '進': true, '現': true, '實': true,
	'業': true, '產': true,
}

func hanVariant(r rune) hanVariantKind {
	if simplifiedOnlyRunes[r] {
		return variantSimplifiedOnly
	}
	if traditionalOnlyRunes[r] {
		return variantTraditionalOnly
	}
	return variantNeutral
}
