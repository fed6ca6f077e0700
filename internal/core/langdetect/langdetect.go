// Package langdetect classifies utterance text into the closed set of
// languages the assistant understands. Detection is deterministic: Devanagari
// script check first, then keyword voting to split Hindi from Marathi, then
// Hinglish marker words, defaulting to English
package langdetect

import (
	"regexp"
	"strings"
	"unicode"
)

// Lang is a supported language tag
type Lang string

const (
	// LangEnglish is the default language
	LangEnglish Lang = "en"
	// LangHindi is Devanagari-script Hindi
	LangHindi Lang = "hi"
	// LangMarathi is Devanagari-script Marathi
	LangMarathi Lang = "mr"
	// LangHinglish is code-mixed Hindi vocabulary in Latin script
	LangHinglish Lang = "hinglish"
)

// Valid reports whether l is one of the closed language set
func (l Lang) Valid() bool {
	switch l {
	case LangEnglish, LangHindi, LangMarathi, LangHinglish:
		return true
	}
	return false
}

// SpeechCode maps a Lang to the code the speech engines accept
// Hinglish replies are synthesized with the English voice
func (l Lang) SpeechCode() string {
	switch l {
	case LangHindi:
		return "hi"
	case LangMarathi:
		return "mr"
	default:
		return "en"
	}
}

// Keyword voters for the shared Devanagari script. Hindi and Marathi overlap
// heavily; these lists are disjoint banking-vocabulary markers
var (
	hindiMarkers = []string{
		"क्या", "कैसे", "कितना", "बैलेंस", "ट्रांसफर", "लेनदेन", "खाता",
		"मेरा", "आपका", "दिखाएं", "बताओ",
	}
	marathiMarkers = []string{
		"काय", "कसे", "किती", "शिल्लक", "हस्तांतरण", "व्यवहार", "खाते",
		"माझे", "तुमचे", "दाखवा", "सांगा", "माझी", "तुमची",
	}
)

// Hinglish marker words in Latin script
var hinglishRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(kyunki|kyun|kya|kaise|kitna)\b`),
	regexp.MustCompile(`\b(mere|tumhara|apka|hoga|kar|do|lo)\b`),
}

// Detect returns the language tag for text. Pure function of the input bytes;
// keyword matching is case-insensitive, script detection is case-agnostic
func Detect(text string) Lang {
	lower := strings.ToLower(text)

	if hasDevanagari(text) {
		hindi := countMarkers(lower, hindiMarkers)
		marathi := countMarkers(lower, marathiMarkers)
		if marathi > 0 && marathi >= hindi {
			return LangMarathi
		}
		if hindi > 0 {
			return LangHindi
		}
		// Devanagari with no clear markers: Hindi is the majority assumption
		return LangHindi
	}

	for _, re := range hinglishRes {
		if re.MatchString(lower) {
			return LangHinglish
		}
	}

	return LangEnglish
}

func hasDevanagari(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Devanagari) {
			return true
		}
	}
	return false
}

func countMarkers(lower string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(lower, m) {
			n++
		}
	}
	return n
}
