package nlp

import (
	"strings"

	"talktobank/internal/core/langdetect"
)

// hinglishVocab maps Hinglish tokens to English for pattern matching
var hinglishVocab = map[string]string{
	"kyunki":  "because",
	"kyun":    "why",
	"kya":     "what",
	"kaise":   "how",
	"kitna":   "how much",
	"mere":    "my",
	"tumhara": "your",
	"apka":    "your",
	"hoga":    "will be",
	"kar":     "do",
	"do":      "give",
	"lo":      "take",
}

// Normalize lower-cases and trims text for matching. Hinglish input
// additionally gets a token-by-token substitution pre-pass so the English
// pattern vocabulary applies; unknown tokens pass through unchanged.
// Devanagari input is left as-is since the pack carries script variants
func Normalize(text string, lang langdetect.Lang) string {
	norm := strings.TrimSpace(strings.ToLower(text))
	if lang != langdetect.LangHinglish {
		return norm
	}
	toks := strings.Fields(norm)
	for i, tok := range toks {
		if en, ok := hinglishVocab[tok]; ok {
			toks[i] = en
		}
	}
	return strings.Join(toks, " ")
}
