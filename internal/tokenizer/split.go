package tokenizer

import "strings"

// punctReplacer pads every standalone punctuation mark with spaces so that
// strings.Fields later separates it from adjacent words. The comma is padded
// by its own replacer; it arrived later than the rest of the set and is kept
// as a distinct rule so the two sets can diverge independently.
var (
	punctReplacer = newPaddingReplacer(".", "!", "?", ";", ":", "(", ")", "'", "\"", "–", "—")
	commaReplacer = newPaddingReplacer(",")
)

func newPaddingReplacer(marks ...string) *strings.Replacer {
	pairs := make([]string, 0, len(marks)*2)
	for _, m := range marks {
		pairs = append(pairs, m, " "+m+" ")
	}
	return strings.NewReplacer(pairs...)
}

// Split breaks text into an ordered sequence of word and punctuation tokens.
// When caseSensitive is false the whole input is lower-cased first. Runs of
// whitespace collapse, so empty or blank input yields an empty slice.
func Split(text string, caseSensitive bool) []string {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	text = punctReplacer.Replace(text)
	text = commaReplacer.Replace(text)
	return strings.Fields(text)
}
