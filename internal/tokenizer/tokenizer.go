// Package tokenizer implements a deterministic word-level tokenizer: it
// builds a vocabulary mapping tokens to small integer ids, encodes text into
// id sequences, and decodes id sequences back into text.
package tokenizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultSpecialTokens is the reserved-token list used when none is configured.
// Order matters: position determines both the initial id assignment and the
// token's role.
var DefaultSpecialTokens = []string{"<PAD>", "<UNK>", "<CLS>", "<SEP>"}

// Special-token roles are positional within the configured list.
const (
	padIndex = iota
	unkIndex
	startIndex
	endIndex
)

// ErrSpecialMissing is returned by Encode when a required special token
// (unknown, sequence-start, or sequence-end) is absent from the vocabulary.
var ErrSpecialMissing = errors.New("special token missing from vocabulary")

// decodePunct is the set of tokens Decode attaches directly to the preceding
// word instead of space-separating. It is the splitter's punctuation set plus
// the hyphen, which the splitter never isolates but ids may still carry.
var decodePunct = map[string]bool{
	".": true, ",": true, "!": true, "?": true, ";": true, ":": true,
	"(": true, ")": true, "'": true, "\"": true, "–": true, "—": true,
	"-": true,
}

// Options configures a Tokenizer. The zero value means default special
// tokens, case-insensitive splitting, and no vocabulary size cap.
type Options struct {
	// SpecialTokens is the ordered reserved-token list; nil means
	// DefaultSpecialTokens. Roles are positional: 0 padding, 1 unknown,
	// 2 sequence-start, 3 sequence-end.
	SpecialTokens []string

	// CaseSensitive disables the lower-casing pass in the splitter.
	CaseSensitive bool

	// MaxVocabSize caps the vocabulary (special tokens included).
	// Zero means unlimited.
	MaxVocabSize int
}

// Tokenizer owns a vocabulary and its inverse. It is not safe for concurrent
// use; builds replace both maps wholesale rather than mutating in place, so a
// Tokenizer is never observable in a half-built state.
type Tokenizer struct {
	specials      []string
	caseSensitive bool
	maxVocabSize  int // 0 = unlimited

	vocab   map[string]int
	inverse map[int]string
}

// BuildResult reports the outcome of a vocabulary build.
type BuildResult struct {
	// TokenCount is the vocabulary size after the build, special tokens
	// included.
	TokenCount int

	// Truncated reports that the configured size cap stopped the build
	// before every candidate token received an id. The partial vocabulary
	// remains fully usable.
	Truncated bool
}

// New creates a Tokenizer whose vocabulary contains only the special tokens.
func New(opts Options) *Tokenizer {
	specials := opts.SpecialTokens
	if specials == nil {
		specials = DefaultSpecialTokens
	}
	t := &Tokenizer{
		specials:      append([]string(nil), specials...),
		caseSensitive: opts.CaseSensitive,
		maxVocabSize:  opts.MaxVocabSize,
	}
	t.reset()
	return t
}

// reset replaces both maps with fresh ones holding only the special tokens,
// in configured order, ids 0..k-1.
func (t *Tokenizer) reset() {
	vocab := make(map[string]int, len(t.specials))
	inverse := make(map[int]string, len(t.specials))
	for i, s := range t.specials {
		vocab[s] = i
		inverse[i] = s
	}
	t.vocab, t.inverse = vocab, inverse
}

// BuildFromText resets the vocabulary to the special tokens and assigns the
// remaining ids to the unique tokens of text in first-seen order. When the
// size cap is reached the build stops and Truncated is set; tokens assigned
// so far are kept.
func (t *Tokenizer) BuildFromText(text string) BuildResult {
	t.reset()
	res := BuildResult{}
	for _, tok := range Split(text, t.caseSensitive) {
		if _, ok := t.vocab[tok]; ok {
			continue
		}
		if t.atCapacity() {
			res.Truncated = true
			break
		}
		t.assign(tok)
	}
	res.TokenCount = len(t.vocab)
	return res
}

// BuildFromCorpus resets the vocabulary to the special tokens, counts token
// occurrences across all texts, and assigns ids in order of descending
// frequency. Equal-frequency tokens keep the order in which they were first
// seen, so common tokens reliably get the lowest ids.
func (t *Tokenizer) BuildFromCorpus(texts []string) BuildResult {
	t.reset()

	counts := make(map[string]int)
	var order []string // first-seen order, backs the stable tie-break
	for _, text := range texts {
		for _, tok := range Split(text, t.caseSensitive) {
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	res := BuildResult{}
	for _, tok := range order {
		if _, ok := t.vocab[tok]; ok {
			continue
		}
		if t.atCapacity() {
			res.Truncated = true
			break
		}
		t.assign(tok)
	}
	res.TokenCount = len(t.vocab)
	return res
}

func (t *Tokenizer) atCapacity() bool {
	return t.maxVocabSize > 0 && len(t.vocab) >= t.maxVocabSize
}

// assign gives tok the next free id. Caller ensures tok is absent and the
// cap is not reached.
func (t *Tokenizer) assign(tok string) {
	id := len(t.vocab)
	t.vocab[tok] = id
	t.inverse[id] = tok
}

// special returns the configured special token for a positional role.
func (t *Tokenizer) special(index int) (string, error) {
	if index >= len(t.specials) {
		return "", fmt.Errorf("%w: no special token configured at position %d", ErrSpecialMissing, index)
	}
	tok := t.specials[index]
	if _, ok := t.vocab[tok]; !ok {
		return "", fmt.Errorf("%w: %q", ErrSpecialMissing, tok)
	}
	return tok, nil
}

// Encode tokenizes text and maps each token to its id, substituting the
// unknown token's id for out-of-vocabulary tokens. The result is wrapped with
// the sequence-start and sequence-end ids. It fails when any of those three
// special tokens is missing from the vocabulary, which indicates the
// Tokenizer was restored or configured without them.
func (t *Tokenizer) Encode(text string) ([]int, error) {
	unk, err := t.special(unkIndex)
	if err != nil {
		return nil, err
	}
	start, err := t.special(startIndex)
	if err != nil {
		return nil, err
	}
	end, err := t.special(endIndex)
	if err != nil {
		return nil, err
	}

	tokens := Split(text, t.caseSensitive)
	ids := make([]int, 0, len(tokens)+2)
	ids = append(ids, t.vocab[start])
	for _, tok := range tokens {
		id, ok := t.vocab[tok]
		if !ok {
			id = t.vocab[unk]
		}
		ids = append(ids, id)
	}
	ids = append(ids, t.vocab[end])
	return ids, nil
}

// Decode maps ids back to tokens and joins them into text. Special tokens are
// filtered out wherever they appear, punctuation attaches to the preceding
// word, and ids with no vocabulary entry are skipped.
func (t *Tokenizer) Decode(ids []int) string {
	var b strings.Builder
	for _, id := range ids {
		tok, ok := t.inverse[id]
		if !ok || t.isSpecial(tok) {
			continue
		}
		if decodePunct[tok] {
			out := strings.TrimRight(b.String(), " ")
			b.Reset()
			b.WriteString(out)
		}
		b.WriteString(tok)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func (t *Tokenizer) isSpecial(tok string) bool {
	for _, s := range t.specials {
		if s == tok {
			return true
		}
	}
	return false
}

// TokenID returns the id for tok and whether it is in the vocabulary.
func (t *Tokenizer) TokenID(tok string) (int, bool) {
	id, ok := t.vocab[tok]
	return id, ok
}

// Token returns the token for id and whether it is in the vocabulary.
func (t *Tokenizer) Token(id int) (string, bool) {
	tok, ok := t.inverse[id]
	return tok, ok
}

// HasToken reports whether tok is in the vocabulary.
func (t *Tokenizer) HasToken(tok string) bool {
	_, ok := t.vocab[tok]
	return ok
}

// Size returns the current vocabulary cardinality.
func (t *Tokenizer) Size() int {
	return len(t.vocab)
}

// SpecialTokens returns a copy of the configured special-token list.
func (t *Tokenizer) SpecialTokens() []string {
	return append([]string(nil), t.specials...)
}

// CaseSensitive reports whether splitting preserves case.
func (t *Tokenizer) CaseSensitive() bool {
	return t.caseSensitive
}
