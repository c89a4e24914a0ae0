package tokenizer

// Snapshot is the durable form of a Tokenizer: the forward vocabulary, the
// ordered special-token list, and the case-sensitivity flag. The size cap is
// deliberately not part of a Snapshot, so a restored Tokenizer is unlimited
// until rebuilt with an explicit cap.
type Snapshot struct {
	Vocab         map[string]int `json:"vocab"`
	SpecialTokens []string       `json:"special_tokens"`
	CaseSensitive bool           `json:"case_sensitive"`
}

// Snapshot captures the Tokenizer's current state. The returned maps and
// slices are copies; mutating them does not affect the Tokenizer.
func (t *Tokenizer) Snapshot() Snapshot {
	vocab := make(map[string]int, len(t.vocab))
	for tok, id := range t.vocab {
		vocab[tok] = id
	}
	return Snapshot{
		Vocab:         vocab,
		SpecialTokens: t.SpecialTokens(),
		CaseSensitive: t.caseSensitive,
	}
}

// FromSnapshot reconstructs a Tokenizer from a Snapshot, replacing the
// freshly initialized vocabulary with the snapshot's and deriving the inverse
// map from it. Snapshots with duplicate ids produce an inverse that keeps an
// arbitrary one of the colliding tokens; no validation is performed.
func FromSnapshot(s Snapshot) *Tokenizer {
	t := New(Options{
		SpecialTokens: s.SpecialTokens,
		CaseSensitive: s.CaseSensitive,
	})

	vocab := make(map[string]int, len(s.Vocab))
	inverse := make(map[int]string, len(s.Vocab))
	for tok, id := range s.Vocab {
		vocab[tok] = id
		inverse[id] = tok
	}
	t.vocab, t.inverse = vocab, inverse
	return t
}
