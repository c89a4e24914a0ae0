// Package estimate counts text with a reference BPE encoding so word-level
// vocabularies can be compared against what production models would see.
package estimate

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter wraps a tiktoken encoding for token counting.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter creates a Counter for the named encoding (e.g. cl100k_base).
func NewCounter(encoding string) (*Counter, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("estimate: get encoding %q: %w", encoding, err)
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of BPE tokens in s.
func (c *Counter) Count(s string) int {
	return len(c.enc.Encode(s, nil, nil))
}
