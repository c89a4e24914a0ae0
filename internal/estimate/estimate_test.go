package estimate

import "testing"

func TestCounter_Count(t *testing.T) {
	c, err := NewCounter("cl100k_base")
	if err != nil {
		t.Fatalf("NewCounter: %v", err)
	}

	if n := c.Count("Hello, world!"); n <= 0 {
		t.Errorf("expected positive token count, got %d", n)
	}
	if n := c.Count(""); n != 0 {
		t.Errorf("expected 0 tokens for empty string, got %d", n)
	}
}

func TestNewCounter_UnknownEncoding(t *testing.T) {
	if _, err := NewCounter("no_such_encoding"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}
