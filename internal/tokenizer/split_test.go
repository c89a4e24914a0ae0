package tokenizer

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		caseSensitive bool
		want          []string
	}{
		{
			name: "words and sentence punctuation",
			text: "Hello, world!",
			want: []string{"hello", ",", "world", "!"},
		},
		{
			name: "case folding by default",
			text: "Go GO go",
			want: []string{"go", "go", "go"},
		},
		{
			name:          "case sensitive keeps case",
			text:          "Go GO go",
			caseSensitive: true,
			want:          []string{"Go", "GO", "go"},
		},
		{
			name: "quotes and parens isolate",
			text: `he said "hi" (twice)`,
			want: []string{"he", "said", "\"", "hi", "\"", "(", "twice", ")"},
		},
		{
			name: "whitespace runs collapse",
			text: "a \t b\n\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "adjacent punctuation separates",
			text: "wait...",
			want: []string{"wait", ".", ".", "."},
		},
		{
			name: "dashes split but hyphen stays attached",
			text: "well-known — yes",
			want: []string{"well-known", "—", "yes"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.caseSensitive)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
