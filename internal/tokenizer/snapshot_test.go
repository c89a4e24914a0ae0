package tokenizer

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	tok := New(Options{CaseSensitive: true})
	tok.BuildFromText("Alpha beta Alpha!")

	restored := FromSnapshot(tok.Snapshot())

	if !reflect.DeepEqual(tok.Snapshot(), restored.Snapshot()) {
		t.Error("snapshot round trip changed state")
	}
	if !restored.CaseSensitive() {
		t.Error("case sensitivity not restored")
	}
	ids, err := restored.Encode("Alpha beta")
	if err != nil {
		t.Fatalf("Encode on restored tokenizer: %v", err)
	}
	orig, _ := tok.Encode("Alpha beta")
	if !reflect.DeepEqual(ids, orig) {
		t.Errorf("restored Encode = %v, want %v", ids, orig)
	}
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	tok := New(Options{})
	tok.BuildFromCorpus([]string{"a b b", "b c"})

	data, err := json.Marshal(tok.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := FromSnapshot(snap)

	if got, want := restored.Size(), tok.Size(); got != want {
		t.Errorf("Size = %d, want %d", got, want)
	}
	if id, _ := restored.TokenID("b"); id != 4 {
		t.Errorf("id of 'b' = %d, want 4", id)
	}
}

func TestSnapshot_DropsSizeCap(t *testing.T) {
	tok := New(Options{MaxVocabSize: 5})
	tok.BuildFromText("a b c")

	restored := FromSnapshot(tok.Snapshot())
	res := restored.BuildFromText("one two three four five six")

	// The cap is not part of the snapshot, so the restored instance builds
	// without limit.
	if res.Truncated {
		t.Error("restored tokenizer should be unlimited")
	}
	if restored.Size() != 10 {
		t.Errorf("Size = %d, want 10", restored.Size())
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	tok := New(Options{})
	tok.BuildFromText("x")

	snap := tok.Snapshot()
	snap.Vocab["injected"] = 99

	if tok.HasToken("injected") {
		t.Error("mutating a snapshot must not affect the tokenizer")
	}
}
