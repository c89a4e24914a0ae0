package vocab

import (
	"path/filepath"
	"testing"

	"github.com/lexitok/lexitok/internal/db"
	"github.com/lexitok/lexitok/internal/tokenizer"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func buildTokenizer(t *testing.T, text string) *tokenizer.Tokenizer {
	t.Helper()
	tok := tokenizer.New(tokenizer.Options{})
	tok.BuildFromText(text)
	return tok
}

func TestStore_SaveAndGet(t *testing.T) {
	store := setupTestDB(t)
	tok := buildTokenizer(t, "hello world!")

	if _, err := store.Save("default", tok); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get("default")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Size() != tok.Size() {
		t.Errorf("restored size = %d, want %d", got.Size(), tok.Size())
	}
	if id, ok := got.TokenID("hello"); !ok || id != 4 {
		t.Errorf("restored id of 'hello' = %d, %v; want 4", id, ok)
	}
}

func TestStore_SaveUpserts(t *testing.T) {
	store := setupTestDB(t)

	id1, err := store.Save("v", buildTokenizer(t, "one"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	id2, err := store.Save("v", buildTokenizer(t, "one two"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if id1 != id2 {
		t.Errorf("upsert changed the vocabulary id: %s vs %s", id1, id2)
	}

	got, err := store.Get("v")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.HasToken("two") {
		t.Error("second save not visible")
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List returned %d entries, want 1", len(entries))
	}
	if entries[0].Size != 6 {
		t.Errorf("listed size = %d, want 6", entries[0].Size)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := setupTestDB(t)

	if _, err := store.Get("nope"); err == nil {
		t.Error("expected error for missing vocabulary")
	}
}

func TestStore_Delete(t *testing.T) {
	store := setupTestDB(t)
	store.Save("v", buildTokenizer(t, "x"))

	if err := store.Delete("v"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("v"); err == nil {
		t.Error("vocabulary still present after delete")
	}
	if err := store.Delete("v"); err == nil {
		t.Error("expected error deleting a missing vocabulary")
	}
}

func TestStore_BuildHistory(t *testing.T) {
	store := setupTestDB(t)

	tok := tokenizer.New(tokenizer.Options{MaxVocabSize: 5})
	res := tok.BuildFromText("a b c")

	id, err := store.Save("v", tok)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.RecordBuild(id, "text", 1, res); err != nil {
		t.Fatalf("RecordBuild: %v", err)
	}

	builds, err := store.ListBuilds("v")
	if err != nil {
		t.Fatalf("ListBuilds: %v", err)
	}
	if len(builds) != 1 {
		t.Fatalf("ListBuilds returned %d rows, want 1", len(builds))
	}
	b := builds[0]
	if b.Source != "text" || b.TextCount != 1 {
		t.Errorf("build row = %+v", b)
	}
	if !b.Truncated {
		t.Error("truncation flag not persisted")
	}
	if b.TokenCount != 5 {
		t.Errorf("token count = %d, want 5", b.TokenCount)
	}
}

func TestStore_CaseSensitivityPersisted(t *testing.T) {
	store := setupTestDB(t)

	tok := tokenizer.New(tokenizer.Options{CaseSensitive: true})
	tok.BuildFromText("Mixed Case")
	store.Save("cs", tok)

	got, err := store.Get("cs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.CaseSensitive() {
		t.Error("case sensitivity lost through the store")
	}
	if !got.HasToken("Mixed") {
		t.Error("case-sensitive token lost")
	}
}
