package urlkey_test

import (
	"testing"

	"github.com/rohmanhakim/safeurl/pkg/urlkey"
)

func TestKeyDeterministic(t *testing.T) {
	a, err := urlkey.Key("http://example.com/a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := urlkey.Key("http://example.com/a")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same input produced different keys: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected a 64-character hex digest, got %d", len(a))
	}
}

func TestKeyEquivalentSpellings(t *testing.T) {
	spellings := []string{
		"http://example.com",
		"http://EXAMPLE.com",
		"http://example.com:80",
		"http://example.com/",
		"http://example.com/#frag",
	}
	want, err := urlkey.Key(spellings[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range spellings[1:] {
		got, err := urlkey.Key(s)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("expected %q to share a key with %q", s, spellings[0])
		}
	}
}

func TestKeyDistinguishesDocuments(t *testing.T) {
	a, err := urlkey.Key("http://example.com/a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := urlkey.Key("http://example.com/b")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("different documents must not share a key")
	}
}

func TestKeyRejectsBadURL(t *testing.T) {
	if _, err := urlkey.Key("http://host:70000/"); err == nil {
		t.Error("expected an error for an invalid URL")
	}
}

func TestCanonical(t *testing.T) {
	got, err := urlkey.Canonical("http://EXAMPLE.com:80/a/../b#frag")
	if err != nil {
		t.Fatal(err)
	}
	if got != "http://example.com/b" {
		t.Errorf("unexpected canonical form: %s", got)
	}
}
