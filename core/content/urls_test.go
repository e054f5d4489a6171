package content

import (
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	var tests = []struct{ in, out string }{
		{"https://Example.com/Promo/", "https://example.com/promo"},
		{"  http://foo.bar/baz#section ", "http://foo.bar/baz"},
		{"https://shop.jp/items?id=3&ref=x#top", "https://shop.jp/items?id=3&ref=x"},
		{"https://plain.example", "https://plain.example"},
	}

	for _, test := range tests {
		if out := NormalizeURL(test.in); out != test.out {
			t.Errorf("NormalizeURL(%q) = %q, want %q", test.in, out, test.out)
		}
	}
}

func TestExtractURLs(t *testing.T) {
	body := "見てね https://example.com/a and also https://example.com/a/ plus http://other.jp/b#x"
	got := ExtractURLs(body)
	want := []string{"https://example.com/a", "http://other.jp/b"}
	if len(got) != len(want) {
		t.Fatalf("ExtractURLs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExtractURLs[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if out := ExtractURLs("no links in here"); out != nil {
		t.Errorf("expected nil for linkless body, got %v", out)
	}
}
