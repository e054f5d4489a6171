package similarity

import "testing"

func TestLevenshtein(t *testing.T) {
	var tests = []struct {
		a, b string
		out  float64
	}{
		{"", "", 100},
		{"hello", "hello", 100},
		{"Hello ", "hello", 100},
		{"hello", "", 0},
		{"", "hello", 0},
		{"kitten", "sitting", (1 - 3.0/7.0) * 100},
		{"スパム", "スパム", 100},
		{"スパム", "スハム", (1 - 1.0/3.0) * 100},
	}

	for _, test := range tests {
		if out := Levenshtein(test.a, test.b); !close(out, test.out) {
			t.Errorf("Levenshtein(%q, %q) = %v, want %v", test.a, test.b, out, test.out)
		}
	}
}

func TestLevenshteinSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"buy cheap meds", "buy cheap pills"},
		{"", "abc"},
		{"無料プレゼント", "無料プレゼント企画"},
	}
	for _, p := range pairs {
		if Levenshtein(p[0], p[1]) != Levenshtein(p[1], p[0]) {
			t.Errorf("Levenshtein not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestTrigramJaccard(t *testing.T) {
	var tests = []struct {
		a, b string
		out  float64
	}{
		{"", "", 0},
		{"ab", "ab", 0},
		{"abc", "abc", 100},
		{"abc", "xyz", 0},
		{"abcd", "abcd", 100},
		// abcabc and abc share the same trigram set ordering aside.
		{"abcabcabc", "abcabc", 100},
		{"abcd", "bcda", 100 * 1.0 / 3.0},
	}

	for _, test := range tests {
		if out := TrigramJaccard(test.a, test.b); !close(out, test.out) {
			t.Errorf("TrigramJaccard(%q, %q) = %v, want %v", test.a, test.b, out, test.out)
		}
	}
}

func TestTrigramJaccardRange(t *testing.T) {
	samples := []string{"abcdef", "defabc", "フリーコイン配布中", "free coins here"}
	for _, a := range samples {
		for _, b := range samples {
			out := TrigramJaccard(a, b)
			if out < 0 || out > 100 {
				t.Errorf("TrigramJaccard(%q, %q) = %v out of range", a, b, out)
			}
			if out != TrigramJaccard(b, a) {
				t.Errorf("TrigramJaccard not symmetric for %q / %q", a, b)
			}
		}
	}
}

func close(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
