package config

import (
	"testing"
)

func TestFreezeLadder(t *testing.T) {
	var tests = []struct {
		times   int
		minutes int64
	}{
		{0, 60 * 24},      // first freeze: 24 hours
		{1, 60 * 72},      // second: 72 hours
		{2, 60 * 24 * 7},  // third: a week
		{3, 60 * 24 * 30}, // fourth and on: a month
		{9, 60 * 24 * 30},
		{-1, 60 * 24},
	}

	for _, test := range tests {
		effects, err := FreezeRules{}.Effects(test.times)
		if err != nil {
			t.Fatal(err)
		}
		if effects.Duration != test.minutes {
			t.Errorf("Effects(%d) = %d minutes, want %d", test.times, effects.Duration, test.minutes)
		}
	}
}

func TestFreezeEffectsScript(t *testing.T) {
	rule := FreezeRules{Code: `
		exports.duration = 60 * 12 * (freezeN + 1);
	`}

	effects, err := rule.Effects(3)
	if err != nil {
		t.Fatal(err)
	}
	if effects.Duration != 60*12*4 {
		t.Errorf("scripted Effects(3) = %d, want %d", effects.Duration, 60*12*4)
	}

	if _, err := (FreezeRules{Code: `syntax error(`}).Effects(0); err == nil {
		t.Error("expected an error from a broken effects script")
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	if len(rules.Spam.NGWords) != 19 {
		t.Errorf("NG list carries %d terms, want 19", len(rules.Spam.NGWords))
	}
	if !InGroup(rules.Groups.Restricted, "スパム・迷惑行為") {
		t.Error("spam reason missing from the restricted group")
	}
	if InGroup(rules.Groups.Restricted, "異なる思想の強要") {
		t.Error("ideology reason must not sit in the restricted group")
	}
	if w := rules.Reasons["重複投稿"]; w != 0.5 {
		t.Errorf("duplicate-post weight = %v, want 0.5", w)
	}
	if rules.Thresholds.Ban != 4.0 || rules.Thresholds.Freeze != 2.0 {
		t.Error("ladder thresholds drifted from their production values")
	}
}
