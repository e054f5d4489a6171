package clock

import (
	"testing"
	"time"
)

func TestFrozenClock(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Frozen(at)

	if !c.Now().Equal(at) {
		t.Errorf("Now() = %v, want %v", c.Now(), at)
	}

	c.Advance(11 * time.Hour)
	if !c.Now().Equal(at.Add(11 * time.Hour)) {
		t.Errorf("Advance drifted: %v", c.Now())
	}

	c.Set(at.AddDate(-1, 0, 0))
	if !c.Now().Equal(at.AddDate(-1, 0, 0)) {
		t.Errorf("Set drifted: %v", c.Now())
	}
}

func TestRealClockIsUTC(t *testing.T) {
	if zone, _ := Real().Now().Zone(); zone != "UTC" {
		t.Errorf("real clock zone = %q, want UTC", zone)
	}
}
