package state

import (
	"math"
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefaultValues(t *testing.T) {
	s := Default(t0)
	if s.Hunger != 20 || s.Thirst != 20 || s.Fatigue != 20 || s.Boredom != 30 || s.Happiness != 70 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if !s.LastUpdate.Equal(t0) {
		t.Fatalf("LastUpdate = %v, want %v", s.LastUpdate, t0)
	}
}

func TestClampIdempotent(t *testing.T) {
	s := Default(t0)
	before := s
	s.Clamp()
	if s != before {
		t.Fatalf("clamp changed an in-range state: %+v -> %+v", before, s)
	}
}

func TestClampOutOfRange(t *testing.T) {
	s := State{Hunger: -5, Thirst: 150, Fatigue: 100.0001, Boredom: -0.0001, Happiness: 50}
	s.Clamp()
	if s.Hunger != 0 || s.Thirst != 100 || s.Fatigue != 100 || s.Boredom != 0 || s.Happiness != 50 {
		t.Fatalf("clamp failed: %+v", s)
	}
}

func TestDecayLinearity(t *testing.T) {
	s := Default(t0)
	s.Decay(t0.Add(600 * time.Second))

	if !almost(s.Hunger, 40) {
		t.Errorf("hunger = %v, want 40", s.Hunger)
	}
	if !almost(s.Thirst, 35) {
		t.Errorf("thirst = %v, want 35", s.Thirst)
	}
	if !almost(s.Fatigue, 30) {
		t.Errorf("fatigue = %v, want 30", s.Fatigue)
	}
	if !almost(s.Boredom, 45) {
		t.Errorf("boredom = %v, want 45", s.Boredom)
	}
	// Hunger and thirst stayed under 70, so happiness holds.
	if !almost(s.Happiness, 70) {
		t.Errorf("happiness = %v, want 70", s.Happiness)
	}
}

func TestDecayNeglectPenalty(t *testing.T) {
	s := Default(t0)
	s.Hunger = 75
	s.Decay(t0.Add(600 * time.Second))

	if !almost(s.Happiness, 65) {
		t.Errorf("happiness = %v, want 65 (0.5/min over 10 min)", s.Happiness)
	}
	if !almost(s.Hunger, 95) {
		t.Errorf("hunger = %v, want 95", s.Hunger)
	}
}

func TestDecayZeroElapsed(t *testing.T) {
	s := Default(t0)
	s.Decay(t0)
	if s.Hunger != 20 || s.Thirst != 20 || s.Fatigue != 20 || s.Boredom != 30 || s.Happiness != 70 {
		t.Fatalf("zero-elapsed decay changed attributes: %+v", s)
	}
	if !s.LastUpdate.Equal(t0) {
		t.Fatalf("LastUpdate moved: %v", s.LastUpdate)
	}
}

func TestDecayClockNeverMovesBackward(t *testing.T) {
	s := Default(t0)
	s.Decay(t0.Add(-time.Hour))
	if s.Hunger != 20 {
		t.Fatalf("backward clock mutated attributes: %+v", s)
	}
	if s.LastUpdate.Before(t0) {
		t.Fatalf("LastUpdate moved backward: %v", s.LastUpdate)
	}
}

func TestDecayLongIdleClamps(t *testing.T) {
	s := Default(t0)
	s.Decay(t0.Add(30 * 24 * time.Hour))

	if s.Hunger != 100 || s.Thirst != 100 || s.Fatigue != 100 || s.Boredom != 100 {
		t.Fatalf("long idle should pin needs at 100: %+v", s)
	}
	if s.Happiness != 70 {
		// Pre-decay hunger/thirst were 20; the neglect check runs once
		// per call on the starting values, so no penalty applies.
		t.Fatalf("happiness = %v, want 70", s.Happiness)
	}
}

func TestApplyDeltasUnknownKeyIgnored(t *testing.T) {
	s := Default(t0)
	before := s
	s.ApplyDeltas(Deltas{"nonexistent_field": 5})
	if s != before {
		t.Fatalf("unknown key mutated state: %+v -> %+v", before, s)
	}
}

func TestApplyDeltasAtomicClamp(t *testing.T) {
	s := Default(t0)
	s.ApplyDeltas(Deltas{Hunger: -40, Happiness: 10, Boredom: -5})
	if s.Hunger != 0 {
		t.Errorf("hunger = %v, want 0 (clamped from -20)", s.Hunger)
	}
	if s.Happiness != 80 {
		t.Errorf("happiness = %v, want 80", s.Happiness)
	}
	if s.Boredom != 25 {
		t.Errorf("boredom = %v, want 25", s.Boredom)
	}
}

func TestMoodTiers(t *testing.T) {
	cases := []struct {
		happiness float64
		want      string
	}{
		{90, "content"},
		{70.5, "content"},
		{70, "neutral"},
		{30, "neutral"},
		{29.9, "unhappy"},
		{0, "unhappy"},
	}
	for _, c := range cases {
		s := State{Happiness: c.happiness}
		if got := s.Mood(); got != c.want {
			t.Errorf("Mood(happiness=%v) = %q, want %q", c.happiness, got, c.want)
		}
	}
}

func TestNeedsSummaryTiers(t *testing.T) {
	cases := []struct {
		name string
		s    State
		want string
	}{
		{"content", State{Hunger: 20, Thirst: 20, Fatigue: 20, Boredom: 30}, "content"},
		{"very hungry", State{Hunger: 75}, "very hungry"},
		{"a bit hungry", State{Hunger: 50}, "a bit hungry"},
		{"fatigue high threshold", State{Fatigue: 75}, "tired"},
		{"exhausted", State{Fatigue: 85}, "exhausted"},
		{"combined", State{Hunger: 80, Thirst: 45, Boredom: 72}, "very hungry, a bit thirsty, very bored"},
	}
	for _, c := range cases {
		if got := c.s.NeedsSummary(); got != c.want {
			t.Errorf("%s: NeedsSummary() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestStatusTextWarnings(t *testing.T) {
	s := State{Hunger: 80, Thirst: 20, Fatigue: 20, Boredom: 20, Happiness: 80}
	text := s.StatusText()
	if !strings.Contains(text, "hungry!") {
		t.Errorf("expected hunger warning in:\n%s", text)
	}
	if strings.Contains(text, "thirsty!") {
		t.Errorf("unexpected thirst warning in:\n%s", text)
	}
	if !strings.Contains(text, "mood: content") {
		t.Errorf("expected mood line in:\n%s", text)
	}
}
