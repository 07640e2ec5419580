// Package state holds the dog's internal state model: five bounded
// attributes that accrue over time and shift in response to behaviors.
// Pure numeric rules only — persistence lives in internal/store.
package state

import (
	"fmt"
	"strings"
	"time"
)

// Attribute names the bounded fields a behavior delta may target.
type Attribute string

const (
	Hunger    Attribute = "hunger"
	Thirst    Attribute = "thirst"
	Fatigue   Attribute = "fatigue"
	Boredom   Attribute = "boredom"
	Happiness Attribute = "happiness"
)

// Deltas maps attributes to signed adjustments. Keys outside the five
// known attributes are ignored, so a catalog entry only lists the
// attributes it affects.
type Deltas map[Attribute]float64

// Per-minute accrual rates applied by Decay.
const (
	hungerPerMinute  = 2.0
	thirstPerMinute  = 1.5
	fatiguePerMinute = 1.0
	boredomPerMinute = 1.5

	// Happiness drains while hunger or thirst sit above the warning line.
	neglectPerMinute = 0.5
	neglectThreshold = 70.0
)

// State is the dog's internal state. All five attributes stay within
// [0, 100] after any mutation completes.
type State struct {
	Hunger     float64   `json:"hunger"`
	Thirst     float64   `json:"thirst"`
	Fatigue    float64   `json:"fatigue"`
	Boredom    float64   `json:"boredom"`
	Happiness  float64   `json:"happiness"`
	LastUpdate time.Time `json:"last_update_time"`
}

// Default returns the starting state for a freshly adopted dog.
func Default(now time.Time) State {
	return State{
		Hunger:     20,
		Thirst:     20,
		Fatigue:    20,
		Boredom:    30,
		Happiness:  70,
		LastUpdate: now,
	}
}

// Clamp forces every attribute into [0, 100]. Idempotent.
func (s *State) Clamp() {
	s.Hunger = clamp(s.Hunger)
	s.Thirst = clamp(s.Thirst)
	s.Fatigue = clamp(s.Fatigue)
	s.Boredom = clamp(s.Boredom)
	s.Happiness = clamp(s.Happiness)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Decay integrates time-based accrual since LastUpdate and stamps the
// state with now. A non-positive interval leaves the attributes alone,
// and LastUpdate never moves backward, so calling with a stale clock is
// harmless. Arbitrarily long idle periods just clamp.
func (s *State) Decay(now time.Time) {
	elapsed := now.Sub(s.LastUpdate)
	if elapsed > 0 {
		minutes := elapsed.Minutes()

		// Neglect check uses the pre-decay values, once per call.
		neglected := s.Hunger > neglectThreshold || s.Thirst > neglectThreshold

		s.Hunger += hungerPerMinute * minutes
		s.Thirst += thirstPerMinute * minutes
		s.Fatigue += fatiguePerMinute * minutes
		s.Boredom += boredomPerMinute * minutes
		if neglected {
			s.Happiness -= neglectPerMinute * minutes
		}
		s.Clamp()
	}
	if now.After(s.LastUpdate) {
		s.LastUpdate = now
	}
}

// ApplyDeltas adds each known delta to its attribute, then clamps once,
// so partial application is never observable. Unknown keys are skipped.
func (s *State) ApplyDeltas(d Deltas) {
	for attr, delta := range d {
		switch attr {
		case Hunger:
			s.Hunger += delta
		case Thirst:
			s.Thirst += delta
		case Fatigue:
			s.Fatigue += delta
		case Boredom:
			s.Boredom += delta
		case Happiness:
			s.Happiness += delta
		}
	}
	s.Clamp()
}

// Mood buckets happiness into three tiers for display.
func (s *State) Mood() string {
	switch {
	case s.Happiness > 70:
		return "content"
	case s.Happiness >= 30:
		return "neutral"
	default:
		return "unhappy"
	}
}

// StatusText renders a multi-line readout for the terminal, with a
// warning marker on any need above 70 and the mood tier.
func (s *State) StatusText() string {
	var b strings.Builder
	b.WriteString("Dog status:\n")
	fmt.Fprintf(&b, "  hunger:    %5.1f/100%s\n", s.Hunger, warn(s.Hunger, "hungry!"))
	fmt.Fprintf(&b, "  thirst:    %5.1f/100%s\n", s.Thirst, warn(s.Thirst, "thirsty!"))
	fmt.Fprintf(&b, "  fatigue:   %5.1f/100%s\n", s.Fatigue, warn(s.Fatigue, "tired!"))
	fmt.Fprintf(&b, "  boredom:   %5.1f/100%s\n", s.Boredom, warn(s.Boredom, "bored!"))
	fmt.Fprintf(&b, "  happiness: %5.1f/100\n", s.Happiness)
	fmt.Fprintf(&b, "  mood: %s", s.Mood())
	return b.String()
}

func warn(v float64, label string) string {
	if v > 70 {
		return "  (" + label + ")"
	}
	return ""
}

// NeedsSummary classifies each need into tiers and joins the active
// phrases. A dog with nothing pressing reports itself content. This is
// the text handed to the decision-making model.
func (s *State) NeedsSummary() string {
	var needs []string

	switch {
	case s.Hunger > 70:
		needs = append(needs, "very hungry")
	case s.Hunger > 40:
		needs = append(needs, "a bit hungry")
	}
	switch {
	case s.Thirst > 70:
		needs = append(needs, "very thirsty")
	case s.Thirst > 40:
		needs = append(needs, "a bit thirsty")
	}
	// Fatigue runs on higher thresholds — dogs nap through a lot.
	switch {
	case s.Fatigue > 80:
		needs = append(needs, "exhausted")
	case s.Fatigue > 50:
		needs = append(needs, "tired")
	}
	switch {
	case s.Boredom > 70:
		needs = append(needs, "very bored")
	case s.Boredom > 40:
		needs = append(needs, "a bit bored")
	}

	if len(needs) == 0 {
		return "content"
	}
	return strings.Join(needs, ", ")
}
