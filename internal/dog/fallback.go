package dog

import (
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/dog-agent/internal/state"
)

// Idle and play pools the fallback picks from when nothing is urgent.
// Ordered so adjacent noise values land on related behaviors.
var (
	idlePool = []string{
		"stretch", "yawn", "walk_in_circles", "lick_fur",
		"sniff_ground", "look_up_at_owner", "scratch_itch", "shake_body",
	}
	playPool = []string{
		"sniff_ground", "look_out_window", "paw_at_object",
		"chase_light", "fetch_object",
	}
)

// Temperament is a smooth noise source giving the dog a drifting mood:
// consecutive fallback cycles pick nearby behaviors rather than jumping
// around uniformly.
type Temperament struct {
	noise opensimplex.Noise
	epoch time.Time
}

// NewTemperament seeds the noise field; the same seed replays the same
// drift, which keeps the fallback deterministic under test.
func NewTemperament(seed int64) *Temperament {
	return &Temperament{
		noise: opensimplex.NewNormalized(seed),
		epoch: time.Unix(0, 0),
	}
}

// pick selects one name from pool using the noise value at now.
// The ~7 minute period means the dog's inclination shifts over a few
// cycles instead of per call.
func (t *Temperament) pick(pool []string, now time.Time) string {
	v := t.noise.Eval2(now.Sub(t.epoch).Minutes()/7, 0)
	idx := int(v * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return pool[idx]
}

// fallbackDecide is the rule-based autonomous decider used when no
// model is configured: urgent needs first, highest value first, then a
// temperament-picked idle behavior.
func fallbackDecide(t *Temperament, st state.State, now time.Time) *Decision {
	type urgent struct {
		value    float64
		behavior string
	}
	var urgents []urgent

	if st.Hunger > 70 {
		urgents = append(urgents, urgent{st.Hunger, "eat_food"})
	}
	if st.Thirst > 70 {
		urgents = append(urgents, urgent{st.Thirst, "drink_water"})
	}
	if st.Fatigue > 80 {
		urgents = append(urgents, urgent{st.Fatigue, "sleep"})
	}
	if st.Boredom > 70 {
		urgents = append(urgents, urgent{st.Boredom, t.pick(playPool, now)})
	}

	// Highest value first (insertion sort — at most four entries).
	for i := 1; i < len(urgents); i++ {
		for j := i; j > 0 && urgents[j].value > urgents[j-1].value; j-- {
			urgents[j], urgents[j-1] = urgents[j-1], urgents[j]
		}
	}

	d := &Decision{}
	for _, u := range urgents {
		if len(d.Behaviors) == maxBehaviorsPerCycle {
			break
		}
		d.Behaviors = append(d.Behaviors, u.behavior)
	}
	if len(d.Behaviors) == 0 {
		d.Behaviors = []string{t.pick(idlePool, now)}
	}
	return d
}

// fallbackRespond is the interactive fallback: without a model the dog
// can't parse the owner's words, so it just seeks attention.
func fallbackRespond() *Decision {
	return &Decision{Behaviors: []string{"look_up_at_owner", "wag_tail"}}
}
