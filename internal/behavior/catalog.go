// Package behavior defines the fixed catalog of 32 dog behaviors.
// Each behavior is pure data: a delta set applied atomically to the
// state plus a flavor line printed when the dog performs it. The
// decision layer picks behaviors by name; nothing here dispatches.
package behavior

import (
	"github.com/talgya/dog-agent/internal/state"
)

// Category groups behaviors for the model's instruction sheet.
type Category string

const (
	Physiological Category = "physiological"
	Social        Category = "social"
	Exploration   Category = "exploration"
	Emotional     Category = "emotional"
	Training      Category = "training"
	Special       Category = "special"
)

// Behavior is one named event the dog can perform.
type Behavior struct {
	Name     string
	Category Category
	Deltas   state.Deltas
	Flavor   string
}

// catalog is ordered by category for stable instruction sheets.
var catalog = []Behavior{
	// Physiological
	{"stretch", Physiological, state.Deltas{state.Fatigue: -3, state.Happiness: 2},
		"Stretches out, front legs reaching forward... that feels better!"},
	{"yawn", Physiological, state.Deltas{state.Fatigue: -2},
		"Opens wide... yaaawn~"},
	{"drink_water", Physiological, state.Deltas{state.Thirst: -30, state.Happiness: 5},
		"Trots to the water bowl... lap lap lap... much better!"},
	{"eat_food", Physiological, state.Deltas{state.Hunger: -40, state.Happiness: 10, state.Boredom: -5},
		"Eats from the bowl... chomp chomp... delicious!"},
	{"lick_fur", Physiological, state.Deltas{state.Happiness: 3, state.Boredom: -2},
		"Licks paws and grooms fur... staying clean!"},
	{"sleep", Physiological, state.Deltas{state.Fatigue: -50, state.Boredom: -10, state.Hunger: 5},
		"Curls up... eyes closing... zzz... (sound asleep)"},

	// Social
	{"wag_tail", Social, state.Deltas{state.Happiness: 5},
		"Tail wags excitedly! So happy!"},
	{"nuzzle_owner", Social, state.Deltas{state.Happiness: 8, state.Boredom: -5},
		"Nuzzles against the owner's leg... looking for attention!"},
	{"lick_hand", Social, state.Deltas{state.Happiness: 7, state.Boredom: -3},
		"Licks the owner's hand affectionately!"},
	{"follow_owner", Social, state.Deltas{state.Happiness: 5, state.Boredom: -5},
		"Follows the owner closely... staying right by their side!"},
	{"look_up_at_owner", Social, state.Deltas{state.Happiness: 3},
		"Looks up with big eyes... waiting for attention!"},

	// Exploration
	{"sniff_ground", Exploration, state.Deltas{state.Boredom: -8, state.Fatigue: 2},
		"Nose to the floor... sniffing everywhere... investigating!"},
	{"walk_in_circles", Exploration, state.Deltas{state.Boredom: -5, state.Fatigue: 3},
		"Walks in circles... exploring the space!"},
	{"paw_at_object", Exploration, state.Deltas{state.Boredom: -10, state.Happiness: 5},
		"Paws at something interesting... investigating!"},
	{"look_out_window", Exploration, state.Deltas{state.Boredom: -12, state.Happiness: 5},
		"Stares out the window... watching the world go by!"},
	{"chase_light", Exploration, state.Deltas{state.Boredom: -15, state.Fatigue: 8, state.Happiness: 10},
		"Chases a spot of light! Darting back and forth excitedly!"},

	// Emotional
	{"bark", Emotional, state.Deltas{state.Boredom: -5},
		"Woof! Woof!"},
	{"growl", Emotional, state.Deltas{state.Happiness: -5},
		"Grrrr... (a low growl)"},
	{"pin_ears_back", Emotional, state.Deltas{state.Happiness: -3},
		"Ears flatten back... feeling uneasy"},
	{"tuck_tail", Emotional, state.Deltas{state.Happiness: -5},
		"Tail tucks between the legs... scared or submissive"},
	{"jump_excitedly", Emotional, state.Deltas{state.Happiness: 8, state.Boredom: -10, state.Fatigue: 5},
		"Jumps up and down! So excited! Boing boing!"},

	// Training
	{"sit", Training, state.Deltas{state.Happiness: 5, state.Fatigue: -3},
		"Sits obediently... tail sweeping the floor!"},
	{"lie_down", Training, state.Deltas{state.Fatigue: -5, state.Happiness: 3},
		"Lies flat on the floor... resting!"},
	{"shake_paw", Training, state.Deltas{state.Happiness: 8, state.Boredom: -5},
		"Lifts a paw to shake... such a good dog!"},
	{"roll_over", Training, state.Deltas{state.Happiness: 10, state.Boredom: -8, state.Fatigue: 3},
		"Rolls over, belly up! Showing off!"},
	{"play_dead", Training, state.Deltas{state.Happiness: 7, state.Boredom: -6},
		"Flops over dramatically... playing dead! (tongue out)"},
	{"fetch_object", Training, state.Deltas{state.Happiness: 12, state.Boredom: -15, state.Fatigue: 10},
		"Runs off to fetch... brings it right back! Perfect retrieve!"},

	// Special
	{"scratch_itch", Special, state.Deltas{state.Happiness: 3},
		"Scratches with a hind leg... ahh, much better!"},
	{"sneeze", Special, state.Deltas{},
		"Achoo! (sneezes)"},
	{"shake_body", Special, state.Deltas{state.Happiness: 3},
		"Shakes the whole body vigorously... fur flying everywhere!"},
	{"snore", Special, state.Deltas{},
		"Zzz... zzz... (snoring softly)"},
	{"dream_twitch", Special, state.Deltas{},
		"Legs twitching... paws paddling... (dreaming of running!)"},
}

// byName is built once at init for O(1) lookup.
var byName = func() map[string]Behavior {
	m := make(map[string]Behavior, len(catalog))
	for _, b := range catalog {
		m[b.Name] = b
	}
	return m
}()

// Lookup returns the behavior for name, if the catalog knows it.
func Lookup(name string) (Behavior, bool) {
	b, ok := byName[name]
	return b, ok
}

// All returns the full catalog in declaration order.
func All() []Behavior {
	out := make([]Behavior, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns the names in a category, preserving catalog order.
func ByCategory(c Category) []string {
	var names []string
	for _, b := range catalog {
		if b.Category == c {
			names = append(names, b.Name)
		}
	}
	return names
}
