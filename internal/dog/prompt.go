// Package dog glues the state store, the behavior catalog, and the
// model together: observe the dog's needs, decide on 1–3 behaviors,
// apply them through the store, and print each behavior's flavor line.
package dog

import (
	"fmt"
	"strings"

	"github.com/talgya/dog-agent/internal/behavior"
	"github.com/talgya/dog-agent/internal/store"
)

// baseInstructions is shared by both modes. The behavior lists are
// generated from the catalog so the instruction sheet can never drift
// from what Lookup accepts.
var baseInstructions = func() string {
	var b strings.Builder
	b.WriteString(`You are a dog. You act only by choosing behaviors from the fixed list below.

Respond with ONLY valid JSON (no markdown fences, no prose outside the JSON):
{
  "behaviors": ["stretch", "wag_tail"],
  "bark": "optional short first-person line from the dog"
}

Rules:
- "behaviors" lists 1 to 3 behavior names, in the order performed.
- Use only names from the list below. Unknown names are ignored.
- Keep "bark" short and dog-like, or omit it.

Available behaviors:
`)
	for _, c := range []behavior.Category{
		behavior.Physiological, behavior.Social, behavior.Exploration,
		behavior.Emotional, behavior.Training, behavior.Special,
	} {
		fmt.Fprintf(&b, "- %s: %s\n", c, strings.Join(behavior.ByCategory(c), ", "))
	}
	return b.String()
}()

func autonomousInstructions() string {
	return baseInstructions + `
Mode: autonomous. You are acting on your own internal needs.

Decide from your current state:
- Very hungry (>70): eat_food
- Very thirsty (>70): drink_water
- Exhausted (>80): sleep
- Very bored (>70): explore or play (sniff_ground, chase_light, paw_at_object, ...)
- Several needs at once: address the highest value first
- Otherwise: everyday behaviors (stretch, yawn, walk_in_circles, ...)

Perform 1-3 related behaviors that fit together naturally.`
}

func interactiveInstructions() string {
	return baseInstructions + `
Mode: interactive. You are responding to your owner.

Examples:
Owner: "come here"
-> {"behaviors": ["look_up_at_owner", "wag_tail", "follow_owner"]}

Owner: "sit"
-> {"behaviors": ["sit"]}

Owner: "good dog!" (petting you)
-> {"behaviors": ["wag_tail", "lick_hand", "jump_excitedly"]}

Owner: "go fetch"
-> {"behaviors": ["jump_excitedly", "fetch_object"]}

Respond naturally to the owner's words by picking fitting behaviors.`
}

// contextPrompt renders the refreshed state the way the model sees it.
func contextPrompt(rep store.Report) string {
	st := rep.State
	return fmt.Sprintf(`Current internal state:
- hunger: %.1f/100
- thirst: %.1f/100
- fatigue: %.1f/100
- boredom: %.1f/100
- happiness: %.1f/100
- overall: %s`,
		st.Hunger, st.Thirst, st.Fatigue, st.Boredom, st.Happiness, rep.Summary)
}
