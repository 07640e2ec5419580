package dog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talgya/dog-agent/internal/behavior"
)

// maxBehaviorsPerCycle caps how many behaviors one decision may chain.
const maxBehaviorsPerCycle = 3

// Decision is the model's chosen behaviors for one cycle, plus an
// optional spoken line.
type Decision struct {
	Behaviors []string `json:"behaviors"`
	Bark      string   `json:"bark,omitempty"`
}

// parseDecision turns raw model output into a guardrailed Decision.
func parseDecision(raw string) (*Decision, error) {
	// Strip markdown fences if the model wraps them anyway.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var d Decision
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("parse decision (raw: %s): %w", raw, err)
	}

	enforceGuardrails(&d)
	return &d, nil
}

// enforceGuardrails drops behavior names the catalog does not know and
// caps the chain length. Unknown names are a warning, never an error —
// the same forward-extensibility policy as unknown delta keys.
func enforceGuardrails(d *Decision) {
	kept := d.Behaviors[:0]
	for _, name := range d.Behaviors {
		if _, ok := behavior.Lookup(name); !ok {
			slog.Warn("model chose unknown behavior, skipping", "behavior", name)
			continue
		}
		kept = append(kept, name)
	}
	if len(kept) > maxBehaviorsPerCycle {
		slog.Warn("behavior chain capped",
			"requested", len(kept), "capped", maxBehaviorsPerCycle)
		kept = kept[:maxBehaviorsPerCycle]
	}
	d.Behaviors = kept
}
