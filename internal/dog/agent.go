package dog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talgya/dog-agent/internal/behavior"
	"github.com/talgya/dog-agent/internal/llm"
	"github.com/talgya/dog-agent/internal/store"
)

const (
	historyLimit   = 20
	decisionTokens = 512
)

// Agent runs the observe → decide → act cycle for one dog.
type Agent struct {
	Store       *store.Store
	LLM         *llm.Client // nil means rule-based fallback
	Temperament *Temperament
}

// AutonomousCycle refreshes the state and lets the dog act on its own
// needs: model-decided when a client is configured, instinct otherwise.
func (a *Agent) AutonomousCycle(ctx context.Context) error {
	rep, err := a.Store.RefreshAndDescribe()
	if err != nil {
		return err
	}

	prompt := contextPrompt(rep) + "\n\nWhat do you do now?"

	var dec *Decision
	if a.LLM.Enabled() {
		dec, err = a.decide(ctx, autonomousInstructions(), prompt)
		if err != nil {
			slog.Warn("model decision failed, falling back to instinct", "error", err)
		}
	}
	if dec == nil {
		dec = fallbackDecide(a.Temperament, rep.State, time.Now())
	}

	return a.perform(dec)
}

// InteractiveCycle refreshes the state and responds to the owner.
func (a *Agent) InteractiveCycle(ctx context.Context, input string) error {
	rep, err := a.Store.RefreshAndDescribe()
	if err != nil {
		return err
	}

	prompt := contextPrompt(rep) + "\n\nOwner's action/command: " + input

	var dec *Decision
	if a.LLM.Enabled() {
		dec, err = a.decide(ctx, interactiveInstructions(), prompt)
		if err != nil {
			slog.Warn("model decision failed, falling back", "error", err)
		}
	}
	if dec == nil {
		dec = fallbackRespond()
	}

	return a.perform(dec)
}

// decide sends the conversation so far plus the current prompt to the
// model and parses its JSON decision. Both turns are appended to the
// session log so the dog remembers across cycles and restarts.
func (a *Agent) decide(ctx context.Context, system, prompt string) (*Decision, error) {
	history, err := a.Store.RecentMessages(historyLimit)
	if err != nil {
		slog.Warn("conversation history unavailable", "error", err)
		history = nil
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: prompt})

	resp, err := a.LLM.Complete(ctx, system, msgs, decisionTokens)
	if err != nil {
		return nil, err
	}

	dec, err := parseDecision(resp)
	if err != nil {
		return nil, err
	}

	if err := a.Store.AppendMessage("user", prompt); err != nil {
		slog.Warn("session append failed", "error", err)
	}
	if err := a.Store.AppendMessage("assistant", resp); err != nil {
		slog.Warn("session append failed", "error", err)
	}

	return dec, nil
}

// perform applies each chosen behavior through the store and prints its
// flavor line. A persistence failure stops the chain — whatever applied
// before it is durable, the failed behavior is fully absent.
func (a *Agent) perform(d *Decision) error {
	for _, name := range d.Behaviors {
		b, ok := behavior.Lookup(name)
		if !ok {
			slog.Warn("unknown behavior skipped", "behavior", name)
			continue
		}
		if err := a.Store.ApplyBehavior(b.Name, b.Deltas); err != nil {
			return err
		}
		fmt.Printf("  🐾 %s\n", b.Flavor)
	}
	if d.Bark != "" {
		fmt.Printf("🐕 %s\n", d.Bark)
	}
	return nil
}
