// Command dogagent runs the digital dog in the terminal. The dog
// responds to whatever the owner types; after a few seconds of silence
// it acts on its own needs instead.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/talgya/dog-agent/internal/dog"
	"github.com/talgya/dog-agent/internal/llm"
	"github.com/talgya/dog-agent/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	// Configuration from environment.
	dbPath := envOrDefault("DOG_DB_PATH", "data/dog.db")
	namespace := envOrDefault("DOG_NAMESPACE", "dog")
	timeoutSec := envIntOrDefault("DOG_INPUT_TIMEOUT", 10)
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	model := os.Getenv("DOG_MODEL")

	inputTimeout := time.Duration(timeoutSec) * time.Second

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			slog.Error("failed to create data directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	st, err := store.Open(dbPath, namespace)
	if err != nil {
		slog.Error("failed to open state store", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	llmClient := llm.NewClient(anthropicKey, model)
	if !llmClient.Enabled() {
		slog.Warn("ANTHROPIC_API_KEY not set — the dog runs on instinct only")
	}

	agent := &dog.Agent{
		Store:       st,
		LLM:         llmClient,
		Temperament: dog.NewTemperament(rand.Int63()),
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("🐕 Dog agent is awake!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nThe dog is lying quietly...")
	fmt.Println(st.StatusText())
	fmt.Println("\nTips:")
	fmt.Println("  - Talk to the dog naturally (e.g. \"come here\", \"sit\", \"good dog\")")
	fmt.Printf("  - After %s of silence the dog acts on its own\n", inputTimeout)
	fmt.Println("  - Type 'status' to see how the dog is doing")
	fmt.Println("  - Type 'exit' or 'quit' to leave")
	fmt.Println(strings.Repeat("=", 60))

	ctx := context.Background()

	// One reader goroutine for the life of the process — a blocked read
	// on stdin cannot be cancelled, so the loop selects on its channel.
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		fmt.Printf("\n[waiting for input... autonomous mode in %s]\nYou: ", inputTimeout)

		select {
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig)
			fmt.Println("\nGoodbye! Your dog will miss you!")
			return

		case <-time.After(inputTimeout):
			fmt.Println()
			banner("🤖 [autonomous] the dog is acting on its own...")
			if err := agent.AutonomousCycle(ctx); err != nil {
				slog.Error("autonomous cycle failed", "error", err)
				continue
			}
			fmt.Println(st.StatusText())

		case input, ok := <-lines:
			if !ok {
				fmt.Println("\nGoodbye! Your dog will miss you!")
				return
			}
			switch strings.ToLower(input) {
			case "":
				// Just a newline — wait again.
			case "exit", "quit", "q":
				fmt.Println("\nGoodbye! Your dog will miss you!")
				return
			case "status":
				fmt.Println(st.StatusText())
			default:
				banner("👤 [interactive] responding to the owner...")
				if err := agent.InteractiveCycle(ctx, input); err != nil {
					slog.Error("interactive cycle failed", "error", err)
					continue
				}
				fmt.Println(st.StatusText())
			}
		}
	}
}

func banner(title string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}
