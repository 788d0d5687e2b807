package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/tagtrend/internal/llm"
	"github.com/ppiankov/tagtrend/internal/model"
)

var (
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// narrateFacts generates and prints an optional prose summary of a report.
// Narration is additive: any failure here is a warning, never a command
// failure, because the numbers were already printed.
func narrateFacts(ctx context.Context, cfg model.Config, subject string, facts []string) {
	if !llmEnabled {
		return
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			fmt.Fprintf(os.Stderr, "⚠ narration skipped: OPENAI_API_KEY environment variable not set\n")
			return
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil || provider == nil {
		fmt.Fprintf(os.Stderr, "⚠ narration skipped: %v\n", err)
		return
	}

	narrCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.LLM.Timeout)*time.Second)
	defer cancel()

	resp, err := provider.Narrate(narrCtx, llm.NarrateRequest{
		Subject:   subject,
		Facts:     facts,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ narration failed: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("📝 Summary")
	fmt.Println(resp.Narrative)
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Narrated with %s/%s (%d tokens)\n",
			provider.Name(), resp.Model, resp.TokensUsed)
	}
}
