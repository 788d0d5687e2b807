package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ppiankov/tagtrend/internal/analytics"
	"github.com/ppiankov/tagtrend/internal/cache"
	"github.com/ppiankov/tagtrend/internal/classify"
	"github.com/ppiankov/tagtrend/internal/dataset"
	"github.com/ppiankov/tagtrend/internal/index"
	"github.com/ppiankov/tagtrend/internal/model"
)

// loadConfig merges the built-in defaults with viper-managed overrides
// (config file, TAGTREND_* environment, bound flags).
func loadConfig() model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("dataset.path"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := viper.GetString("fetch.base_url"); v != "" {
		cfg.Fetch.BaseURL = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	cfg.Output.Verbose = viper.GetBool("verbose")

	return cfg
}

// buildEngine loads the corpus, builds the index and wires up the query
// engine. This is the one-time, synchronous startup step; everything the
// engine touches afterwards is immutable.
func buildEngine(cfg model.Config) (*analytics.Engine, error) {
	start := time.Now()
	records, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", cfg.Dataset.Path, err)
	}

	idx := index.Build(records)

	if cfg.Output.Verbose {
		if first, last, ok := idx.Span(); ok {
			fmt.Fprintf(os.Stderr, "Loaded %d records (%s to %s) in %v\n",
				idx.Size(), first, last, time.Since(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(os.Stderr, "Loaded empty corpus from %s\n", cfg.Dataset.Path)
		}
	}

	var queryCache cache.Cache
	if cfg.Cache.Enabled {
		queryCache = cache.NewMemory(0, 10*time.Minute)
	}

	return analytics.New(idx, classify.New(cfg.Classifier), cfg.Analytics, queryCache), nil
}

// displayName renders a tag for human output: underscores to spaces.
func displayName(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
