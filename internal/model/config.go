package model

import "time"

// Config is the full tagtrend configuration. Values come from (highest to
// lowest priority) CLI flags, TAGTREND_* environment variables, the config
// file at ~/.tagtrend/config.yaml, and DefaultConfig.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Analytics  AnalyticsConfig  `yaml:"analytics"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Cache      CacheConfig      `yaml:"cache"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Server     ServerConfig     `yaml:"server"`
	LLM        LLMConfig        `yaml:"llm"`
	Output     OutputConfig     `yaml:"output"`
}

// DatasetConfig locates the on-disk corpus.
type DatasetConfig struct {
	// Path to the corpus file: JSON Lines with created_at and tag_string
	// fields, optionally gzip-compressed (.jsonl or .jsonl.gz).
	Path string `yaml:"path"`
}

// AnalyticsConfig holds the tunable knobs of the query engines.
type AnalyticsConfig struct {
	// MinYear/MaxYear bound the years accepted by ranking and driver
	// queries. Queries outside the window fail instead of returning a
	// misleading empty result.
	MinYear int `yaml:"min_year"`
	MaxYear int `yaml:"max_year"`

	// TopN and DriverN are the default result sizes.
	TopN    int `yaml:"top_n"`
	DriverN int `yaml:"driver_n"`

	// RisingThreshold and DecliningThreshold are relative-change cutoffs
	// for the trend label: above RisingThreshold is rising, below
	// -DecliningThreshold is declining, anything between is stable.
	RisingThreshold    float64 `yaml:"rising_threshold"`
	DecliningThreshold float64 `yaml:"declining_threshold"`
}

// ClassifierConfig is the rule data of the tag classifier. The lists are
// plain data so they can be extended in the config file without touching
// the classification algorithm.
type ClassifierConfig struct {
	// VIPs are known character tags that carry no parenthetical
	// disambiguator and would otherwise be rejected.
	VIPs []string `yaml:"vips"`

	// BanSuffixes mark medium/style/series/meta tag families whose
	// parenthetical qualifier does not name a character.
	BanSuffixes []string `yaml:"ban_suffixes"`

	// BanTags are individually known non-character tags that would
	// otherwise pass the parenthetical rule.
	BanTags []string `yaml:"ban_tags"`
}

// CacheConfig controls query-result and fetch-page caching.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`      // disk cache directory (fetch pages)
	PageTTL time.Duration `yaml:"page_ttl"` // how long fetched API pages stay valid
}

// FetchConfig configures the Danbooru API fetcher.
type FetchConfig struct {
	BaseURL    string        `yaml:"base_url"`
	UserAgent  string        `yaml:"user_agent"`
	PageLimit  int           `yaml:"page_limit"` // posts per API page
	RatePerSec float64       `yaml:"rate_per_sec"`
	Burst      int           `yaml:"burst"`
	Timeout    time.Duration `yaml:"timeout"`
	Workers    int           `yaml:"workers"`
	HTTPProxy  string        `yaml:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy"`
}

// ServerConfig configures the HTTP boundary started by `tagtrend serve`.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LLMConfig configures optional report narration. Narration never affects
// the computed numbers.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "ollama" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from OPENAI_API_KEY, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults, including the stock
// classifier rule data for the Danbooru tag vocabulary.
func DefaultConfig() Config {
	return Config{
		Dataset: DatasetConfig{
			Path: "metadata.jsonl",
		},
		Analytics: AnalyticsConfig{
			MinYear:            2005,
			MaxYear:            2025,
			TopN:               10,
			DriverN:            5,
			RisingThreshold:    0.10,
			DecliningThreshold: 0.10,
		},
		Classifier: ClassifierConfig{
			VIPs: []string{
				"hatsune_miku", "hakurei_reimu", "kirisame_marisa",
				"remilia_scarlet", "flandre_scarlet", "kochiya_sanae",
				"izayoi_sakuya", "konpaku_youmu", "cirno", "kagamine_rin",
			},
			BanSuffixes: []string{
				"_(series)", "_(medium)", "_(style)", "_(source)",
				"_(cosplay)", "_(object)", "_(group)", "_(production)",
				"_(creature)", "_(game)", "_(request)", "_(event)",
				"_(art_style)", "_(artist)", "_(lore)", "_(meta)",
				"_(costume)", "_(parody)",
			},
			BanTags: []string{
				"star_(symbol)", "star_(sky)", "pom_pom_(clothes)",
				"shrug_(clothing)", "poke_ball_(basic)",
				"vision_(genshin_impact)", "sensei_(blue_archive)",
				"idolmaster_(classic)", "mahou_shoujo_madoka_magica_(anime)",
				"admiral_(kancolle)", "producer_(idolmaster)",
				"commander_(azur_lane)", "doctor_(arknights)",
				"traveler_(genshin_impact)", "trainer_(pokemon)",
				"summoner_(fire_emblem)", "gudako_(fate/grand_order)",
				"unknown_(series)", "check_commentary_(request)",
				"translation_(request)", "original_(character)",
				"spot_the_difference", "comic", "monochrome", "heart",
				"exclamation_point",
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".tagtrend-cache",
			PageTTL: 24 * time.Hour,
		},
		Fetch: FetchConfig{
			BaseURL:    "https://danbooru.donmai.us",
			UserAgent:  "tagtrend/0.1 (+https://github.com/ppiankov/tagtrend)",
			PageLimit:  200,
			RatePerSec: 2,
			Burst:      2,
			Timeout:    30 * time.Second,
			Workers:    4,
		},
		Server: ServerConfig{
			Addr:         ":8090",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}
