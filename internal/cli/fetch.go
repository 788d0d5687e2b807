package cli

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tagtrend/internal/cache"
	"github.com/ppiankov/tagtrend/internal/dataset"
)

var (
	fetchPages   int
	fetchFirst   int
	fetchOut     string
	fetchNoCache bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download corpus pages from the Danbooru API",
	Long: `Fetch downloads post metadata (created_at and tag_string only) from
the Danbooru posts API and writes it as a JSONL corpus file, gzipped
when the output name ends in .gz.

Requests respect robots.txt and are rate limited. Downloaded pages
are cached on disk, so an interrupted fetch resumes cheaply.

Example:
  tagtrend fetch --pages 50 --out metadata.jsonl.gz
  tagtrend fetch --first 51 --pages 50 --out more.jsonl`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntVar(&fetchPages, "pages", 10, "number of API pages to download")
	fetchCmd.Flags().IntVar(&fetchFirst, "first", 1, "first API page")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "metadata.jsonl.gz", "output corpus path")
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "disable the page cache (force fresh fetch)")
}

func runFetch(cmd *cobra.Command, args []string) (err error) {
	if fetchPages < 1 {
		return fmt.Errorf("--pages must be at least 1")
	}
	cfg := loadConfig()

	var pageCache cache.Cache
	if cfg.Cache.Enabled && !fetchNoCache {
		pageCache = cache.NewLayered(cfg.Cache.PageTTL, cfg.Cache.Dir, cfg.Cache.PageTTL)
	}
	fetcher := dataset.NewFetcher(cfg.Fetch, pageCache)

	f, err := os.Create(fetchOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", fetchOut, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", fetchOut, closeErr)
		}
	}()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(fetchOut, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	last := fetchFirst + fetchPages - 1
	if verbose {
		fmt.Fprintf(os.Stderr, "Fetching pages %d..%d from %s\n", fetchFirst, last, cfg.Fetch.BaseURL)
	}

	written, err := fetcher.FetchPages(cmd.Context(), fetchFirst, last, w)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("finish %s: %w", fetchOut, err)
		}
	}

	fmt.Printf("✓ Wrote %d records to %s\n", written, fetchOut)
	return nil
}
