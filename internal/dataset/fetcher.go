package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/goccy/go-json"

	"github.com/ppiankov/tagtrend/internal/cache"
	"github.com/ppiankov/tagtrend/internal/model"
	"github.com/ppiankov/tagtrend/internal/util"
	"github.com/ppiankov/tagtrend/internal/worker"
)

// maxPageBytes bounds one API page response.
const maxPageBytes = 8 << 20

// Fetcher downloads corpus rows from the Danbooru posts API, page by page,
// respecting robots.txt and a per-host request rate. Pages are cached so
// an interrupted fetch resumes without re-downloading.
type Fetcher struct {
	httpClient *http.Client
	cfg        model.FetchConfig
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
	cache      cache.Cache
}

// NewFetcher creates a Fetcher. The page cache may be nil to always hit
// the network.
func NewFetcher(cfg model.FetchConfig, pageCache cache.Cache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
			},
		},
		cfg:     cfg,
		limiter: worker.NewLimiter(cfg.RatePerSec, cfg.Burst),
		robots:  util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		cache:   pageCache,
	}
}

func (f *Fetcher) pageURL(page int) string {
	return fmt.Sprintf("%s/posts.json?page=%d&limit=%d&only=created_at,tag_string",
		f.cfg.BaseURL, page, f.cfg.PageLimit)
}

// FetchPage retrieves one API page as corpus rows.
func (f *Fetcher) FetchPage(ctx context.Context, page int) ([]Row, error) {
	url := f.pageURL(page)
	key := cache.Key("page", url)

	body, cached := []byte(nil), false
	if f.cache != nil {
		body, cached = f.cache.Get(key)
	}

	if !cached {
		if err := f.limiter.Wait(ctx, url); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", f.cfg.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch page %d: unexpected status %d", page, resp.StatusCode)
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", page, err)
		}

		if f.cache != nil {
			_ = f.cache.Set(key, body, 0)
		}
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode page %d: %w", page, err)
	}
	return rows, nil
}

type pageJob struct {
	fetcher *Fetcher
	page    int
}

type pageResult struct {
	page int
	rows []Row
	err  error
}

func (r *pageResult) GetError() error { return r.err }

func (j *pageJob) Execute(ctx context.Context) worker.Result {
	rows, err := j.fetcher.FetchPage(ctx, j.page)
	return &pageResult{page: j.page, rows: rows, err: err}
}

// FetchPages downloads pages first..last through a bounded worker pool and
// writes the rows to w as JSONL in page order. It returns the number of
// rows written. Any page failure fails the whole fetch; cached pages make
// the retry cheap.
func (f *Fetcher) FetchPages(ctx context.Context, first, last int, w io.Writer) (int, error) {
	if err := f.checkRobots(ctx); err != nil {
		return 0, err
	}

	pool := worker.NewPool(f.cfg.Workers)
	pool.Start()
	for page := first; page <= last; page++ {
		pool.Submit(&pageJob{fetcher: f, page: page})
	}
	results := pool.Wait()

	pages := make([]*pageResult, 0, len(results))
	for _, r := range results {
		pr := r.(*pageResult)
		if pr.err != nil {
			return 0, fmt.Errorf("page %d: %w", pr.page, pr.err)
		}
		pages = append(pages, pr)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].page < pages[j].page })

	written := 0
	for _, pr := range pages {
		for _, row := range pr.rows {
			data, err := json.Marshal(row)
			if err != nil {
				return written, fmt.Errorf("marshal row: %w", err)
			}
			if _, err := w.Write(append(data, '\n')); err != nil {
				return written, fmt.Errorf("write row: %w", err)
			}
			written++
		}
	}
	return written, nil
}

func (f *Fetcher) checkRobots(ctx context.Context) error {
	url := f.cfg.BaseURL + "/posts.json"
	allowed, delay, err := f.robots.CanFetch(ctx, url)
	if err != nil {
		return fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return fmt.Errorf("robots.txt disallows fetching %s", url)
	}
	// Honor an explicit crawl delay by capping the request rate.
	if delay > 0 {
		perSec := 1.0 / delay.Seconds()
		if perSec < f.cfg.RatePerSec {
			f.limiter = worker.NewLimiter(perSec, 1)
		}
	}
	return nil
}
