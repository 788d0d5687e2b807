// Package dataset materializes and loads the artwork corpus: a JSON Lines
// file with one Danbooru post per line, carrying only the created_at
// timestamp and the space-separated tag_string.
package dataset

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/ppiankov/tagtrend/internal/model"
)

// Row is one line of the corpus file, mirroring the fields requested from
// the Danbooru posts API.
type Row struct {
	CreatedAt string `json:"created_at"`
	TagString string `json:"tag_string"`
}

// Record converts the raw row into an ArtworkRecord with a UTC timestamp
// and a normalized tag set.
func (r Row) Record() (model.ArtworkRecord, error) {
	ts, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return model.ArtworkRecord{}, fmt.Errorf("parse created_at %q: %w", r.CreatedAt, err)
	}
	return model.ArtworkRecord{
		CreatedAt: ts.UTC(),
		Tags:      model.NormalizeTags(strings.Fields(r.TagString)),
	}, nil
}

// Load reads the corpus file at path into memory. Files ending in .gz are
// transparently decompressed. A malformed line fails the whole load with
// its line number; rows are never silently dropped.
func Load(path string) ([]model.ArtworkRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip corpus: %w", err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	return Read(reader)
}

// Read parses JSONL corpus rows from r.
func Read(r io.Reader) ([]model.ArtworkRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []model.ArtworkRecord
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var row Row
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := row.Record()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return records, nil
}
