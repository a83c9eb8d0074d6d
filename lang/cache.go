package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// globalCache stores parse results keyed by source hash. Cached results
// share their context and symbol table, so callers that define new
// terms after parsing must use [Parse] instead.
var globalCache sync.Map

// cacheEntry holds the parse outcome for one source, populated exactly
// once.
type cacheEntry struct {
	once   sync.Once
	result *Result
	err    error
}

// ParseReader parses input from an io.Reader. The reader is wrapped
// with asynchronous read-ahead so input is fetched while earlier chunks
// are consumed, and the content is cached by hash after the first
// parse.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseString(ctx, string(data), opts...)
}

// parseStringCached parses a string with caching, keyed by xxh3 hash of
// the source.
func parseStringCached(ctx context.Context, source string) (*Result, error) {
	sourceKey := strconv.FormatUint(xxh3.Hash([]byte(source)), 36)

	value, cacheHit := globalCache.LoadOrStore(sourceKey, new(cacheEntry))

	entry, ok := value.(*cacheEntry)
	if !ok {
		return nil, ErrParse.
			With(slog.String("issue", "invalid entry type in cache"))
	}

	applyOptions().logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", sourceKey),
		slog.Bool("cache_hit", cacheHit),
	)

	entry.once.Do(func() {
		entry.result, entry.err = Parse(ctx, source)
	})

	return entry.result, entry.err
}

// ClearCache removes all cached parse results. This is primarily
// useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache = sync.Map{}
}
