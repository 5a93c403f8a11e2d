package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/jsontools/internal/options"
	"github.com/erraggy/jsontools/parser"
)

// documentInput represents the three ways a document can be provided to a
// tool. Exactly one of File, URL, or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a JSON or YAML document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// cachedDoc holds one parsed document with its expiry and last-use time.
type cachedDoc struct {
	res     *parser.ParseResult
	lastUse time.Time
	expiry  time.Time
}

// docCacheStore is a session-scoped cache of parsed documents. File
// inputs are keyed by absolute path plus mtime, inline content by a
// SHA-256 of the bytes, URLs by the URL string. Each input class has
// its own TTL and a background sweeper drops expired entries.
//
// Node trees are immutable once parsed, so every tool call can share
// the same cached result.
type docCacheStore struct {
	mu        sync.Mutex
	byKey     map[string]*cachedDoc
	capacity  int
	sweeperOn atomic.Bool
}

var docCache = &docCacheStore{
	byKey:    make(map[string]*cachedDoc),
	capacity: cfg.CacheMaxSize,
}

// get returns a cached result or nil, dropping the entry if it expired.
func (c *docCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.byKey[key]
	if !ok {
		return nil
	}
	if !e.expiry.IsZero() && time.Now().After(e.expiry) {
		delete(c.byKey, key)
		return nil
	}
	e.lastUse = time.Now()
	return e.res
}

// putWithTTL stores a result, evicting the least recently used entry
// when the cache is full.
func (c *docCacheStore) putWithTTL(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byKey[key]; !ok && len(c.byKey) >= c.capacity {
		c.evictOldest()
	}
	now := time.Now()
	c.byKey[key] = &cachedDoc{res: result, lastUse: now, expiry: now.Add(ttl)}
}

// evictOldest removes the entry with the oldest lastUse. Caller holds mu.
func (c *docCacheStore) evictOldest() {
	var victim string
	var oldest time.Time
	for k, e := range c.byKey {
		if victim == "" || e.lastUse.Before(oldest) {
			victim = k
			oldest = e.lastUse
		}
	}
	if victim != "" {
		delete(c.byKey, victim)
	}
}

// sweep removes every expired entry.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.byKey {
		if !e.expiry.IsZero() && now.After(e.expiry) {
			delete(c.byKey, k)
		}
	}
}

// startSweeper launches a goroutine that sweeps the cache every
// interval until ctx is cancelled. Only the first call spawns one.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperOn.CompareAndSwap(false, true) {
		return
	}
	var sweeping atomic.Bool
	go func() {
		defer c.sweeperOn.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// Skip the tick if the previous sweep is still running.
				if !sweeping.CompareAndSwap(false, true) {
					continue
				}
				c.sweep()
				sweeping.Store(false)
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey = make(map[string]*cachedDoc)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byKey)
}

// makeCacheKey derives the cache key for an input, or "" when the
// input should not be cached.
func makeCacheKey(d documentInput) string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return "content:" + hex.EncodeToString(h[:])
	case d.URL != "":
		return "url:" + d.URL
	default:
		return ""
	}
}

// resolve parses the document from whichever input was provided, using the
// cache for file, URL, and content inputs. URL fetches go through the
// SSRF-safe client with the configured size cap and timeout.
func (d documentInput) resolve() (*parser.ParseResult, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file, url, or content must be provided (got none)",
		"exactly one of file, url, or content must be provided (got more than one)",
		d.File != "", d.URL != "", d.Content != "",
	); err != nil {
		return nil, err
	}

	// Enforce inline content size limit.
	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set JSONTOOLS_MCP_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	// Determine cache key and TTL (skip when caching is disabled).
	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(d)
		switch {
		case d.File != "":
			ttl = cfg.CacheFileTTL
		case d.URL != "":
			ttl = cfg.CacheURLTTL
		default:
			ttl = cfg.CacheContentTTL
		}
	}

	if key != "" {
		if cached := docCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var opts []parser.Option
	switch {
	case d.File != "":
		opts = append(opts, parser.WithFilePath(d.File))
	case d.URL != "":
		opts = append(opts,
			parser.WithFilePath(d.URL),
			parser.WithMaxSourceSize(cfg.MaxFetchSize),
		)
		// Inject SSRF-safe HTTP client for URL resolution unless private IPs are allowed.
		if cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}))
		} else {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	case d.Content != "":
		opts = append(opts, parser.WithString(d.Content))
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Cache the result for future calls (key is empty when caching is disabled).
	if key != "" {
		docCache.putWithTTL(key, result, ttl)
	}

	return result, nil
}
