package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Drogon4231/portfolio/internal/portfolio"
)

// untrackedPrefixes are never recorded.
var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/favicon",
	"/privacy",
	"/health",
	"/api/",
}

// trackedPages carry a project track; other pages are recorded without one.
var trackedPages = map[string]bool{
	"/":         true,
	"/projects": true,
}

// Tracker records page views in the background.
type Tracker struct {
	store        *Store
	salt         string
	prefix       string
	defaultTrack portfolio.Track
	logger       *zap.Logger
	wg           sync.WaitGroup
}

// NewTracker returns a tracker for a site mounted at basePath.
func NewTracker(store *Store, basePath string, defaultTrack portfolio.Track, logger *zap.Logger) (*Tracker, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &Tracker{
		store:        store,
		salt:         salt,
		prefix:       strings.TrimSuffix(basePath, "/"),
		defaultTrack: defaultTrack,
		logger:       logger,
	}, nil
}

// sitePath returns path relative to the base path, always starting with
// "/". ok is false for paths outside the site.
func (t *Tracker) sitePath(path string) (rel string, ok bool) {
	if t.prefix == "" {
		return path, true
	}
	if path != t.prefix && !strings.HasPrefix(path, t.prefix+"/") {
		return "", false
	}
	rel = strings.TrimPrefix(path, t.prefix)
	if rel == "" {
		rel = "/"
	}
	return rel, true
}

// RandomToken returns 32 random bytes hex-encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP is stable for the life of the process and truncated to 16 hex chars.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Middleware records every trackable request. Requests with DNT: 1 are skipped.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		rel, ok := t.sitePath(path)
		if !ok || !Trackable(rel) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := Visit{
			HashedIP:  t.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		}
		if trackedPages[rel] {
			visit.Track = string(portfolio.ParseTrack(c.Query("track"), t.defaultTrack))
		}

		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.Record(ctx, visit); err != nil {
				t.logger.Warn("record visit", zap.Error(err), zap.String("path", visit.Path))
			}
		}()

		c.Next()
	}
}

// Wait blocks until every in-flight record has been written.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// StartCleanup runs Cleanup in the background. Wait also waits for it.
func (t *Tracker) StartCleanup(ctx context.Context, retention time.Duration) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.Cleanup(ctx, retention)
	}()
}

// Cleanup drops visits older than retention.
func (t *Tracker) Cleanup(ctx context.Context, retention time.Duration) {
	n, err := t.store.Cleanup(ctx, time.Now().Add(-retention))
	if err != nil {
		t.logger.Error("visitor cleanup", zap.Error(err))
		return
	}
	if n > 0 {
		t.logger.Info("visitor cleanup", zap.Int64("removed", n), zap.Duration("retention", retention))
	}
}

// Trackable reports whether a site-relative path should be recorded.
func Trackable(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}
