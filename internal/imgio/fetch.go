package imgio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultMaxBytes  = 4 << 20 // headshots are small; anything bigger is not one
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; hoopvision/1.0)"
)

// Fetcher downloads headshot bytes over HTTP. An optional stealth client
// (e.g. one with a browser TLS fingerprint) is tried first; the regular
// client is the fallback. Responses must carry an image/* content type.
type Fetcher struct {
	Client    *http.Client // nil = http.DefaultClient
	Stealth   *http.Client // optional, tried first
	UserAgent string
	MaxBytes  int64
	Timeout   time.Duration

	log *zap.Logger
}

// NewFetcher returns a Fetcher with default limits. A nil logger disables
// fetch logging.
func NewFetcher(log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		Client:    http.DefaultClient,
		UserAgent: defaultUserAgent,
		MaxBytes:  defaultMaxBytes,
		Timeout:   defaultTimeout,
		log:       log,
	}
}

// Fetch downloads the image at url. Both clients failing, a non-200 status,
// or a non-image content type all count as one fetch failure; the caller
// decides whether that is fatal.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("fetch: empty url")
	}
	if f.Stealth != nil {
		if data := f.get(ctx, f.Stealth, url); data != nil {
			return data, nil
		}
		f.log.Debug("stealth fetch failed, falling back", zap.String("url", url))
	}
	if data := f.get(ctx, f.client(), url); data != nil {
		return data, nil
	}
	return nil, fmt.Errorf("fetch %s: no usable image response", url)
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

// get returns nil on any failure; the cause is logged at debug level.
func (f *Fetcher) get(ctx context.Context, client *http.Client, url string) []byte {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Debug("fetch request build failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		f.log.Debug("fetch failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Debug("fetch got non-200", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	if idx := strings.IndexByte(ct, ';'); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if !strings.HasPrefix(ct, "image/") {
		f.log.Debug("fetch got non-image content type", zap.String("url", url), zap.String("content_type", ct))
		return nil
	}

	maxBytes := f.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil || len(data) == 0 {
		f.log.Debug("fetch body read failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	return data
}
