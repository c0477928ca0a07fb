package reference

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CachedProvider stores transcriptions of another provider on disk. Entries
// are keyed by dialect so that runs with different dialects share a cache
// directory safely.
type CachedProvider struct {
	provider Provider
	cacheDir string
	dialect  string
}

// NewCachedProvider wraps provider with a file cache under cacheDir
func NewCachedProvider(provider Provider, cacheDir, dialect string) (Provider, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &CachedProvider{provider: provider, cacheDir: cacheDir, dialect: dialect}, nil
}

// Transcribe returns the cached transcription or asks the wrapped provider
func (c *CachedProvider) Transcribe(ctx context.Context, word string) (string, error) {
	cacheFile := c.cacheFilePath(word)
	if data, err := os.ReadFile(cacheFile); err == nil {
		return strings.TrimSpace(string(data)), nil
	}

	ipa, err := c.provider.Transcribe(ctx, word)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(cacheFile), 0755); err == nil {
		_ = os.WriteFile(cacheFile, []byte(ipa), 0644) // Ignore cache errors
	}
	return ipa, nil
}

// Name returns the wrapped provider name
func (c *CachedProvider) Name() string {
	return c.provider.Name()
}

// IsAvailable delegates to the wrapped provider
func (c *CachedProvider) IsAvailable() error {
	return c.provider.IsAvailable()
}

// ClearCache removes all cached transcriptions
func (c *CachedProvider) ClearCache() error {
	return os.RemoveAll(c.cacheDir)
}

// cacheFilePath hashes the provider name, dialect and word. The first two
// hex characters name a subdirectory.
func (c *CachedProvider) cacheFilePath(word string) string {
	h := md5.New()
	for _, part := range []string{c.provider.Name(), c.dialect, word} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	hash := hex.EncodeToString(h.Sum(nil))

	return filepath.Join(c.cacheDir, hash[:2], hash[2:]+".txt")
}
