package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"wrought/internal/project"
	"wrought/internal/source"
	"wrought/internal/token"
)

// tokenCacheSchema - увеличивать при любом изменении формата tokenPayload
// или поведения лексера.
const tokenCacheSchema uint16 = 1

// lexerDigest входит в ключ: смена схемы инвалидирует все записи.
var lexerDigest = project.HashBytes([]byte(fmt.Sprintf("wrought-lexer/%d", tokenCacheSchema)))

// TokenCache хранит результаты лексера на диске по хешу содержимого файла:
// <dir>/tokens/<sha256>.mp. Кешируются только файлы без лексических ошибок.
// Safe for concurrent use: writes go through a temp file and a rename.
type TokenCache struct {
	dir string
}

type tokenPayload struct {
	Schema uint16        `msgpack:"v"`
	Tokens []token.Token `msgpack:"t"`
}

// OpenTokenCache creates dir/tokens if needed.
func OpenTokenCache(dir string) (*TokenCache, error) {
	if dir == "" {
		return nil, errors.New("token cache: empty directory")
	}
	if err := os.MkdirAll(filepath.Join(dir, "tokens"), 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Key is the cache key for f's current content.
func (c *TokenCache) Key(f *source.File) project.Digest {
	return project.Combine(project.Digest(f.Hash), lexerDigest)
}

func (c *TokenCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "tokens", key.String()+".mp")
}

// Get returns the cached tokens of f with spans rebound to f.ID.
// A missing, stale or unreadable entry is a miss, not an error.
func (c *TokenCache) Get(f *source.File) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	data, err := os.ReadFile(c.pathFor(c.Key(f)))
	if err != nil {
		return nil, false
	}
	var p tokenPayload
	if err := msgpack.Unmarshal(data, &p); err != nil || p.Schema != tokenCacheSchema {
		return nil, false
	}
	for i := range p.Tokens {
		p.Tokens[i].Span.File = f.ID
	}
	return p.Tokens, true
}

// Put stores tokens for f. The rename makes concurrent writers of the
// same key harmless: both write identical bytes.
func (c *TokenCache) Put(f *source.File, toks []token.Token) (err error) {
	if c == nil {
		return nil
	}
	data, err := msgpack.Marshal(&tokenPayload{Schema: tokenCacheSchema, Tokens: toks})
	if err != nil {
		return fmt.Errorf("token cache encode: %w", err)
	}
	target := c.pathFor(c.Key(f))
	tmp, err := os.CreateTemp(filepath.Dir(target), "tmp-*")
	if err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("token cache write: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("token cache write: %w", err)
	}
	// атомарная замена
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *TokenCache) Clear() error {
	if c == nil {
		return nil
	}
	dir := filepath.Join(c.dir, "tokens")
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("token cache clear: %w", err)
	}
	return os.MkdirAll(dir, 0o755)
}
