package cache

import (
	"context"
	"testing"
	"time"

	"github.com/grfixtures/grgen/pkg/gr"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("p sp 4 5"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "p sp 4 5" {
		t.Errorf("Get = %q, want %q", data, "p sp 4 5")
	}

	// Unknown key is a miss, not an error
	if _, hit, err := c.Get(ctx, "other"); err != nil || hit {
		t.Errorf("Get(other) = hit %v, err %v; want miss", hit, err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("expired entry: hit %v, err %v; want miss", hit, err)
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("entry should be gone after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}

	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestFixtureKey(t *testing.T) {
	spec := gr.Spec{Nodes: 100, EdgesPerNode: 5, MaxWeight: 50}

	k1 := FixtureKey(spec, 7, false)
	k2 := FixtureKey(spec, 7, false)
	if k1 != k2 {
		t.Error("FixtureKey should be deterministic")
	}

	if FixtureKey(spec, 8, false) == k1 {
		t.Error("different seeds should produce different keys")
	}
	if FixtureKey(spec, 7, true) == k1 {
		t.Error("different strategies should produce different keys")
	}

	other := spec
	other.MaxWeight = 51
	if FixtureKey(other, 7, false) == k1 {
		t.Error("different specs should produce different keys")
	}
}
