package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("policy body"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "policy body" {
		t.Errorf("Expected cached body, got %q (found=%v)", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	key := Key("https://example.com/privacy")
	if err := c.Set(key, []byte("cached page"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "cached page" {
		t.Errorf("Expected cached page, got %q (found=%v)", val, found)
	}

	// An already expired entry should read as a miss.
	if err := c.Set("stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, found := c.Get("stale"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := layered.disk.Set("k", []byte("from disk"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	val, found := layered.Get("k")
	if !found || string(val) != "from disk" {
		t.Fatalf("Expected disk hit, got %q (found=%v)", val, found)
	}

	if _, found := layered.memory.Get("k"); !found {
		t.Error("Expected disk hit promoted to memory")
	}
}

func TestKey_StableAndNamespaced(t *testing.T) {
	a := Key("https://example.com/privacy")
	b := Key("https://example.com/privacy")
	c := Key("https://example.com/other")

	if a != b {
		t.Error("Expected identical keys for identical URLs")
	}
	if a == c {
		t.Error("Expected distinct keys for distinct URLs")
	}
	if len(a) <= len("candor:v1:") {
		t.Errorf("Expected namespaced hash key, got %q", a)
	}
}
