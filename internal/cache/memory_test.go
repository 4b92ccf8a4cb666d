package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("XKPLR9382Q")
	if err := c.Set(key, []byte(`{"verdict":"Valid PAN"}`), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("expected cache hit")
	}
	if !bytes.Contains(val, []byte("Valid PAN")) {
		t.Errorf("unexpected cached value: %s", val)
	}

	if _, found := c.Get(Key("AABCD1234E")); found {
		t.Error("expected miss for different candidate")
	}
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("XKPLR9382Q")
	_ = c.Set(key, []byte("x"), 0)

	if err := c.Delete(key); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expected miss after delete")
	}

	_ = c.Set(key, []byte("x"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expected miss after clear")
	}
}

func TestKey_DistinctAndStable(t *testing.T) {
	a := Key("XKPLR9382Q")
	b := Key("XKPLR9382Q")
	c := Key("AABCD1234E")

	if a != b {
		t.Error("expected identical keys for identical candidates")
	}
	if a == c {
		t.Error("expected distinct keys for distinct candidates")
	}
	if len(a) == 0 || a[:7] != "panvet:" {
		t.Errorf("unexpected key shape: %s", a)
	}
}
