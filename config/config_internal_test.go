package config

import (
	"path/filepath"
	"testing"
)

func TestGetConfiguration(t *testing.T) {
	golden, err := filepath.Abs("testdata/config.golden.yml")
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	configPath = golden

	c := Get()
	if c.Identity.Address != "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("expected identity address is %s, but got %s", "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", c.Identity.Address)
	}
	if c.Store.Address != "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" {
		t.Fatalf("expected store address is %s, but got %s", "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", c.Store.Address)
	}
	if c.Tpke.Threshold != 5 {
		t.Fatalf("expected threshold is %d, but got %d", 5, c.Tpke.Threshold)
	}
	if c.Api.Address != "localhost:8080" {
		t.Fatalf("expected api address is %s, but got %s", "localhost:8080", c.Api.Address)
	}
}
