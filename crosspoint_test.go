// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless_test

import (
	"testing"

	"github.com/db47h/jumperless"
)

func TestCrosspointConfigSetGetClear(t *testing.T) {
	var cfg jumperless.CrosspointConfig
	c := jumperless.Crosspoint{Chip: jumperless.ChipF, X: 3, Y: 5, NetID: jumperless.NetIdFromIndex(0)}

	if cfg.Get(c) {
		t.Fatal("fresh config should have every switch open")
	}
	cfg.Set(c)
	if !cfg.Get(c) {
		t.Fatal("Get should report true after Set")
	}
	cfg.Clear(c)
	if cfg.Get(c) {
		t.Fatal("Get should report false after Clear")
	}
}

func TestNewCrosspointConfigAccumulates(t *testing.T) {
	cps := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 0, Y: 0},
		{Chip: jumperless.ChipL, X: 15, Y: 7},
	}
	cfg := jumperless.NewCrosspointConfig(cps)
	for _, c := range cps {
		if !cfg.Get(c) {
			t.Errorf("expected %v to be set", c)
		}
	}
	other := jumperless.Crosspoint{Chip: jumperless.ChipB, X: 1, Y: 1}
	if cfg.Get(other) {
		t.Errorf("%v should not be set", other)
	}
}

func TestToHexBytesLength(t *testing.T) {
	cfg := jumperless.NewCrosspointConfig(nil)
	cfg.Set(jumperless.Crosspoint{Chip: jumperless.ChipA, X: 0, Y: 0})

	buf := cfg.ToHexBytes()
	if len(buf) != 384 {
		t.Fatalf("len(ToHexBytes()) = %d, want 384", len(buf))
	}
	// Setting (chip 0, x 0, y 0) sets bit 0 of byte 0, so its nibbles read "01".
	if buf[0] != '0' || buf[1] != '1' {
		t.Errorf("ToHexBytes()[0:2] = %q, want \"01\"", buf[0:2])
	}
	for _, b := range buf {
		isHex := (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F')
		if !isHex {
			t.Fatalf("ToHexBytes() contains non-hex byte %q", b)
		}
	}
}
