// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless_test

import (
	"testing"

	"github.com/db47h/jumperless"
)

func TestParsePort(t *testing.T) {
	cases := []struct {
		in   string
		want jumperless.Port
	}{
		{"Ax0", jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 0}},
		{"AX0", jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 0}},
		{"Ax1", jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 1}},
		{"Ax15", jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 15}},
		{"Ly7", jumperless.Port{Chip: jumperless.ChipL, Dim: jumperless.DimY, Index: 7}},
		{"LY7", jumperless.Port{Chip: jumperless.ChipL, Dim: jumperless.DimY, Index: 7}},
	}
	for _, c := range cases {
		got, err := jumperless.ParsePort(c.in)
		if err != nil {
			t.Errorf("ParsePort(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParsePort(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParsePortErrors(t *testing.T) {
	cases := []string{"Mx0", "Az0", "Ax16", "Ay8", "", "A", "Ax"}
	for _, in := range cases {
		if _, err := jumperless.ParsePort(in); err == nil {
			t.Errorf("ParsePort(%q) should have failed", in)
		}
	}
}

func TestPortString(t *testing.T) {
	p := jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 3}
	if got, want := p.String(), "AX3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAllPortsCount(t *testing.T) {
	ports := jumperless.AllPorts()
	if got, want := len(ports), 24*12; got != want {
		t.Fatalf("len(AllPorts()) = %d, want %d", got, want)
	}
	if ports[0] != (jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 0}) {
		t.Errorf("AllPorts()[0] = %v, want Ax0", ports[0])
	}
	if ports[16] != (jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimY, Index: 0}) {
		t.Errorf("AllPorts()[16] = %v, want Ay0", ports[16])
	}
	if ports[24] != (jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimX, Index: 0}) {
		t.Errorf("AllPorts()[24] = %v, want Bx0", ports[24])
	}
}

func TestEdgeOrthogonal(t *testing.T) {
	e := jumperless.Edge{Chip: jumperless.ChipC, Dim: jumperless.DimX}
	if got := e.Orthogonal(); got != (jumperless.Edge{Chip: jumperless.ChipC, Dim: jumperless.DimY}) {
		t.Errorf("Orthogonal() = %v", got)
	}
	if got := e.Orthogonal().Orthogonal(); got != e {
		t.Errorf("Orthogonal() is not its own inverse: got %v, want %v", got, e)
	}
}

func TestLaneConnectsAndTouches(t *testing.T) {
	a := jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 0}
	b := jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimY, Index: 2}
	l := jumperless.Lane{A: a, B: b}

	if !l.Touches(a.Edge()) || !l.Touches(b.Edge()) {
		t.Error("Touches should report true for both endpoints' edges")
	}
	if !l.Connects(a.Edge(), b.Edge()) || !l.Connects(b.Edge(), a.Edge()) {
		t.Error("Connects should be symmetric")
	}
	if l.Opposite(a) != b || l.Opposite(b) != a {
		t.Error("Opposite should return the other endpoint")
	}
}

func TestChipIdRoundTrip(t *testing.T) {
	for i := 0; i < 12; i++ {
		c := jumperless.ChipIdFromIndex(i)
		if c.Index() != i {
			t.Errorf("ChipIdFromIndex(%d).Index() = %d", i, c.Index())
		}
		if got, err := jumperless.TryChipIdFromAscii(c.Ascii()); !err || got != c {
			t.Errorf("TryChipIdFromAscii(%c) = %v, %v", c.Ascii(), got, err)
		}
	}
	if _, ok := jumperless.TryChipIdFromAscii('Z'); ok {
		t.Error("TryChipIdFromAscii('Z') should fail")
	}
}
