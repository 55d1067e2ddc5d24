// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package jumperless computes the crosspoint switch closures needed to
// realize a netlist on a Jumperless programmable breadboard: twelve
// CH446Q 16x8 crosspoint chips (labelled A through L), interconnected by
// a fixed set of inter-chip lanes.
package jumperless

import (
	"strconv"

	"github.com/pkg/errors"
)

// ChipId identifies one of the twelve crosspoint chips, A through L.
type ChipId uint8

// The twelve crosspoint chips, in board declaration order.
const (
	ChipA ChipId = 'A'
	ChipB ChipId = 'B'
	ChipC ChipId = 'C'
	ChipD ChipId = 'D'
	ChipE ChipId = 'E'
	ChipF ChipId = 'F'
	ChipG ChipId = 'G'
	ChipH ChipId = 'H'
	ChipI ChipId = 'I'
	ChipJ ChipId = 'J'
	ChipK ChipId = 'K'
	ChipL ChipId = 'L'
)

// ChipIdFromIndex builds a ChipId from its 0..12 index. Panics if index is
// out of range.
func ChipIdFromIndex(index int) ChipId {
	if index < 0 || index >= 12 {
		panic("jumperless: chip index out of range")
	}
	return ChipId('A' + byte(index))
}

// ChipIdFromAscii builds a ChipId from its ASCII letter ('A'..'L').
// Panics if the letter is out of range.
func ChipIdFromAscii(ascii byte) ChipId {
	if ascii < 'A' || ascii > 'L' {
		panic("jumperless: chip letter out of range")
	}
	return ChipId(ascii)
}

// TryChipIdFromAscii is the non-panicking form of ChipIdFromAscii.
func TryChipIdFromAscii(ascii byte) (ChipId, bool) {
	if ascii < 'A' || ascii > 'L' {
		return 0, false
	}
	return ChipId(ascii), true
}

// Ascii returns the chip's letter.
func (c ChipId) Ascii() byte { return byte(c) }

// Index returns the chip's 0..12 index (0 for chip A).
func (c ChipId) Index() int { return int(c - 'A') }

// String implements fmt.Stringer.
func (c ChipId) String() string { return string(rune(c)) }

// PortX returns the port at the given index on the chip's X edge.
func (c ChipId) PortX(x uint8) Port { return Port{c, DimX, x} }

// PortY returns the port at the given index on the chip's Y edge.
func (c ChipId) PortY(y uint8) Port { return Port{c, DimY, y} }

// Dimension is the two-valued tag distinguishing a chip's X and Y edges.
type Dimension uint8

const (
	DimX Dimension = iota
	DimY
)

// Orthogonal returns the other dimension: X for Y, Y for X.
func (d Dimension) Orthogonal() Dimension {
	if d == DimX {
		return DimY
	}
	return DimX
}

// Index returns 0 for X, 1 for Y.
func (d Dimension) Index() int { return int(d) }

// PortCount returns the number of ports on an edge of this dimension: 16
// for X, 8 for Y.
func (d Dimension) PortCount() uint8 {
	if d == DimX {
		return 16
	}
	return 8
}

func (d Dimension) String() string {
	if d == DimX {
		return "X"
	}
	return "Y"
}

// Edge identifies one of the sides (X or Y) of a specific chip. There are
// 12*2 = 24 edges in total.
type Edge struct {
	Chip ChipId
	Dim  Dimension
}

// Orthogonal returns the other edge on the same chip.
func (e Edge) Orthogonal() Edge { return Edge{e.Chip, e.Dim.Orthogonal()} }

// Ports returns every port on this edge, in ascending index order.
func (e Edge) Ports() []Port {
	n := int(e.Dim.PortCount())
	ports := make([]Port, n)
	for i := 0; i < n; i++ {
		ports[i] = Port{e.Chip, e.Dim, uint8(i)}
	}
	return ports
}

func (e Edge) String() string { return e.Chip.String() + e.Dim.String() }

// Port is one pin on one side of one chip. There are 12*(16+8) = 288
// ports system-wide.
type Port struct {
	Chip  ChipId
	Dim   Dimension
	Index uint8
}

// Edge returns the edge this port resides on.
func (p Port) Edge() Edge { return Edge{p.Chip, p.Dim} }

func (p Port) String() string {
	return p.Chip.String() + p.Dim.String() + strconv.Itoa(int(p.Index))
}

// ParsePort parses a port spec of the form <ChipLetter><x|X|y|Y><Index>,
// e.g. "Ax0" or "Ly7".
func ParsePort(s string) (Port, error) {
	if len(s) < 3 {
		return Port{}, errors.Errorf("invalid port spec %q", s)
	}
	chip, ok := TryChipIdFromAscii(s[0])
	if !ok {
		return Port{}, errors.Errorf("invalid port spec %q: bad chip letter", s)
	}
	var dim Dimension
	switch s[1] {
	case 'x', 'X':
		dim = DimX
	case 'y', 'Y':
		dim = DimY
	default:
		return Port{}, errors.Errorf("invalid port spec %q: bad dimension", s)
	}
	index, err := strconv.Atoi(s[2:])
	if err != nil || index < 0 || index >= int(dim.PortCount()) {
		return Port{}, errors.Errorf("invalid port spec %q: bad index", s)
	}
	return Port{chip, dim, uint8(index)}, nil
}

// AllPorts returns all 288 ports, chip by chip, X ports then Y ports.
func AllPorts() []Port {
	ports := make([]Port, 0, 12*24)
	for i := 0; i < 12; i++ {
		chip := ChipIdFromIndex(i)
		for x := uint8(0); x < 16; x++ {
			ports = append(ports, Port{chip, DimX, x})
		}
		for y := uint8(0); y < 8; y++ {
			ports = append(ports, Port{chip, DimY, y})
		}
	}
	return ports
}

// Lane is a fixed physical wire between two ports on distinct chips.
type Lane struct {
	A, B Port
}

// Touches reports whether one of the lane's ports lies on the given edge.
func (l Lane) Touches(edge Edge) bool {
	return l.A.Edge() == edge || l.B.Edge() == edge
}

// Connects reports whether this lane joins the two given edges, in either
// direction.
func (l Lane) Connects(from, to Edge) bool {
	a, b := l.A.Edge(), l.B.Edge()
	return (a == from && b == to) || (a == to && b == from)
}

// Opposite returns the lane's other port. Panics if port is not one of the
// lane's two endpoints.
func (l Lane) Opposite(port Port) Port {
	switch port {
	case l.A:
		return l.B
	case l.B:
		return l.A
	default:
		panic("jumperless: port is not an endpoint of this lane")
	}
}

// NetId is a non-zero identifier for a net, unique within a netlist.
// NetIds 1..=7 are special (power rails, ground, DAC/ADC lines) and
// cannot be merged with each other.
type NetId uint8

// NetIdFromIndex builds a NetId from a zero-based index (index 0 -> NetId 1).
func NetIdFromIndex(index int) NetId { return NetId(index + 1) }

// IsSpecial reports whether this net id is one of the reserved 1..=7 ids.
func (n NetId) IsSpecial() bool { return n >= 1 && n <= 7 }

// Index returns the net id's zero-based index (NetId 1 -> index 0).
func (n NetId) Index() int { return int(n) - 1 }

func (n NetId) String() string { return strconv.Itoa(int(n)) }

// Node is the common interface for board-specific node identifiers. A
// concrete node type is generated per board revision by the boardgen
// command. Node ids must be <= 127.
type Node interface {
	comparable
	ID() uint8
}
