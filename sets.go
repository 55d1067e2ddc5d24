// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless

import "math/bits"

// PortSet is a fixed-capacity bitmap over all 288 ports.
type PortSet struct {
	bits [36]byte
}

func portAddress(p Port) (int, uint) {
	bit := p.Chip.Index()*24 + p.Dim.Index()*16 + int(p.Index)
	return bit / 8, uint(bit % 8)
}

// FullPortSet returns a PortSet containing every port.
func FullPortSet() PortSet {
	var s PortSet
	for i := range s.bits {
		s.bits[i] = 0xFF
	}
	return s
}

// Contains reports whether port is a member of the set.
func (s *PortSet) Contains(p Port) bool {
	i, j := portAddress(p)
	return (s.bits[i]>>j)&1 == 1
}

// Insert adds port to the set.
func (s *PortSet) Insert(p Port) {
	i, j := portAddress(p)
	s.bits[i] |= 1 << j
}

// Remove removes port from the set.
func (s *PortSet) Remove(p Port) {
	i, j := portAddress(p)
	s.bits[i] &^= 1 << j
}

// IsSuperset reports whether every port in other is also in s.
func (s *PortSet) IsSuperset(other *PortSet) bool {
	for i, b := range s.bits {
		if other.bits[i]&b != other.bits[i] {
			return false
		}
	}
	return true
}

// Diff returns, for debugging, the ports present in s but not in other
// ("+port") and those present in other but not in s ("-port"), in port
// enumeration order.
func (s *PortSet) Diff(other *PortSet) []string {
	var diff []string
	for _, p := range AllPorts() {
		a, b := s.Contains(p), other.Contains(p)
		switch {
		case a && !b:
			diff = append(diff, "+"+p.String())
		case !a && b:
			diff = append(diff, "-"+p.String())
		}
	}
	return diff
}

// EdgeSet is a bitmap over the 24 edges, with ordered iteration.
type EdgeSet struct {
	bits uint32
}

func edgeAddress(e Edge) uint {
	return uint(e.Chip.Index()*2 + e.Dim.Index())
}

func edgeFromAddress(addr uint) Edge {
	return Edge{ChipIdFromIndex(int(addr >> 1)), Dimension(addr & 1)}
}

// Contains reports whether edge is a member of the set.
func (s *EdgeSet) Contains(e Edge) bool {
	return (s.bits>>edgeAddress(e))&1 == 1
}

// Insert adds edge to the set.
func (s *EdgeSet) Insert(e Edge) {
	s.bits |= 1 << edgeAddress(e)
}

// Remove removes edge from the set.
func (s *EdgeSet) Remove(e Edge) {
	s.bits &^= 1 << edgeAddress(e)
}

// Len returns the number of edges in the set.
func (s *EdgeSet) Len() int {
	n := 0
	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s *EdgeSet) IsEmpty() bool { return s.bits == 0 }

// Iter returns the set's members in ascending address order.
func (s *EdgeSet) Iter() []Edge {
	edges := make([]Edge, 0, s.Len())
	for addr := uint(0); addr < 24; addr++ {
		if (s.bits>>addr)&1 == 1 {
			edges = append(edges, edgeFromAddress(addr))
		}
	}
	return edges
}

// Pop removes and returns the lowest-addressed member of the set, or
// false if the set is empty.
func (s *EdgeSet) Pop() (Edge, bool) {
	if s.bits == 0 {
		return Edge{}, false
	}
	addr := uint(bits.TrailingZeros32(s.bits))
	e := edgeFromAddress(addr)
	s.Remove(e)
	return e, true
}

// NodeSet is a 128-bit bitmap over node ids, keyed by Node.ID().
type NodeSet[N Node] struct {
	bits [16]byte
}

func nodeAddress[N Node](n N) (int, uint) {
	id := int(n.ID())
	return id / 8, uint(id % 8)
}

// Len returns the number of nodes in the set.
func (s *NodeSet[N]) Len() int {
	n := 0
	for _, b := range s.bits {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s *NodeSet[N]) IsEmpty() bool {
	for _, b := range s.bits {
		if b != 0 {
			return false
		}
	}
	return true
}

// Contains reports whether node is a member of the set.
func (s *NodeSet[N]) Contains(n N) bool {
	i, j := nodeAddress[N](n)
	return (s.bits[i]>>j)&1 == 1
}

// Insert adds node to the set.
func (s *NodeSet[N]) Insert(n N) {
	i, j := nodeAddress[N](n)
	s.bits[i] |= 1 << j
}

// Remove removes node from the set.
func (s *NodeSet[N]) Remove(n N) {
	i, j := nodeAddress[N](n)
	s.bits[i] &^= 1 << j
}

// Iter reconstructs and returns every node in the set, in ascending id
// order, using fromID to turn an id back into an N.
func (s *NodeSet[N]) Iter(fromID func(uint8) N) []N {
	var nodes []N
	for i := 0; i < 16; i++ {
		b := s.bits[i]
		for j := 0; j < 8; j++ {
			if (b>>uint(j))&1 == 1 {
				nodes = append(nodes, fromID(uint8(i*8+j)))
			}
		}
	}
	return nodes
}

// Take removes every node from s and returns a copy of the set as it was
// before the removal.
func (s *NodeSet[N]) Take() NodeSet[N] {
	copy := NodeSet[N]{bits: s.bits}
	s.bits = [16]byte{}
	return copy
}

// NodeSetOf builds a NodeSet containing exactly the given nodes.
func NodeSetOf[N Node](nodes ...N) NodeSet[N] {
	var s NodeSet[N]
	for _, n := range nodes {
		s.Insert(n)
	}
	return s
}

// LaneSet borrows a board's lane slice (at most 127 lanes) and tracks
// which lanes are still available. Take scans in declaration order: the
// lanes array's order is part of the routing contract (earlier lanes are
// the preferred routes), so LaneSet must never reorder it.
type LaneSet struct {
	lanes     []Lane
	available [16]byte
}

// NewLaneSet constructs a LaneSet over the given lanes, all initially
// available. Panics if there are 128 or more lanes.
func NewLaneSet(lanes []Lane) *LaneSet {
	if len(lanes) >= 128 {
		panic("jumperless: too many lanes for a LaneSet")
	}
	ls := &LaneSet{lanes: lanes}
	for i := range ls.available {
		ls.available[i] = 0xFF
	}
	return ls
}

// HasIndex reports whether the lane at the given index is still available.
func (s *LaneSet) HasIndex(index int) bool {
	i, j := index/8, uint(index%8)
	return (s.available[i]>>j)&1 == 1
}

// ClearIndex marks the lane at the given index unavailable.
func (s *LaneSet) ClearIndex(index int) {
	i, j := index/8, uint(index%8)
	s.available[i] &^= 1 << j
}

// Take scans available lanes in declaration order and removes and
// returns the first one matching predicate.
func (s *LaneSet) Take(predicate func(Lane) bool) (Lane, bool) {
	lane, _, ok := s.TakeIndexed(predicate)
	return lane, ok
}

// TakeIndexed is Take, additionally returning the removed lane's index
// so a caller can restore it with Restore if it later turns out not to
// lead anywhere (used by the router's speculative bounce search).
func (s *LaneSet) TakeIndexed(predicate func(Lane) bool) (Lane, int, bool) {
	for i, lane := range s.lanes {
		if s.HasIndex(i) && predicate(lane) {
			s.ClearIndex(i)
			return lane, i, true
		}
	}
	return Lane{}, -1, false
}

// Restore marks the lane at index available again.
func (s *LaneSet) Restore(index int) {
	i, j := index/8, uint(index%8)
	s.available[i] |= 1 << j
}
