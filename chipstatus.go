// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless

import "github.com/pkg/errors"

// Crosspoint identifies one closed switch: chip, X index, Y index, and
// the net id the switch carries.
type Crosspoint struct {
	Chip  ChipId
	X, Y  uint8
	NetID NetId
}

// PortAlreadyAssignedError is the value ChipStatus.Set panics with when a
// port is assigned a net id twice within a routing pass.
// Per the single-assignment invariant this is always a programming or
// board-configuration error, never a recoverable routing failure.
type PortAlreadyAssignedError struct {
	Port     Port
	Existing NetId
}

func (e *PortAlreadyAssignedError) Error() string {
	return errors.Errorf("port %s already assigned to net %s", e.Port, e.Existing).Error()
}

type chipEntry struct {
	x [16]*NetId
	y [8]*NetId
}

// ChipStatus holds the per-port net assignment for all twelve chips: for
// each port, either unassigned or assigned to exactly one NetId. A port
// may be set at most once per pass; re-assignment panics (see
// PortAlreadyAssignedError).
type ChipStatus struct {
	chips [12]chipEntry
}

// Clear removes every net assignment.
func (cs *ChipStatus) Clear() {
	cs.chips = [12]chipEntry{}
}

// Get returns the net id assigned to port, if any.
func (cs *ChipStatus) Get(p Port) (NetId, bool) {
	entry := &cs.chips[p.Chip.Index()]
	var ptr *NetId
	if p.Dim == DimX {
		ptr = entry.x[p.Index]
	} else {
		ptr = entry.y[p.Index]
	}
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// Set assigns net to port. Panics with a *PortAlreadyAssignedError if the
// port is already assigned, enforcing the single-assignment invariant.
func (cs *ChipStatus) Set(p Port, net NetId) {
	if existing, ok := cs.Get(p); ok {
		panic(&PortAlreadyAssignedError{Port: p, Existing: existing})
	}
	entry := &cs.chips[p.Chip.Index()]
	n := net
	if p.Dim == DimX {
		entry.x[p.Index] = &n
	} else {
		entry.y[p.Index] = &n
	}
}

// SetLane assigns net to both endpoints of lane.
func (cs *ChipStatus) SetLane(lane Lane, net NetId) {
	cs.Set(lane.A, net)
	cs.Set(lane.B, net)
}

// Available reports whether port has no net assignment yet.
func (cs *ChipStatus) Available(p Port) bool {
	_, ok := cs.Get(p)
	return !ok
}

// Crosspoints returns every (chip, x, y) switch that must be closed:
// those where the chip's x[x] and y[y] assignments are both set and
// equal. The underlying scan mirrors the reference advancement rule
// exactly (advance_y after every cell visited, including non-matches;
// advance_x, resetting y to 0, only when x[x] itself is unassigned) so
// that output ordering is reproducible chip-by-chip, which the downstream
// switch driver depends on for batching chip-select lines (spec.md §6).
func (cs *ChipStatus) Crosspoints() []Crosspoint {
	var out []Crosspoint
	for i := range cs.chips {
		chip := ChipIdFromIndex(i)
		entry := &cs.chips[i]
		x := 0
		for x < 16 {
			xNet := entry.x[x]
			if xNet == nil {
				x++
				continue
			}
			for y := 0; y < 8; y++ {
				if yNet := entry.y[y]; yNet != nil && *yNet == *xNet {
					out = append(out, Crosspoint{chip, uint8(x), uint8(y), *xNet})
				}
			}
			x++
		}
	}
	return out
}

type visitKind int

const (
	visitSkip visitKind = iota
	visitMark
	visitMarkAndFollow
)

// CheckConnectivity is an offline self-test (intended for tests and debug
// builds, per spec.md §4.3): it verifies that every node-port the board
// maps into net are mutually reachable via closed switches and traversed
// lanes. board is used to identify which ports are node-ports (the
// "required" set) and to follow lanes during the walk.
func CheckConnectivity[N Node](cs *ChipStatus, net NetId, board *Board[N]) error {
	var required PortSet
	var first *Port
	for i := range cs.chips {
		chip := ChipIdFromIndex(i)
		entry := &cs.chips[i]
		for x, v := range entry.x {
			if v != nil && *v == net {
				p := chip.PortX(uint8(x))
				if _, ok := board.PortToNode(p); ok {
					required.Insert(p)
					if first == nil {
						fp := p
						first = &fp
					}
				}
			}
		}
		for y, v := range entry.y {
			if v != nil && *v == net {
				p := chip.PortY(uint8(y))
				if _, ok := board.PortToNode(p); ok {
					required.Insert(p)
					if first == nil {
						fp := p
						first = &fp
					}
				}
			}
		}
	}
	if first == nil {
		return errors.Errorf("net %s must be connected to at least one port", net)
	}

	var visited PortSet
	visit := func(p Port, value NetId, ok bool) (visitKind, Port) {
		if ok && value == net {
			if lane, ok := board.PortToLane(p); ok {
				return visitMarkAndFollow, lane.Opposite(p)
			}
			return visitMark, Port{}
		}
		return visitSkip, Port{}
	}
	visitPort(cs, *first, &visited, visit)

	if !visited.IsSuperset(&required) {
		diff := visited.Diff(&required)
		return errors.Errorf("net %s is not fully connected: %v", net, diff)
	}
	return nil
}

// visitPort performs the depth-first walk described in spec.md §4.3: it
// first visits every unvisited port on the orthogonal edge, marking (and
// optionally following a lane from) those the visit callback accepts; it
// only descends into the remaining ports on the same edge if at least one
// orthogonal port was marked.
func visitPort(cs *ChipStatus, start Port, visited *PortSet, visit func(Port, NetId, bool) (visitKind, Port)) {
	visited.Insert(start)

	markedOrthogonal := false
	for _, p := range start.Edge().Orthogonal().Ports() {
		if visited.Contains(p) {
			continue
		}
		value, ok := cs.Get(p)
		switch kind, follow := visit(p, value, ok); kind {
		case visitSkip:
		case visitMark:
			markedOrthogonal = true
			visited.Insert(p)
		case visitMarkAndFollow:
			markedOrthogonal = true
			visited.Insert(p)
			visitPort(cs, follow, visited, visit)
		}
	}

	if markedOrthogonal {
		for _, p := range start.Edge().Ports() {
			if visited.Contains(p) {
				continue
			}
			value, ok := cs.Get(p)
			switch kind, follow := visit(p, value, ok); kind {
			case visitSkip:
			case visitMark:
				visited.Insert(p)
			case visitMarkAndFollow:
				visited.Insert(p)
				visitPort(cs, follow, visited, visit)
			}
		}
	}
}
