// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netmgr drives the router against a board's live netlist: it
// bootstraps the default special nets, merges nodes into nets on demand,
// and keeps the last successfully routed ChipStatus around so a failed
// reroute never loses a working configuration.
package netmgr

import (
	"iter"
	"log"
	"sync"

	"github.com/db47h/jumperless"
)

// The seven special net ids (spec.md §3, "NetIds 1..=7 are special").
const (
	NetGND jumperless.NetId = iota + 1
	NetSupply5V
	NetSupply3V3
	NetDAC0
	NetDAC1
	NetADC
	NetSense
)

// SpecialNodes supplies the board-specific nodes bound to each of the
// seven reserved special nets at boot (spec.md §6, "Persisted state":
// "seven special nets for GND, rails, DAC/ADC/sense"). Index i holds the
// nodes for net id i+1 — see the NetXxx constants above. A board package
// (e.g. boardv4, boardv5) supplies this, since only it knows which of
// its own Node values are GND, the supply rails, and so on.
type SpecialNodes[N jumperless.Node] [7][]N

// Manager owns one board's live netlist and the ChipStatus it last
// routed to successfully.
type Manager[N jumperless.Node] struct {
	mu       sync.Mutex
	board    *jumperless.Board[N]
	specials SpecialNodes[N]
	nets     []jumperless.Net[N]
	last     jumperless.ChipStatus
}

// NewManager builds a Manager for board, with an empty netlist. specials
// gives the board-specific nodes bound to each of the seven reserved
// special nets; Call Clear to install them before routing.
func NewManager[N jumperless.Node](board *jumperless.Board[N], specials SpecialNodes[N]) *Manager[N] {
	return &Manager[N]{board: board, specials: specials}
}

// defaultNets returns the seven bootstrap nets, each pre-populated with
// its board-specific special nodes (GND, supply rails, DAC/ADC/sense).
func defaultNets[N jumperless.Node](specials SpecialNodes[N]) []jumperless.Net[N] {
	nets := make([]jumperless.Net[N], 7)
	for i := range nets {
		nets[i] = jumperless.Net[N]{ID: jumperless.NetIdFromIndex(i), Nodes: jumperless.NodeSetOf(specials[i]...)}
	}
	return nets
}

// Clear resets the netlist to the seven default special nets and clears
// the last-good ChipStatus. It does not reroute; call Reroute afterwards
// to populate a fresh ChipStatus.
func (m *Manager[N]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nets = defaultNets(m.specials)
	m.last = jumperless.ChipStatus{}
}

func (m *Manager[N]) netIndex(n N) (int, bool) {
	for i := range m.nets {
		if m.nets[i].Nodes.Contains(n) {
			return i, true
		}
	}
	return -1, false
}

// SpecialNetMergeError is returned by AddBridge when a and b already
// belong to two distinct special nets (NetId 1..=7): spec.md §3 forbids
// merging special nets with each other (power rails, ground, and
// DAC/ADC/sense lines must stay electrically distinct).
type SpecialNetMergeError struct {
	A, B jumperless.NetId
}

func (e *SpecialNetMergeError) Error() string {
	return "netmgr: cannot merge special nets " + e.A.String() + " and " + e.B.String()
}

// AddBridge merges the nets containing a and b (creating singleton nets
// for either node not yet assigned to one), then reroutes. On failure
// the merge is not rolled back into m.nets, but m.last (the previously
// routed ChipStatus) is left untouched, per spec.md §7's "leaves the
// prior good configuration in place" requirement.
func (m *Manager[N]) AddBridge(a, b N) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ia, ok := m.netIndex(a)
	if !ok {
		m.nets = append(m.nets, jumperless.Net[N]{ID: jumperless.NetIdFromIndex(len(m.nets)), Nodes: jumperless.NodeSetOf(a)})
		ia = len(m.nets) - 1
	}
	ib, ok := m.netIndex(b)
	if !ok {
		m.nets = append(m.nets, jumperless.Net[N]{ID: jumperless.NetIdFromIndex(len(m.nets)), Nodes: jumperless.NodeSetOf(b)})
		ib = len(m.nets) - 1
	}

	if ia != ib && m.nets[ia].ID.IsSpecial() && m.nets[ib].ID.IsSpecial() {
		return &SpecialNetMergeError{A: m.nets[ia].ID, B: m.nets[ib].ID}
	}

	if ia != ib {
		moved := m.nets[ib].Nodes.Take()
		for _, n := range moved.Iter(m.board.NodeFromID) {
			m.nets[ia].Nodes.Insert(n)
		}
		m.nets = append(m.nets[:ib], m.nets[ib+1:]...)
	}

	return m.reroute()
}

// Reroute recomputes the full ChipStatus for the current netlist. On
// success it replaces the last-good ChipStatus; on failure it returns
// the error and leaves the last-good ChipStatus untouched.
func (m *Manager[N]) Reroute() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reroute()
}

func (m *Manager[N]) reroute() error {
	var cs jumperless.ChipStatus
	if err := jumperless.Route(m.nets, &cs, m.board); err != nil {
		log.Printf("netmgr: reroute failed, keeping last known-good configuration: %v", err)
		return err
	}
	m.last = cs
	return nil
}

// Crosspoints yields every crosspoint closure in the last successfully
// routed configuration.
func (m *Manager[N]) Crosspoints() iter.Seq[jumperless.Crosspoint] {
	m.mu.Lock()
	cps := m.last.Crosspoints()
	m.mu.Unlock()
	return func(yield func(jumperless.Crosspoint) bool) {
		for _, c := range cps {
			if !yield(c) {
				return
			}
		}
	}
}
