// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless

import "github.com/pkg/errors"

// NodePort ties a node to one of the ports it is physically wired to. A
// node may appear in several NodePort entries if it is tied to more than
// one port.
type NodePort[N Node] struct {
	Node N
	Port Port
}

// portMapEntryNone is the reserved payload (lane index 0x7F) meaning "this
// port maps to neither a node nor a lane".
const portMapEntryNone = 0x7F << 1

// portMapEntry packs a port's mapping into a single byte: 7 bits of
// payload plus 1 discriminant bit. LSB set means the payload is a node
// id; LSB clear means the payload is a lane index (0x7F is reserved to
// mean "none").
type portMapEntry byte

func portMapEntryForNode(id uint8) portMapEntry {
	return portMapEntry((id << 1) | 1)
}

func portMapEntryForLaneIndex(index int) portMapEntry {
	if index >= 0x7F {
		panic("jumperless: lane index does not fit in PortMap entry")
	}
	return portMapEntry(index << 1)
}

func (e portMapEntry) nodeID() (uint8, bool) {
	if e&1 == 1 {
		return uint8(e >> 1), true
	}
	return 0, false
}

func (e portMapEntry) laneIndex() (int, bool) {
	if e&1 == 1 || e == portMapEntryNone {
		return 0, false
	}
	return int(e >> 1), true
}

// PortMap gives O(1) lookup from a port to the node or lane it belongs
// to, as precomputed by a Board from its BoardSpec.
type PortMap[N Node] struct {
	entries [24 * 12]portMapEntry
	fromID  func(uint8) N
}

func newPortMap[N Node](fromID func(uint8) N) *PortMap[N] {
	pm := &PortMap[N]{fromID: fromID}
	for i := range pm.entries {
		pm.entries[i] = portMapEntryNone
	}
	return pm
}

func portMapAddress(p Port) int {
	return p.Chip.Index()*24 + p.Dim.Index()*16 + int(p.Index)
}

// GetNode returns the node mapped to port, if any.
func (m *PortMap[N]) GetNode(p Port) (N, bool) {
	if id, ok := m.entries[portMapAddress(p)].nodeID(); ok {
		return m.fromID(id), true
	}
	var zero N
	return zero, false
}

// GetLaneIndex returns the lane index mapped to port, if any.
func (m *PortMap[N]) GetLaneIndex(p Port) (int, bool) {
	return m.entries[portMapAddress(p)].laneIndex()
}

func (m *PortMap[N]) setNode(p Port, n N) {
	m.entries[portMapAddress(p)] = portMapEntryForNode(n.ID())
}

func (m *PortMap[N]) setLaneIndex(p Port, index int) {
	m.entries[portMapAddress(p)] = portMapEntryForLaneIndex(index)
}

// BoardSpec is the raw, declarative description of a board: which ports
// each node is tied to, the fixed inter-chip lanes, and the ports
// reserved as bounce-only hops. The order of Lanes is significant: it
// encodes the preferred direct/bounce routing order (see LaneSet.Take).
type BoardSpec[N Node] struct {
	NodePorts   []NodePort[N]
	Lanes       []Lane
	BouncePorts []Port
	FromID      func(uint8) N
}

// CreatePortMap builds the PortMap implied by this spec.
func (spec *BoardSpec[N]) CreatePortMap() *PortMap[N] {
	pm := newPortMap(spec.FromID)
	for _, np := range spec.NodePorts {
		pm.setNode(np.Port, np.Node)
	}
	for i, lane := range spec.Lanes {
		pm.setLaneIndex(lane.A, i)
		pm.setLaneIndex(lane.B, i)
	}
	return pm
}

// Board is an immutable board description: the node-to-port mapping, the
// fixed inter-chip lanes, and the bounce-only ports, plus the PortMap
// precomputed from them. A Board is built once at startup and shared for
// the life of the process.
type Board[N Node] struct {
	spec    BoardSpec[N]
	portMap *PortMap[N]
}

// NewBoard builds a Board from spec, precomputing its PortMap.
func NewBoard[N Node](spec BoardSpec[N]) *Board[N] {
	return &Board[N]{spec: spec, portMap: spec.CreatePortMap()}
}

// PortMap returns the board's precomputed port map.
func (b *Board[N]) PortMap() *PortMap[N] { return b.portMap }

// Lanes returns the board's fixed inter-chip lanes, in declaration order.
func (b *Board[N]) Lanes() []Lane { return b.spec.Lanes }

// BouncePorts returns the board's bounce-only ports.
func (b *Board[N]) BouncePorts() []Port { return b.spec.BouncePorts }

// NodeFromID reconstructs a node of this board's concrete type from a raw
// id, as required by polymorphic operations (e.g. NodeSet.Iter) that only
// carry ids.
func (b *Board[N]) NodeFromID(id uint8) N { return b.spec.FromID(id) }

// NodeToPort finds a port that node is tied to. If a node is tied to
// several ports, the first one (in spec declaration order) is returned.
func (b *Board[N]) NodeToPort(n N) (Port, bool) {
	for _, np := range b.spec.NodePorts {
		if np.Node == n {
			return np.Port, true
		}
	}
	return Port{}, false
}

// PortToLane returns the lane that port is one endpoint of, if any.
func (b *Board[N]) PortToLane(p Port) (Lane, bool) {
	index, ok := b.portMap.GetLaneIndex(p)
	if !ok {
		return Lane{}, false
	}
	return b.spec.Lanes[index], true
}

// PortToNode returns the node that port is tied to, if any.
func (b *Board[N]) PortToNode(p Port) (N, bool) {
	return b.portMap.GetNode(p)
}

// SanityCheck asserts that every one of the 288 ports is referenced
// exactly once across node-ports, lane endpoints, and bounce ports.
// Duplicate or missing port usage is reported as a single aggregated
// error; this is a board-configuration check meant to run once, offline,
// before a board description is trusted (see boardtext.SanityCheck for
// the text-file-level equivalent run before code generation).
func (b *Board[N]) SanityCheck() error {
	var problems []string
	used := PortSet{}
	mark := func(p Port, context string) {
		if used.Contains(p) {
			problems = append(problems, "port "+p.String()+" used more than once ("+context+")")
		}
		used.Insert(p)
	}
	for _, np := range b.spec.NodePorts {
		mark(np.Port, "last use in node mapping")
	}
	for _, lane := range b.spec.Lanes {
		mark(lane.A, "last use in lane with port "+lane.B.String())
		mark(lane.B, "last use in lane with port "+lane.A.String())
	}
	for _, p := range b.spec.BouncePorts {
		mark(p, "last use as bounce port")
	}
	expected := FullPortSet()
	if !expected.IsSuperset(&used) || !used.IsSuperset(&expected) {
		problems = append(problems, expected.Diff(&used)...)
	}
	if len(problems) > 0 {
		return errors.Errorf("board sanity check failed: %v", problems)
	}
	return nil
}
