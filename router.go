// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless

import "github.com/pkg/errors"

// Net is a set of nodes that must be mutually connected under one net id.
type Net[N Node] struct {
	ID    NetId
	Nodes NodeSet[N]
}

// maxPendingEntries bounds pending_edge_nets and pending_bounces: the
// practical cap on distinct nets per board (spec.md §4.4, "Bounded
// resources").
const maxPendingEntries = 60

// UnmappedNodeError is returned when a net names a node with no entry in
// the Board: a board-configuration error.
type UnmappedNodeError struct {
	NodeID uint8
}

func (e *UnmappedNodeError) Error() string {
	return errors.Errorf("node id %d has no mapped port on this board", e.NodeID).Error()
}

// LaneExhaustionError is returned when no free lane touches a required
// edge during step 4 (pending single-edge completion).
type LaneExhaustionError struct {
	Edge  Edge
	NetID NetId
}

func (e *LaneExhaustionError) Error() string {
	return errors.Errorf("no free lane touches edge %s for net %s", e.Edge, e.NetID).Error()
}

// NoBouncePathError is returned when step 3 cannot find any bounce route
// (orthogonal, two-hop, or three-hop) between two edges a net needs
// joined.
type NoBouncePathError struct {
	EdgeA, EdgeB Edge
	NetID        NetId
}

func (e *NoBouncePathError) Error() string {
	return errors.Errorf("no bounce path from %s to %s for net %s", e.EdgeA, e.EdgeB, e.NetID).Error()
}

// TooManyPendingEntriesError is returned when a routing pass would need
// more than maxPendingEntries simultaneous pending single-edge nets or
// pending bounces: the practical cap on distinct nets per board (spec.md
// §4.4, "Bounded resources").
type TooManyPendingEntriesError struct {
	NetID NetId
}

func (e *TooManyPendingEntriesError) Error() string {
	return errors.Errorf("net %s exceeds the %d-entry pending-routing-work bound", e.NetID, maxPendingEntries).Error()
}

type pendingEdgeNet struct {
	edge Edge
	net  NetId
}

type pendingBounce struct {
	edgeA, edgeB Edge
	net          NetId
}

// Route runs the routing algorithm (spec.md §4.4) over nets against
// board, filling the given empty ChipStatus. Route is all-or-nothing: on
// error, cs holds a partially-filled, unusable intermediate state and
// must be discarded by the caller (spec.md §7, "Failure model"); callers
// that need to retain a last-good configuration should route into a
// fresh ChipStatus and only adopt it on success (see netmgr.Manager).
func Route[N Node](nets []Net[N], cs *ChipStatus, board *Board[N]) error {
	lanes := NewLaneSet(board.Lanes())

	var pendingEdgeNets []pendingEdgeNet
	var pendingBounces []pendingBounce

	// Step 1 + 2.
	for _, net := range nets {
		var edges EdgeSet
		for _, n := range net.Nodes.Iter(board.NodeFromID) {
			port, ok := board.NodeToPort(n)
			if !ok {
				return &UnmappedNodeError{NodeID: n.ID()}
			}
			cs.Set(port, net.ID)
			edges.Insert(port.Edge().Orthogonal())
		}

		if edges.Len() == 1 {
			if len(pendingEdgeNets) >= maxPendingEntries {
				return &TooManyPendingEntriesError{NetID: net.ID}
			}
			edge, _ := edges.Pop()
			pendingEdgeNets = append(pendingEdgeNets, pendingEdgeNet{edge, net.ID})
			continue
		}

		var connected EdgeSet
		if start, ok := edges.Pop(); ok {
			connected.Insert(start)
		}

		for edges.Len() > 0 {
			found := false
		search:
			for _, unconnected := range edges.Iter() {
				for _, c := range connected.Iter() {
					if lane, ok := lanes.Take(func(l Lane) bool { return l.Connects(c, unconnected) }); ok {
						cs.SetLane(lane, net.ID)
						connected.Insert(unconnected)
						edges.Remove(unconnected)
						found = true
						break search
					}
				}
			}
			if found {
				continue
			}
			// No direct lane: pop one edge from each side and enqueue a
			// bounce candidate. The popped unconnected edge is dropped,
			// not moved to connected (spec.md §9 open question (a)).
			if len(pendingBounces) >= maxPendingEntries {
				return &TooManyPendingEntriesError{NetID: net.ID}
			}
			u, _ := edges.Pop()
			c, _ := connected.Pop()
			pendingBounces = append(pendingBounces, pendingBounce{c, u, net.ID})
		}
	}

	// Step 3 — bounces.
	for _, pb := range pendingBounces {
		if err := resolveBounce(cs, lanes, pb, &pendingEdgeNets); err != nil {
			return err
		}
	}

	// Step 4 — pending single-edge completion.
	for _, pe := range pendingEdgeNets {
		lane, ok := lanes.Take(func(l Lane) bool { return l.Touches(pe.edge) })
		if !ok {
			return &LaneExhaustionError{Edge: pe.edge, NetID: pe.net}
		}
		cs.SetLane(lane, pe.net)
	}

	return nil
}

func resolveBounce(cs *ChipStatus, lanes *LaneSet, pb pendingBounce, pendingEdgeNets *[]pendingEdgeNet) error {
	edgeA, edgeB, net := pb.edgeA, pb.edgeB, pb.net

	// (a) orthogonal bounce on a.
	altA := edgeA.Orthogonal()
	if lane, ok := lanes.Take(func(l Lane) bool { return l.Connects(altA, edgeB) }); ok {
		if len(*pendingEdgeNets) >= maxPendingEntries {
			return &TooManyPendingEntriesError{NetID: net}
		}
		cs.SetLane(lane, net)
		*pendingEdgeNets = append(*pendingEdgeNets, pendingEdgeNet{edgeA, net})
		return nil
	}

	// (b) orthogonal bounce on b.
	altB := edgeB.Orthogonal()
	if lane, ok := lanes.Take(func(l Lane) bool { return l.Connects(edgeA, altB) }); ok {
		if len(*pendingEdgeNets) >= maxPendingEntries {
			return &TooManyPendingEntriesError{NetID: net}
		}
		cs.SetLane(lane, net)
		*pendingEdgeNets = append(*pendingEdgeNets, pendingEdgeNet{edgeB, net})
		return nil
	}

	// (c) two-hop / three-hop via a third chip. Selection order: ports on
	// edgeA ascending index, then for each, a candidate destination edge D
	// reached by a free lane leaving that port; for each D, try the
	// two-hop (D.orthogonal() -> edgeB) then three-hop (D -> edgeB, plus
	// any free lane with an endpoint on D.orthogonal()) forms. First
	// success wins, giving a deterministic, earliest-lane-index result.
	for _, portA := range edgeA.Ports() {
		l0, i0, ok := lanes.TakeIndexed(func(l Lane) bool { return l.A == portA || l.B == portA })
		if !ok {
			continue
		}
		d := l0.Opposite(portA).Edge()

		if l1, ok := lanes.Take(func(l Lane) bool { return l.Connects(d.Orthogonal(), edgeB) }); ok {
			cs.SetLane(l0, net)
			cs.SetLane(l1, net)
			return nil
		}

		if l1, i1, ok := lanes.TakeIndexed(func(l Lane) bool { return l.Connects(d, edgeB) }); ok {
			if l2, ok := lanes.Take(func(l Lane) bool { return l.Touches(d.Orthogonal()) }); ok {
				cs.SetLane(l0, net)
				cs.SetLane(l1, net)
				cs.SetLane(l2, net)
				return nil
			}
			// l1 didn't pan out without an l2; put it back.
			lanes.Restore(i1)
		}

		// l0 led nowhere; put it back before trying the next port.
		lanes.Restore(i0)
	}

	return &NoBouncePathError{EdgeA: edgeA, EdgeB: edgeB, NetID: net}
}
