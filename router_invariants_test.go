// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless_test

import (
	"testing"

	"github.com/db47h/jumperless"
	"github.com/db47h/jumperless/boardv4"
)

// TestRouteNodeToPortAssignment is P1: every node named by a net ends up
// with its board port assigned to that net's id.
func TestRouteNodeToPortAssignment(t *testing.T) {
	board := boardv4.NewBoard()
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.NodeGND, boardv4.Node_2),
		net(1, boardv4.Node_7, boardv4.Node_8),
	}
	var cs jumperless.ChipStatus
	if err := jumperless.Route(nets, &cs, board); err != nil {
		t.Fatalf("Route failed: %v", err)
	}

	for _, n := range nets {
		for _, node := range n.Nodes.Iter(board.NodeFromID) {
			port, ok := board.NodeToPort(node)
			if !ok {
				t.Fatalf("node %v has no mapped port", node)
			}
			got, ok := cs.Get(port)
			if !ok {
				t.Errorf("port %s for node %v was never assigned", port, node)
				continue
			}
			if got != n.ID {
				t.Errorf("port %s for node %v assigned to %s, want %s", port, node, got, n.ID)
			}
		}
	}
}

// TestRouteNoCrossNetSharing is P2: two disjoint nets never end up with a
// port or crosspoint assigned to each other's id.
func TestRouteNoCrossNetSharing(t *testing.T) {
	board := boardv4.NewBoard()
	n0 := net(0, boardv4.NodeGND, boardv4.Node_2)
	n1 := net(1, boardv4.Node_7, boardv4.Node_8)
	nets := []jumperless.Net[boardv4.Node]{n0, n1}

	var cs jumperless.ChipStatus
	if err := jumperless.Route(nets, &cs, board); err != nil {
		t.Fatalf("Route failed: %v", err)
	}

	for _, cp := range cs.Crosspoints() {
		if cp.NetID != n0.ID && cp.NetID != n1.ID {
			t.Errorf("crosspoint %v carries an unexpected net id", cp)
		}
	}

	port0, _ := board.NodeToPort(boardv4.NodeGND)
	port1, _ := board.NodeToPort(boardv4.Node_7)
	got0, _ := cs.Get(port0)
	got1, _ := cs.Get(port1)
	if got0 == got1 {
		t.Errorf("ports belonging to disjoint nets ended up on the same net id %s", got0)
	}
}

// TestRouteRoundTrip is P4: walking every assigned port of the routed
// ChipStatus back through the board's PortToNode mapping reconstructs
// exactly the node-to-net membership the nets were given, with no stray
// assignments. Route assigns one port per node (the one NodeToPort
// returns), so a node tied to several ports, such as GND, is reconstructed
// from whichever of its ports is assigned.
func TestRouteRoundTrip(t *testing.T) {
	board := boardv4.NewBoard()
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.NodeGND, boardv4.Node_2),
		net(1, boardv4.Node_7, boardv4.Node_8),
	}
	var cs jumperless.ChipStatus
	if err := jumperless.Route(nets, &cs, board); err != nil {
		t.Fatalf("Route failed: %v", err)
	}

	wantNet := make(map[boardv4.Node]jumperless.NetId)
	for _, n := range nets {
		for _, node := range n.Nodes.Iter(board.NodeFromID) {
			wantNet[node] = n.ID
		}
	}

	gotNet := make(map[boardv4.Node]jumperless.NetId)
	for _, p := range jumperless.AllPorts() {
		node, ok := board.PortToNode(p)
		if !ok {
			continue
		}
		got, assigned := cs.Get(p)
		if !assigned {
			continue
		}
		want, isMember := wantNet[node]
		if !isMember {
			t.Errorf("node %v's port %s is assigned to net %s but the node is in no input net", node, p, got)
			continue
		}
		if got != want {
			t.Errorf("node %v's port %s reconstructs to net %s, want %s", node, p, got, want)
		}
		gotNet[node] = got
	}
	for node := range wantNet {
		if _, ok := gotNet[node]; !ok {
			t.Errorf("node %v has no assigned port in the routed output", node)
		}
	}
}
