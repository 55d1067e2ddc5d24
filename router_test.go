// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package jumperless_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/db47h/jumperless"
	"github.com/db47h/jumperless/boardv4"
)

func sortCrosspoints(cps []jumperless.Crosspoint) {
	sort.Slice(cps, func(i, j int) bool {
		a, b := cps[i], cps[j]
		if a.Chip != b.Chip {
			return a.Chip < b.Chip
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
}

func route(t *testing.T, nets []jumperless.Net[boardv4.Node]) *jumperless.ChipStatus {
	t.Helper()
	board := boardv4.NewBoard()
	var cs jumperless.ChipStatus
	if err := jumperless.Route(nets, &cs, board); err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	return &cs
}

func net(id int, nodes ...boardv4.Node) jumperless.Net[boardv4.Node] {
	return jumperless.Net[boardv4.Node]{
		ID:    jumperless.NetIdFromIndex(id),
		Nodes: jumperless.NodeSetOf(nodes...),
	}
}

// TestRouteDirect is scenario S1 (direct routes, no bounce needed).
func TestRouteDirect(t *testing.T) {
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.NodeGND, boardv4.Node_2),
		net(1, boardv4.Node_7, boardv4.Node_8),
	}
	cs := route(t, nets)
	got := cs.Crosspoints()
	sortCrosspoints(got)

	want := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 0, Y: 1, NetID: jumperless.NetIdFromIndex(0)},
		{Chip: jumperless.ChipA, X: 1, Y: 6, NetID: jumperless.NetIdFromIndex(1)},
		{Chip: jumperless.ChipA, X: 1, Y: 7, NetID: jumperless.NetIdFromIndex(1)},
		{Chip: jumperless.ChipI, X: 15, Y: 0, NetID: jumperless.NetIdFromIndex(0)},
	}
	sortCrosspoints(want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestRouteOrthogonalBounce is scenario S2: no direct lane joins chip A
// and chip L, so the router must bounce through A's orthogonal edge.
func TestRouteOrthogonalBounce(t *testing.T) {
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.Node_1, boardv4.Node_2),
	}
	cs := route(t, nets)
	got := cs.Crosspoints()
	sortCrosspoints(got)

	n1 := jumperless.NetIdFromIndex(0)
	want := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 0, Y: 0, NetID: n1},
		{Chip: jumperless.ChipA, X: 0, Y: 1, NetID: n1},
		{Chip: jumperless.ChipL, X: 8, Y: 0, NetID: n1},
	}
	sortCrosspoints(want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestRouteSingleChip is scenario S4: every node-port of the net lands
// on the same edge of the same chip, so only one lane out is needed.
func TestRouteSingleChip(t *testing.T) {
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.Node_23, boardv4.Node_24, boardv4.Node_25, boardv4.Node_26,
			boardv4.Node_27, boardv4.Node_28, boardv4.Node_29),
	}
	cs := route(t, nets)
	got := cs.Crosspoints()
	sortCrosspoints(got)

	n1 := jumperless.NetIdFromIndex(0)
	var want []jumperless.Crosspoint
	for y := uint8(1); y <= 7; y++ {
		want = append(want, jumperless.Crosspoint{Chip: jumperless.ChipD, X: 0, Y: y, NetID: n1})
	}
	sortCrosspoints(want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestRouteDeterministic is scenario S6: routing the same input twice
// yields byte-for-byte identical output (P5).
func TestRouteDeterministic(t *testing.T) {
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.NodeGND, boardv4.Node_2),
		net(1, boardv4.Node_7, boardv4.Node_8),
	}
	a := route(t, nets).Crosspoints()
	b := route(t, nets).Crosspoints()
	sortCrosspoints(a)
	sortCrosspoints(b)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two routing passes over the same input diverged: %v vs %v", a, b)
	}
}

// TestCheckConnectivitySucceeds exercises P3 on scenario S1's nets.
func TestCheckConnectivitySucceeds(t *testing.T) {
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
		if err := jumperless.CheckConnectivity(&cs, n.ID, board); err != nil {
			t.Errorf("CheckConnectivity(%s) failed: %v", n.ID, err)
		}
	}
}

// tinyNode is a minimal jumperless.Node used to build a small board with
// a deliberately starved lane supply, for the P6 boundary test.
type tinyNode uint8

func (n tinyNode) ID() uint8 { return uint8(n) }

const (
	tinyNode0 tinyNode = iota
	tinyNode1
)

// tinyBoard has exactly one lane touching chip A's X edge: any second net
// that needs a lane on that edge must fail, not bounce or panic.
func tinyBoard() *jumperless.Board[tinyNode] {
	spec := jumperless.BoardSpec[tinyNode]{
		NodePorts: []jumperless.NodePort[tinyNode]{
			{Node: tinyNode0, Port: jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimY, Index: 0}},
			{Node: tinyNode1, Port: jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimY, Index: 1}},
		},
		Lanes: []jumperless.Lane{
			{
				A: jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 0},
				B: jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimX, Index: 0},
			},
		},
		FromID: func(id uint8) tinyNode { return tinyNode(id) },
	}
	return jumperless.NewBoard(spec)
}

// TestRouteLaneExhaustion is P6: a single-edge net that finds no free
// lane touching its edge must fail with *LaneExhaustionError, not panic.
func TestRouteLaneExhaustion(t *testing.T) {
	board := tinyBoard()
	nets := []jumperless.Net[tinyNode]{
		{ID: jumperless.NetIdFromIndex(0), Nodes: jumperless.NodeSetOf(tinyNode0)},
		{ID: jumperless.NetIdFromIndex(1), Nodes: jumperless.NodeSetOf(tinyNode1)},
	}

	var cs jumperless.ChipStatus
	err := jumperless.Route(nets, &cs, board)
	if err == nil {
		t.Fatal("expected the second single-edge net to exhaust the one available lane")
	}
	if _, ok := err.(*jumperless.LaneExhaustionError); !ok {
		t.Fatalf("got error of type %T, want *jumperless.LaneExhaustionError: %v", err, err)
	}
}

// manyNode is a minimal jumperless.Node used to build a board with as
// many distinct single-node ports as needed, for the pending-entries
// bound test.
type manyNode uint8

func (n manyNode) ID() uint8 { return uint8(n) }

// manyBoard places count nodes on distinct X ports, spread across chips
// as needed, with no lanes: a single-node net's pending edge is enqueued
// before any lane is ever consulted, so the lane set can stay empty.
func manyBoard(count int) *jumperless.Board[manyNode] {
	var ports []jumperless.NodePort[manyNode]
	for i := 0; i < count; i++ {
		chip := jumperless.ChipIdFromIndex(i / 16)
		ports = append(ports, jumperless.NodePort[manyNode]{
			Node: manyNode(i),
			Port: jumperless.Port{Chip: chip, Dim: jumperless.DimX, Index: uint8(i % 16)},
		})
	}
	spec := jumperless.BoardSpec[manyNode]{
		NodePorts: ports,
		FromID:    func(id uint8) manyNode { return manyNode(id) },
	}
	return jumperless.NewBoard(spec)
}

// TestRouteTooManyPendingEntries exercises the maxPendingEntries bound: a
// 61st single-node net, each generating one pending-edge entry, must fail
// with *TooManyPendingEntriesError rather than silently growing past the
// practical per-board cap.
func TestRouteTooManyPendingEntries(t *testing.T) {
	const tooMany = 61
	board := manyBoard(tooMany)

	var nets []jumperless.Net[manyNode]
	for i := 0; i < tooMany; i++ {
		nets = append(nets, jumperless.Net[manyNode]{
			ID:    jumperless.NetIdFromIndex(i),
			Nodes: jumperless.NodeSetOf(manyNode(i)),
		})
	}

	var cs jumperless.ChipStatus
	err := jumperless.Route(nets, &cs, board)
	if err == nil {
		t.Fatal("expected the 61st single-edge net to exceed the pending-entries bound")
	}
	if _, ok := err.(*jumperless.TooManyPendingEntriesError); !ok {
		t.Fatalf("got error of type %T, want *jumperless.TooManyPendingEntriesError: %v", err, err)
	}
}

// bounceNode and bounceBoard build a board with no direct or
// single-orthogonal-hop lane between chip A's Y edge and chip C's X edge,
// forcing resolveBounce into its two-hop and three-hop candidate search
// (the deeper bounce paths behind scenario S3's lane-exhaustion bounce).
type bounceNode uint8

func (n bounceNode) ID() uint8 { return uint8(n) }

const (
	bounceA bounceNode = iota
	bounceC
)

func bounceBoard(lanes []jumperless.Lane) *jumperless.Board[bounceNode] {
	spec := jumperless.BoardSpec[bounceNode]{
		NodePorts: []jumperless.NodePort[bounceNode]{
			{Node: bounceA, Port: jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimX, Index: 0}},
			{Node: bounceC, Port: jumperless.Port{Chip: jumperless.ChipC, Dim: jumperless.DimY, Index: 0}},
		},
		Lanes:  lanes,
		FromID: func(id uint8) bounceNode { return bounceNode(id) },
	}
	return jumperless.NewBoard(spec)
}

// TestRouteTwoHopBounce exercises resolveBounce's two-hop candidate: chip
// A's Y edge reaches chip B's X edge, and chip B's Y edge reaches chip C's
// X edge directly, with no shorter path available.
func TestRouteTwoHopBounce(t *testing.T) {
	board := bounceBoard([]jumperless.Lane{
		{A: jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimY, Index: 0}, B: jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimX, Index: 0}},
		{A: jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimY, Index: 0}, B: jumperless.Port{Chip: jumperless.ChipC, Dim: jumperless.DimX, Index: 0}},
	})
	nets := []jumperless.Net[bounceNode]{
		{ID: jumperless.NetIdFromIndex(0), Nodes: jumperless.NodeSetOf(bounceA, bounceC)},
	}
	var cs jumperless.ChipStatus
	if err := jumperless.Route(nets, &cs, board); err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	got := cs.Crosspoints()
	sortCrosspoints(got)

	n1 := jumperless.NetIdFromIndex(0)
	want := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 0, Y: 0, NetID: n1},
		{Chip: jumperless.ChipB, X: 0, Y: 0, NetID: n1},
		{Chip: jumperless.ChipC, X: 0, Y: 0, NetID: n1},
	}
	sortCrosspoints(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestRouteThreeHopBounce exercises resolveBounce's three-hop candidate:
// the two-hop shortcut (chip B's orthogonal edge reaching chip C's X edge
// directly) is deliberately absent, forcing the router to close chip B's
// own crosspoint via a fourth, otherwise uninvolved chip D.
func TestRouteThreeHopBounce(t *testing.T) {
	board := bounceBoard([]jumperless.Lane{
		{A: jumperless.Port{Chip: jumperless.ChipA, Dim: jumperless.DimY, Index: 0}, B: jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimX, Index: 0}},
		{A: jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimX, Index: 1}, B: jumperless.Port{Chip: jumperless.ChipC, Dim: jumperless.DimX, Index: 0}},
		{A: jumperless.Port{Chip: jumperless.ChipB, Dim: jumperless.DimY, Index: 0}, B: jumperless.Port{Chip: jumperless.ChipD, Dim: jumperless.DimX, Index: 0}},
	})
	nets := []jumperless.Net[bounceNode]{
		{ID: jumperless.NetIdFromIndex(0), Nodes: jumperless.NodeSetOf(bounceA, bounceC)},
	}
	var cs jumperless.ChipStatus
	if err := jumperless.Route(nets, &cs, board); err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	got := cs.Crosspoints()
	sortCrosspoints(got)

	n1 := jumperless.NetIdFromIndex(0)
	want := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 0, Y: 0, NetID: n1},
		{Chip: jumperless.ChipB, X: 0, Y: 0, NetID: n1},
		{Chip: jumperless.ChipB, X: 1, Y: 0, NetID: n1},
		{Chip: jumperless.ChipC, X: 0, Y: 0, NetID: n1},
	}
	sortCrosspoints(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestRouteLaneExhaustionBounce is scenario S3: nets (2,9) and (3,10)
// saturate both direct A<->B lanes (AX2<->BX0, AX3<->BX1), so net (4,11)
// is forced to bounce through chip C via the AX4<->CX0, BX4<->CX2, and
// CY0<->LY2 lanes.
func TestRouteLaneExhaustionBounce(t *testing.T) {
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.Node_2, boardv4.Node_9),
		net(1, boardv4.Node_3, boardv4.Node_10),
		net(2, boardv4.Node_4, boardv4.Node_11),
	}
	cs := route(t, nets)
	got := cs.Crosspoints()
	sortCrosspoints(got)

	n1, n2, n3 := jumperless.NetIdFromIndex(0), jumperless.NetIdFromIndex(1), jumperless.NetIdFromIndex(2)
	want := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 2, Y: 1, NetID: n1},
		{Chip: jumperless.ChipA, X: 3, Y: 2, NetID: n2},
		{Chip: jumperless.ChipA, X: 4, Y: 3, NetID: n3},
		{Chip: jumperless.ChipB, X: 0, Y: 1, NetID: n1},
		{Chip: jumperless.ChipB, X: 1, Y: 2, NetID: n2},
		{Chip: jumperless.ChipB, X: 4, Y: 3, NetID: n3},
		{Chip: jumperless.ChipC, X: 0, Y: 0, NetID: n3},
		{Chip: jumperless.ChipC, X: 2, Y: 0, NetID: n3},
	}
	sortCrosspoints(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestRouteThreeChipNet is scenario S5: a net with nodes on three
// different chips, joined by two direct inter-edge lanes and no bounce,
// against the real boardv4 wiring.
func TestRouteThreeChipNet(t *testing.T) {
	nets := []jumperless.Net[boardv4.Node]{
		net(0, boardv4.NodeSUPPLY_5V, boardv4.Node_3, boardv4.Node_4, boardv4.Node_35),
	}
	cs := route(t, nets)
	got := cs.Crosspoints()
	sortCrosspoints(got)

	n1 := jumperless.NetIdFromIndex(0)
	// Node_3 and Node_4 sit on chip A's Y edge (indices 2 and 3), pulling
	// chip A's X edge in as the seed of the connected edges. A direct lane closes
	// it against chip E's X edge (AX8<->EX0, reaching Node_35 on EY4) and
	// another direct lane closes it against chip J's Y edge (AX1<->JY0,
	// reaching NodeSUPPLY_5V on JX14). Chip A ends up with both X1 and X8
	// set, and both Y2 and Y3 set, so all four combinations close.
	want := []jumperless.Crosspoint{
		{Chip: jumperless.ChipA, X: 1, Y: 2, NetID: n1},
		{Chip: jumperless.ChipA, X: 1, Y: 3, NetID: n1},
		{Chip: jumperless.ChipA, X: 8, Y: 2, NetID: n1},
		{Chip: jumperless.ChipA, X: 8, Y: 3, NetID: n1},
		{Chip: jumperless.ChipE, X: 0, Y: 4, NetID: n1},
		{Chip: jumperless.ChipJ, X: 14, Y: 0, NetID: n1},
	}
	sortCrosspoints(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
