// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boardv4_test

import (
	"testing"

	"github.com/db47h/jumperless/boardv4"
)

func TestSpecCounts(t *testing.T) {
	spec := boardv4.Spec()
	if got, want := len(spec.NodePorts), 120; got != want {
		t.Errorf("len(NodePorts) = %d, want %d", got, want)
	}
	if got, want := len(spec.Lanes), 84; got != want {
		t.Errorf("len(Lanes) = %d, want %d", got, want)
	}
	if got, want := len(spec.BouncePorts), 0; got != want {
		t.Errorf("len(BouncePorts) = %d, want %d", got, want)
	}
}

func TestNewBoardSanityCheck(t *testing.T) {
	board := boardv4.NewBoard()
	if err := board.SanityCheck(); err != nil {
		t.Fatalf("SanityCheck failed: %v", err)
	}
}

func TestNodeStringRoundTrip(t *testing.T) {
	for _, n := range []boardv4.Node{boardv4.Node_1, boardv4.Node_35, boardv4.NodeGND, boardv4.NodeSUPPLY_5V} {
		s := n.String()
		got, err := boardv4.ParseNode(s)
		if err != nil {
			t.Errorf("ParseNode(%q) failed: %v", s, err)
			continue
		}
		if got != n {
			t.Errorf("ParseNode(%q) = %v, want %v", s, got, n)
		}
	}
}

func TestParseNodeUnknown(t *testing.T) {
	if _, err := boardv4.ParseNode("not a node"); err == nil {
		t.Error("ParseNode should fail for an unknown name")
	}
}

func TestDefaultNodesDistinct(t *testing.T) {
	defaults := boardv4.DefaultNodes()
	seen := make(map[boardv4.Node]bool)
	for _, nodes := range defaults {
		if len(nodes) != 1 {
			t.Fatalf("each special net should bootstrap exactly one node, got %v", nodes)
		}
		if seen[nodes[0]] {
			t.Fatalf("node %v bound to more than one special net", nodes[0])
		}
		seen[nodes[0]] = true
	}
}
