// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command boardgen reads a board description directory (nodes.txt,
// lanes.txt, bounceports.txt) and emits a Go source file declaring a
// concrete Node type and Board value for that revision.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/db47h/jumperless"
	"github.com/db47h/jumperless/boardtext"
)

func main() {
	var (
		dir     = flag.String("dir", ".", "board description directory containing nodes.txt, lanes.txt, bounceports.txt")
		pkg     = flag.String("pkg", "board", "generated package name")
		outPath = flag.String("out", "", "output file path (default: <dir>/board.go)")
	)
	flag.Parse()

	spec, err := boardtext.Parse(
		filepath.Join(*dir, "nodes.txt"),
		filepath.Join(*dir, "lanes.txt"),
		filepath.Join(*dir, "bounceports.txt"),
	)
	if err != nil {
		log.Fatalf("boardgen: parse failed: %v", err)
	}

	if err := boardtext.SanityCheck(spec); err != nil {
		log.Fatalf("boardgen: sanity check failed: %v", err)
	}

	out := *outPath
	if out == "" {
		out = filepath.Join(*dir, "board.go")
	}
	if err := generate(spec, *pkg, out); err != nil {
		log.Fatalf("boardgen: %v", err)
	}
}

func constName(nodeName string) string {
	if nodeName == "" {
		return "Node"
	}
	r := []rune(nodeName)
	if r[0] >= '0' && r[0] <= '9' {
		return "Node_" + nodeName
	}
	return "Node" + nodeName
}

func generate(spec *boardtext.Spec, pkg, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "// This file was auto-generated from a board spec definition.")
	fmt.Fprintf(f, "package %s\n\n", pkg)
	fmt.Fprintln(f, `import (`)
	fmt.Fprintln(f, `	"strconv"`)
	fmt.Fprintln(f)
	fmt.Fprintln(f, `	"github.com/pkg/errors"`)
	fmt.Fprintln(f)
	fmt.Fprintln(f, `	"github.com/db47h/jumperless"`)
	fmt.Fprintln(f, `)`)
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// Node identifies a named point on this board revision.")
	fmt.Fprintln(f, "type Node uint8")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "const (")
	for i, name := range spec.NodeNames {
		fmt.Fprintf(f, "\t%s Node = %d\n", constName(name), i)
	}
	fmt.Fprintln(f, ")")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// ID implements jumperless.Node.")
	fmt.Fprintln(f, "func (n Node) ID() uint8 { return uint8(n) }")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "var nodeNames = map[Node]string{")
	for _, name := range spec.NodeNames {
		fmt.Fprintf(f, "\t%s: %q,\n", constName(name), name)
	}
	fmt.Fprintln(f, "}")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// String implements fmt.Stringer.")
	fmt.Fprintln(f, "func (n Node) String() string {")
	fmt.Fprintln(f, "\tif s, ok := nodeNames[n]; ok {")
	fmt.Fprintln(f, "\t\treturn s")
	fmt.Fprintln(f, "\t}")
	fmt.Fprintln(f, `	return "Node(" + strconv.Itoa(int(n)) + ")"`)
	fmt.Fprintln(f, "}")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "var nodeByName = func() map[string]Node {")
	fmt.Fprintln(f, "\tm := make(map[string]Node, len(nodeNames))")
	fmt.Fprintln(f, "\tfor n, s := range nodeNames {")
	fmt.Fprintln(f, "\t\tm[s] = n")
	fmt.Fprintln(f, "\t}")
	fmt.Fprintln(f, "\treturn m")
	fmt.Fprintln(f, "}()")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// ParseNode looks up a Node by its String() form.")
	fmt.Fprintln(f, "func ParseNode(s string) (Node, error) {")
	fmt.Fprintln(f, "\tif n, ok := nodeByName[s]; ok {")
	fmt.Fprintln(f, "\t\treturn n, nil")
	fmt.Fprintln(f, "\t}")
	fmt.Fprintln(f, `	return 0, errors.Errorf("unknown node %q", s)`)
	fmt.Fprintln(f, "}")
	fmt.Fprintln(f)

	fmt.Fprintln(f, "var nodePorts = []jumperless.NodePort[Node]{")
	for _, np := range spec.NodePorts {
		fmt.Fprintf(f, "\t{%s, %s},\n", constName(spec.NodeNames[np.NodeIndex]), portLiteral(np.Port))
	}
	fmt.Fprintln(f, "}")
	fmt.Fprintln(f)

	fmt.Fprintln(f, "var lanes = []jumperless.Lane{")
	for _, l := range spec.Lanes {
		fmt.Fprintf(f, "\t{%s, %s},\n", portLiteral(l.A), portLiteral(l.B))
	}
	fmt.Fprintln(f, "}")
	fmt.Fprintln(f)

	if len(spec.BouncePorts) == 0 {
		fmt.Fprintln(f, "var bouncePorts []jumperless.Port")
	} else {
		fmt.Fprintln(f, "var bouncePorts = []jumperless.Port{")
		for _, p := range spec.BouncePorts {
			fmt.Fprintf(f, "\t%s,\n", portLiteral(p))
		}
		fmt.Fprintln(f, "}")
	}
	fmt.Fprintln(f)

	counts := fmt.Sprintf("%d nodes, %d node-port entries, %d lanes, %d bounce ports",
		len(spec.NodeNames), len(spec.NodePorts), len(spec.Lanes), len(spec.BouncePorts))
	fmt.Fprintf(f, "// Spec returns the board spec for %s (%s).\n", pkg, counts)
	fmt.Fprintln(f, "func Spec() jumperless.BoardSpec[Node] {")
	fmt.Fprintln(f, "\treturn jumperless.BoardSpec[Node]{")
	fmt.Fprintln(f, "\t\tNodePorts:   nodePorts,")
	fmt.Fprintln(f, "\t\tLanes:       lanes,")
	fmt.Fprintln(f, "\t\tBouncePorts: bouncePorts,")
	fmt.Fprintln(f, "\t\tFromID:      func(id uint8) Node { return Node(id) },")
	fmt.Fprintln(f, "\t}")
	fmt.Fprintln(f, "}")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// NewBoard constructs the immutable Board value for this revision.")
	fmt.Fprintln(f, "func NewBoard() *jumperless.Board[Node] {")
	fmt.Fprintln(f, "\treturn jumperless.NewBoard(Spec())")
	fmt.Fprintln(f, "}")

	return nil
}

func portLiteral(p jumperless.Port) string {
	return fmt.Sprintf("jumperless.Port{jumperless.ChipId('%s'), jumperless.Dim%s, %d}", p.Chip, p.Dim, p.Index)
}
