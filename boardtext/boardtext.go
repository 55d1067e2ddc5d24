// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package boardtext reads a board description from its three plain-text
// source files (nodes.txt, lanes.txt, bounceports.txt) into a Spec that
// boardgen can turn into Go source.
package boardtext

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/jumperless"
)

// NodePort ties a node index (into Spec.NodeNames) to one of the ports it
// is wired to.
type NodePort struct {
	NodeIndex int
	Port      jumperless.Port
}

// Spec is the parsed, not-yet-validated contents of a board description:
// the three text files' data, with node names assigned dense ids in
// first-seen order.
type Spec struct {
	NodeNames   []string
	NodePorts   []NodePort
	Lanes       []jumperless.Lane
	BouncePorts []jumperless.Port
}

// InvalidLine is returned when a nodes.txt or lanes.txt line is missing
// its ':' delimiter.
type InvalidLine struct {
	Line int
	Text string
}

func (e *InvalidLine) Error() string {
	return errors.Errorf("line %d: missing ':' delimiter: %q", e.Line, e.Text).Error()
}

// InvalidPortSpec is returned when a line's port spec fails to parse.
type InvalidPortSpec struct {
	Line int
	Spec string
	Err  error
}

func (e *InvalidPortSpec) Error() string {
	return errors.Wrapf(e.Err, "line %d: invalid port spec %q", e.Line, e.Spec).Error()
}

func (e *InvalidPortSpec) Unwrap() error { return e.Err }

// nodeIndex returns name's dense id, assigning it a new one in first-seen
// order if this is the first time name has been seen.
func nodeIndex(names []string, seen map[string]int, name string) ([]string, int) {
	if i, ok := seen[name]; ok {
		return names, i
	}
	i := len(names)
	names = append(names, name)
	seen[name] = i
	return names, i
}

func splitLine(line string) (string, string, bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

func eachNonEmptyLine(path string, fn func(lineNo int, text string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := fn(lineNo, text); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Parse reads the three board description files named by nodesPath,
// lanesPath, and bouncePortsPath (spec.md §6) into a Spec. Node names are
// assigned dense ids in first-seen order; a node named on multiple lines
// keeps its first-assigned id and accumulates additional ports.
func Parse(nodesPath, lanesPath, bouncePortsPath string) (*Spec, error) {
	spec := &Spec{}
	seen := make(map[string]int)

	err := eachNonEmptyLine(nodesPath, func(lineNo int, text string) error {
		name, portSpec, ok := splitLine(text)
		if !ok {
			return &InvalidLine{Line: lineNo, Text: text}
		}
		port, err := jumperless.ParsePort(portSpec)
		if err != nil {
			return &InvalidPortSpec{Line: lineNo, Spec: portSpec, Err: err}
		}
		var idx int
		spec.NodeNames, idx = nodeIndex(spec.NodeNames, seen, name)
		spec.NodePorts = append(spec.NodePorts, NodePort{NodeIndex: idx, Port: port})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachNonEmptyLine(lanesPath, func(lineNo int, text string) error {
		aSpec, bSpec, ok := splitLine(text)
		if !ok {
			return &InvalidLine{Line: lineNo, Text: text}
		}
		a, err := jumperless.ParsePort(aSpec)
		if err != nil {
			return &InvalidPortSpec{Line: lineNo, Spec: aSpec, Err: err}
		}
		b, err := jumperless.ParsePort(bSpec)
		if err != nil {
			return &InvalidPortSpec{Line: lineNo, Spec: bSpec, Err: err}
		}
		spec.Lanes = append(spec.Lanes, jumperless.Lane{A: a, B: b})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachNonEmptyLine(bouncePortsPath, func(lineNo int, text string) error {
		p, err := jumperless.ParsePort(text)
		if err != nil {
			return &InvalidPortSpec{Line: lineNo, Spec: text, Err: err}
		}
		spec.BouncePorts = append(spec.BouncePorts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// SanityCheckFailed aggregates every problem SanityCheck finds: duplicate
// port usages and the ports missing from the expected 288-port universe.
type SanityCheckFailed struct {
	Problems []string
	Missing  []jumperless.Port
}

func (e *SanityCheckFailed) Error() string {
	return errors.Errorf("board description sanity check failed: duplicates=%v missing=%v", e.Problems, e.Missing).Error()
}

// SanityCheck asserts that every one of the 288 ports is referenced
// exactly once across node-ports, lane endpoints, and bounce ports.
func SanityCheck(spec *Spec) error {
	var problems []string
	used := jumperless.PortSet{}
	mark := func(p jumperless.Port, context string) {
		if used.Contains(p) {
			problems = append(problems, "port "+p.String()+" used more than once ("+context+")")
		}
		used.Insert(p)
	}
	for _, np := range spec.NodePorts {
		mark(np.Port, "node "+spec.NodeNames[np.NodeIndex])
	}
	for _, lane := range spec.Lanes {
		mark(lane.A, "lane to "+lane.B.String())
		mark(lane.B, "lane to "+lane.A.String())
	}
	for _, p := range spec.BouncePorts {
		mark(p, "bounce port")
	}

	var missing []jumperless.Port
	for _, p := range jumperless.AllPorts() {
		if !used.Contains(p) {
			missing = append(missing, p)
		}
	}

	if len(problems) > 0 || len(missing) > 0 {
		return &SanityCheckFailed{Problems: problems, Missing: missing}
	}
	return nil
}
