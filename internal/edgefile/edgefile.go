// Package edgefile parses the plain-text edge-list input format: one arc
// per line, whitespace-separated "u v cost resource", blank lines ignored,
// vertex count implied by the highest endpoint seen.
package edgefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rcspp/internal/graph"
	"rcspp/pkg/apperror"
)

// Parse reads an edge list from r and builds the corresponding graph. It
// collects one diagnostic per malformed line instead of failing on the
// first one, returning them all via the second result.
func Parse(r io.Reader) (*graph.Graph, *apperror.ValidationErrors, error) {
	type rawArc struct {
		u, v           int
		cost, resource int64
	}

	var arcs []rawArc
	maxVertex := -1
	verrs := apperror.NewValidationErrors()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			verrs.AddError(apperror.CodeMalformedEdge,
				fmt.Sprintf("line %d: expected 4 fields (u v cost resource), got %d", lineNo, len(fields)))
			continue
		}

		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		cost, errC := strconv.ParseInt(fields[2], 10, 64)
		resource, errR := strconv.ParseInt(fields[3], 10, 64)

		if errU != nil || errV != nil || errC != nil || errR != nil || u < 0 || v < 0 || cost < 0 || resource < 0 {
			verrs.AddError(apperror.CodeMalformedEdge,
				fmt.Sprintf("line %d: all four fields must be nonnegative integers", lineNo))
			continue
		}

		arcs = append(arcs, rawArc{u: u, v: v, cost: cost, resource: resource})
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, verrs, fmt.Errorf("reading edge file: %w", err)
	}

	if !verrs.IsValid() {
		return nil, verrs, nil
	}
	if maxVertex < 0 {
		verrs.AddError(apperror.CodeMalformedEdge, "edge file contains no arcs")
		return nil, verrs, nil
	}

	g := graph.New(maxVertex + 1)
	for _, a := range arcs {
		g.AddArc(a.u, graph.Arc{To: a.v, Cost: a.cost, Resource: a.resource})
	}
	return g, verrs, nil
}
