package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
)

// Format selects the result encoding.
type Format string

// Supported result formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// WriteProblem writes p in the input format with 1-based keys, one edge per
// line. Parse(WriteProblem(p)) yields p again.
func WriteProblem(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n%d\n", p.Vertices, len(p.Edges), p.Source+1)
	for _, e := range p.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From+1, e.To+1, e.Weight)
	}

	return bw.Flush()
}

// ProblemFromGraph captures g's topology as a Problem with the given source.
func ProblemFromGraph(g *core.Graph, source int) *Problem {
	p := &Problem{Vertices: g.Order(), Source: source, Edges: make([]core.Edge, 0, g.Size())}
	for e := range g.Edges() {
		p.Edges = append(p.Edges, *e)
	}

	return p
}

// WriteText writes one line per vertex in key order: the decimal cost, or
// the matching marker for unbounded and unreachable vertices.
func WriteText(w io.Writer, res *bellmanford.Result, m Markers) error {
	bw := bufio.NewWriter(w)
	for _, c := range res.Costs {
		switch c.Kind() {
		case cost.KindUnbounded:
			bw.WriteString(m.Unbounded)
		case cost.KindUnreachable:
			bw.WriteString(m.Unreachable)
		default:
			bw.WriteString(c.String())
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Report is the structured document written by the yaml and json formats.
// Vertex keys are 1-based, as in the input.
type Report struct {
	Source        int            `yaml:"source" json:"source"`
	NegativeCycle bool           `yaml:"negative_cycle" json:"negative_cycle"`
	Rounds        int            `yaml:"rounds" json:"rounds"`
	Vertices      []VertexReport `yaml:"vertices" json:"vertices"`
}

// VertexReport is one vertex line of a Report. Predecessor is omitted for
// the source and for vertices without a finite shortest path.
type VertexReport struct {
	Vertex      int       `yaml:"vertex" json:"vertex"`
	Cost        cost.Cost `yaml:"cost" json:"cost"`
	Predecessor *int      `yaml:"predecessor,omitempty" json:"predecessor,omitempty"`
}

// NewReport converts an engine result into a Report.
func NewReport(res *bellmanford.Result) Report {
	rep := Report{
		Source:        res.Source + 1,
		NegativeCycle: res.HasNegativeCycle(),
		Rounds:        res.Rounds,
		Vertices:      make([]VertexReport, len(res.Costs)),
	}
	for v, c := range res.Costs {
		vr := VertexReport{Vertex: v + 1, Cost: c}
		if pred := res.Predecessors[v]; c.IsFinite() && pred != core.NoPredecessor {
			p := pred + 1
			vr.Predecessor = &p
		}
		rep.Vertices[v] = vr
	}

	return rep
}

// WriteResult encodes res in format f. Markers only affect FormatText.
func WriteResult(w io.Writer, f Format, res *bellmanford.Result, m Markers) error {
	switch f {
	case FormatText:
		return WriteText(w, res, m)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(res)); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewReport(res)); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
