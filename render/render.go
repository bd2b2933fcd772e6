// Package render turns alignment results into text: YAML documents,
// protobuf streams, user templates, path masks and cost tables.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	proto "github.com/gogo/protobuf/proto"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/pb"
)

// ErrBadShape is returned when a mask or table is requested for an empty grid.
var ErrBadShape = errors.New("render: grid dimensions must be > 0")

// View is the flat, serialization-friendly form of one alignment.
type View struct {
	ID      string   `yaml:"id,omitempty"`
	Pattern string   `yaml:"pattern"`
	Cost    float64  `yaml:"cost"`
	Len1    int      `yaml:"len1,omitempty"`
	Len2    int      `yaml:"len2,omitempty"`
	Path    [][2]int `yaml:"path,flow"`
	Cached  bool     `yaml:"cached,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

// ViewOf converts a protobuf alignment into a View.
func ViewOf(m *pb.Alignment) View {
	v := View{
		ID:      m.Id,
		Pattern: m.Pattern,
		Cost:    m.Cost,
		Len1:    int(m.Len1),
		Len2:    int(m.Len2),
		Path:    make([][2]int, len(m.Path)),
	}
	for i, c := range m.Path {
		v.Path[i] = [2]int{int(c.P), int(c.Q)}
	}

	return v
}

// Reachable reports whether an alignment exists (finite cost).
func (v View) Reachable() bool {
	return !math.IsInf(v.Cost, 0)
}

// WriteYAML emits views as a single YAML document under "alignments".
func WriteYAML(w io.Writer, views []View) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]View{"alignments": views}); err != nil {
		return err
	}

	return enc.Close()
}

// WriteProto emits the alignments as one serialized pb.AlignmentResults.
func WriteProto(w io.Writer, alignments []*pb.Alignment) error {
	data, err := proto.Marshal(&pb.AlignmentResults{Results: alignments})
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// WriteTemplate executes text once per view. The template sees View fields
// and methods and has the sprig function map available.
func WriteTemplate(w io.Writer, text string, views []View) error {
	t, err := template.New("warp").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return err
	}
	for _, v := range views {
		if err = t.Execute(w, v); err != nil {
			return err
		}
		if !strings.HasSuffix(text, "\n") {
			if _, err = io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteMask draws the n1×n2 grid with 'X' on path cells and '.' elsewhere,
// one row per element of the first sequence.
func WriteMask(w io.Writer, n1, n2 int, path dtw.Path) error {
	if n1 <= 0 || n2 <= 0 {
		return ErrBadShape
	}
	grid := make([][]byte, n1)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", n2))
	}
	for _, c := range path {
		if c.P >= 0 && c.P < n1 && c.Q >= 0 && c.Q < n2 {
			grid[c.P][c.Q] = 'X'
		}
	}
	for _, row := range grid {
		if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
			return err
		}
	}

	return nil
}

// CostSource exposes accumulated costs; *dtw.Engine[T] implements it.
type CostSource interface {
	Len() (n1, n2 int)
	CostAt(p, q int) (float64, bool)
}

// WriteCosts prints the accumulated-cost matrix: "-" for cells never
// computed, "inf" for unreachable ones.
func WriteCosts(w io.Writer, src CostSource) error {
	n1, n2 := src.Len()
	if n1 <= 0 || n2 <= 0 {
		return ErrBadShape
	}
	var sb strings.Builder
	for p := 0; p < n1; p++ {
		for q := 0; q < n2; q++ {
			if q > 0 {
				sb.WriteByte(' ')
			}
			v, ok := src.CostAt(p, q)
			switch {
			case !ok:
				fmt.Fprintf(&sb, "%8s", "-")
			case math.IsInf(v, 1):
				fmt.Fprintf(&sb, "%8s", "inf")
			default:
				fmt.Fprintf(&sb, "%8.2f", v)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
