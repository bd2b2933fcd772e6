package pb

import (
	"errors"

	proto "github.com/gogo/protobuf/proto"

	"github.com/katalvlaran/warp/dtw"
)

// ErrNilAlignment is returned when decoding into or from a nil message.
var ErrNilAlignment = errors.New("pb: nil alignment")

// FromPath converts an alignment path to its protobuf form, preserving order.
func FromPath(path dtw.Path) []*Coord {
	if len(path) == 0 {
		return nil
	}
	out := make([]*Coord, len(path))
	for i, c := range path {
		out[i] = &Coord{P: int32(c.P), Q: int32(c.Q)}
	}

	return out
}

// ToPath converts a protobuf path back to dtw.Path, preserving order.
func (m *Alignment) ToPath() dtw.Path {
	if m == nil || len(m.Path) == 0 {
		return nil
	}
	out := make(dtw.Path, len(m.Path))
	for i, c := range m.Path {
		out[i] = dtw.Coord{P: int(c.P), Q: int(c.Q)}
	}

	return out
}

// FromEngine computes (if needed) and snapshots the result of eng.
func FromEngine[T any](id string, eng *dtw.Engine[T]) *Alignment {
	n1, n2 := eng.Len()

	return &Alignment{
		Id:      id,
		Pattern: eng.Pattern().String(),
		Cost:    eng.Calculate(),
		Len1:    int32(n1),
		Len2:    int32(n2),
		Path:    FromPath(eng.Path()),
	}
}

// StepPattern parses the Pattern field.
func (m *Alignment) StepPattern() (dtw.StepPattern, error) {
	if m == nil {
		return 0, ErrNilAlignment
	}

	return dtw.ParseStepPattern(m.Pattern)
}

// Encode serializes m with protobuf.
func Encode(m *Alignment) ([]byte, error) {
	if m == nil {
		return nil, ErrNilAlignment
	}

	return proto.Marshal(m)
}

// Decode parses a protobuf-encoded Alignment.
func Decode(data []byte) (*Alignment, error) {
	m := &Alignment{}
	if err := proto.Unmarshal(data, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Clone returns a deep copy of m.
func Clone(m *Alignment) *Alignment {
	if m == nil {
		return nil
	}
	out := *m
	out.Path = make([]*Coord, len(m.Path))
	for i, c := range m.Path {
		cp := *c
		out.Path[i] = &cp
	}
	if len(m.Path) == 0 {
		out.Path = nil
	}

	return &out
}
