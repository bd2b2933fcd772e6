// Package pb holds the protobuf messages of alignment results. The message
// layout mirrors pb.proto; values are encoded with gogo/protobuf.
package pb

import (
	proto "github.com/gogo/protobuf/proto"
)

// Coord is one cell of an alignment path.
type Coord struct {
	P int32 `protobuf:"varint,1,opt,name=p,proto3" json:"p,omitempty"`
	Q int32 `protobuf:"varint,2,opt,name=q,proto3" json:"q,omitempty"`
}

func (m *Coord) Reset()         { *m = Coord{} }
func (m *Coord) String() string { return proto.CompactTextString(m) }
func (*Coord) ProtoMessage()    {}

// Alignment is the result of aligning one pair of sequences.
type Alignment struct {
	Id      string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Pattern string   `protobuf:"bytes,2,opt,name=pattern,proto3" json:"pattern,omitempty"`
	Cost    float64  `protobuf:"fixed64,3,opt,name=cost,proto3" json:"cost,omitempty"`
	Len1    int32    `protobuf:"varint,4,opt,name=len1,proto3" json:"len1,omitempty"`
	Len2    int32    `protobuf:"varint,5,opt,name=len2,proto3" json:"len2,omitempty"`
	Path    []*Coord `protobuf:"bytes,6,rep,name=path,proto3" json:"path,omitempty"`
}

func (m *Alignment) Reset()         { *m = Alignment{} }
func (m *Alignment) String() string { return proto.CompactTextString(m) }
func (*Alignment) ProtoMessage()    {}

// AlignmentResults bundles several alignments, e.g. the output of a batch run.
type AlignmentResults struct {
	Results []*Alignment `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *AlignmentResults) Reset()         { *m = AlignmentResults{} }
func (m *AlignmentResults) String() string { return proto.CompactTextString(m) }
func (*AlignmentResults) ProtoMessage()    {}
