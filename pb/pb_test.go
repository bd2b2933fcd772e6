package pb

import (
	"math"
	"testing"

	proto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/dtw"
)

func TestFromEngine(t *testing.T) {
	opts := dtw.Options{Pattern: dtw.Case2, Fill: dtw.Lazy}
	eng, err := dtw.New([]float64{71, 73, 75}, []float64{69, 69, 73}, dtw.AbsDiff[float64], &opts)
	require.NoError(t, err)

	m := FromEngine("job-1", eng)
	assert.Equal(t, "job-1", m.Id)
	assert.Equal(t, "case2", m.Pattern)
	assert.Equal(t, 6.0, m.Cost)
	assert.Equal(t, int32(3), m.Len1)
	assert.Equal(t, int32(3), m.Len2)
	assert.Equal(t, dtw.Path{{2, 2}, {1, 2}, {0, 1}, {0, 0}}, m.ToPath())

	sp, err := m.StepPattern()
	require.NoError(t, err)
	assert.Equal(t, dtw.Case2, sp)
}

func TestEncodeDecode(t *testing.T) {
	m := &Alignment{
		Id:      "x",
		Pattern: "case1",
		Cost:    math.Inf(1),
		Len1:    1,
		Len2:    3,
		Path:    FromPath(dtw.Path{{0, 2}}),
	}
	data, err := Encode(m)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, math.IsInf(back.Cost, 1), "+Inf survives the fixed64 encoding")
	assert.Equal(t, m.ToPath(), back.ToPath())
	assert.True(t, proto.Equal(m, back))

	_, err = Encode(nil)
	assert.ErrorIs(t, err, ErrNilAlignment)
	_, err = Decode([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	m := &Alignment{Pattern: "case3", Path: FromPath(dtw.Path{{1, 1}, {0, 0}})}
	c := Clone(m)
	c.Path[0].P = 42
	assert.Equal(t, int32(1), m.Path[0].P, "deep copy")
	assert.Nil(t, Clone(nil))
	assert.Nil(t, Clone(&Alignment{}).Path)
	assert.Nil(t, FromPath(nil))
	assert.Nil(t, (*Alignment)(nil).ToPath())
}
