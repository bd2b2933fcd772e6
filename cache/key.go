// Package cache stores alignment results keyed by a fingerprint of their
// inputs, so identical (pattern, seq1, seq2) triples are computed once.
package cache

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/minio/highwayhash"

	"github.com/katalvlaran/warp/dtw"
)

// hashKey is the fixed 32-byte HighwayHash key. Changing it invalidates
// every persisted fingerprint.
var hashKey = []byte{
	0x77, 0x61, 0x72, 0x70, 0x2d, 0x64, 0x74, 0x77,
	0x9c, 0x1b, 0x43, 0xe2, 0x05, 0x6d, 0xa8, 0x31,
	0x4f, 0xd0, 0x2a, 0x97, 0x6e, 0xb5, 0x18, 0xc4,
	0x83, 0x3a, 0xf1, 0x0d, 0x5e, 0x92, 0x67, 0xbb,
}

// Key returns the hex fingerprint of an alignment job. The encoding covers
// the pattern, both lengths and the IEEE-754 bits of every element, so
// swapping the sequences or moving an element yields a different key.
func Key(pattern dtw.StepPattern, seq1, seq2 []float64) string {
	buf := make([]byte, 0, 1+16+8*(len(seq1)+len(seq2)))
	buf = append(buf, byte(pattern))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(seq1)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(seq2)))
	for _, v := range seq1 {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	for _, v := range seq2 {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return strconv.FormatUint(highwayhash.Sum64(buf, hashKey), 16)
}
