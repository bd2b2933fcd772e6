// Package seqio reads numeric sequences from text: one or more values per
// line, separated by commas, semicolons or whitespace. Lines starting with
// '#' are comments.
package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/edsrzf/mmap-go"
	"github.com/mitchellh/go-homedir"
)

var (
	// ErrEmpty is returned when the input holds no values.
	ErrEmpty = errors.New("seqio: no values")

	// ErrSyntax is returned for a token that is not a number.
	ErrSyntax = errors.New("seqio: invalid number")
)

// DemoSeq1 and DemoSeq2 are the two temperature-like series of the classic
// DTW demonstration (35 and 37 samples).
var (
	DemoSeq1 = []float64{71, 73, 75, 80, 80, 80, 78, 76, 75, 73, 71, 71, 71, 73, 75, 76, 76, 68, 76, 76, 75, 73, 71, 70, 70, 69, 68, 68, 72, 74, 78, 79, 80, 80, 78}
	DemoSeq2 = []float64{69, 69, 73, 75, 79, 80, 79, 78, 76, 73, 72, 71, 70, 70, 69, 69, 69, 71, 73, 75, 76, 76, 76, 76, 76, 75, 73, 71, 70, 70, 71, 73, 75, 80, 80, 80, 78}
)

// isSep reports whether r separates values.
func isSep(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\r':
		return true
	}

	return false
}

// Parse extracts every value of data in order.
func Parse(data []byte) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), max(64*1024, len(data)+1))
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		for _, tok := range bytes.FieldsFunc(text, isSep) {
			v, err := strconv.ParseFloat(string(tok), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, line, tok)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}

// ParseString is Parse for inline values such as "1, 2, 3".
func ParseString(s string) ([]float64, error) {
	return Parse([]byte(s))
}

// ReadFile memory-maps path ("~" is expanded) and parses its contents.
func ReadFile(path string) ([]float64, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		// mmap rejects zero-length mappings.
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	values, err := Parse(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return values, nil
}
