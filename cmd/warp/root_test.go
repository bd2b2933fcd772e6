package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	proto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/config"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/pb"
)

// execute runs the command tree with an empty configuration file so the
// user's ~/.warp.yaml never leaks into the tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := writeFile(t, "warp.yaml", "")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOutput(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var scenario = []string{"--seq1", "71,73,75", "--seq2", "69 69 73"}

func TestAlignYAML(t *testing.T) {
	out, err := execute(t, append([]string{"align", "--pattern", "case2"}, scenario...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "pattern: case2")
	assert.Contains(t, out, "cost: 6")
	assert.Contains(t, out, "path: [[2, 2], [1, 2], [0, 1], [0, 0]]")
}

func TestAlignAllPatternsTemplate(t *testing.T) {
	args := append([]string{"align", "--all-patterns", "--template", "{{ .Pattern }}={{ .Cost }}"}, scenario...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "case1=4\ncase2=6\ncase3=4\n", out)
}

func TestAlignMask(t *testing.T) {
	out, err := execute(t, append([]string{"align", "--pattern", "case2", "--format", "mask"}, scenario...)...)
	require.NoError(t, err)
	assert.Equal(t, "# case2 cost=6\nXX.\n..X\n..X\n", out)
}

func TestAlignCostsEager(t *testing.T) {
	out, err := execute(t, append([]string{"align", "--pattern", "case2", "--fill", "eager", "--format", "costs"}, scenario...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "    2.00     4.00     6.00\n")
	assert.Contains(t, out, "   12.00    12.00     6.00\n")
}

func TestAlignProtobuf(t *testing.T) {
	out, err := execute(t, append([]string{"align", "--pattern", "case3", "--format", "pb"}, scenario...)...)
	require.NoError(t, err)
	var msg pb.AlignmentResults
	require.NoError(t, proto.Unmarshal([]byte(out), &msg))
	require.Len(t, msg.Results, 1)
	assert.Equal(t, 4.0, msg.Results[0].Cost)
	assert.Equal(t, "case3", msg.Results[0].Pattern)
}

func TestAlignFiles(t *testing.T) {
	f1 := writeFile(t, "a.txt", "# first\n71\n73\n75\n")
	f2 := writeFile(t, "b.txt", "69, 69, 73\n")
	out, err := execute(t, "align", "--seq1-file", f1, "--seq2-file", f2,
		"--template", "{{ .Cost }}")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestAlignDemo(t *testing.T) {
	out, err := execute(t, "align", "--demo", "--template", "{{ .Len1 }}x{{ .Len2 }}")
	require.NoError(t, err)
	assert.Equal(t, "35x37\n", out)
}

func TestAlignConfigDefaults(t *testing.T) {
	cfgPath := writeFile(t, "warp.yaml", "pattern: case2\nformat: template\ntemplate: \"{{ .Pattern }}\"\n")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOutput(&out)
	root.SetArgs(append([]string{"align", "--config", cfgPath}, scenario...))
	require.NoError(t, root.Execute())
	assert.Equal(t, "case2\n", out.String())
}

func TestAlignErrors(t *testing.T) {
	_, err := execute(t, "align", "--seq1", "1,2")
	assert.ErrorIs(t, err, errSeqSource)

	_, err = execute(t, "align", "--demo", "--seq1", "1")
	assert.Equal(t, errSeqSource, err)

	_, err = execute(t, append([]string{"align", "--pattern", "case9"}, scenario...)...)
	assert.Error(t, err)

	_, err = execute(t, append([]string{"align", "--format", "xml"}, scenario...)...)
	assert.ErrorIs(t, err, config.ErrInvalidFormat)

	_, err = execute(t, "align", "--seq1", "1,x", "--seq2", "1")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	seqPath := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(seqPath, []byte("69 69 73\n"), 0o644))
	jobs := `jobs:
  - id: first
    seq1: [71, 73, 75]
    seq2_file: ` + seqPath + `
    pattern: case2
  - id: second
    seq1: [71, 73, 75]
    seq2: [69, 69, 73]
`
	jobsPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobsPath, []byte(jobs), 0o644))

	out, err := execute(t, "batch", jobsPath, "--quiet", "--workers", "2",
		"--template", "{{ .ID }} {{ .Pattern }} {{ .Cost }}")
	require.NoError(t, err)
	assert.Equal(t, "first case2 6\nsecond case1 4\n", out)

	out, err = execute(t, "batch", jobsPath, "--quiet", "--pattern", "case3")
	require.NoError(t, err)
	assert.Contains(t, out, "id: first")
	assert.Contains(t, out, "pattern: case3")
}

func TestBatchErrors(t *testing.T) {
	_, err := execute(t, "batch")
	assert.Error(t, err)

	_, err = execute(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"), "--quiet")
	assert.Error(t, err)

	jobsPath := writeFile(t, "jobs.yaml", "jobs:\n  - seq1: [1]\n    seq2: [1]\n")
	_, err = execute(t, "batch", jobsPath, "--quiet", "--format", "mask")
	assert.Error(t, err)

	_, err = execute(t, "batch", jobsPath, "--quiet", "--workers", "-1")
	assert.ErrorIs(t, err, config.ErrInvalidWorkers)
}

func TestFlagValues(t *testing.T) {
	var sp dtw.StepPattern
	pv := patternValue{&sp}
	assert.Equal(t, "", pv.String())
	require.NoError(t, pv.Set("CASE3"))
	assert.Equal(t, dtw.Case3, sp)
	assert.Equal(t, "case3", pv.String())
	assert.Error(t, pv.Set("diagonal"))
	assert.Equal(t, "pattern", pv.Type())

	var m dtw.FillMode
	fv := fillValue{&m}
	require.NoError(t, fv.Set("eager"))
	assert.Equal(t, dtw.Eager, m)
	assert.Equal(t, "eager", fv.String())
	assert.Error(t, fv.Set("sideways"))
	assert.Equal(t, "fill", fv.Type())
}
