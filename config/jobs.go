package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warp/batch"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/seqio"
)

var (
	// ErrNoJobs is returned for a job file without jobs.
	ErrNoJobs = errors.New("config: job file lists no jobs")

	// ErrJobSource is returned when a sequence is given both inline and as a
	// file, or not at all.
	ErrJobSource = errors.New("config: each sequence needs exactly one of inline values or a file")

	// ErrDuplicateID is returned when two jobs share an id.
	ErrDuplicateID = errors.New("config: duplicate job id")
)

// JobSpec is one entry of a job file.
//
//	jobs:
//	  - id: morning
//	    seq1: [71, 73, 75]
//	    seq2_file: ~/series/b.txt
//	    pattern: case2
type JobSpec struct {
	ID       string          `yaml:"id"`
	Seq1     []float64       `yaml:"seq1,omitempty"`
	Seq2     []float64       `yaml:"seq2,omitempty"`
	Seq1File string          `yaml:"seq1_file,omitempty"`
	Seq2File string          `yaml:"seq2_file,omitempty"`
	Pattern  dtw.StepPattern `yaml:"pattern,omitempty"`
}

// JobFile is the top-level document of a job file.
type JobFile struct {
	Jobs []JobSpec `yaml:"jobs"`
}

// ParseJobs decodes a job file and resolves it into batch jobs. Jobs without
// a pattern use fallback; jobs without an id get their 1-based position.
// Relative sequence files are resolved as given (relative to the working directory).
func ParseJobs(data []byte, fallback dtw.StepPattern) ([]batch.Job, error) {
	var file JobFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "config: malformed job file")
	}
	if len(file.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	jobs := make([]batch.Job, 0, len(file.Jobs))
	ids := make(map[string]bool, len(file.Jobs))
	for i, spec := range file.Jobs {
		if spec.ID == "" {
			spec.ID = fmt.Sprint(i + 1)
		}
		if ids[spec.ID] {
			return nil, errors.Wrapf(ErrDuplicateID, "%q", spec.ID)
		}
		ids[spec.ID] = true

		seq1, err := resolveSequence(spec.Seq1, spec.Seq1File)
		if err != nil {
			return nil, errors.Wrapf(err, "job %q seq1", spec.ID)
		}
		seq2, err := resolveSequence(spec.Seq2, spec.Seq2File)
		if err != nil {
			return nil, errors.Wrapf(err, "job %q seq2", spec.ID)
		}
		pattern := spec.Pattern
		if pattern == 0 {
			pattern = fallback
		}
		jobs = append(jobs, batch.Job{ID: spec.ID, Seq1: seq1, Seq2: seq2, Pattern: pattern})
	}

	return jobs, nil
}

// LoadJobs reads and resolves the job file at path ("~" is expanded).
func LoadJobs(path string, fallback dtw.StepPattern) ([]batch.Job, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: cannot expand %s", path)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "config: cannot read %s", path)
	}
	jobs, err := ParseJobs(data, fallback)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return jobs, nil
}

// resolveSequence picks the inline values or loads the file.
func resolveSequence(inline []float64, file string) ([]float64, error) {
	switch {
	case len(inline) > 0 && file != "":
		return nil, ErrJobSource
	case len(inline) > 0:
		return inline, nil
	case file != "":
		return seqio.ReadFile(file)
	default:
		return nil, ErrJobSource
	}
}
