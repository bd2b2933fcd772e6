package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/warp/config"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/pb"
	"github.com/katalvlaran/warp/render"
	"github.com/katalvlaran/warp/seqio"
)

// errSeqSource is returned when a sequence has no source or two of them.
var errSeqSource = errors.New("each sequence needs exactly one of --seqN or --seqN-file (or --demo)")

type alignFlags struct {
	engineFlags
	seq1, seq2         string
	seq1File, seq2File string
	allPatterns        bool
	demo               bool
}

func newAlignCmd() *cobra.Command {
	var f alignFlags
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align two sequences.",
		Long: `Align computes the DTW cost and warping path between two sequences given inline
(comma or whitespace separated) or as files, and prints the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err = f.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}
			seq1, seq2, err := f.sequences()
			if err != nil {
				return err
			}
			patterns := []dtw.StepPattern{cfg.Pattern}
			if f.allPatterns {
				patterns = dtw.Patterns()
			}
			return runAlign(cmd.OutOrStdout(), cfg, seq1, seq2, patterns)
		},
	}
	fs := cmd.Flags()
	f.register(fs, "yaml, pb, mask, costs or template")
	fs.StringVar(&f.seq1, "seq1", "", "First sequence, inline.")
	fs.StringVar(&f.seq2, "seq2", "", "Second sequence, inline.")
	fs.StringVar(&f.seq1File, "seq1-file", "", "File with the first sequence.")
	fs.StringVar(&f.seq2File, "seq2-file", "", "File with the second sequence.")
	fs.BoolVar(&f.allPatterns, "all-patterns", false, "Align under every step pattern.")
	fs.BoolVar(&f.demo, "demo", false, "Use the built-in 35- and 37-sample demonstration series.")
	for _, name := range []string{"seq1-file", "seq2-file"} {
		if err := cmd.MarkFlagFilename(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

// sequences resolves both inputs from the flags.
func (f *alignFlags) sequences() ([]float64, []float64, error) {
	if f.demo {
		if f.seq1 != "" || f.seq2 != "" || f.seq1File != "" || f.seq2File != "" {
			return nil, nil, errSeqSource
		}
		return seqio.DemoSeq1, seqio.DemoSeq2, nil
	}
	seq1, err := readSequence(f.seq1, f.seq1File)
	if err != nil {
		return nil, nil, errors.Wrap(err, "seq1")
	}
	seq2, err := readSequence(f.seq2, f.seq2File)
	if err != nil {
		return nil, nil, errors.Wrap(err, "seq2")
	}
	return seq1, seq2, nil
}

func readSequence(inline, file string) ([]float64, error) {
	switch {
	case (inline == "") == (file == ""):
		return nil, errSeqSource
	case inline != "":
		return seqio.ParseString(inline)
	default:
		return seqio.ReadFile(file)
	}
}

// runAlign aligns seq1 and seq2 under every pattern and writes the results
// in cfg.Format.
func runAlign(w io.Writer, cfg config.Config, seq1, seq2 []float64, patterns []dtw.StepPattern) error {
	engines := make([]*dtw.Engine[float64], len(patterns))
	alignments := make([]*pb.Alignment, len(patterns))
	views := make([]render.View, len(patterns))
	for i, sp := range patterns {
		opts := dtw.Options{Pattern: sp, Fill: cfg.Fill}
		eng, err := dtw.New(seq1, seq2, dtw.AbsDiff[float64], &opts)
		if err != nil {
			return errors.Wrapf(err, "failed to set up %s", sp)
		}
		engines[i] = eng
		alignments[i] = pb.FromEngine(sp.String(), eng)
		views[i] = render.ViewOf(alignments[i])
	}

	switch cfg.Format {
	case config.FormatYAML:
		return render.WriteYAML(w, views)
	case config.FormatPB:
		return render.WriteProto(w, alignments)
	case config.FormatTemplate:
		return render.WriteTemplate(w, cfg.Template, views)
	case config.FormatMask, config.FormatCosts:
		for i, eng := range engines {
			fmt.Fprintf(w, "# %s cost=%g\n", views[i].Pattern, views[i].Cost)
			var err error
			if cfg.Format == config.FormatMask {
				n1, n2 := eng.Len()
				err = render.WriteMask(w, n1, n2, eng.Path())
			} else {
				err = render.WriteCosts(w, eng)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(config.ErrInvalidFormat, "%q", cfg.Format)
}
