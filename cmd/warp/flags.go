package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/warp/config"
	"github.com/katalvlaran/warp/dtw"
)

// patternValue exposes a dtw.StepPattern as a pflag.Value.
type patternValue struct{ sp *dtw.StepPattern }

func (v patternValue) String() string {
	if v.sp == nil || *v.sp == 0 {
		return ""
	}
	return v.sp.String()
}

func (v patternValue) Set(s string) error {
	sp, err := dtw.ParseStepPattern(s)
	if err != nil {
		return err
	}
	*v.sp = sp
	return nil
}

func (v patternValue) Type() string { return "pattern" }

// fillValue exposes a dtw.FillMode as a pflag.Value.
type fillValue struct{ m *dtw.FillMode }

func (v fillValue) String() string {
	if v.m == nil || *v.m == 0 {
		return ""
	}
	return v.m.String()
}

func (v fillValue) Set(s string) error {
	m, err := dtw.ParseFillMode(s)
	if err != nil {
		return err
	}
	*v.m = m
	return nil
}

func (v fillValue) Type() string { return "fill" }

// engineFlags are shared by align and batch.
type engineFlags struct {
	pattern  dtw.StepPattern
	fill     dtw.FillMode
	format   string
	template string
}

func (f *engineFlags) register(fs *pflag.FlagSet, formats string) {
	fs.Var(patternValue{&f.pattern}, "pattern", "Step pattern: case1, case2 or case3.")
	fs.Var(fillValue{&f.fill}, "fill", "Matrix fill mode: lazy or eager.")
	fs.StringVar(&f.format, "format", "", "Output format: "+formats+".")
	fs.StringVar(&f.template, "template", "", "Go text/template (with sprig functions) "+
		"executed per alignment; implies --format template.")
}

// apply overrides cfg with the flags the user actually set.
func (f *engineFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if fs.Changed("fill") {
		cfg.Fill = f.fill
	}
	if fs.Changed("template") {
		cfg.Template = f.template
		cfg.Format = config.FormatTemplate
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	return cfg.Validate()
}
