package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"component-derive/internal/analyze"
	"component-derive/internal/config"
	"component-derive/internal/gen"
	"component-derive/internal/plan"
)

// DefaultConfigFile is the path "init" writes to when none is given.
const DefaultConfigFile = "component-derive.yaml"

// options is the resolved configuration of one run.
type options struct {
	Config   *config.Config
	Patterns []string
	Dir      string
	Tags     string
	DryRun   bool
	Debug    bool
}

// optionsFromContext merges the config file and the command line flags.
// Flags win over the file, the file wins over built-in defaults.
func optionsFromContext(c *cli.Context) (*options, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if types := c.StringSlice("type"); len(types) > 0 {
		cfg.Types = splitTypes(types)
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}

	if c.IsSet("suffix") {
		cfg.Suffix = c.String("suffix")
	}

	if c.IsSet("framework") {
		cfg.Framework.Path = c.String("framework")
	}

	if c.IsSet("alias") {
		cfg.Framework.Alias = c.String("alias")
	}

	if c.IsSet("field") {
		cfg.DefaultField = c.String("field")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	patterns := []string(c.Args())
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	return &options{
		Config:   cfg,
		Patterns: patterns,
		Dir:      c.String("dir"),
		Tags:     c.String("tags"),
		DryRun:   c.Bool("dry-run"),
		Debug:    c.Bool("debug"),
	}, nil
}

// generatorConfig returns the code generation settings of the run.
func (o *options) generatorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Suffix:           o.Config.Suffix,
		OutputDir:        o.Config.Output,
		GenerateComments: true,
		AssertInterface:  true,
		DebugUnformatted: o.Debug,
	}
}

// splitTypes flattens comma separated -type values.
func splitTypes(values []string) []string {
	var out []string

	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}

	return out
}

// runner executes one generation run.
type runner struct {
	opts   *options
	out    io.Writer
	errOut io.Writer
	log    logrus.FieldLogger
}

// errGenerationFailed is returned when any selected declaration failed.
var errGenerationFailed = errors.New("component-derive: generation failed")

func (r *runner) run() error {
	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = r.opts.Dir
	if r.opts.Tags != "" {
		analyzer.BuildFlags = []string{"-tags=" + r.opts.Tags}
	}

	cat, err := analyzer.LoadPackages(r.opts.Patterns...)
	if err != nil {
		return err
	}

	for _, ref := range cat.Packages {
		r.log.WithField("package", ref.Path).Debug("loaded package")
	}

	if r.opts.Debug {
		spew.Fdump(r.errOut, cat.Structs)
	}

	p := plan.Build(cat, plan.Selection{Types: r.opts.Config.Types}, r.opts.Config.Options())

	for _, w := range p.Diagnostics.Warnings {
		r.log.WithField("code", w.Code).Warn(w.String())
	}

	for _, e := range p.Diagnostics.Errors {
		r.log.WithField("code", e.Code).Error(e.String())
	}

	generator := gen.NewGenerator(r.opts.generatorConfig())

	impls := p.Implementations()

	files, err := generator.Generate(impls)
	if err != nil {
		return err
	}

	if r.opts.DryRun {
		for _, f := range files {
			fmt.Fprintf(r.out, "// === %s ===\n%s\n", f.Path(), f.Content)
		}
	} else {
		if err := gen.WriteFiles(files); err != nil {
			return err
		}

		// Generate returns one file per implementation, in order.
		for i, f := range files {
			r.log.WithFields(logrus.Fields{
				"type":  f.TypeName,
				"field": impls[i].Delegate.Field.Name,
				"file":  f.Path(),
			}).Info("wrote file")
		}
	}

	if p.HasErrors() {
		return fmt.Errorf("%w: %d error(s): %w", errGenerationFailed, len(p.Diagnostics.Errors), p.Diagnostics.Error())
	}

	return nil
}

// initConfig writes the default configuration.
func initConfig(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := config.WriteFile(config.Default(), path); err != nil {
		return err
	}

	logrus.WithField("file", path).Info("wrote config")

	return nil
}
