package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"xsd-generator/internal/diagnostic"
	"xsd-generator/internal/dump"
	"xsd-generator/internal/gen"
	"xsd-generator/internal/ir"
	"xsd-generator/internal/logger"
	"xsd-generator/internal/schema"
	"xsd-generator/internal/union"
	"xsd-generator/internal/walk"
)

// Job names one schema file and the output name of its artifacts.
type Job struct {
	// Schema is the path of the schema file.
	Schema string
	// Name is the record name, e.g. "Road".
	Name string
}

// Options configures a Pipeline.
type Options struct {
	Walk   walk.Options
	Union  union.Options
	Render gen.Config
	// Formats lists the debug dumps written next to each header.
	Formats []dump.Format
	// OutputDir receives every generated file.
	OutputDir string
	// FailFast aborts the run on the first failing job.
	FailFast bool
	// Workers bounds the number of jobs processed at once.
	Workers int
}

// DefaultOptions returns options for a sequential, fail-fast run that
// writes headers and JSON dumps into "generated".
func DefaultOptions() Options {
	return Options{
		Render:    gen.DefaultConfig(),
		Formats:   []dump.Format{dump.FormatJSON},
		OutputDir: "generated",
		FailFast:  true,
		Workers:   1,
	}
}

// Result is the outcome of one job.
type Result struct {
	Job         Job
	Record      ir.Record
	Diagnostics diagnostic.Diagnostics
	// Files lists the names of the files written for the job.
	Files []string
	Err   error
}

// Summary collects the results of the jobs that ran, in job order.
type Summary struct {
	Results []Result
}

// Succeeded returns the number of jobs that completed.
func (s Summary) Succeeded() int {
	n := 0

	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}

	return n
}

// Diagnostics returns the diagnostics of every job, in job order.
func (s Summary) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, r := range s.Results {
		all.Merge(r.Diagnostics)
	}

	return all
}

// Failed returns the number of jobs that returned an error.
func (s Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// Pipeline turns schema files into headers and dumps.
type Pipeline struct {
	opts         Options
	log          logger.Logger
	walker       *walk.Walker
	restructurer *union.Restructurer
	renderer     *gen.Renderer
	writer       *gen.Writer
}

// New creates a Pipeline. A nil log discards all output.
func New(opts Options, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewSilent()
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return &Pipeline{
		opts:         opts,
		log:          log,
		walker:       walk.New(opts.Walk),
		restructurer: union.New(opts.Union),
		renderer:     gen.NewRenderer(opts.Render),
		writer:       gen.NewWriter(opts.OutputDir),
	}
}

// Transform loads the schema at path and returns its final IR. Nothing is
// written.
func (p *Pipeline) Transform(path, name string) (ir.Record, diagnostic.Diagnostics, error) {
	root, err := schema.LoadFile(path)
	if err != nil {
		return ir.Record{}, diagnostic.Diagnostics{}, err
	}

	p.log.Debug("schema loaded", logger.F("schema", path), logger.F("elements", root.Count()))

	raw, err := p.walker.Walk(root)
	if err != nil {
		return ir.Record{}, diagnostic.Diagnostics{}, fmt.Errorf("walking %s: %w", path, err)
	}

	data, diags, err := p.restructurer.Restructure(raw)
	if err != nil {
		return ir.Record{}, diags, fmt.Errorf("restructuring %s: %w", path, err)
	}

	return ir.Record{Name: name, Data: data}, diags, nil
}

// Files renders rec into the header and one dump per configured format.
// Dumps are named after the header, e.g. "Road.hpp.json".
func (p *Pipeline) Files(rec ir.Record) ([]gen.GeneratedFile, error) {
	header, err := p.renderer.RenderFile(rec)
	if err != nil {
		return nil, err
	}

	files := []gen.GeneratedFile{header}

	for _, f := range p.opts.Formats {
		content, err := dump.Serialize(rec, f)
		if err != nil {
			return nil, fmt.Errorf("dumping %s as %s: %w", rec.Name, f, err)
		}

		files = append(files, gen.GeneratedFile{
			Filename: header.Filename + f.Extension(),
			Content:  content,
		})
	}

	return files, nil
}

// Run processes jobs and returns the results of those that ran. With
// FailFast the first error stops the run and is returned; otherwise every
// job runs and the failures are joined.
func (p *Pipeline) Run(ctx context.Context, jobs []Job) (Summary, error) {
	if p.opts.Workers > 1 {
		return p.runConcurrent(ctx, jobs)
	}

	var (
		summary Summary
		errs    []error
	)

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := p.runJob(job)
		summary.Results = append(summary.Results, res)

		if res.Err != nil {
			if p.opts.FailFast {
				return summary, res.Err
			}

			errs = append(errs, res.Err)
		}
	}

	return summary, errors.Join(errs...)
}

func (p *Pipeline) runConcurrent(ctx context.Context, jobs []Job) (Summary, error) {
	results := make([]Result, len(jobs))
	ran := make([]bool, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = p.runJob(job)
			ran[i] = true

			if p.opts.FailFast {
				return results[i].Err
			}

			return nil
		})
	}

	waitErr := g.Wait()

	var (
		summary Summary
		errs    []error
	)

	for i, res := range results {
		if !ran[i] {
			continue
		}

		summary.Results = append(summary.Results, res)

		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}

	if p.opts.FailFast {
		if waitErr == nil {
			waitErr = ctx.Err()
		}

		return summary, waitErr
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return summary, errors.Join(errs...)
}

func (p *Pipeline) runJob(job Job) Result {
	log := p.log.WithFields(logger.F("name", job.Name))
	log.Info("parsing", logger.F("schema", job.Schema))

	res := Result{Job: job}

	rec, diags, err := p.Transform(job.Schema, job.Name)
	res.Diagnostics = diags
	p.report(log, diags)

	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.Name, err)
		log.Error("failed", logger.F("error", err))

		return res
	}

	res.Record = rec

	files, err := p.Files(rec)
	if err == nil {
		err = p.writer.Write(files...)
	}

	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.Name, err)
		log.Error("failed", logger.F("error", err))

		return res
	}

	for _, f := range files {
		res.Files = append(res.Files, f.Filename)
	}

	log.Info("generated",
		logger.F("declarations", rec.Data.Len()),
		logger.F("structs", len(rec.Declarations(ir.KindStruct))),
		logger.F("files", len(files)),
		logger.F("dir", p.writer.Dir()))

	return res
}

func (p *Pipeline) report(log logger.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Infos {
		log.Debug(d.String())
	}

	for _, d := range diags.Warnings {
		log.Warn(d.String())
	}

	for _, d := range diags.Errors {
		log.Error(d.String())
	}
}
