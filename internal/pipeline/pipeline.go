// Package pipeline runs a search as an ordered list of stages over one SearchContext.
package pipeline

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/standardbeagle/lfind/internal/debug"
	lfinderrors "github.com/standardbeagle/lfind/internal/errors"
	"github.com/standardbeagle/lfind/internal/types"
)

// Stage is one step of a search. Run may replace or reorder sc.Results.
type Stage struct {
	Name string
	Run  func(sc *types.SearchContext) error
}

// Pipeline executes its stages in order and stops at the first failure.
type Pipeline struct {
	stages []Stage
	log    logrus.FieldLogger
}

// New creates a pipeline from stages, run in the given order
func New(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
		log:    debug.ForComponent(debug.ComponentPipeline),
	}
}

// WithLogger replaces the logger used for stage transitions
func (p *Pipeline) WithLogger(log logrus.FieldLogger) *Pipeline {
	if log != nil {
		p.log = log
	}
	return p
}

// Stages returns the stage names in execution order
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run executes every stage against sc. A stage error is returned wrapped in a
// StageError and no later stage runs. ctx is checked between stages only; a
// running stage is never interrupted.
func (p *Pipeline) Run(ctx context.Context, sc *types.SearchContext) error {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		debug.LogPipeline("running stage %s with %d results\n", stage.Name, len(sc.Results))
		if err := stage.Run(sc); err != nil {
			p.log.WithError(err).WithField("stage", stage.Name).Debug("stage failed")
			return lfinderrors.NewStageError(stage.Name, err)
		}
	}
	return nil
}
