package verovio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/withSang/verovio/att"
)

// ErrOverlappingTrees is returned by OptimizeScoreDefs when one of the given
// roots lies within the tree of another.
var ErrOverlappingTrees = errors.New("overlapping trees")

// scoreDefOptimizeEnder is implemented by nodes that compute their visibility
// once their subtree has been optimised.
type scoreDefOptimizeEnder interface {
	ScoreDefOptimizeEnd() WalkAction
}

// ScoreDefOptimizer is the Functor of the score definition optimisation pass.
// It invokes ScoreDefOptimizeEnd on every node implementing it, in post-order,
// so that each staff group sees the final visibility of its children.
//
// The visibility of staff definitions is expected to have been computed before
// the pass (from the content of the staves); the pass only reads it, apart
// from the staff definitions a braced group forces to show.
//
// A ScoreDefOptimizer counts the groups it leaves shown and hidden. The zero
// value is ready to use and discards log output.
type ScoreDefOptimizer struct {
	Log logr.Logger

	Shown, Hidden int
}

func (o *ScoreDefOptimizer) Visit(Node) WalkAction { return WalkContinue }

func (o *ScoreDefOptimizer) VisitEnd(n Node) WalkAction {
	x, ok := n.(scoreDefOptimizeEnder)
	if !ok {
		return WalkContinue
	}
	action := x.ScoreDefOptimizeEnd()

	if g, ok := n.(*StaffGrp); ok {
		v := g.DrawingVisibility()
		if v == att.OptimizationHidden {
			o.Hidden++
		} else {
			o.Shown++
		}
		o.Log.V(1).Info("Optimized staff group", "id", g.ID(), "visibility", v.String())
	}
	return action
}

// OptimizeScoreDef runs the score definition optimisation pass over the tree of
// root. It returns a non-nil error only if ctx is already done, in which case
// the tree is left untouched.
//
// The pass is synchronous and must be the only writer of the tree while it
// runs.
func OptimizeScoreDef(ctx context.Context, root Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "OptimizeScoreDef", trace.WithAttributes(
		attribute.String("root.id", root.ID()),
		attribute.String("root.class", root.ClassID().String()),
	))
	defer span.End()

	log := logr.FromContextOrDiscard(ctx).WithValues("root", root.ID())
	optimizer := ScoreDefOptimizer{Log: log}

	start := time.Now()
	Walk(&optimizer, root)
	measureOptimize(ctx, optimizer.Shown, optimizer.Hidden, time.Since(start))

	span.SetAttributes(
		attribute.Int("staffGrp.shown", optimizer.Shown),
		attribute.Int("staffGrp.hidden", optimizer.Hidden),
	)
	log.Info("Optimized score definition", "shown", optimizer.Shown, "hidden", optimizer.Hidden)
	return nil
}

// OptimizeScoreDefs runs OptimizeScoreDef over each of the given trees, at most
// limit of them at a time (no limit if limit is not positive). The trees must
// be disjoint: each pass is the single writer of its own tree.
//
// It stops starting new passes once ctx is done and returns the first error.
func OptimizeScoreDefs(ctx context.Context, roots []Node, limit int) error {
	if err := checkDisjoint(roots); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "OptimizeScoreDefs", trace.WithAttributes(
		attribute.Int("roots", len(roots)),
	))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, root := range roots {
		root := root
		g.Go(func() error {
			if err := OptimizeScoreDef(ctx, root); err != nil {
				return fmt.Errorf("optimize %s: %w", root.ID(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// checkDisjoint returns an error wrapping ErrOverlappingTrees if a root is
// repeated or is a descendant of another root.
func checkDisjoint(roots []Node) error {
	seen := make(map[Node]struct{}, len(roots))
	for _, root := range roots {
		if _, ok := seen[root]; ok {
			return fmt.Errorf("%s given twice: %w", root.ID(), ErrOverlappingTrees)
		}
		seen[root] = struct{}{}
	}
	for _, root := range roots {
		for n := root.Parent(); n != nil; n = n.Parent() {
			if _, ok := seen[n]; ok {
				return fmt.Errorf("%s is within %s: %w", root.ID(), n.ID(), ErrOverlappingTrees)
			}
		}
	}
	return nil
}
