// Package locator aggregates the per-toolchain conventions: it runs
// every configured convention against a project root, verifies each
// candidate against the filesystem, and ranks the survivors by
// modification recency.
package locator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/convention"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/workspace"
)

// statLimit caps the concurrent stat calls per convention so a huge
// build directory cannot exhaust file descriptors.
const statLimit = 16

// Locator runs an ordered set of conventions and ranks their results.
// It holds no state between calls; every Locate is a fresh scan.
type Locator struct {
	ws    workspace.Workspace
	log   *log.Logger
	convs []convention.Convention
}

// New creates a Locator over the given conventions. Convention order is
// preserved and used for display and for tie-breaking equal timestamps.
func New(ws workspace.Workspace, logger *log.Logger, convs ...convention.Convention) *Locator {
	return &Locator{ws: ws, log: logger, convs: convs}
}

// Default returns a Locator over all registered conventions, backed by
// the OS filesystem.
func Default() *Locator {
	return New(workspace.Default(), log.Default(), convention.All()...)
}

// Name returns a human-readable label joining the configured convention
// names in order. Display only; it plays no part in ranking.
func (l *Locator) Name() string {
	names := make([]string, len(l.convs))
	for i, c := range l.convs {
		names[i] = string(c.Name())
	}
	return strings.Join(names, ", ")
}

// Locate returns every code object found under root, most recently
// modified first. Candidates that vanish between search and stat are
// dropped silently; a failing search aborts the whole call.
//
// Objects are not deduplicated: a path found by two conventions appears
// once per discovery. Equal timestamps keep merge order, which is
// convention order first and each convention's own result order within
// it.
func (l *Locator) Locate(ctx context.Context, root string) ([]model.Object, error) {
	perConv := make([][]model.Object, len(l.convs))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range l.convs {
		g.Go(func() error {
			locs, err := c.Locations(root)
			if err != nil {
				return fmt.Errorf("search %s objects: %w", c.Name(), err)
			}
			perConv[i] = l.resolve(gctx, c.Name(), locs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Object
	for _, objs := range perConv {
		all = append(all, objs...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ModTime.After(all[j].ModTime)
	})

	l.log.Debug("located code objects", "root", root, "count", len(all))
	return all, nil
}

// FindObjectPaths is Locate with the metadata discarded: just the
// ranked paths, newest first.
func (l *Locator) FindObjectPaths(ctx context.Context, root string) ([]string, error) {
	objs, err := l.Locate(ctx, root)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(objs))
	for i, o := range objs {
		paths[i] = o.Path
	}
	return paths, nil
}

// resolve stats every candidate concurrently and keeps the ones that
// still exist, preserving input order. Stat failures are the expected
// race between glob and verification, so they never abort the call.
func (l *Locator) resolve(ctx context.Context, name model.Toolchain, locs []string) []model.Object {
	resolved := make([]*model.Object, len(locs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(statLimit)
	for i, loc := range locs {
		g.Go(func() error {
			info, err := l.ws.Stat(loc)
			if err != nil {
				l.log.Debug("dropping candidate", "toolchain", name, "path", loc, "reason", err)
				return nil
			}
			resolved[i] = &model.Object{
				Path:      loc,
				Toolchain: name,
				ModTime:   info.ModTime(),
				Size:      info.Size(),
			}
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	objs := make([]model.Object, 0, len(locs))
	for _, o := range resolved {
		if o != nil {
			objs = append(objs, *o)
		}
	}
	return objs
}
