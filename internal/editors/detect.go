package editors

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"editorscan/internal/logx"
)

// Detector resolves editors against a filesystem.
type Detector struct {
	fs  afero.Fs
	log logrus.FieldLogger
}

// Option configures a Detector.
type Option func(*Detector)

// WithFs probes fsys instead of the host filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(d *Detector) {
		if fsys != nil {
			d.fs = fsys
		}
	}
}

// WithLogger sets the logger used for probe diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Detector) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDetector returns a Detector backed by the host filesystem unless
// overridden by opts.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		fs:  afero.NewOsFs(),
		log: logx.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Available reports the installed editors on the host filesystem.
func Available(ctx context.Context) ([]FoundEditor, error) {
	return NewDetector().Available(ctx)
}

type resolution struct {
	editor  Editor
	path    string
	checked []string
	err     error
}

// Available resolves every editor concurrently and returns one record per
// installed editor, in declaration order.
func (d *Detector) Available(ctx context.Context) ([]FoundEditor, error) {
	results, err := d.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]FoundEditor, 0, len(results))
	for _, res := range results {
		if res.path == "" {
			continue
		}
		found = append(found, FoundEditor{Editor: res.editor, Path: res.path})
	}
	return found, nil
}

// Scan resolves every editor and returns a status for each, found or not,
// in declaration order.
func (d *Detector) Scan(ctx context.Context) ([]Status, error) {
	results, err := d.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, len(results))
	for i, res := range results {
		st := Status{
			Editor:  res.editor,
			Found:   res.path != "",
			Path:    res.path,
			Checked: res.checked,
		}
		if !st.Found {
			if res.err != nil {
				st.Error = res.err.Error()
			}
			st.Hints = installHints(res.editor)
		}
		statuses[i] = st
	}
	return statuses, nil
}

// resolveAll fans out one goroutine per editor. Each goroutine writes only to
// its own slot, so the result order is fixed by All() and not by completion.
func (d *Detector) resolveAll(ctx context.Context) ([]resolution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("detect editors: %w", err)
	}

	all := All()
	results := make([]resolution, len(all))

	var g errgroup.Group
	for i, e := range all {
		g.Go(func() error {
			results[i] = d.resolve(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("detect editors: %w", err)
	}
	return results, nil
}

// resolve probes the candidates for e in priority order and stops at the
// first one that exists. Probe failures count as absent for that candidate.
func (d *Detector) resolve(e Editor) resolution {
	def := lookup(e)
	res := resolution{editor: e}

	for _, candidate := range def.candidates {
		res.checked = append(res.checked, candidate)
		ok, err := pathExists(d.fs, candidate)
		if err != nil {
			d.log.WithFields(logrus.Fields{
				"editor": def.label,
				"path":   candidate,
			}).WithError(err).Warn("probe failed")
			res.err = errors.Join(res.err, fmt.Errorf("probe %s: %w", candidate, err))
			continue
		}
		if ok {
			d.log.WithFields(logrus.Fields{
				"editor": def.label,
				"path":   candidate,
			}).Debug("editor found")
			res.path = candidate
			return res
		}
	}

	d.log.WithField("editor", def.label).Debug("editor not installed")
	return res
}
