package concat

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WalkDirectory resolves every regular file under root up to the configured depth.
// It never fails as a whole: entry failures are recorded in Result.Errors and,
// with IncludeErrors, logged.
func (a *Aggregator) WalkDirectory(root string) Result {
	if a.opts.MaxDepth == 0 {
		a.logger.Debug("Depth limit is zero, not descending", zap.String("root", root))
		return Result{}
	}

	var filterErr *TraversalError
	rf, err := a.filter.forRoot(root)
	if err != nil {
		filterErr = a.report(&TraversalError{Kind: WalkFailure, Path: root, Err: err})
	}
	res := a.walk(root, root, 1, rf)
	if filterErr != nil {
		res.Errors = append([]*TraversalError{filterErr}, res.Errors...)
	}
	return res
}

// walk visits the entries of dir, which sit at the given depth below root.
// Subdirectories are walked into their own Result and merged back in order.
func (a *Aggregator) walk(root, dir string, depth int, rf *rootFilter) Result {
	acc := newAccumulator(a.opts.SummaryOnly)
	a.logger.Debug("Walking directory", zap.String("dir", dir), zap.Int("depth", depth))

	// os.ReadDir returns the entries it managed to read alongside the error.
	entries, err := os.ReadDir(dir)
	if err != nil {
		acc.addError(a.report(&TraversalError{Kind: WalkFailure, Path: dir, Err: err}))
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isDir := entry.IsDir()

		if skip, reason := rf.skip(path, isDir); skip {
			a.logger.Debug("Skipping excluded entry", zap.String("path", path), zap.String("reason", reason))
			continue
		}

		switch {
		case isDir:
			if depth < a.opts.MaxDepth {
				acc.merge(a.walk(root, path, depth+1, rf))
			}
		case entry.Type().IsRegular():
			fr, err := resolveFile(path, root, a.opts.SummaryOnly, a.opts.Tokens)
			if err != nil {
				acc.addError(a.report(asTraversalError(path, err)))
				continue
			}
			a.logger.Debug("Resolved file", zap.String("path", path), zap.Int("chars", fr.Counts.Chars))
			acc.addFile(fr)
		default:
			// Symlinks and special files are never followed or read.
			a.logger.Debug("Skipping non-regular entry", zap.String("path", path), zap.Stringer("mode", entry.Type()))
		}
	}

	return acc.result()
}

// report logs a per-entry failure when diagnostics are enabled and returns it.
func (a *Aggregator) report(terr *TraversalError) *TraversalError {
	if a.opts.IncludeErrors {
		a.logger.Warn("Failed to process entry",
			zap.String("path", terr.Path),
			zap.Stringer("kind", terr.Kind),
			zap.Error(terr.Err))
	}
	return terr
}

func asTraversalError(path string, err error) *TraversalError {
	var terr *TraversalError
	if errors.As(err, &terr) {
		return terr
	}
	return &TraversalError{Kind: NotReadable, Path: path, Err: err}
}
