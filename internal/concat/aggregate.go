package concat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Aggregator concatenates files and directory trees into one Result.
type Aggregator struct {
	opts   Options
	logger *zap.Logger
	filter *Filter
}

// New validates opts and returns an Aggregator. A nil logger discards all output.
func New(opts Options, logger *zap.Logger) (*Aggregator, error) {
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must be non-negative, got %d", opts.MaxDepth)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	filter, err := NewFilter(opts.Exclude, opts.RespectGitignore)
	if err != nil {
		return nil, err
	}
	return &Aggregator{opts: opts, logger: logger, filter: filter}, nil
}

type pathKind int

const (
	kindOther pathKind = iota
	kindFile
	kindDir
)

func kindOf(info fs.FileInfo) pathKind {
	switch {
	case info.IsDir():
		return kindDir
	case info.Mode().IsRegular():
		return kindFile
	default:
		return kindOther
	}
}

// Aggregate validates that every path exists, then resolves each one in order.
// Only validation failures are returned; per-path failures are absorbed.
func (a *Aggregator) Aggregate(paths []string) (Result, error) {
	if len(paths) == 0 {
		return Result{}, ErrNoPaths
	}

	kinds := make([]pathKind, len(paths))
	for i, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, path)
		}
		kinds[i] = kindOf(info)
	}

	acc := newAccumulator(a.opts.SummaryOnly)
	for i, path := range paths {
		switch kinds[i] {
		case kindDir:
			a.logger.Debug("Processing directory", zap.String("path", path))
			acc.merge(a.WalkDirectory(path))
		case kindFile:
			a.logger.Debug("Processing file", zap.String("path", path))
			fr, err := resolveFile(path, "", a.opts.SummaryOnly, a.opts.Tokens)
			if err != nil {
				acc.addError(a.report(asTraversalError(path, err)))
				continue
			}
			acc.addFile(fr)
		default:
			acc.addError(a.report(&TraversalError{
				Kind: UnsupportedType,
				Path: path,
				Err:  errors.New("neither a regular file nor a directory"),
			}))
		}
	}

	res := acc.result()
	res.Paths = append([]string(nil), paths...)
	return res, nil
}
