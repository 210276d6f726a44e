package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/codegen"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/fsops"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/metrics"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/telemetry"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

// Source supplies the tool list for one run.
type Source interface {
	ListTools(ctx context.Context) ([]toolspec.Descriptor, error)
	Close() error
}

// Static is a Source over an already loaded list.
type Static []toolspec.Descriptor

func (s Static) ListTools(context.Context) ([]toolspec.Descriptor, error) { return s, nil }

func (Static) Close() error { return nil }

type Options struct {
	// OutDir is the output root; files land in OutDir/Server/.
	OutDir   string
	Server   string
	Renderer codegen.Renderer
	Logger   *slog.Logger
}

// Summary describes a finished run.
type Summary struct {
	Dir   string
	Tools int
	Paths []string
	metrics.Totals
}

// Run fetches descriptors from src and writes the generated files. src is
// closed before Run returns.
func Run(ctx context.Context, src Source, opts Options) (sum Summary, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("generate: close source: %w", cerr))
		}
	}()

	ctx, runID := telemetry.EnsureRunID(ctx)
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", runID)

	start := time.Now()
	descs, err := src.ListTools(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("generate: list tools: %w", err)
	}
	logger.Info("fetched tool list", "tools", len(descs), "duration_ms", time.Since(start).Milliseconds())

	return write(ctx, descs, opts, logger)
}

func write(ctx context.Context, descs []toolspec.Descriptor, opts Options, logger *slog.Logger) (Summary, error) {
	if opts.Renderer == nil {
		return Summary{}, errors.New("generate: no renderer")
	}
	irs, err := codegen.LowerAll(descs)
	if err != nil {
		return Summary{}, fmt.Errorf("generate: %w", err)
	}

	// Render everything before the first write.
	files := make([]codegen.File, 0, len(irs)+1)
	for _, ir := range irs {
		f, err := opts.Renderer.ToolFile(ir)
		if err != nil {
			return Summary{}, fmt.Errorf("generate: render %s: %w", ir.Name, err)
		}
		files = append(files, f)
	}
	idx, err := opts.Renderer.IndexFile(irs)
	if err != nil {
		return Summary{}, fmt.Errorf("generate: render index: %w", err)
	}
	files = append(files, idx)
	if err := checkPaths(files); err != nil {
		return Summary{}, fmt.Errorf("generate: %w", err)
	}

	w, err := fsops.NewWriter(opts.OutDir)
	if err != nil {
		return Summary{}, fmt.Errorf("generate: output root: %w", err)
	}
	dir, err := w.EnsureDir(opts.Server)
	if err != nil {
		return Summary{}, fmt.Errorf("generate: output dir %s: %w", opts.Server, err)
	}

	sum := Summary{Dir: dir, Tools: len(irs)}
	put := func(f codegen.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := filepath.Join(opts.Server, f.Path)
		abs, err := w.WriteFile(rel, f.Source)
		if err != nil {
			return fmt.Errorf("generate: write %s: %w", rel, err)
		}
		sum.Add(metrics.CountFile(f.Source))
		sum.Paths = append(sum.Paths, abs)
		telemetry.EmitFileWritten(ctx, rel, f.Source)
		logger.Debug("wrote file", "path", rel, "bytes", len(f.Source))
		return nil
	}

	for _, f := range files {
		if err := put(f); err != nil {
			return sum, err
		}
	}
	logger.Info("generation complete", "dir", dir, "files", sum.Files, "bytes", sum.Bytes, "lines", sum.Lines)
	return sum, nil
}

// checkPaths rejects two files on one path, which would leave only the last
// on disk. Paths compare case-folded so case-insensitive filesystems agree.
func checkPaths(files []codegen.File) error {
	seen := make(map[string]string, len(files))
	for _, f := range files {
		key := strings.ToLower(filepath.Clean(f.Path))
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("files %s and %s would share one path", prev, f.Path)
		}
		seen[key] = f.Path
	}
	return nil
}
