package export

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/gluefinance/parse-schema/internal/checksum"
	"github.com/gluefinance/parse-schema/internal/files/filesystem"
	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// rootPattern restricts the output root to a bare directory name.
var rootPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ownershipPattern matches a statement whose entire body reassigns
// ownership. Ownership differences between dumps are not tracked, so
// such records are excluded from every export view.
var ownershipPattern = regexp.MustCompile(`(?s)\AALTER\s+[A-Z ]+\s+.+\s+OWNER\s+TO\s+[^;]+;\z`)

// Result summarizes an export run.
type Result struct {
	Objects int // files written under changes/
	Names   int // distinct object names
	Types   int // distinct object types
	Skipped int // ownership-only records excluded
}

// Exporter writes the object record sequence to the output root.
type Exporter struct {
	fs       filesystem.FileSystem
	calc     checksum.Calculator
	logger   parseschema.Logger
	progress io.Writer
}

// NewExporter creates an exporter. progress receives the progress bar
// rendering; pass nil to disable it.
// Panics if fs, calc, or logger is nil.
func NewExporter(fs filesystem.FileSystem, calc checksum.Calculator, logger parseschema.Logger, progress io.Writer) *Exporter {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if calc == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Exporter{fs: fs, calc: calc, logger: logger, progress: progress}
}

// Export writes all views of the record sequence under root. The root
// directory must not already exist; nothing already written is rolled
// back on failure.
//
// IDs are assigned to retained records in sequence order before any
// file is written, so the numbering is deterministic regardless of how
// the writes themselves are performed.
func (e *Exporter) Export(root string, records []parseschema.ObjectRecord) (*Result, error) {
	if !rootPattern.MatchString(root) {
		return nil, fmt.Errorf("invalid output directory name %q (must match %s): %w", root, rootPattern.String(), parseschema.ErrUsage)
	}
	if _, err := e.fs.Stat(root); err == nil {
		return nil, fmt.Errorf("output directory %q already exists: %w", root, parseschema.ErrUsage)
	}

	for _, dir := range []string{root, filepath.Join(root, "changes"), filepath.Join(root, "name"), filepath.Join(root, "type")} {
		if err := e.fs.Mkdir(dir); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %v: %w", dir, err, parseschema.ErrFilesystem)
		}
	}

	retained, skipped := partitionOwnership(records)

	bar := progressbar.NewOptions(len(retained),
		progressbar.OptionSetWriter(e.progressWriter()),
		progressbar.OptionSetDescription("exporting"),
		progressbar.OptionShowCount(),
	)

	nameAgg := newAggregate()
	typeAgg := newAggregate()

	for id, rec := range retained {
		filename := fmt.Sprintf("%06d-%s.sql", id+1, rec.Name)
		content := rec.Body + "\n"

		changesPath := filepath.Join(root, "changes", filename)
		if err := e.fs.WriteFile(changesPath, []byte(content)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %v: %w", changesPath, err, parseschema.ErrFilesystem)
		}

		nameDir := filepath.Join(root, "name", rec.Name)
		if err := e.link(nameDir, filepath.Join("..", "..", "changes", filename), filename); err != nil {
			return nil, err
		}

		typeDir := filepath.Join(root, "type", rec.Type, rec.Name)
		if err := e.link(typeDir, filepath.Join("..", "..", "..", "changes", filename), filename); err != nil {
			return nil, err
		}

		nameAgg.add(rec.Name, content)
		typeAgg.add(rec.Type, content)

		e.logger.Verbose("exported %s (%s)", filename, rec.Type)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := e.writeAggregates(filepath.Join(root, "name"), nameAgg); err != nil {
		return nil, err
	}
	if err := e.writeAggregates(filepath.Join(root, "type"), typeAgg); err != nil {
		return nil, err
	}
	if err := e.writeChecksums(root, nameAgg); err != nil {
		return nil, err
	}

	return &Result{
		Objects: len(retained),
		Names:   len(nameAgg.order),
		Types:   len(typeAgg.order),
		Skipped: skipped,
	}, nil
}

// partitionOwnership separates retained records from ownership-only
// ones. Ownership statements do not break tokenization of their
// neighbors; they are simply not exported.
func partitionOwnership(records []parseschema.ObjectRecord) ([]parseschema.ObjectRecord, int) {
	retained := make([]parseschema.ObjectRecord, 0, len(records))
	skipped := 0
	for _, rec := range records {
		if ownershipPattern.MatchString(rec.Body) {
			skipped++
			continue
		}
		retained = append(retained, rec)
	}
	return retained, skipped
}

// link creates dir if needed and a relative symlink dir/filename -> target.
func (e *Exporter) link(dir, target, filename string) error {
	if err := e.fs.MkdirAll(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %v: %w", dir, err, parseschema.ErrFilesystem)
	}
	linkPath := filepath.Join(dir, filename)
	if err := e.fs.Symlink(target, linkPath); err != nil {
		return fmt.Errorf("failed to create symlink %s: %v: %w", linkPath, err, parseschema.ErrFilesystem)
	}
	return nil
}

// writeAggregates writes one <key>.sql per aggregate key, in
// first-seen order.
func (e *Exporter) writeAggregates(dir string, agg *aggregate) error {
	for _, key := range agg.order {
		p := filepath.Join(dir, key+".sql")
		if err := e.fs.WriteFile(p, []byte(agg.content[key].String())); err != nil {
			return fmt.Errorf("failed to write aggregate %s: %v: %w", p, err, parseschema.ErrFilesystem)
		}
	}
	return nil
}

// writeChecksums writes the manifest of per-name aggregate digests,
// sorted by name. The digest covers the exact bytes written to
// name/<name>.sql.
func (e *Exporter) writeChecksums(root string, nameAgg *aggregate) error {
	names := make([]string, len(nameAgg.order))
	copy(names, nameAgg.order)
	sort.Strings(names)

	var manifest strings.Builder
	for _, name := range names {
		digest := e.calc.Sum([]byte(nameAgg.content[name].String()))
		fmt.Fprintf(&manifest, "MD5 (%s.sql) = %s\n", name, digest)
	}

	p := filepath.Join(root, "checksums.txt")
	if err := e.fs.WriteFile(p, []byte(manifest.String())); err != nil {
		return fmt.Errorf("failed to write %s: %v: %w", p, err, parseschema.ErrFilesystem)
	}
	return nil
}

func (e *Exporter) progressWriter() io.Writer {
	if e.progress == nil {
		return io.Discard
	}
	return e.progress
}

// aggregate folds record bodies by key, preserving first-seen order.
type aggregate struct {
	order   []string
	content map[string]*strings.Builder
}

func newAggregate() *aggregate {
	return &aggregate{content: make(map[string]*strings.Builder)}
}

func (a *aggregate) add(key, body string) {
	b, ok := a.content[key]
	if !ok {
		b = &strings.Builder{}
		a.content[key] = b
		a.order = append(a.order, key)
	}
	b.WriteString(body)
}
