package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/levels/formats"
)

var (
	// ErrLevelNotFound is returned by LoadByID for unknown IDs.
	ErrLevelNotFound = errors.New("levels: level not found")
	// ErrUnsupportedFormat is returned for files no parser is registered for.
	ErrUnsupportedFormat = errors.New("levels: unsupported format")
)

//go:embed builtin
var builtinFS embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root   string
	Logger *log.Logger // Optional; skipped files are reported at debug level

	fsys fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin levels: %v", err))
	}
	return NewFSLoader(sub, "builtin")
}

// BrokenFile is a level file that could not be loaded.
type BrokenFile struct {
	Path string
	Err  error
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Broken returns the level files LoadAll skips, sorted by path.
func (l *Loader) Broken() ([]BrokenFile, error) {
	_, broken, err := l.scan()
	return broken, err
}

func (l *Loader) scan() ([]Level, []BrokenFile, error) {
	var levels []Level
	var broken []BrokenFile

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := formats.Lookup(path.Ext(p)); !ok {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.logger().Debug("skipping level file", "path", p, "error", err)
			broken = append(broken, BrokenFile{Path: path.Join(l.Root, p), Err: err})
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	sort.Slice(broken, func(i, j int) bool {
		return broken[i].Path < broken[j].Path
	})

	return levels, broken, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	ext := strings.ToLower(path.Ext(p))
	parse, ok := formats.Lookup(ext)
	if !ok {
		return Level{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p)
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	level, err := FromFormat(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = path.Join(l.Root, p)

	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}
