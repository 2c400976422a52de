package save

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// BackupExtension is appended to the previous copy of a save.
const BackupExtension = ".bak"

// FileRepo keeps one <Name>.pqw per hero in a directory. Overwriting a
// save first moves the old file aside as <Name>.pqw.bak.
type FileRepo struct {
	mu  sync.RWMutex
	dir string
}

func NewFileRepo(dir string) (*FileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileRepo{dir: dir}, nil
}

// Dir is the directory holding the saves.
func (r *FileRepo) Dir() string { return r.dir }

// Path is where the named hero is saved.
func (r *FileRepo) Path(name string) string {
	return filepath.Join(r.dir, FileName(name))
}

// FileName turns a hero name into a safe file name.
func FileName(name string) string {
	clean := strings.Map(func(c rune) rune {
		switch c {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		return c
	}, strings.TrimSpace(name))
	clean = strings.Trim(clean, ".")
	if clean == "" {
		clean = "hero"
	}
	return clean + Extension
}

func (r *FileRepo) Save(ctx context.Context, s Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := strings.TrimSpace(s.Traits.Name)
	if name == "" {
		return fmt.Errorf("save: hero has no name")
	}
	b, err := Encode(s)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.Path(name)
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+BackupExtension); err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
	}
	return os.WriteFile(path, b, 0o644)
}

func (r *FileRepo) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadPath(r.Path(name))
}

func (r *FileRepo) loadPath(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		return Snapshot{}, err
	}
	s, err := Decode(b)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Latest loads the most recently modified save in the directory.
func (r *FileRepo) Latest(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	files, err := r.files()
	if err != nil {
		return Snapshot{}, err
	}
	if len(files) == 0 {
		return Snapshot{}, ErrNotFound
	}
	return r.loadPath(files[0].path)
}

// List summarizes every readable save, newest first. Files that fail to
// decode are skipped.
func (r *FileRepo) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	files, err := r.files()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(files))
	for _, f := range files {
		s, err := r.loadPath(f.path)
		if err != nil {
			if errors.Is(err, ErrDecode) {
				continue
			}
			return nil, err
		}
		sum := summarize(s)
		sum.Saved = f.info.ModTime()
		out = append(out, sum)
	}
	return out, nil
}

type saveFile struct {
	path string
	info os.FileInfo
}

// files lists the .pqw files, newest first.
func (r *FileRepo) files() ([]saveFile, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []saveFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		out = append(out, saveFile{path: filepath.Join(r.dir, e.Name()), info: info})
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].info.ModTime(), out[j].info.ModTime()
		if ti.Equal(tj) {
			return out[i].path < out[j].path
		}
		return ti.After(tj)
	})
	return out, nil
}
