// Package ops archives and restores a saves directory.
package ops

import (
	"archive/tar"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SaveFile reports whether name is something the runner writes to the saves
// directory: character files, their backups and the SQLite store.
func SaveFile(name string) bool {
	for _, ext := range []string{".pqw", ".pqw.bak", ".db"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Backup writes every save file directly under savesDir into a gzipped tar
// at archivePath and returns how many it wrote. Other files are left out.
func Backup(savesDir, archivePath string) (int, error) {
	savesDir = filepath.Clean(strings.TrimSpace(savesDir))
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	if savesDir == "" || archivePath == "" {
		return 0, fmt.Errorf("saves dir and archive path are required")
	}
	names, err := saveFiles(savesDir)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return 0, err
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	for _, name := range names {
		if err := addFile(tw, filepath.Join(savesDir, name), name); err != nil {
			return 0, fmt.Errorf("archive %s: %w", name, err)
		}
	}
	if err := tw.Close(); err != nil {
		return 0, err
	}
	if err := gz.Close(); err != nil {
		return 0, err
	}
	return len(names), f.Close()
}

func addFile(tw *tar.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(tw, src)
	return err
}

// Restore unpacks the save files in archivePath into targetDir and returns
// how many it wrote. Entries that would land outside targetDir fail the
// restore; entries that are not save files are skipped.
func Restore(archivePath, targetDir string) (int, error) {
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	targetDir = filepath.Clean(strings.TrimSpace(targetDir))
	if archivePath == "" || targetDir == "" {
		return 0, fmt.Errorf("archive path and target dir are required")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return 0, err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return 0, err
	}
	defer gz.Close()

	n := 0
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		rel, err := sanitizeArchiveRelPath(hdr.Name)
		if err != nil {
			return n, err
		}
		if hdr.Typeflag != tar.TypeReg || !SaveFile(rel) {
			continue
		}
		if err := writeFile(filepath.Join(targetDir, rel), tr, os.FileMode(hdr.Mode)); err != nil {
			return n, err
		}
		n++
	}
}

func writeFile(path string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

func sanitizeArchiveRelPath(name string) (string, error) {
	name = filepath.Clean(strings.TrimSpace(name))
	if name == "." || name == "" {
		return "", fmt.Errorf("invalid archive entry path")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid absolute archive entry path: %s", name)
	}
	if strings.HasPrefix(name, ".."+string(filepath.Separator)) || name == ".." {
		return "", fmt.Errorf("invalid archive entry path traversal: %s", name)
	}
	return name, nil
}

// Digest hashes the names and contents of the save files in dir.
func Digest(dir string) (string, error) {
	names, err := saveFiles(dir)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%s\n%d\n", name, len(b))
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DrillReport describes a backup and restore rehearsal.
type DrillReport struct {
	Archive    string
	RestoreDir string
	Files      int
	Digest     string
}

// Drill backs savesDir up into workDir, restores the archive next to it and
// checks that the restored saves match the originals byte for byte.
func Drill(savesDir, workDir string, now time.Time) (DrillReport, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return DrillReport{}, err
	}
	ts := now.UTC().Format("20060102T150405Z")
	r := DrillReport{
		Archive:    filepath.Join(workDir, "pq-drill-"+ts+".tar.gz"),
		RestoreDir: filepath.Join(workDir, "pq-drill-restore-"+ts),
	}

	n, err := Backup(savesDir, r.Archive)
	if err != nil {
		return r, fmt.Errorf("backup: %w", err)
	}
	if _, err := Restore(r.Archive, r.RestoreDir); err != nil {
		return r, fmt.Errorf("restore: %w", err)
	}
	r.Files = n

	src, err := Digest(savesDir)
	if err != nil {
		return r, err
	}
	restored, err := Digest(r.RestoreDir)
	if err != nil {
		return r, err
	}
	if src != restored {
		return r, fmt.Errorf("digest mismatch after restore: src=%s restored=%s", src, restored)
	}
	r.Digest = src
	return r, nil
}

// ArchiveName is the default backup file name for t.
func ArchiveName(t time.Time) string {
	return "pq-" + t.UTC().Format("20060102T150405Z") + ".tar.gz"
}

func saveFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.Type().IsRegular() && SaveFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}
