// Package packager turns a skill bundle into a distributable zip archive.
package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Pack writes a zip archive of the named skill's files to w. Bundle-layout
// skills (dir with SKILL.md) include every file in the bundle directory;
// flat skills produce an archive with the single markdown file. Paths
// inside the archive are rooted at the skill name.
func Pack(name, skillPath string, w io.Writer) error {
	if skillPath == "" {
		return fmt.Errorf("skill %q has no on-disk source", name)
	}

	zw := zip.NewWriter(w)

	if filepath.Base(skillPath) == "SKILL.md" {
		root := filepath.Dir(skillPath)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			return addFile(zw, path, name+"/"+filepath.ToSlash(rel))
		})
		if err != nil {
			_ = zw.Close()
			return fmt.Errorf("pack %s: %w", name, err)
		}
	} else {
		if err := addFile(zw, skillPath, name+"/"+filepath.Base(skillPath)); err != nil {
			_ = zw.Close()
			return fmt.Errorf("pack %s: %w", name, err)
		}
	}

	return zw.Close()
}

func addFile(zw *zip.Writer, path, archivePath string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entry, err := zw.Create(archivePath)
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, f)
	return err
}
