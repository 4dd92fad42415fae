package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"filekit/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// WriteAtomic streams write into a temp file next to path and renames it into place once write succeeds.
// On failure the temp file is removed and path is left as it was.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	tmp, err := tempName(path)
	if err != nil {
		return err
	}

	log.Debug().Str("path", path).Str("temp", tmp).Msg("creating temp file")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("error creating temp file %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		RemoveTempFile(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		RemoveTempFile(tmp)
		return fmt.Errorf("error writing temp file %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		RemoveTempFile(tmp)
		return fmt.Errorf("error renaming temp file %w", err)
	}

	log.Debug().Str("path", path).Msg("created file")

	return nil
}

func tempName(path string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, id.String())), nil
}

// RemoveTempFile removes a specified temporary file at the given path and logs success or failure.
func RemoveTempFile(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Mover relocates files on the local filesystem.
type Mover struct{}

func NewMover() *Mover {
	return &Mover{}
}

func (m *Mover) Move(src, dst string, overwrite bool) error {
	if src == dst {
		return nil
	}

	if !overwrite && Exists(dst) {
		return fmt.Errorf("%w: %s", domain.ErrDestinationExists, dst)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("error moving file %w", err)
	}

	log.Debug().Str("src", src).Str("dst", dst).Msg("rename crosses devices, copying instead")

	if err := copyFile(src, dst); err != nil {
		return err
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("error removing source after copy %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error opening source %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("error reading source %w", err)
	}

	err = WriteAtomic(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	if err != nil {
		return fmt.Errorf("error copying file %w", err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil && !errors.Is(err, fs.ErrPermission) {
		log.Warn().Str("path", dst).Err(err).Msg("could not preserve file mode")
	}

	return nil
}
