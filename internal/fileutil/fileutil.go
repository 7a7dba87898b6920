package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrNotRegular reports a copy source that is a directory or device.
	ErrNotRegular = errors.New("not a regular file")
	// ErrSameFile reports a copy whose destination is the source itself.
	ErrSameFile = errors.New("source and destination are the same file")
)

// CopyFilePreserve copies src to dst, replacing any existing file, and carries
// over the permission bits and modification time of src.
func CopyFilePreserve(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, ErrNotRegular)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("%s: %w", dst, ErrSameFile)
	}

	if err := copyContents(src, dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	modTime := info.ModTime()
	if err := os.Chtimes(dst, modTime, modTime); err != nil {
		return fmt.Errorf("set times: %w", err)
	}
	return nil
}

func copyContents(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
