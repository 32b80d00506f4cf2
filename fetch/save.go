package fetch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// save writes body through a temp file in the same directory as destPath,
// renaming into place on success. destPath never holds a partial write;
// on any error the temp file is removed.
func save(body []byte, destPath string, logger *slog.Logger) error {
	file, err := os.CreateTemp(filepath.Dir(destPath), ".fetchr-*")
	if err != nil {
		return &Error{Err: ErrFileIO, Detail: fmt.Sprintf("creating temp file: %v", err)}
	}

	var successful bool
	defer func() {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			logger.Error("defer closing temp file", "error", err)
		}
		if !successful {
			if err := os.Remove(file.Name()); err != nil {
				logger.Error("failed to remove temp file", "error", err)
			}
		}
	}()

	if _, err := file.Write(body); err != nil {
		return &Error{Err: ErrFileIO, Detail: fmt.Sprintf("writing %s: %v", destPath, err)}
	}

	if err := file.Sync(); err != nil {
		return &Error{Err: ErrFileIO, Detail: fmt.Sprintf("syncing %s: %v", destPath, err)}
	}
	if err := file.Close(); err != nil {
		return &Error{Err: ErrFileIO, Detail: fmt.Sprintf("closing %s: %v", destPath, err)}
	}
	if err := os.Rename(file.Name(), destPath); err != nil {
		return &Error{Err: ErrFileIO, Detail: fmt.Sprintf("renaming to %s: %v", destPath, err)}
	}

	successful = true

	return nil
}
