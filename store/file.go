package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// lookupEncoding resolves an IANA charset name.
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// readConfigLines reads the configuration file and decodes it from the
// given charset. A missing file yields no lines and no error, so a
// fresh profile starts from empty.
func readConfigLines(path, encodingName string) ([]string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fileError("read", path, err)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fileError("decode", path, err)
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

// writeConfigFile writes data to path through a temporary file in the
// same directory: write, flush to stable storage, then rename into
// place. The original file stays intact if anything fails before the
// rename, and the temporary file is removed on every path.
func writeConfigFile(path string, data []byte, encodingName string) (err error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".conf-*.tmp")
	if err != nil {
		return fileError("create temp file in", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if filepath.Clean(tmpName) == filepath.Clean(path) {
		tmp.Close()
		return fmt.Errorf("%w: %s", ErrSameFile, path)
	}

	w := transform.NewWriter(tmp, enc.NewEncoder())
	if _, err := w.Write(data); err != nil {
		w.Close()
		tmp.Close()
		return fileError("write", tmpName, err)
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		return fileError("encode", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fileError("sync", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fileError("close", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fileError("replace", path, err)
	}
	return nil
}

// ensureDirectory creates the configuration directory and its parents.
func ensureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fileError("create directory", dir, err)
	}
	return nil
}

// fileError maps an OS error onto the package's file error taxonomy.
func fileError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	case errors.Is(err, syscall.EISDIR):
		return fmt.Errorf("%w: %s", ErrIsADirectory, path)
	}
	return &FileError{Path: path, Op: op, Err: err}
}
