package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/Xunop/bookserver/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LocalStorage keeps rendered documents in a directory.
type LocalStorage struct {
	// Path to the storage directory
	Path string
}

func NewLocalStorage(path string) *LocalStorage {
	return &LocalStorage{Path: path}
}

// Save writes data to a temporary file and renames it into place, so
// readers never see a partial document.
func (s *LocalStorage) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Path, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "unable to create directory %s", s.Path)
	}

	filePath := s.path(name)
	tmp, err := os.CreateTemp(s.Path, "."+filepath.Base(filePath)+".*")
	if err != nil {
		return "", errors.Wrap(err, "unable to create temporary file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", errors.Wrapf(err, "unable to write %s", filePath)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrapf(err, "unable to write %s", filePath)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return "", errors.Wrapf(err, "unable to move %s into place", filePath)
	}

	hash := sha256.Sum256(data)
	log.Debug("Stored file", zap.String("path", filePath), zap.String("hash", hex.EncodeToString(hash[:])))

	return filePath, nil
}

func (s *LocalStorage) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", name)
	}
	return data, nil
}

// path keeps every file directly inside the storage directory.
func (s *LocalStorage) path(name string) string {
	return filepath.Join(s.Path, filepath.Base(name))
}
