package kvstore

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// File persists each collection as <key>.json inside one directory.
type File struct {
	dir string
	log *logrus.Entry
}

func NewFile(dir string, log *logrus.Entry) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &File{
		dir: dir,
		log: log,
	}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Debugf("get %s: %v", key, err)
		}
		return nil, false
	}
	return raw, true
}

func (f *File) Set(key string, value []byte) {
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		f.log.Debugf("set %s dropped: %v", key, err)
	}
}

func (f *File) Has(key string) bool {
	_, err := os.Stat(f.path(key))
	return err == nil
}
