package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"wordsolver/internal/utils"
)

func NewDictStore(path string) *DictStore {
	return &DictStore{
		path:              path,
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

type DictStore struct {
	path              string
	mu                sync.Mutex
	filesystemHandler utils.FilesystemHandler
}

func (s *DictStore) withLock(fn func(st *Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lockPath := s.path + ".lock"
	if err := s.filesystemHandler.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	lf, err := s.filesystemHandler.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer lf.Close()

	if err := s.filesystemHandler.Flock(int(lf.Fd()), syscall.LOCK_EX); err != nil {
		return err
	}
	defer s.filesystemHandler.Flock(int(lf.Fd()), syscall.LOCK_UN)

	st, err := s.loadOrInit()
	if err != nil {
		return err
	}

	if err := fn(st); err != nil {
		return err
	}

	return s.atomicSave(st)
}

func (s *DictStore) loadOrInit() (*Snapshot, error) {
	b, err := s.filesystemHandler.ReadFile(s.path)
	if err != nil {
		if s.filesystemHandler.IsNotExist(err) {
			// snapshot file not exist
			return &Snapshot{
				Version: "0.1.0",
				Words:   []string{},
			}, nil
		}
		return nil, err
	}

	var st Snapshot
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("dict snapshot json broken: %w", err)
	}
	if st.Words == nil {
		st.Words = []string{}
	}
	return &st, nil
}

func (s *DictStore) atomicSave(st *Snapshot) error {
	tmp := s.path + ".tmp"

	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	f, err := s.filesystemHandler.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.filesystemHandler.Rename(tmp, s.path)
}

func (s *DictStore) SetSnapshot(source string, words []string) error {
	return s.withLock(func(st *Snapshot) error {
		st.Version = "0.1.0"
		st.Source = source
		st.Words = words
		st.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (s *DictStore) GetSnapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadOrInit()
	if err != nil {
		return Snapshot{}, err
	}
	return *st, nil
}
