package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/smart-distribution/internal/domain/repository"
)

var _ repository.KeyValueStore = (*FileStore)(nil)

// FileStore KeyValueStore persistido como un objeto JSON en disco. Cada escritura reescribe el
// archivo completo vía archivo temporal + rename, así un corte no deja el archivo a medias.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore abre (o crea en la primera escritura) el archivo path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path ruta del archivo.
func (s *FileStore) Path() string { return s.path }

// Get devuelve el valor y si existe. Un archivo ilegible cuenta como vacío.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set escribe key y persiste.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	data[key] = value
	return s.save(data)
}

// Delete borra las claves y persiste.
func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(data, k)
	}
	return s.save(data)
}

func (s *FileStore) load() (map[string]string, error) {
	data := make(map[string]string)
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		// Archivo corrupto: se trata como vacío y se reescribe en el próximo Set.
		return make(map[string]string), nil
	}
	return data, nil
}

func (s *FileStore) save(data map[string]string) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("storage: archivo temporal: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: reemplazar %s: %w", s.path, err)
	}
	return nil
}
