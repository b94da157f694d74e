package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StoreFileName - имя файла хранилища внутри каталога
const StoreFileName = "localStorage.json"

// FileBackend хранит все записи одним JSON-объектом в файле.
// Не потокобезопасен: ядро работает на одном игровом потоке.
type FileBackend struct {
	SaveDir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileBackend{SaveDir: dir}, nil
}

func (f *FileBackend) path() string {
	return filepath.Join(f.SaveDir, StoreFileName)
}

func (f *FileBackend) Set(key, val string) error {
	data, err := f.load()
	if err != nil {
		return err
	}
	data[key] = val
	return f.save(data)
}

// save пишет во временный файл и переименовывает, чтобы не оставить полфайла
func (f *FileBackend) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp, err := os.CreateTemp(f.SaveDir, StoreFileName+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path())
}
