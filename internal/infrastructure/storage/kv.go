package storage

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HenryFBP/wayward-close-da-door/internal/host"
	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

// Backend - сырое хранилище строк (ключ и значение уже закодированы в JSON)
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, val string) error
}

// KVStore хранит значения мода в JSON. Ключ кодируется как JSON-массив [ident, key],
// чтобы не топтать записи других модов в общем хранилище.
type KVStore struct {
	Ident   string
	Backend Backend
	// Verbose поднимает трассировку ключей с Debug до Info
	Verbose bool
}

func NewKVStore(ident string, b Backend) *KVStore {
	return &KVStore{Ident: ident, Backend: b}
}

func (s *KVStore) fullKey(key string) (string, error) {
	raw, err := json.Marshal([]string{s.Ident, key})
	if err != nil {
		return "", fmt.Errorf("encode key %q: %w", key, err)
	}
	return string(raw), nil
}

// Store кодирует val в JSON и пишет под префиксованным ключом
func (s *KVStore) Store(key string, val any) error {
	fk, err := s.fullKey(key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encode value for %s: %w", fk, err)
	}

	logger.Verbose(s.Verbose, logrus.Fields{"key": fk, "val": string(raw)}, "Storing mod value")

	if err := s.Backend.Set(fk, string(raw)); err != nil {
		return fmt.Errorf("store %s: %w", fk, err)
	}
	return nil
}

// Retrieve читает значение по тому же префиксованному ключу, что и Store.
// found == false, если ключа нет (out не трогается).
func (s *KVStore) Retrieve(key string, out any) (bool, error) {
	fk, err := s.fullKey(key)
	if err != nil {
		return false, err
	}

	logger.Verbose(s.Verbose, logrus.Fields{"key": fk}, "Retrieving mod value")

	raw, ok, err := s.Backend.Get(fk)
	if err != nil {
		return false, fmt.Errorf("retrieve %s: %w", fk, err)
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode value for %s: %w", fk, err)
	}

	logger.Verbose(s.Verbose, logrus.Fields{"key": fk, "val": raw}, "Retrieved mod value")
	return true, nil
}

var _ host.KeyValueStore = (*KVStore)(nil)
