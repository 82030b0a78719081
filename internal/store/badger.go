// Package store persists built model bundles as named blobs in BadgerDB.
// The format is opaque to the engine; callers save and load by name.
package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"smartcart-service/internal/model"
)

const artifactKeyPrefix = "artifact:"

// DefaultArtifact is the bundle name the service builds into and serves from.
const DefaultArtifact = "artifacts"

var ErrArtifactNotFound = errors.New("artifact not found")

type ArtifactStore struct {
	db *badger.DB
}

func Open(dir string) (*ArtifactStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open artifact store: %w", err)
	}
	return &ArtifactStore{db: db}, nil
}

func (s *ArtifactStore) Close() error { return s.db.Close() }

// Save persists a bundle under the given name, replacing any previous blob.
func (s *ArtifactStore) Save(name string, art *model.Artifacts) error {
	data, err := json.Marshal(art)
	if err != nil {
		return fmt.Errorf("marshal artifacts: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(artifactKeyPrefix+name), data)
	})
}

// Load retrieves a bundle by name; ErrArtifactNotFound when absent.
func (s *ArtifactStore) Load(name string) (*model.Artifacts, error) {
	var art model.Artifacts
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(artifactKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrArtifactNotFound
		}
		if err != nil {
			return fmt.Errorf("get artifact: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &art)
		})
	})
	if err != nil {
		return nil, err
	}
	return &art, nil
}
