package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	documentKeyPrefix   = "doc_"
	unanchoredKeyPrefix = "unanchored_"
)

// DocumentStore persists off-chain documents. Unanchored documents carry a
// marker key under a dedicated prefix so the reconciliation sweep can list
// them without scanning every document.
type DocumentStore struct {
	db      *leveldb.DB
	metrics Metrics
}

// NewDocumentStore opens (or creates) the document database at path.
func NewDocumentStore(path string, metrics Metrics) (*DocumentStore, error) {
	if path == "" {
		return nil, errors.New("document store path is required")
	}
	if metrics == nil {
		return nil, errors.New("document store metrics is required")
	}

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open document store at %s: %w", path, err)
	}
	return &DocumentStore{db: db, metrics: metrics}, nil
}

// Close releases the underlying database.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}

func documentKey(kind model.DocumentKind, id string) []byte {
	return []byte(documentKeyPrefix + string(kind) + "_" + id)
}

func unanchoredKey(kind model.DocumentKind, id string) []byte {
	return []byte(unanchoredKeyPrefix + string(kind) + "_" + id)
}

// SaveDocument writes the document and updates the unanchored marker in one
// atomic batch. Anchoring a document removes its marker.
func (s *DocumentStore) SaveDocument(ctx context.Context, doc model.Document) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("save_document", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	if doc.ID == "" {
		err = errors.New("document id is required")
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}

	batch := new(leveldb.Batch)
	batch.Put(documentKey(doc.Kind, doc.ID), data)
	if doc.Anchored {
		batch.Delete(unanchoredKey(doc.Kind, doc.ID))
	} else {
		batch.Put(unanchoredKey(doc.Kind, doc.ID), documentKey(doc.Kind, doc.ID))
	}

	if err = s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("write document %s: %w", doc.ID, err)
	}
	return nil
}

// Document loads a document by kind and id.
func (s *DocumentStore) Document(ctx context.Context, kind model.DocumentKind, id string) (model.Document, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("document", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return model.Document{}, err
	}

	data, err := s.db.Get(documentKey(kind, id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		err = fmt.Errorf("document %s/%s: %w", kind, id, model.ErrNotFound)
		return model.Document{}, err
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("read document %s/%s: %w", kind, id, err)
	}

	var doc model.Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, fmt.Errorf("decode document %s/%s: %w", kind, id, err)
	}
	return doc, nil
}

// UnanchoredDocuments lists up to limit documents whose anchor has not
// landed, in key order.
func (s *DocumentStore) UnanchoredDocuments(ctx context.Context, limit int) ([]model.Document, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("unanchored_documents", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	iter := s.db.NewIterator(util.BytesPrefix([]byte(unanchoredKeyPrefix)), nil)
	defer iter.Release()

	var docs []model.Document
	for iter.Next() {
		if limit > 0 && len(docs) >= limit {
			break
		}

		data, getErr := s.db.Get(iter.Value(), nil)
		if errors.Is(getErr, leveldb.ErrNotFound) {
			// Marker without a document: skip, the next save repairs it.
			continue
		}
		if getErr != nil {
			err = fmt.Errorf("read unanchored document %s: %w", iter.Value(), getErr)
			return nil, err
		}

		var doc model.Document
		if err = json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode unanchored document %s: %w", iter.Value(), err)
		}
		docs = append(docs, doc)
	}
	if err = iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate unanchored documents: %w", err)
	}
	return docs, nil
}
