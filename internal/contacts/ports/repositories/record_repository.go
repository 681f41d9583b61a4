// Package repositories defines repository interfaces for the contacts service.
package repositories

import (
	"context"
	"iter"

	"contactbook/internal/contacts/domain/entities"
)

// RecordRepository определяет интерфейс хранилища записей контактов.
type RecordRepository interface {
	AddRecord(record *entities.Record) error
	Find(name string) (*entities.Record, bool)
	Delete(ctx context.Context, name string) bool
	Len() int
	All() iter.Seq[*entities.Record]
	Iterator(batchSize int) iter.Seq[[]*entities.Record]
}
