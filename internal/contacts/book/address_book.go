// Package book implements the in-memory address book keyed by contact name.
package book

import (
	"context"
	"errors"
	"iter"
	"slices"

	"go.uber.org/zap"

	"contactbook/internal/contacts/domain/entities"
	"contactbook/internal/contacts/ports/repositories"
	"contactbook/pkg/logger"
)

// DefaultBatchSize используется Iterator при неположительном размере пачки.
const DefaultBatchSize = 5

const logContactNotExist = "contact does not exist"

// ErrNilRecord возвращается при попытке добавить пустую запись.
var ErrNilRecord = errors.New("only records can be added to the address book")

// AddressBook хранит записи в порядке добавления.
type AddressBook struct {
	index   map[string]int
	records []*entities.Record
	log     *logger.Logger
}

var _ repositories.RecordRepository = (*AddressBook)(nil)

// NewAddressBook создает книгу с записями в переданном порядке.
// Запись с уже встречавшимся именем заменяет предыдущую, nil пропускается.
func NewAddressBook(records ...*entities.Record) *AddressBook {
	b := &AddressBook{index: make(map[string]int, len(records))}
	for _, r := range records {
		if r == nil {
			continue
		}
		b.put(r)
	}
	return b
}

// WithLogger задает logger для сообщений книги.
// Без него используется logger из контекста вызова.
func (b *AddressBook) WithLogger(log *logger.Logger) *AddressBook {
	b.log = log
	return b
}

func (b *AddressBook) logger(ctx context.Context) *logger.Logger {
	if b.log != nil {
		return b.log
	}
	return logger.Log(ctx)
}

// AddRecord добавляет запись под ее именем. Запись с тем же именем
// молча заменяется на своем месте.
func (b *AddressBook) AddRecord(record *entities.Record) error {
	if record == nil {
		return ErrNilRecord
	}
	b.put(record)
	return nil
}

func (b *AddressBook) put(record *entities.Record) {
	name := record.Name().Value()
	if i, ok := b.index[name]; ok {
		b.records[i] = record
		return
	}

	b.index[name] = len(b.records)
	b.records = append(b.records, record)
}

// Find возвращает запись по имени или nil, false.
func (b *AddressBook) Find(name string) (*entities.Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Delete удаляет запись по имени.
// Отсутствие записи не является ошибкой: в лог пишется предупреждение и возвращается false.
func (b *AddressBook) Delete(ctx context.Context, name string) bool {
	i, ok := b.index[name]
	if !ok {
		b.logger(ctx).Warn(ctx, logContactNotExist, zap.String("name", name))
		return false
	}

	delete(b.index, name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name().Value()] = j
	}
	return true
}

// Len возвращает количество записей.
func (b *AddressBook) Len() int { return len(b.records) }

// Names возвращает имена контактов в порядке книги.
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.records))
	for _, r := range b.records {
		names = append(names, r.Name().Value())
	}
	return names
}

// All перебирает записи, какими они были на момент начала обхода.
func (b *AddressBook) All() iter.Seq[*entities.Record] {
	return func(yield func(*entities.Record) bool) {
		for _, r := range slices.Clone(b.records) {
			if !yield(r) {
				return
			}
		}
	}
}

// Iterator перебирает записи пачками не больше batchSize, последняя пачка может быть короче.
// Неположительный batchSize означает DefaultBatchSize.
func (b *AddressBook) Iterator(batchSize int) iter.Seq[[]*entities.Record] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return func(yield func([]*entities.Record) bool) {
		for batch := range slices.Chunk(slices.Clone(b.records), batchSize) {
			if !yield(batch) {
				return
			}
		}
	}
}
