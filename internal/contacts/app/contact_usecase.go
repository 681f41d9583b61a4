// Package app implements application business logic for the contacts service.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"contactbook/internal/contacts/domain/entities"
	"contactbook/internal/contacts/ports/repositories"
	"contactbook/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidParams   = errors.New("invalid parameters")
)

const (
	logContactCreated     = "contact created"
	logPhoneAdded         = "phone added"
	logPhoneChanged       = "phone changed"
	logPhoneRemoved       = "phone removed"
	logBirthdaySet        = "birthday set"
	logContactDeleted     = "contact deleted"
	logBirthdayOutOfRange = "skipping birthday that does not exist this year"
	attrName              = "name"
	attrPhone             = "phone"
	attrBirthday          = "birthday"
	defaultPageSize       = 5
)

// Upcoming - запись с днями до ближайшего дня рождения.
type Upcoming struct {
	Record *entities.Record
	Days   int
}

// Page - одна страница адресной книги.
type Page struct {
	Records []*entities.Record
	Number  int
	Total   int
}

// ContactUseCase представляет собой бизнес-логику работы с контактами.
type ContactUseCase struct {
	repo repositories.RecordRepository
	now  func() time.Time
}

// NewContactUseCase создает новый экземпляр ContactUseCase.
func NewContactUseCase(repo repositories.RecordRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo, now: time.Now}
}

// WithClock подменяет источник текущего времени.
func (uc *ContactUseCase) WithClock(now func() time.Time) *ContactUseCase {
	uc.now = now
	return uc
}

func (uc *ContactUseCase) find(name string) (*entities.Record, error) {
	record, ok := uc.repo.Find(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrContactNotFound)
	}
	return record, nil
}

// AddContact добавляет телефон контакту, при необходимости создавая контакт.
// created равен true, если была сохранена новая запись.
func (uc *ContactUseCase) AddContact(ctx context.Context, name, phone string) (bool, error) {
	record, ok := uc.repo.Find(name)
	created := !ok
	if created {
		var err error
		record, err = entities.NewRecord(name)
		if err != nil {
			return false, fmt.Errorf("failed to create contact: %w", err)
		}
	}

	if err := record.AddPhone(phone); err != nil {
		return false, fmt.Errorf("failed to add phone: %w", err)
	}

	if created {
		if err := uc.repo.AddRecord(record); err != nil {
			return false, fmt.Errorf("failed to store contact: %w", err)
		}
		logger.Log(ctx).Info(ctx, logContactCreated, zap.String(attrName, name))
	}
	logger.Log(ctx).Debug(ctx, logPhoneAdded, zap.String(attrName, name), zap.String(attrPhone, phone))

	return created, nil
}

// ChangePhone заменяет все вхождения oldPhone на newPhone.
func (uc *ContactUseCase) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	record, err := uc.find(name)
	if err != nil {
		return err
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return fmt.Errorf("failed to change phone: %w", err)
	}

	logger.Log(ctx).Debug(ctx, logPhoneChanged, zap.String(attrName, name), zap.String(attrPhone, newPhone))
	return nil
}

// RemovePhone удаляет все вхождения phone.
func (uc *ContactUseCase) RemovePhone(ctx context.Context, name, phone string) error {
	record, err := uc.find(name)
	if err != nil {
		return err
	}
	if err := record.RemovePhone(phone); err != nil {
		return fmt.Errorf("failed to remove phone: %w", err)
	}

	logger.Log(ctx).Debug(ctx, logPhoneRemoved, zap.String(attrName, name), zap.String(attrPhone, phone))
	return nil
}

// Phones возвращает телефоны контакта.
func (uc *ContactUseCase) Phones(_ context.Context, name string) ([]entities.Phone, error) {
	record, err := uc.find(name)
	if err != nil {
		return nil, err
	}
	return record.Phones(), nil
}

// AddBirthday задает дату рождения контакта.
func (uc *ContactUseCase) AddBirthday(ctx context.Context, name, birthday string) error {
	record, err := uc.find(name)
	if err != nil {
		return err
	}
	if err := record.SetBirthday(birthday); err != nil {
		return fmt.Errorf("failed to set birthday: %w", err)
	}

	logger.Log(ctx).Debug(ctx, logBirthdaySet, zap.String(attrName, name), zap.String(attrBirthday, birthday))
	return nil
}

// DaysToBirthday возвращает дату рождения и число дней до нее.
// ok равен false, если дата рождения не задана.
func (uc *ContactUseCase) DaysToBirthday(_ context.Context, name string) (entities.Birthday, int, bool, error) {
	record, err := uc.find(name)
	if err != nil {
		return entities.Birthday{}, 0, false, err
	}

	birthday, ok := record.Birthday()
	if !ok {
		return entities.Birthday{}, 0, false, nil
	}

	days, _, err := record.DaysToBirthdayFrom(uc.now())
	if err != nil {
		return birthday, 0, true, fmt.Errorf("failed to count days to birthday: %w", err)
	}
	return birthday, days, true, nil
}

// UpcomingBirthdays возвращает контакты, у которых день рождения не дальше days дней,
// ближайшие первыми. 0 означает только сегодняшние. Даты, которых нет
// в целевом году, пропускаются.
func (uc *ContactUseCase) UpcomingBirthdays(ctx context.Context, days int) ([]Upcoming, error) {
	if days < 0 {
		return nil, fmt.Errorf("days %d: %w", days, ErrInvalidParams)
	}

	today := uc.now()
	var upcoming []Upcoming
	for record := range uc.repo.All() {
		left, ok, err := record.DaysToBirthdayFrom(today)
		if err != nil {
			logger.Log(ctx).Warn(ctx, logBirthdayOutOfRange,
				zap.String(attrName, record.Name().Value()), zap.Error(err))
			continue
		}
		if ok && left <= days {
			upcoming = append(upcoming, Upcoming{Record: record, Days: left})
		}
	}

	slices.SortStableFunc(upcoming, func(a, b Upcoming) int { return a.Days - b.Days })
	return upcoming, nil
}

// DeleteContact удаляет контакт.
func (uc *ContactUseCase) DeleteContact(ctx context.Context, name string) error {
	if !uc.repo.Delete(ctx, name) {
		return fmt.Errorf("%s: %w", name, ErrContactNotFound)
	}

	logger.Log(ctx).Info(ctx, logContactDeleted, zap.String(attrName, name))
	return nil
}

// Page возвращает страницу number (с единицы) размером size.
// Страница за пределами книги возвращается пустой.
func (uc *ContactUseCase) Page(_ context.Context, number, size int) (*Page, error) {
	if number < 1 {
		return nil, fmt.Errorf("page %d: %w", number, ErrInvalidParams)
	}
	if size <= 0 {
		size = defaultPageSize
	}

	page := &Page{Number: number, Total: (uc.repo.Len() + size - 1) / size}
	current := 0
	for batch := range uc.repo.Iterator(size) {
		current++
		if current == number {
			page.Records = batch
			break
		}
	}
	return page, nil
}
