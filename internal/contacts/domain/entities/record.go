package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const hoursPerDay = 24

// Record представляет один контакт адресной книги.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord создает запись с именем и необязательной датой рождения.
// Пустая строка даты означает, что дата рождения не задана.
func NewRecord(name string, birthday ...string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	record := &Record{name: n}
	if len(birthday) > 0 && birthday[0] != "" {
		if err := record.SetBirthday(birthday[0]); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Name возвращает имя контакта.
func (r *Record) Name() Name { return r.name }

// Phones возвращает копию списка телефонов в порядке добавления.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday возвращает дату рождения, если она задана.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// SetBirthday проверяет raw и заменяет текущую дату рождения.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// AddPhone добавляет проверенный телефон. Дубликаты сохраняются.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone удаляет все телефоны, равные raw.
func (r *Record) RemovePhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if !r.hasPhone(phone) {
		return fmt.Errorf("phone %s: %w", raw, ErrPhoneNotFound)
	}

	r.phones = slices.DeleteFunc(r.phones, phone.Equal)
	return nil
}

// EditPhone заменяет все телефоны, равные oldRaw, на newRaw.
// newRaw проверяется только после того, как найден oldRaw.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	oldPhone, err := NewPhone(oldRaw)
	if err != nil {
		return err
	}
	if !r.hasPhone(oldPhone) {
		return fmt.Errorf("phone %s: %w", oldRaw, ErrPhoneNotFound)
	}

	newPhone, err := oldPhone.WithValue(newRaw)
	if err != nil {
		return err
	}

	for i, p := range r.phones {
		if p.Equal(oldPhone) {
			r.phones[i] = newPhone
		}
	}
	return nil
}

// FindPhone возвращает первый телефон, равный raw.
func (r *Record) FindPhone(raw string) (Phone, bool, error) {
	phone, err := NewPhone(raw)
	if err != nil {
		return Phone{}, false, err
	}

	idx := slices.IndexFunc(r.phones, phone.Equal)
	if idx < 0 {
		return Phone{}, false, nil
	}
	return r.phones[idx], true, nil
}

func (r *Record) hasPhone(phone Phone) bool {
	return slices.ContainsFunc(r.phones, phone.Equal)
}

// DaysToBirthday считает дни до ближайшего дня рождения от текущей локальной даты.
// ok равен false, если дата рождения не задана.
func (r *Record) DaysToBirthday() (int, bool, error) {
	return r.DaysToBirthdayFrom(time.Now())
}

// DaysToBirthdayFrom считает дни от календарной даты today до ближайшего дня рождения.
// Если день рождения сегодня, результат 0.
func (r *Record) DaysToBirthdayFrom(today time.Time) (int, bool, error) {
	if r.birthday == nil {
		return 0, false, nil
	}

	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	next, ok := r.birthday.occurrence(date.Year())
	if !ok {
		return 0, true, fmt.Errorf("%s in %d: %w", r.birthday, date.Year(), ErrBirthdayOutOfRange)
	}
	if date.After(next) {
		next, ok = r.birthday.occurrence(date.Year() + 1)
		if !ok {
			return 0, true, fmt.Errorf("%s in %d: %w", r.birthday, date.Year()+1, ErrBirthdayOutOfRange)
		}
	}

	return int(next.Sub(date).Hours() / hoursPerDay), true, nil
}

func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		phones = append(phones, p.String())
	}

	birthday := "none"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
