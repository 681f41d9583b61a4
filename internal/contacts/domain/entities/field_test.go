package entities_test

import (
	"strings"
	"testing"
	"time"

	"contactbook/internal/contacts/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	field := entities.NewField(42)
	assert.Equal(t, 42, field.Value())
}

func TestNewName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		name, err := entities.NewName("Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", name.Value())
		assert.Equal(t, "Alice", name.String())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := entities.NewName("")
		assert.ErrorIs(t, err, entities.ErrEmptyName)
	})
}

func TestNewPhone(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"ten digits", "1234567890", true},
		{"leading zeros", "0000000001", true},
		{"nine digits", "123456789", false},
		{"eleven digits", "12345678901", false},
		{"empty", "", false},
		{"letters", "12345abcde", false},
		{"plus prefix", "+123456789", false},
		{"spaces", "123 456 78", false},
		{"non ascii digits", "١٢٣٤٥٦٧٨٩٠", false},
		{"dashes", "123-456-78", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := entities.NewPhone(tc.raw)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.raw, phone.Value())
				assert.Equal(t, tc.raw, phone.String())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrInvalidPhone)
		})
	}
}

func TestNewPhoneAllDigitStrings(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		raw := strings.Repeat(string(d), entities.PhoneLength)
		phone, err := entities.NewPhone(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, phone.Value())
	}
}

func TestPhoneWithValue(t *testing.T) {
	phone, err := entities.NewPhone("1234567890")
	require.NoError(t, err)

	updated, err := phone.WithValue("0987654321")
	require.NoError(t, err)
	assert.Equal(t, "0987654321", updated.Value())
	assert.Equal(t, "1234567890", phone.Value(), "original phone must stay unchanged")

	_, err = phone.WithValue("bad")
	assert.ErrorIs(t, err, entities.ErrInvalidPhone)
}

func TestPhoneEqual(t *testing.T) {
	a, err := entities.NewPhone("1234567890")
	require.NoError(t, err)
	b, err := entities.NewPhone("1234567890")
	require.NoError(t, err)
	c, err := entities.NewPhone("1111111111")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewBirthday(t *testing.T) {
	testCases := []struct {
		raw   string
		valid bool
	}{
		{"2000-01-01", true},
		{"2024-02-29", true},
		{"1999-12-31", true},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"2023-13-01", false},
		{"2023-00-10", false},
		{"2023-04-31", false},
		{"abcd-01-01", false},
		{"2023-1-01", false},
		{"01-01-2023", false},
		{"2023-01-01T00:00:00", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run("raw="+tc.raw, func(t *testing.T) {
			birthday, err := entities.NewBirthday(tc.raw)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.raw, birthday.String())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrInvalidBirthday)
		})
	}
}

func TestBirthdayParts(t *testing.T) {
	birthday, err := entities.NewBirthday("1990-06-15")
	require.NoError(t, err)

	assert.Equal(t, 1990, birthday.Year())
	assert.Equal(t, time.June, birthday.Month())
	assert.Equal(t, 15, birthday.Day())
	assert.Equal(t, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), birthday.Date())

	updated, err := birthday.WithValue("1991-07-16")
	require.NoError(t, err)
	assert.Equal(t, "1991-07-16", updated.String())

	_, err = birthday.WithValue("1991-07-32")
	assert.ErrorIs(t, err, entities.ErrInvalidBirthday)
}
