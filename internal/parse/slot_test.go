package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSlot(t *testing.T) {
	testCases := []struct {
		name      string
		label     string
		expected  Slot
		expectErr bool
	}{
		{
			name:     "Morning slot",
			label:    "09:00",
			expected: Slot{Hour: 9, Minute: 0},
		},
		{
			name:     "Afternoon slot",
			label:    "14:30",
			expected: Slot{Hour: 14, Minute: 30},
		},
		{
			name:     "Last slot of the day",
			label:    "23:59",
			expected: Slot{Hour: 23, Minute: 59},
		},
		{
			name:      "Missing leading zero",
			label:     "9:00",
			expectErr: true,
		},
		{
			name:      "Hour out of range",
			label:     "24:00",
			expectErr: true,
		},
		{
			name:      "Minute out of range",
			label:     "10:60",
			expectErr: true,
		},
		{
			name:      "Not a time at all",
			label:     "morning",
			expectErr: true,
		},
		{
			name:      "Empty label",
			label:     "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := ParseSlot(tc.label)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, slot)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01-06-2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-06-01T10:00:00Z")
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2024, 6, 1, 17, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), NormalizeDate(in))
}

func TestSlotEnd(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	end, err := SlotEnd(date, "10:00", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC), end)

	// A date carrying a stray time component is normalized first.
	end, err = SlotEnd(date.Add(5*time.Hour), "10:00", 30*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC), end)

	_, err = SlotEnd(date, "bad", time.Hour)
	assert.Error(t, err)
}
