package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDueDate(t *testing.T) {
	tests := []struct {
		name  string
		taken time.Time
		want  time.Time
	}{
		{
			name:  "mid-month",
			taken: date(2024, time.June, 1),
			want:  date(2024, time.June, 15),
		},
		{
			name:  "crosses month boundary",
			taken: date(2024, time.February, 20),
			want:  date(2024, time.March, 5),
		},
		{
			name:  "crosses year boundary",
			taken: date(2024, time.December, 25),
			want:  date(2025, time.January, 8),
		},
		{
			name:  "non-leap february",
			taken: date(2023, time.February, 20),
			want:  date(2023, time.March, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDueDate(tt.taken)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestIsOverdue(t *testing.T) {
	t.Run("past due date is overdue", func(t *testing.T) {
		assert.True(t, IsOverdue(date(2024, time.January, 1), date(2024, time.June, 1)))
	})

	t.Run("future due date is not overdue", func(t *testing.T) {
		assert.False(t, IsOverdue(date(2024, time.June, 1), date(2024, time.January, 1)))
	})

	t.Run("same calendar day is not overdue regardless of time of day", func(t *testing.T) {
		due := date(2024, time.June, 1)
		asOf := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC)
		assert.False(t, IsOverdue(due, asOf))
	})
}
