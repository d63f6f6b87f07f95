package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextHalfHour(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "before half hour rounds up to half hour",
			input: time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC),
			want:  time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "after half hour rounds up to next hour",
			input: time.Date(2024, 6, 3, 9, 45, 0, 0, time.UTC),
			want:  time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "exactly on half hour advances by thirty minutes",
			input: time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
			want:  time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "exactly on hour advances by thirty minutes",
			input: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NextHalfHour(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, []int{0, 30}, got.Minute())
		})
	}
}

func TestNextWeekday_AdvancesAtLeastOneDay(t *testing.T) {
	monday := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

	got := domain.NextWeekday(monday, domain.Monday)

	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, got)
}

func TestNextWeekday_LaterInSameWeek(t *testing.T) {
	monday := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

	got := domain.NextWeekday(monday, domain.Friday)

	want := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, got)
}

func TestEnsureUTC_NilPassesThrough(t *testing.T) {
	assert.Nil(t, domain.EnsureUTC(nil))
}

func TestEnsureUTC_ConvertsZone(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	local := time.Date(2024, 6, 3, 9, 0, 0, 0, loc)

	got := domain.EnsureUTC(&local)

	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, local.Equal(*got))
}

func TestToUserZone_UnknownZoneFallsBackToUTC(t *testing.T) {
	instant := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	got := domain.ToUserZone(instant, "Not/AZone")

	assert.Equal(t, time.UTC, got.Location())
}

func TestFromUserZone_UnknownZoneFallsBackToUTC(t *testing.T) {
	got := domain.FromUserZone(2024, 6, 3, 9, 0, 0, "Not/AZone")

	assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), got)
}

func TestFromUserZone_ProjectsToUTC(t *testing.T) {
	got := domain.FromUserZone(2024, 6, 3, 9, 0, 0, "America/New_York")

	assert.Equal(t, time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC), got)
}
