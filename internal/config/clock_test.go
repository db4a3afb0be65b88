package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		raw     string
		want    Clock
		wantErr bool
	}{
		{raw: "17:30", want: Clock{Hour: 17, Minute: 30}},
		{raw: "07:05", want: Clock{Hour: 7, Minute: 5}},
		{raw: "0:00", want: Clock{Hour: 0, Minute: 0}},
		{raw: "23:59", want: Clock{Hour: 23, Minute: 59}},
		{raw: "25:00", wantErr: true},
		{raw: "7:61", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "12", wantErr: true},
		{raw: "12:05:00", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "-1:30", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseClock(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewClockRanges(t *testing.T) {
	_, err := NewClock(25, 0)
	require.Error(t, err)

	_, err = NewClock(7, 61)
	require.Error(t, err)

	_, err = NewClock(-1, 0)
	require.Error(t, err)

	c, err := NewClock(12, 5)
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 12, Minute: 5}, c)
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "12:05", Clock{Hour: 12, Minute: 5}.String())
	assert.Equal(t, "7:05", Clock{Hour: 7, Minute: 5}.String())
	assert.Equal(t, "17:30", Clock{Hour: 17, Minute: 30}.String())
}

func TestClockAt(t *testing.T) {
	ref := time.Date(2025, 3, 10, 9, 15, 42, 123, time.Local)
	got := Clock{Hour: 17, Minute: 30}.At(ref)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 30, 0, 0, time.Local), got)
}

func TestClockMatchesExactSecondOnly(t *testing.T) {
	c := Clock{Hour: 12, Minute: 30}

	assert.True(t, c.Matches(time.Date(2025, 3, 10, 12, 30, 0, 0, time.Local)))
	assert.False(t, c.Matches(time.Date(2025, 3, 10, 12, 29, 59, 0, time.Local)))
	assert.False(t, c.Matches(time.Date(2025, 3, 10, 12, 30, 1, 0, time.Local)))
}
