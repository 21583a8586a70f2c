package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	tests := []struct {
		input   TimeString
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:45", 825, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"09-00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.minutes, got, "input %q", tt.input)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(540)
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	ts, err = NewTimeStringFromMinutes(825)
	require.NoError(t, err)
	assert.Equal(t, "13:45", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(1440)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 13, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(75)
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// TIME колонка приходит как time.Time
	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "14:30", ts.String())

	// Строка с секундами
	require.NoError(t, ts.Scan("09:15:00"))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan([]byte("11:45")))
	assert.Equal(t, "11:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	ts := TimeString("10:00")

	data, err := ts.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"10:00"`, string(data))

	var parsed TimeString
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, ts, parsed)

	assert.Error(t, parsed.UnmarshalJSON([]byte(`"25:00"`)))
}
