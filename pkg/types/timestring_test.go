package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 12, 15, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, "14:30", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid morning", "08:00", "08:00", false},
		{"valid evening", "19:00", "19:00", false},
		{"midnight", "00:00", "00:00", false},
		{"no leading zero normalized", "8:00", "08:00", false},
		{"with seconds", "08:00:00", "", true},
		{"out of range hour", "25:00", "", true},
		{"garbage", "not-a-time", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("adds one hour", func(t *testing.T) {
		ts := TimeString("14:00")
		got, err := ts.AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, "15:00", got.String())
	})

	t.Run("last slot of the day", func(t *testing.T) {
		ts := TimeString("19:00")
		got, err := ts.AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, "20:00", got.String())
	})

	t.Run("crossing midnight fails", func(t *testing.T) {
		ts := TimeString("23:30")
		_, err := ts.AddMinutes(60)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("invalid value fails", func(t *testing.T) {
		ts := TimeString("nope")
		_, err := ts.AddMinutes(60)
		require.Error(t, err)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("07:59").IsBefore(TimeString("08:00")))
	assert.False(t, TimeString("08:00").IsBefore(TimeString("08:00")))
	assert.True(t, TimeString("19:01").IsAfter(TimeString("19:00")))
	assert.False(t, TimeString("19:00").IsAfter(TimeString("19:00")))
	assert.True(t, TimeString("14:00").Equal(TimeString("14:00")))
	assert.False(t, TimeString("14:00").Equal(TimeString("15:00")))
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"string HH:MM", "14:00", "14:00"},
		{"string HH:MM:SS", "14:00:00", "14:00"},
		{"bytes", []byte("09:30:00"), "09:30"},
		{"time.Time", time.Date(2024, 12, 15, 8, 0, 0, 0, time.UTC), "08:00"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts.String())
		})
	}

	t.Run("unsupported type fails", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan(42)
		require.Error(t, err)
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		v, err := TimeString("14:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "14:00", v)
	})

	t.Run("zero value is nil", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid value fails", func(t *testing.T) {
		_, err := TimeString("25:99").Value()
		require.Error(t, err)
	})
}
