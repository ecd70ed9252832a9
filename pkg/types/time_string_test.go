package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "short form", input: "09:00", want: "09:00"},
		{name: "postgres TIME form", input: "18:30:00", want: "18:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "surrounding spaces", input: " 12:00 ", want: "12:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "end of day from postgres", input: "24:00:00", want: "24:00"},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "three digit hour", input: "009:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("13:00").IsAfter("12:59"))

	// некорректные значения ни с чем не сравниваются
	assert.False(t, TimeString("xx").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("xx"))
}

func TestTimeString_EndOfDay(t *testing.T) {
	minutes, err := EndOfDay.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 24*60, minutes)

	assert.True(t, TimeString("23:59").IsBefore(EndOfDay))
	assert.NoError(t, EndOfDay.Validate())
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeFormat, "only the canonical form is valid")
	assert.ErrorIs(t, TimeString("09:00:00").Validate(), ErrInvalidTimeFormat)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:15:00"))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan([]byte("17:45:00")))
	assert.Equal(t, TimeString("17:45"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, EndOfDay, ts)

	require.NoError(t, ts.Scan("24:00:00"))
	assert.Equal(t, EndOfDay, ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("10h").Value()
	assert.Error(t, err)
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Start TimeString  `json:"start"`
		Break *TimeString `json:"break"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"start":"07:30:00","break":null}`), &payload))
	assert.Equal(t, TimeString("07:30"), payload.Start)
	assert.Nil(t, payload.Break)

	err := json.Unmarshal([]byte(`{"start":"7h30"}`), &payload)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"07:30","break":null}`, string(out))
}
