package clock

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dayplanner/core/errdefs"
)

func TestNewValidatesRange(t *testing.T) {
	cases := []struct {
		hour, minute int
		ok           bool
	}{
		{0, 0, true},
		{23, 59, true},
		{7, 30, true},
		{-1, 0, false},
		{24, 0, false},
		{12, -1, false},
		{12, 60, false},
	}
	for _, c := range cases {
		_, err := New(c.hour, c.minute)
		if c.ok && err != nil {
			t.Fatalf("New(%d, %d): unexpected error %v", c.hour, c.minute, err)
		}
		if !c.ok && !errors.Is(err, errdefs.ErrInvalidArgument) {
			t.Fatalf("New(%d, %d): expected invalid argument, got %v", c.hour, c.minute, err)
		}
	}
}

func TestOnHourDefaultsMinute(t *testing.T) {
	tm, err := OnHour(7)
	require.NoError(t, err)
	assert.Equal(t, 7, tm.Hour())
	assert.Equal(t, 0, tm.Minute())

	_, err = OnHour(24)
	assert.True(t, errors.Is(err, errdefs.ErrInvalidArgument))
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(25, 0) })
	assert.NotPanics(t, func() { MustNew(23, 59) })
}

func TestStringIsZeroPadded(t *testing.T) {
	for h := 0; h < HoursPerDay; h++ {
		for m := 0; m < MinutesPerHour; m++ {
			want := fmt.Sprintf("%02d:%02d", h, m)
			if got := MustNew(h, m).String(); got != want {
				t.Fatalf("got %s want %s", got, want)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	t7 := MustNew(7, 0)
	t930 := MustNew(9, 30)
	assert.Equal(t, -1, t7.Compare(t930))
	assert.Equal(t, 1, t930.Compare(t7))
	assert.Equal(t, 0, t7.Compare(MustNew(7, 0)))
	assert.Equal(t, -1, MustNew(7, 5).Compare(MustNew(7, 6)))
	assert.Equal(t, 1, MustNew(8, 0).Compare(MustNew(7, 59)))
}

func TestDurationTo(t *testing.T) {
	assert.Equal(t, 150, MustNew(7, 0).DurationTo(MustNew(9, 30)))
	assert.Equal(t, 0, MustNew(7, 0).DurationTo(MustNew(7, 0)))
	assert.Equal(t, 50, MustNew(6, 40).DurationTo(MustNew(7, 30)))
	assert.Equal(t, NoDuration, MustNew(9, 30).DurationTo(MustNew(7, 0)))
}

func TestPlusMinutes(t *testing.T) {
	got, ok, err := MustNew(7, 0).PlusMinutes(500)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "15:20", got.String())

	got, ok, err = MustNew(6, 50).PlusMinutes(15)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "07:05", got.String())

	got, ok, err = MustNew(23, 0).PlusMinutes(59)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "23:59", got.String())

	_, ok, err = MustNew(9, 30).PlusMinutes(870)
	require.NoError(t, err)
	assert.False(t, ok, "09:30 + 14h30 runs past midnight")

	_, ok, err = MustNew(23, 59).PlusMinutes(1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = MustNew(7, 0).PlusMinutes(-1)
	assert.True(t, errors.Is(err, errdefs.ErrInvalidArgument))
}

func TestParse(t *testing.T) {
	good := map[string]string{
		"7":     "07:00",
		"07":    "07:00",
		"7:05":  "07:05",
		"23:59": "23:59",
		" 6:30": "06:30",
	}
	for in, want := range good {
		tm, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, tm.String())
	}
	for _, in := range []string{"", "24:00", "7:5", "7:60", "ab", "7:xx", "-1", "+7", "7:+5", "+07:00", "-0:00", "7:-1"} {
		_, err := Parse(in)
		assert.True(t, errors.Is(err, errdefs.ErrInvalidArgument), "input %q", in)
	}
}

func TestTextRoundTrip(t *testing.T) {
	type doc struct {
		At Time `json:"at"`
	}
	b, err := json.Marshal(doc{At: MustNew(5, 7)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"05:07"}`, string(b))

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"at":"18:45"}`), &d))
	assert.Equal(t, MustNew(18, 45), d.At)
	assert.Error(t, json.Unmarshal([]byte(`{"at":"25:00"}`), &d))
}
