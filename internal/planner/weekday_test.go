package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeekday(t *testing.T) {
	cases := []struct {
		raw  string
		want Weekday
	}{
		{"  monDAY ", Monday},
		{"monday", Monday},
		{"TUESDAY", Tuesday},
		{"Wednesday", Wednesday},
		{"thursday", Thursday},
		{"friday", Friday},
		{"sATURDAY", Saturday},
		{"sunday ", Sunday},
	}
	for _, tc := range cases {
		got, err := NormalizeWeekday(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeWeekdayUnknown(t *testing.T) {
	for _, raw := range []string{"xyz", "", "   ", "Mon", "Mondays"} {
		_, err := NormalizeWeekday(raw)
		require.Error(t, err, "raw %q", raw)
		var unknown *ErrUnknownWeekday
		assert.ErrorAs(t, err, &unknown)
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Friday")
	require.NoError(t, err)
	assert.Equal(t, Friday, day)

	_, err = ParseWeekday("friday")
	require.Error(t, err)
}
