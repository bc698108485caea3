package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 31)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-31"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestDateUnmarshalRejectsInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"31/01/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`31`), &d))
	assert.Error(t, json.Unmarshal([]byte(`""`), &d))
}

func TestDateISO(t *testing.T) {
	assert.Equal(t, "2026-03-05", NewDate(2026, time.March, 5).ISO())
}

func TestDateEqualIgnoresTimeOfDay(t *testing.T) {
	a := NewDate(2026, time.January, 5)
	b := Date{time.Date(2026, time.January, 5, 23, 59, 0, 0, time.UTC)}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewDate(2026, time.January, 6)))
}
