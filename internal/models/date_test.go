package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"healthtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2024, time.January, 1), d)
	assert.Equal(t, "2024-01-01", d.String())

	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2024-02-30", "yesterday", " 2024-01-01", "2024-01-01 ", "2024-1-1"} {
		_, err := models.ParseDate(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date  models.Date  `json:"date"`
		Other *models.Date `json:"other"`
	}
	err := json.Unmarshal([]byte(`{"date":"2024-03-15","other":null}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", payload.Date.String())
	assert.Nil(t, payload.Other)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-15","other":null}`, string(out))

	err = json.Unmarshal([]byte(`{"date":"15.03.2024"}`), &payload)
	assert.Error(t, err)
	err = json.Unmarshal([]byte(`{"date":20240315}`), &payload)
	assert.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	var d models.Date

	require.NoError(t, d.Scan(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-05-02", d.String())

	require.NoError(t, d.Scan("2024-05-03"))
	assert.Equal(t, "2024-05-03", d.String())

	require.NoError(t, d.Scan([]byte("2024-05-04 00:00:00+00:00")))
	assert.Equal(t, "2024-05-04", d.String())

	assert.Error(t, d.Scan(42))

	v, err := models.NewDate(2024, time.May, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-05", v)
}
