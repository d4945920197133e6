package usps_test

import (
	"testing"
	"time"

	"package-tracking-service/workers/shipments/processors/usps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDate(t *testing.T) {
	t.Run("empty time is midnight", func(t *testing.T) {
		got, err := usps.DeriveDate(usps.EventRecord{EventDate: "January 5, 2020"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, time.January, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("afternoon time", func(t *testing.T) {
		got, err := usps.DeriveDate(usps.EventRecord{EventDate: "January 5, 2020", EventTime: "02:30 PM"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, time.January, 5, 14, 30, 0, 0, time.UTC), got)
	})

	t.Run("lowercase meridiem", func(t *testing.T) {
		got, err := usps.DeriveDate(usps.EventRecord{EventDate: "May 21, 2001", EventTime: "9:24 am"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2001, time.May, 21, 9, 24, 0, 0, time.UTC), got)
	})

	t.Run("two digit day", func(t *testing.T) {
		got, err := usps.DeriveDate(usps.EventRecord{EventDate: "December 25, 2019", EventTime: "12:00 AM"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, time.December, 25, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestDeriveDate_Malformed(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		_, err := usps.DeriveDate(usps.EventRecord{EventDate: "2020-01-05"})
		require.Error(t, err)
		assert.ErrorIs(t, err, usps.ErrMalformedDate)

		var dateErr *usps.MalformedDateError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "EventDate", dateErr.Field)
		assert.Equal(t, "2020-01-05", dateErr.Value)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := usps.DeriveDate(usps.EventRecord{EventTime: "02:30 PM"})
		assert.ErrorIs(t, err, usps.ErrMalformedDate)
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := usps.DeriveDate(usps.EventRecord{EventDate: "January 5, 2020", EventTime: "14h30"})
		require.Error(t, err)

		var dateErr *usps.MalformedDateError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "EventTime", dateErr.Field)
	})
}

func TestDeriveLocation(t *testing.T) {
	assert.Equal(t, "NEWTON,IA,US", usps.DeriveLocation(usps.EventRecord{EventCity: "NEWTON", EventState: "IA"}))
	assert.Equal(t, "TORONTO,ON,CA", usps.DeriveLocation(usps.EventRecord{EventCity: "TORONTO", EventState: "ON", EventCountry: "CA"}))
	assert.Equal(t, ",,US", usps.DeriveLocation(usps.EventRecord{}))
	assert.Equal(t, ",,FR", usps.DeriveLocation(usps.EventRecord{EventCountry: "FR"}))
}
