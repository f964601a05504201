package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMapsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/1.2.3.4", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"query": "1.2.3.4",
			"country": "Thailand",
			"countryCode": "TH",
			"region": "10",
			"regionName": "Bangkok",
			"city": "Bangkok",
			"zip": "10110",
			"lat": 13.7563,
			"lon": 100.5018,
			"timezone": "Asia/Bangkok",
			"isp": "AIS Fibre",
			"org": "Advanced Info Service"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	location, err := client.Lookup(context.Background(), "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3.4", location.IP)
	assert.Equal(t, "Thailand", location.Country)
	assert.Equal(t, "TH", location.CountryCode)
	assert.Equal(t, "Bangkok", location.City)
	assert.Equal(t, "10110", location.PostalCode)
	assert.Equal(t, 13.7563, location.Lat)
	assert.Equal(t, "Asia/Bangkok", location.Timezone)
	assert.False(t, location.LookedUpAt.IsZero())
}

func TestLookupFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range", "query": "10.0.0.1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Lookup(context.Background(), "10.0.0.1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "private range")
}

func TestLookupHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Lookup(context.Background(), "1.2.3.4")
	assert.Error(t, err)
}
