package providers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestIPLocator_Locate(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", ipAPIURL+"/203.0.113.7",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "status,message,lat,lon,city,country", req.URL.Query().Get("fields"))
			return httpmock.NewStringResponse(http.StatusOK,
				`{"status":"success","lat":52.52,"lon":13.405,"city":"Berlin","country":"Germany"}`), nil
		})

	l := NewIPLocator(&http.Client{}, WithBackoff(testBackoff))
	pos, err := l.Locate(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, weather.Position{Lat: 52.52, Lon: 13.405, City: "Berlin", Country: "Germany"}, pos)
}

func TestIPLocator_Locate_Caller(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", ipAPIURL,
		httpmock.NewStringResponder(http.StatusOK, `{"status":"success","lat":1,"lon":2}`))

	l := NewIPLocator(&http.Client{}, WithBackoff(testBackoff))
	pos, err := l.Locate(context.Background(), "")
	require.NoError(t, err)
	assert.InDelta(t, 2, pos.Lon, 1e-9)
}

func TestIPLocator_Locate_PrivateRange(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", ipAPIURL+"/192.168.1.10",
		httpmock.NewStringResponder(http.StatusOK, `{"status":"fail","message":"private range"}`))

	l := NewIPLocator(&http.Client{}, WithBackoff(testBackoff))
	_, err := l.Locate(context.Background(), "192.168.1.10")
	assert.ErrorIs(t, err, weather.ErrLocationUnavailable)
	assert.Contains(t, err.Error(), "not publicly routable")
}

func TestIPLocator_Locate_Failures(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", ipAPIURL+"/198.51.100.1",
		httpmock.NewStringResponder(http.StatusOK, `{"status":"fail","message":"invalid query"}`))
	httpmock.RegisterResponder("GET", ipAPIURL+"/198.51.100.2",
		httpmock.NewStringResponder(http.StatusBadGateway, ""))

	l := NewIPLocator(&http.Client{}, WithBackoff(testBackoff))

	_, err := l.Locate(context.Background(), "198.51.100.1")
	assert.ErrorIs(t, err, weather.ErrLocationUnavailable)

	_, err = l.Locate(context.Background(), "198.51.100.2")
	assert.ErrorIs(t, err, weather.ErrLocationUnavailable)
	assert.ErrorIs(t, err, weather.ErrUpstream)
}

func TestIPLocator_Locate_Timeout(t *testing.T) {
	setupHTTPMock(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	l := NewIPLocator(&http.Client{}, WithBackoff(testBackoff))
	_, err := l.Locate(ctx, "203.0.113.7")
	assert.ErrorIs(t, err, weather.ErrLocationTimeout)
}
