package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/kelvins/geocoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestGoogleNamer_Place(t *testing.T) {
	n := NewGoogleNamer("test-key")
	n.reverse = func(loc geocoder.Location) ([]geocoder.Address, error) {
		assert.Equal(t, "test-key", geocoder.ApiKey)
		assert.InDelta(t, 45.76, loc.Latitude, 1e-9)
		return []geocoder.Address{
			{Country: "France"},
			{County: "Lyon", State: "Auvergne-Rhône-Alpes", Country: "France"},
			{City: "Villeurbanne", Country: "France"},
		}, nil
	}

	p, err := n.Place(context.Background(), 45.76, 4.84)
	require.NoError(t, err)
	assert.Equal(t, weather.Place{Name: "Lyon", Country: "France", Region: "Auvergne-Rhône-Alpes"}, p)
}

func TestGoogleNamer_Place_Errors(t *testing.T) {
	_, err := NewGoogleNamer("").Place(context.Background(), 0, 0)
	assert.Error(t, err)

	n := NewGoogleNamer("k")
	n.reverse = func(geocoder.Location) ([]geocoder.Address, error) {
		return nil, errors.New("OVER_QUERY_LIMIT")
	}
	_, err = n.Place(context.Background(), 0, 0)
	assert.ErrorIs(t, err, weather.ErrUpstream)

	n.reverse = func(geocoder.Location) ([]geocoder.Address, error) {
		return []geocoder.Address{{Country: "Nowhere"}}, nil
	}
	_, err = n.Place(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestGoogleNamer_Place_RespectsContext(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	n := NewGoogleNamer("k")
	n.reverse = func(geocoder.Location) ([]geocoder.Address, error) {
		<-release
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.Place(ctx, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
