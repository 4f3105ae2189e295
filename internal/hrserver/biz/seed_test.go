package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_InitLocations(t *testing.T) {
	f := newFakeFactory()
	svc := NewSeedService(f)

	locations, err := svc.InitLocations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, 10)

	london, err := f.Locations().Get(context.Background(), "loc2")
	require.NoError(t, err)
	assert.Equal(t, "London", london.City)
	assert.Equal(t, "GB", london.Country)
}

func TestSeedService_InitLocations_Idempotent(t *testing.T) {
	f := newFakeFactory()
	svc := NewSeedService(f)

	_, err := svc.InitLocations(context.Background())
	require.NoError(t, err)
	_, err = svc.InitLocations(context.Background())
	require.NoError(t, err)

	_, _, _, _, locations := f.Counts()
	assert.Equal(t, 10, locations)
}
