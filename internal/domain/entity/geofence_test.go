package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeofenceType_Valid(t *testing.T) {
	assert.True(t, GeofenceTypeHome.Valid())
	assert.True(t, GeofenceTypeTemporary.Valid())
	assert.False(t, GeofenceType("permanent").Valid())
	assert.False(t, GeofenceType("").Valid())
}

func TestGeofence_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name     string
		geofence Geofence
		want     bool
	}{
		{
			name:     "temporary past deadline",
			geofence: Geofence{Type: GeofenceTypeTemporary, EndTime: &past},
			want:     true,
		},
		{
			name:     "temporary before deadline",
			geofence: Geofence{Type: GeofenceTypeTemporary, EndTime: &future},
			want:     false,
		},
		{
			name:     "temporary without deadline",
			geofence: Geofence{Type: GeofenceTypeTemporary},
			want:     false,
		},
		{
			name:     "home never expires",
			geofence: Geofence{Type: GeofenceTypeHome, EndTime: &past},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.geofence.Expired(now))
		})
	}
}
