package impl

import (
	"sync"

	"fence/internal/domain/entity"
)

// locationCache holds each ward's latest known position in memory. Writes
// replace the ward's record wholesale; records for absent wards are never
// stored, so a miss always means "ask the durable store".
type locationCache struct {
	mu      sync.RWMutex
	records map[string]*entity.LocationRecord
}

func newLocationCache() *locationCache {
	return &locationCache{
		records: make(map[string]*entity.LocationRecord),
	}
}

// get returns the cached record for the ward, if any.
func (c *locationCache) get(wardNumber string) (*entity.LocationRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[wardNumber]

	return record, ok
}

// set stores the record under its ward number, replacing any previous one.
func (c *locationCache) set(record *entity.LocationRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records[record.WardNumber] = record
}
