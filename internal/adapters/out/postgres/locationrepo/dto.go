// Package locationrepo provides data transfer objects and mapping functions
// for the location catalog. This package implements the repository pattern for
// the location domain aggregate, handling the conversion between domain
// entities and database representations.
package locationrepo

import (
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting location
// aggregates. The routing sequence carries a unique index; two locations must
// never share a slot in the routing order.
type LocationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Sequence        int `gorm:"uniqueIndex"`
	IsPrimary       bool
	SkipAutoQueue   bool
	CountMultiplier int
	NoCount         bool
}

// TableName specifies the database table name for location entities.
// Overrides GORM's default naming convention to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location domain aggregate to its database representation.
func fromDomain(location *location.Location) LocationDTO {
	return LocationDTO{
		ID:              location.ID().Bytes(),
		Name:            location.Name(),
		Sequence:        location.Sequence(),
		IsPrimary:       location.IsPrimary(),
		SkipAutoQueue:   location.SkipAutoQueue(),
		CountMultiplier: location.CountMultiplier(),
		NoCount:         location.NoCount(),
	}
}

// toDomain converts a database DTO to a location domain aggregate.
// Locations carry no mutable state beyond their catalog attributes, so the
// regular constructor doubles as the restore path.
func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.NewLocation(
		id,
		dto.Name,
		dto.Sequence,
		dto.IsPrimary,
		dto.SkipAutoQueue,
		dto.CountMultiplier,
		dto.NoCount,
	)
}
