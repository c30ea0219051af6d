package model

import (
	"time"
)

// Load represents the loads table structure, one row per posted freight shipment.
type Load struct {
	// ID is the internal database primary key.
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	// LoadID is the unique business identifier for the load, immutable after creation.
	LoadID string `json:"load_id" gorm:"column:load_id;uniqueIndex;not null" validate:"required"`
	// Origin is the starting location, e.g. "Chicago, IL".
	Origin string `json:"origin" gorm:"column:origin;not null" validate:"required"`
	// Destination is the delivery location.
	Destination string `json:"destination" gorm:"column:destination;not null" validate:"required"`
	// PickupDatetime is the date and time for pickup.
	PickupDatetime time.Time `json:"pickup_datetime" gorm:"column:pickup_datetime;not null;index" validate:"required"`
	// DeliveryDatetime is the date and time for delivery.
	DeliveryDatetime time.Time `json:"delivery_datetime" gorm:"column:delivery_datetime;not null" validate:"required"`
	// EquipmentType is the trailer type needed, e.g. "Dry Van", "Reefer".
	EquipmentType string `json:"equipment_type" gorm:"column:equipment_type;not null" validate:"required"`
	// LoadboardRate is the listed rate for the load in USD.
	LoadboardRate float64 `json:"loadboard_rate" gorm:"column:loadboard_rate;not null" validate:"required,gt=0"`
	// Notes carries additional free-text information about the load.
	Notes string `json:"notes,omitempty" gorm:"column:notes;type:text"`
	// Weight is the load weight in lbs.
	Weight *float64 `json:"weight,omitempty" gorm:"column:weight"`
	// CommodityType describes the goods being shipped.
	CommodityType string `json:"commodity_type,omitempty" gorm:"column:commodity_type"`
	// NumOfPieces is the number of items in the shipment.
	NumOfPieces *int `json:"num_of_pieces,omitempty" gorm:"column:num_of_pieces"`
	// Miles is the distance to travel.
	Miles *float64 `json:"miles,omitempty" gorm:"column:miles"`
	// Dimensions describes the size measurements, e.g. "53ft trailer".
	Dimensions string `json:"dimensions,omitempty" gorm:"column:dimensions"`
	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when the record was last updated.
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (Load) TableName() string {
	return "loads"
}

// LoadFilter carries the optional predicates for a load search. Zero values
// mean "not set"; all set predicates combine with logical AND.
type LoadFilter struct {
	// OriginCity filters by case-insensitive substring match on origin.
	OriginCity string
	// DestinationCity filters by case-insensitive substring match on destination.
	DestinationCity string
	// EquipmentType filters by case-insensitive substring match on equipment type.
	EquipmentType string
	// PickupDate restricts results to loads picked up on this calendar day (UTC).
	PickupDate *time.Time
	// MaxWeight keeps loads with weight <= the given value.
	MaxWeight float64
	// MinRate keeps loads with loadboard rate >= the given value.
	MinRate float64
	// MaxRate keeps loads with loadboard rate <= the given value.
	MaxRate float64
	// Limit caps the number of results. Defaults to 10, hard ceiling 100.
	Limit int
}

// Load search limit bounds.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

// EffectiveLimit returns the result cap clamped to [1, MaxSearchLimit],
// falling back to DefaultSearchLimit when unset.
func (f LoadFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultSearchLimit
	}
	if f.Limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return f.Limit
}
