package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

const hour = time.Hour

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// SampleLoads returns the demo load board used for development and testing.
// Pickup and delivery times are relative to now so the board always has
// imminent loads.
func SampleLoads() []model.Load {
	now := utils.Now()
	return []model.Load{
		{
			LoadID:           "LOAD001",
			Origin:           "Chicago, IL",
			Destination:      "Dallas, TX",
			PickupDatetime:   now.AddDate(0, 0, 1),
			DeliveryDatetime: now.AddDate(0, 0, 3),
			EquipmentType:    "Dry Van",
			LoadboardRate:    2100.00,
			Notes:            "High value freight, requires experienced driver",
			Weight:           floatPtr(45000),
			CommodityType:    "Electronics",
			NumOfPieces:      intPtr(75),
			Miles:            floatPtr(925),
			Dimensions:       "53ft trailer",
		},
		{
			LoadID:           "LOAD002",
			Origin:           "Los Angeles, CA",
			Destination:      "Phoenix, AZ",
			PickupDatetime:   now.Add(12 * hour),
			DeliveryDatetime: now.AddDate(0, 0, 2),
			EquipmentType:    "Flatbed",
			LoadboardRate:    1800.00,
			Notes:            "Construction materials, secure properly",
			Weight:           floatPtr(48000),
			CommodityType:    "Construction Materials",
			NumOfPieces:      intPtr(25),
			Miles:            floatPtr(370),
			Dimensions:       "48ft flatbed",
		},
		{
			LoadID:           "LOAD003",
			Origin:           "Miami, FL",
			Destination:      "Atlanta, GA",
			PickupDatetime:   now.AddDate(0, 0, 2),
			DeliveryDatetime: now.AddDate(0, 0, 4),
			EquipmentType:    "Reefer",
			LoadboardRate:    2300.00,
			Notes:            "Temperature controlled, food grade",
			Weight:           floatPtr(42000),
			CommodityType:    "Frozen Foods",
			NumOfPieces:      intPtr(120),
			Miles:            floatPtr(650),
			Dimensions:       "53ft reefer",
		},
		{
			LoadID:           "LOAD004",
			Origin:           "Denver, CO",
			Destination:      "Salt Lake City, UT",
			PickupDatetime:   now.Add(8 * hour),
			DeliveryDatetime: now.Add(36 * hour),
			EquipmentType:    "Dry Van",
			LoadboardRate:    1600.00,
			Notes:            "Standard freight, no special requirements",
			Weight:           floatPtr(38000),
			CommodityType:    "General Freight",
			NumOfPieces:      intPtr(50),
			Miles:            floatPtr(500),
			Dimensions:       "53ft trailer",
		},
		{
			LoadID:           "LOAD005",
			Origin:           "Houston, TX",
			Destination:      "New Orleans, LA",
			PickupDatetime:   now.Add(30 * hour),
			DeliveryDatetime: now.Add(66 * hour),
			EquipmentType:    "Tanker",
			LoadboardRate:    2500.00,
			Notes:            "Hazmat certified driver required",
			Weight:           floatPtr(50000),
			CommodityType:    "Chemicals",
			NumOfPieces:      intPtr(1),
			Miles:            floatPtr(350),
			Dimensions:       "Tanker trailer",
		},
		{
			LoadID:           "LOAD006",
			Origin:           "Seattle, WA",
			Destination:      "Portland, OR",
			PickupDatetime:   now.Add(6 * hour),
			DeliveryDatetime: now.AddDate(0, 0, 1),
			EquipmentType:    "Dry Van",
			LoadboardRate:    900.00,
			Notes:            "Short haul, quick turnaround",
			Weight:           floatPtr(25000),
			CommodityType:    "Retail Goods",
			NumOfPieces:      intPtr(35),
			Miles:            floatPtr(173),
			Dimensions:       "48ft trailer",
		},
		{
			LoadID:           "LOAD007",
			Origin:           "Nashville, TN",
			Destination:      "Louisville, KY",
			PickupDatetime:   now.AddDate(0, 0, 3),
			DeliveryDatetime: now.AddDate(0, 0, 4),
			EquipmentType:    "Flatbed",
			LoadboardRate:    1200.00,
			Notes:            "Machinery transport, requires crane",
			Weight:           floatPtr(47000),
			CommodityType:    "Machinery",
			NumOfPieces:      intPtr(3),
			Miles:            floatPtr(175),
			Dimensions:       "48ft flatbed",
		},
		{
			LoadID:           "LOAD008",
			Origin:           "Phoenix, AZ",
			Destination:      "Las Vegas, NV",
			PickupDatetime:   now.Add(18 * hour),
			DeliveryDatetime: now.AddDate(0, 0, 2),
			EquipmentType:    "Dry Van",
			LoadboardRate:    1100.00,
			Notes:            "Casino supplies, time sensitive",
			Weight:           floatPtr(30000),
			CommodityType:    "Entertainment Supplies",
			NumOfPieces:      intPtr(80),
			Miles:            floatPtr(295),
			Dimensions:       "53ft trailer",
		},
	}
}

// SeedSampleLoads inserts the sample loads, skipping load IDs that already
// exist so reseeding is safe.
func SeedSampleLoads(ctx context.Context, repo LoadRepo) error {
	seeded := 0
	for _, load := range SampleLoads() {
		if _, err := repo.FindByLoadID(ctx, load.LoadID); err == nil {
			continue // already present
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := repo.Save(ctx, load); err != nil {
			// A concurrent seeder may have won the insert race
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return err
		}
		seeded++
	}
	logger.FromContext(ctx).Info("Seeded sample loads", zap.Int("inserted", seeded))
	return nil
}
