package model

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// init ensures gofakeit is seeded.
func init() {
	gofakeit.Seed(time.Now().UnixNano())
}

var equipmentTypes = []string{"Dry Van", "Reefer", "Flatbed", "Tanker", "Step Deck"}

var commodityTypes = []string{
	"Electronics", "General Freight", "Frozen Foods", "Construction Materials",
	"Machinery", "Retail Goods", "Paper Products", "Automotive Parts",
}

// NewRandomLoad creates a Load with plausible fake data. Pickup lands within
// the next five days and delivery follows pickup by one to three days.
func NewRandomLoad(overrideDefaults ...*Load) *Load {
	pickup := time.Now().UTC().Add(time.Duration(gofakeit.Number(4, 120)) * time.Hour)
	weight := float64(gofakeit.Number(15000, 48000))
	pieces := gofakeit.Number(1, 150)
	miles := float64(gofakeit.Number(100, 2500))

	base := &Load{
		LoadID:           fmt.Sprintf("LOAD%03d", gofakeit.Number(100, 999)),
		Origin:           fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Destination:      fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		PickupDatetime:   pickup,
		DeliveryDatetime: pickup.Add(time.Duration(gofakeit.Number(24, 72)) * time.Hour),
		EquipmentType:    gofakeit.RandomString(equipmentTypes),
		LoadboardRate:    float64(gofakeit.Number(800, 4500)),
		Notes:            gofakeit.Sentence(6),
		Weight:           &weight,
		CommodityType:    gofakeit.RandomString(commodityTypes),
		NumOfPieces:      &pieces,
		Miles:            &miles,
		Dimensions:       gofakeit.RandomString([]string{"53ft trailer", "48ft trailer", "48ft flatbed"}),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.LoadID != "" {
			base.LoadID = ovr.LoadID
		}
		if ovr.Origin != "" {
			base.Origin = ovr.Origin
		}
		if ovr.Destination != "" {
			base.Destination = ovr.Destination
		}
		if !ovr.PickupDatetime.IsZero() {
			base.PickupDatetime = ovr.PickupDatetime
		}
		if !ovr.DeliveryDatetime.IsZero() {
			base.DeliveryDatetime = ovr.DeliveryDatetime
		}
		if ovr.EquipmentType != "" {
			base.EquipmentType = ovr.EquipmentType
		}
		if ovr.LoadboardRate != 0 {
			base.LoadboardRate = ovr.LoadboardRate
		}
	}

	return base
}

// NewRandomCallLog creates a CallLog with fake data for load and demo tooling.
func NewRandomCallLog(overrideDefaults ...*CallLog) *CallLog {
	offer := float64(gofakeit.Number(900, 4000))
	rounds := gofakeit.Number(1, 5)
	agreed := offer + float64(gofakeit.Number(-200, 200))

	base := &CallLog{
		HappyRobotRunID:       gofakeit.UUID(),
		MCNumber:              fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
		CalledAt:              time.Now().UTC().Add(-time.Duration(gofakeit.Number(1, 96)) * time.Hour),
		FMCSAVerifiedEligible: gofakeit.Bool(),
		SearchedLoadID:        fmt.Sprintf("LOAD%03d", gofakeit.Number(1, 8)),
		InitialCarrierOffer:   &offer,
		NegotiationRounds:     &rounds,
		AgreedRate:            &agreed,
		CallOutcomeClassification: gofakeit.RandomString([]string{
			"Booked", "Rejected - Price", "No Interest", "Ineligible", "Callback Requested",
		}),
		CarrierSentimentClassification: gofakeit.RandomString([]string{"Positive", "Neutral", "Negative"}),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.HappyRobotRunID != "" {
			base.HappyRobotRunID = ovr.HappyRobotRunID
		}
		if ovr.MCNumber != "" {
			base.MCNumber = ovr.MCNumber
		}
		if ovr.CallOutcomeClassification != "" {
			base.CallOutcomeClassification = ovr.CallOutcomeClassification
		}
		if ovr.CarrierSentimentClassification != "" {
			base.CarrierSentimentClassification = ovr.CarrierSentimentClassification
		}
	}

	return base
}
