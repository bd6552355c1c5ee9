package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
	"github.com/diillson/dell-inventory-report-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(n int) *int { return &n }

var runStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAggregateComponentsDropsNoiseAndSumsDuplicates(t *testing.T) {
	records := []entity.ComponentRecord{
		{PartDescription: "Info Only"},
		{PartDescription: "8GB RAM", PartQuantity: qty(2)},
		{PartDescription: "8GB RAM", PartQuantity: qty(1)},
	}

	assert.Equal(t, "3 x 8GB RAM", FormatComponents(AggregateComponents(records)))
}

func TestAggregateComponentsKeepsFirstSeenOrder(t *testing.T) {
	records := []entity.ComponentRecord{
		{PartDescription: "PERC H730P"},
		{PartDescription: "16GB RDIMM", PartQuantity: qty(4)},
		{PartDescription: "Placeholder Part"},
		{PartDescription: "PERC H730P"},
		{PartDescription: "No Operating System"},
		{PartDescription: "Service Information Sheet"},
		{PartDescription: "NO ITEM"},
		{PartDescription: ""},
		{PartDescription: "1.2TB SAS HDD", PartQuantity: qty(6)},
	}

	got := AggregateComponents(records)
	assert.Equal(t, []entity.ComponentCount{
		{Description: "PERC H730P", Quantity: 2},
		{Description: "16GB RDIMM", Quantity: 4},
		{Description: "1.2TB SAS HDD", Quantity: 6},
	}, got)
	assert.Equal(t, "2 x PERC H730P; 4 x 16GB RDIMM; 6 x 1.2TB SAS HDD", FormatComponents(got))
}

func TestAggregateComponentsDescriptionsAreCaseSensitive(t *testing.T) {
	got := AggregateComponents([]entity.ComponentRecord{
		{PartDescription: "Bezel"},
		{PartDescription: "BEZEL"},
	})
	assert.Len(t, got, 2)
}

func TestAggregateComponentsNegativeQuantity(t *testing.T) {
	got := AggregateComponents([]entity.ComponentRecord{
		{PartDescription: "Fan", PartQuantity: qty(-3)},
		{PartDescription: "Fan", PartQuantity: qty(2)},
	})
	assert.Equal(t, []entity.ComponentCount{{Description: "Fan", Quantity: 2}}, got)
}

func TestFormatComponentsNotAvailable(t *testing.T) {
	assert.Equal(t, NotAvailable, FormatComponents(AggregateComponents(nil)))
	assert.Equal(t, NotAvailable, FormatComponents(AggregateComponents([]entity.ComponentRecord{
		{PartDescription: "Info"},
		{PartDescription: "placeholder"},
	})))
}

func TestActiveWarranties(t *testing.T) {
	records := []entity.EntitlementRecord{
		{ServiceLevelDescription: "ProSupport Plus", EndDate: "2025-01-01T00:00:00Z"},
		{ServiceLevelDescription: "Basic Hardware", EndDate: "2023-01-01T00:00:00Z"},
		{ServiceLevelDescription: "Broken", EndDate: "not a date"},
		{ServiceLevelDescription: "Missing"},
		{ServiceLevelDescription: "Onsite Service", EndDate: "2026-03-15T05:59:59.999Z"},
	}

	got := ActiveWarranties(records, runStart)
	assert.Equal(t, []string{
		"ProSupport Plus (Expires: 2025-01-01)",
		"Onsite Service (Expires: 2026-03-15)",
	}, got)
	assert.Equal(t, "ProSupport Plus (Expires: 2025-01-01); Onsite Service (Expires: 2026-03-15)", FormatWarranties(got))
}

func TestActiveWarrantiesBoundaryIsExclusive(t *testing.T) {
	got := ActiveWarranties([]entity.EntitlementRecord{
		{ServiceLevelDescription: "Ends now", EndDate: "2024-01-01T00:00:00Z"},
		{ServiceLevelDescription: "Ends later", EndDate: "2024-01-01T00:00:01Z"},
	}, runStart)
	assert.Equal(t, []string{"Ends later (Expires: 2024-01-01)"}, got)
}

func TestActiveWarrantiesUsesTimestampOffset(t *testing.T) {
	got := ActiveWarranties([]entity.EntitlementRecord{
		{ServiceLevelDescription: "Offset", EndDate: "2025-06-30T23:30:00-05:00"},
		{ServiceLevelDescription: "No offset", EndDate: "2025-06-30T23:30:00"},
		{ServiceLevelDescription: "Date only", EndDate: "2025-06-30"},
	}, runStart)
	assert.Equal(t, []string{"Offset (Expires: 2025-06-30)"}, got)
}

func TestFormatWarrantiesNotAvailable(t *testing.T) {
	assert.Equal(t, NotAvailable, FormatWarranties(nil))
	assert.Equal(t, NotAvailable, FormatWarranties(ActiveWarranties([]entity.EntitlementRecord{
		{ServiceLevelDescription: "Expired", EndDate: "2020-01-01T00:00:00Z"},
	}, runStart)))
}

func TestBuildSummaryRow(t *testing.T) {
	result := entity.AssetResult{
		Tag: "ABC1234",
		Components: &entity.AssetComponents{
			ServiceTag:             "ABC1234",
			ProductLineDescription: "PowerEdge R740",
			ShipDate:               "2020-05-04T05:00:00Z",
			Components: []entity.ComponentRecord{
				{PartDescription: "Info Only"},
				{PartDescription: "8GB RAM", PartQuantity: qty(2)},
				{PartDescription: "8GB RAM", PartQuantity: qty(1)},
			},
		},
		Entitlements: []entity.AssetEntitlements{
			{Entitlements: []entity.EntitlementRecord{
				{ServiceLevelDescription: "ProSupport", EndDate: "2025-01-01T00:00:00Z"},
			}},
			{Entitlements: []entity.EntitlementRecord{
				{ServiceLevelDescription: "Ignored second record", EndDate: "2030-01-01T00:00:00Z"},
			}},
		},
	}

	row, err := BuildSummaryRow(result, runStart)
	require.NoError(t, err)
	assert.Equal(t, entity.SummaryRow{
		ServiceTag:             "ABC1234",
		ProductLineDescription: "PowerEdge R740",
		ShipDate:               "2020-05-04T05:00:00Z",
		ActiveWarranties:       "ProSupport (Expires: 2025-01-01)",
		AllComponents:          "3 x 8GB RAM",
	}, row)
}

func TestBuildSummaryRowFailures(t *testing.T) {
	fetchErr := &entity.FetchError{Kind: entity.ErrorKindHTTP, Tag: "T", URL: "u", StatusCode: 500, Err: errors.New("boom")}

	_, err := BuildSummaryRow(entity.AssetResult{Tag: "T", Errors: []error{fetchErr}}, runStart)
	assert.ErrorIs(t, err, fetchErr)

	_, err = BuildSummaryRow(entity.AssetResult{
		Tag:          "T",
		Components:   &entity.AssetComponents{ServiceTag: "T"},
		Entitlements: []entity.AssetEntitlements{},
	}, runStart)
	assert.ErrorIs(t, err, types.ErrEmptyEntitlements)

	_, err = BuildSummaryRow(entity.AssetResult{
		Tag:          "T",
		Entitlements: []entity.AssetEntitlements{{ServiceTag: "T"}},
	}, runStart)
	assert.ErrorIs(t, err, types.ErrMissingComponents)

	_, err = BuildSummaryRow(entity.AssetResult{
		Tag:          "T",
		Components:   &entity.AssetComponents{},
		Entitlements: []entity.AssetEntitlements{{ServiceTag: "T"}},
	}, runStart)
	assert.ErrorIs(t, err, types.ErrMissingComponents)

	_, err = BuildSummaryRow(entity.AssetResult{
		Tag:          "T",
		Components:   &entity.AssetComponents{ServiceTag: "T"},
		Entitlements: []entity.AssetEntitlements{{}, {ServiceTag: "T"}},
	}, runStart)
	assert.ErrorIs(t, err, types.ErrEmptyEntitlements)
}
