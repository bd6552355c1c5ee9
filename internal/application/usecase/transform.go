package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
	"github.com/diillson/dell-inventory-report-go/internal/shared/types"
)

// NotAvailable is rendered when a column has nothing to show.
const NotAvailable = "N/A"

// componentNoise lista trechos de descrição que não representam peças físicas.
var componentNoise = []string{
	"info",
	"information",
	"placeholder",
	"no item",
	"no operating system",
}

func isNoiseComponent(description string) bool {
	if description == "" {
		return true
	}
	lower := strings.ToLower(description)
	for _, noise := range componentNoise {
		if strings.Contains(lower, noise) {
			return true
		}
	}
	return false
}

// AggregateComponents sums quantities per exact description, dropping noise
// entries. The result keeps the order in which descriptions first appear.
func AggregateComponents(records []entity.ComponentRecord) []entity.ComponentCount {
	counts := []entity.ComponentCount{}
	index := make(map[string]int)

	for _, rec := range records {
		if isNoiseComponent(rec.PartDescription) {
			continue
		}

		qty := 1
		if rec.PartQuantity != nil {
			qty = *rec.PartQuantity
		}
		if qty < 0 {
			qty = 0
		}

		if i, ok := index[rec.PartDescription]; ok {
			counts[i].Quantity += qty
			continue
		}
		index[rec.PartDescription] = len(counts)
		counts = append(counts, entity.ComponentCount{Description: rec.PartDescription, Quantity: qty})
	}

	return counts
}

// FormatComponents renders aggregated components as "<qty> x <description>; ...".
func FormatComponents(counts []entity.ComponentCount) string {
	if len(counts) == 0 {
		return NotAvailable
	}

	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d x %s", c.Quantity, c.Description))
	}
	return strings.Join(parts, "; ")
}

// parseEndDate aceita RFC 3339 com ou sem fração de segundos ("Z" é UTC).
func parseEndDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ActiveWarranties returns the formatted entitlements that expire strictly
// after now. Entries with an unparsable end date are skipped.
func ActiveWarranties(records []entity.EntitlementRecord, now time.Time) []string {
	active := []string{}
	for _, rec := range records {
		end, ok := parseEndDate(rec.EndDate)
		if !ok {
			continue
		}
		if !end.After(now) {
			continue
		}
		active = append(active, fmt.Sprintf("%s (Expires: %s)", rec.ServiceLevelDescription, end.Format("2006-01-02")))
	}
	return active
}

// FormatWarranties joins active warranties with "; " or returns N/A.
func FormatWarranties(active []string) string {
	if len(active) == 0 {
		return NotAvailable
	}
	return strings.Join(active, "; ")
}

// BuildSummaryRow turns a successful fetch result into a report row. The
// first element of the entitlements list is the record used for the tag.
func BuildSummaryRow(result entity.AssetResult, now time.Time) (entity.SummaryRow, error) {
	if result.Failed() {
		return entity.SummaryRow{}, result.Errors[0]
	}
	if result.Components == nil || result.Components.IsZero() {
		return entity.SummaryRow{}, types.ErrMissingComponents
	}
	if len(result.Entitlements) == 0 || result.Entitlements[0].IsZero() {
		return entity.SummaryRow{}, types.ErrEmptyEntitlements
	}

	warranty := result.Entitlements[0]
	hardware := result.Components

	return entity.SummaryRow{
		ServiceTag:             hardware.ServiceTag,
		ProductLineDescription: hardware.ProductLineDescription,
		ShipDate:               hardware.ShipDate,
		ActiveWarranties:       FormatWarranties(ActiveWarranties(warranty.Entitlements, now)),
		AllComponents:          FormatComponents(AggregateComponents(hardware.Components)),
	}, nil
}
