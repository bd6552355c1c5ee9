package entity

// ComponentRecord é uma peça de hardware reportada pelo endpoint asset-components.
type ComponentRecord struct {
	PartNumber      string `json:"partNumber,omitempty"`
	PartDescription string `json:"partDescription"`
	// PartQuantity é nil quando a API omite o campo; nesse caso vale 1.
	PartQuantity *int `json:"partQuantity,omitempty"`
	ItemNumber   string `json:"itemNumber,omitempty"`
}

// AssetComponents is the payload returned by the asset-components endpoint.
type AssetComponents struct {
	ID                     int64             `json:"id,omitempty"`
	ServiceTag             string            `json:"serviceTag"`
	OrderBuid              int64             `json:"orderBuid,omitempty"`
	ShipDate               string            `json:"shipDate"`
	ProductCode            string            `json:"productCode,omitempty"`
	LocalChannel           string            `json:"localChannel,omitempty"`
	ProductID              string            `json:"productId,omitempty"`
	ProductLineDescription string            `json:"productLineDescription"`
	ProductFamily          string            `json:"productFamily,omitempty"`
	SystemDescription      string            `json:"systemDescription,omitempty"`
	Components             []ComponentRecord `json:"components"`
}

// IsZero reports whether the payload carries no device data at all.
func (a *AssetComponents) IsZero() bool {
	return a.ID == 0 &&
		a.ServiceTag == "" &&
		a.ShipDate == "" &&
		a.ProductID == "" &&
		a.ProductLineDescription == "" &&
		a.SystemDescription == "" &&
		len(a.Components) == 0
}

// EntitlementRecord is a single warranty or service-plan line for a device.
type EntitlementRecord struct {
	ItemNumber              string `json:"itemNumber,omitempty"`
	StartDate               string `json:"startDate,omitempty"`
	EndDate                 string `json:"endDate"`
	EntitlementType         string `json:"entitlementType,omitempty"`
	ServiceLevelCode        string `json:"serviceLevelCode,omitempty"`
	ServiceLevelDescription string `json:"serviceLevelDescription"`
}

// AssetEntitlements is one element of the list returned by asset-entitlements.
type AssetEntitlements struct {
	ID                     int64               `json:"id,omitempty"`
	ServiceTag             string              `json:"serviceTag,omitempty"`
	ProductLineDescription string              `json:"productLineDescription,omitempty"`
	ShipDate               string              `json:"shipDate,omitempty"`
	Invalid                bool                `json:"invalid,omitempty"`
	Entitlements           []EntitlementRecord `json:"entitlements"`
}

// IsZero reports whether the element is empty, as when the API returns null.
func (a AssetEntitlements) IsZero() bool {
	return a.ID == 0 &&
		a.ServiceTag == "" &&
		a.ProductLineDescription == "" &&
		a.ShipDate == "" &&
		len(a.Entitlements) == 0
}

// ComponentCount is the aggregated quantity for one part description.
type ComponentCount struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// AssetResult é o resultado da etapa de busca para uma única service tag.
type AssetResult struct {
	Tag          string
	Components   *AssetComponents
	Entitlements []AssetEntitlements
	// Errors guarda as falhas de cada endpoint; vazio quando as duas chamadas deram certo.
	Errors []error
}

// Failed reports whether any endpoint call for the tag failed.
func (r AssetResult) Failed() bool {
	return len(r.Errors) > 0
}
