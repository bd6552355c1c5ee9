package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diillson/dell-inventory-report-go/internal/adapter/driven/dell"
	"github.com/diillson/dell-inventory-report-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validComponents   = `{"serviceTag":"ABC1234","productLineDescription":"PowerEdge R740","shipDate":"2020-05-04T05:00:00Z","components":[{"partDescription":"8GB RAM","partQuantity":3}]}`
	validEntitlements = `[{"serviceTag":"ABC1234","entitlements":[{"serviceLevelDescription":"ProSupport","endDate":"2025-01-01T00:00:00Z"}]}]`
)

func newAssetServer(t *testing.T, components, entitlements string) types.Config {
	mux := http.NewServeMux()
	mux.HandleFunc("/asset-components", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(components))
	})
	mux.HandleFunc("/asset-entitlements", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(entitlements))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := types.Config{
		ClientID:        "id",
		ClientSecret:    "secret",
		ComponentsURL:   server.URL + "/asset-components",
		EntitlementsURL: server.URL + "/asset-entitlements",
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestFetchAssetEmptyPayloadsAreSkipped(t *testing.T) {
	tests := []struct {
		name         string
		components   string
		entitlements string
		want         error
	}{
		{name: "null components", components: `null`, entitlements: validEntitlements, want: types.ErrMissingComponents},
		{name: "empty components object", components: `{}`, entitlements: validEntitlements, want: types.ErrMissingComponents},
		{name: "null entitlement element", components: validComponents, entitlements: `[null]`, want: types.ErrEmptyEntitlements},
		{name: "empty entitlement element", components: validComponents, entitlements: `[{}]`, want: types.ErrEmptyEntitlements},
		{name: "null entitlements body", components: validComponents, entitlements: `null`, want: types.ErrEmptyEntitlements},
		{name: "both null", components: `null`, entitlements: `[null]`, want: types.ErrMissingComponents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newAssetServer(t, tt.components, tt.entitlements)
			uc := NewInventoryUseCase(dell.NewDellRepository, nil, nil, nil, nil, &fakeConsole{})

			result := uc.FetchAsset(context.Background(), dell.NewDellRepository(cfg), "tok", "ABC1234")
			require.Empty(t, result.Errors)

			_, err := BuildSummaryRow(result, runStart)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchAssetValidPayloadBuildsRow(t *testing.T) {
	cfg := newAssetServer(t, validComponents, validEntitlements)
	uc := NewInventoryUseCase(dell.NewDellRepository, nil, nil, nil, nil, &fakeConsole{})

	result := uc.FetchAsset(context.Background(), dell.NewDellRepository(cfg), "tok", "ABC1234")
	require.Empty(t, result.Errors)

	row, err := BuildSummaryRow(result, runStart)
	require.NoError(t, err)
	assert.Equal(t, "ABC1234", row.ServiceTag)
	assert.Equal(t, "3 x 8GB RAM", row.AllComponents)
	assert.Equal(t, "ProSupport (Expires: 2025-01-01)", row.ActiveWarranties)
}
