package repository

import (
	"context"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
)

// DellRepository defines the interface for Dell TechDirect API interactions.
// Every failure is returned as an *entity.FetchError.
type DellRepository interface {
	GetAccessToken(ctx context.Context) (string, error)
	GetAssetComponents(ctx context.Context, token, tag string) (*entity.AssetComponents, error)
	GetAssetEntitlements(ctx context.Context, token, tag string) ([]entity.AssetEntitlements, error)
}
