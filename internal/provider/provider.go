package provider

import (
	"context"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// FamilyProvider defines the interface to the external family-data provider.
// It is the only external dependency of the tree engine.
type FamilyProvider interface {
	GetFamilyDetail(ctx context.Context, familyID string) (*models.FamilyDetail, error)
}
