package interfaces

import (
	"context"

	"balanca_xpto/internal/domain/entities"
)

// IRegistryRepository abstracts Postgres persistence for the reference
// catalogs. All reads are full, unfiltered snapshots; the tables are small
// and read-mostly, so no pagination or caching is layered on top.

type IRegistryRepository interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListVendors(ctx context.Context) ([]entities.Vendor, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
}
