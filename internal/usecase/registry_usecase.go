package usecase

import (
	"context"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/usecase/interfaces"
)

// IRegistryUseCase exposes the reference catalogs the pricing and ticket
// flows join against. Reads are uncached snapshots straight from storage.

type IRegistryUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListVendors(ctx context.Context) ([]entities.Vendor, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
}

type RegistryUseCase struct {
	repo interfaces.IRegistryRepository
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(repo interfaces.IRegistryRepository) *RegistryUseCase {
	return &RegistryUseCase{repo: repo}
}

func (u *RegistryUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.ListProducts(ctx)
}

func (u *RegistryUseCase) ListVendors(ctx context.Context) ([]entities.Vendor, error) {
	return u.repo.ListVendors(ctx)
}

func (u *RegistryUseCase) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.ListVehicles(ctx)
}
