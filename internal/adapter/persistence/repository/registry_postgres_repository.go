package repository

import (
	"context"
	"fmt"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistryPostgresRepository reads the master catalogs joined by prices and
// tickets. Reads go straight to the pool; the tables are small and there is
// no write path in this service.
type RegistryPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IRegistryRepository = (*RegistryPostgresRepository)(nil)

func NewRegistryPostgresRepository(pool *pgxpool.Pool) *RegistryPostgresRepository {
	return &RegistryPostgresRepository{pool: pool}
}

func (r *RegistryPostgresRepository) ListProducts(ctx context.Context) ([]entities.Product, error) {
	const sql = `
		SELECT product_id, product_code, product_name
		FROM products
		ORDER BY product_id
	`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []entities.Product
	for rows.Next() {
		var p entities.Product
		if err := rows.Scan(&p.ProductID, &p.ProductCode, &p.ProductName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *RegistryPostgresRepository) ListVendors(ctx context.Context) ([]entities.Vendor, error) {
	const sql = `
		SELECT vendor_id, vendor_name
		FROM vendors
		ORDER BY vendor_id
	`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var out []entities.Vendor
	for rows.Next() {
		var v entities.Vendor
		if err := rows.Scan(&v.VendorID, &v.VendorName); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *RegistryPostgresRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	const sql = `
		SELECT vehicle_id, license_plate
		FROM vehicles
		ORDER BY vehicle_id
	`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var out []entities.Vehicle
	for rows.Next() {
		var v entities.Vehicle
		if err := rows.Scan(&v.VehicleID, &v.LicensePlate); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
