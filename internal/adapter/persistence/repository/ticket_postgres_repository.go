package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TicketPostgresRepository persists weigh tickets. Foreign keys to the
// registry tables validate vehicle/vendor/product references at write time;
// violations surface as interfaces.ErrReferenceViolation.
type TicketPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ITicketRepository = (*TicketPostgresRepository)(nil)

func NewTicketPostgresRepository(pool *pgxpool.Pool) *TicketPostgresRepository {
	return &TicketPostgresRepository{pool: pool}
}

const ticketColumns = `
	ticket_id, ticket_no, vehicle_id, vendor_id, product_id, process_status,
	payment_type, weight_in::text, weight_out::text, unit_price::text,
	total_value::text, time_in, time_out, created_by, remarks
`

func (r *TicketPostgresRepository) List(ctx context.Context) ([]entities.TicketView, error) {
	const sql = `
		SELECT
			t.ticket_id, t.ticket_no, t.vehicle_id, t.vendor_id, t.product_id,
			t.process_status, t.payment_type, t.weight_in::text, t.weight_out::text,
			t.unit_price::text, t.total_value::text, t.time_in, t.time_out,
			t.created_by, t.remarks,
			p.product_name, v.vendor_name, vh.license_plate
		FROM weigh_tickets t
		JOIN products p ON p.product_id = t.product_id
		JOIN vendors v ON v.vendor_id = t.vendor_id
		JOIN vehicles vh ON vh.vehicle_id = t.vehicle_id
		ORDER BY t.time_in DESC, t.ticket_id DESC
	`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var out []entities.TicketView
	for rows.Next() {
		var v entities.TicketView
		var weightIn, weightOut, unitPrice string
		var totalValue *string
		if err := rows.Scan(
			&v.TicketID, &v.TicketNo, &v.VehicleID, &v.VendorID, &v.ProductID,
			&v.Status, &v.PaymentType, &weightIn, &weightOut,
			&unitPrice, &totalValue, &v.TimeIn, &v.TimeOut,
			&v.CreatedBy, &v.Remarks,
			&v.ProductName, &v.VendorName, &v.LicensePlate,
		); err != nil {
			return nil, fmt.Errorf("scan ticket view: %w", err)
		}
		v.WeightIn = parseMoney(weightIn)
		v.WeightOut = parseMoney(weightOut)
		v.UnitPrice = parseMoney(unitPrice)
		v.TotalValue = parseMoneyPtr(totalValue)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *TicketPostgresRepository) GetByID(ctx context.Context, ticketID int64) (entities.Ticket, error) {
	sql := `
		SELECT ` + ticketColumns + `
		FROM weigh_tickets
		WHERE ticket_id = $1
	`

	t, err := scanTicket(executorFrom(ctx, r.pool).QueryRow(ctx, sql, ticketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, fmt.Errorf("get ticket by id: %w", err)
	}
	return t, nil
}

func (r *TicketPostgresRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	sql := `
		INSERT INTO weigh_tickets (
			ticket_no, vehicle_id, vendor_id, product_id, process_status,
			payment_type, weight_in, weight_out, unit_price, time_in,
			created_by, remarks
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + ticketColumns

	created, err := scanTicket(executorFrom(ctx, r.pool).QueryRow(ctx, sql,
		t.TicketNo, t.VehicleID, t.VendorID, t.ProductID, t.Status,
		t.PaymentType, moneyArg(t.WeightIn), moneyArg(t.WeightOut),
		moneyArg(t.UnitPrice), t.TimeIn, t.CreatedBy, t.Remarks,
	))
	if err != nil {
		return entities.Ticket{}, fmt.Errorf("insert ticket: %w", mapConstraintError(err))
	}
	return created, nil
}

func (r *TicketPostgresRepository) Approve(ctx context.Context, ticketID int64, timeOut time.Time, total decimal.Decimal) (entities.Ticket, error) {
	sql := `
		UPDATE weigh_tickets
		SET process_status = $2, time_out = $3, total_value = $4
		WHERE ticket_id = $1
		RETURNING ` + ticketColumns

	approved, err := scanTicket(executorFrom(ctx, r.pool).QueryRow(ctx, sql,
		ticketID, entities.TicketStatusApproved, timeOut, moneyArg(total),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, fmt.Errorf("approve ticket: %w", err)
	}
	return approved, nil
}

func scanTicket(row pgx.Row) (entities.Ticket, error) {
	var t entities.Ticket
	var weightIn, weightOut, unitPrice string
	var totalValue *string
	err := row.Scan(
		&t.TicketID, &t.TicketNo, &t.VehicleID, &t.VendorID, &t.ProductID,
		&t.Status, &t.PaymentType, &weightIn, &weightOut,
		&unitPrice, &totalValue, &t.TimeIn, &t.TimeOut,
		&t.CreatedBy, &t.Remarks,
	)
	if err != nil {
		return entities.Ticket{}, err
	}
	t.WeightIn = parseMoney(weightIn)
	t.WeightOut = parseMoney(weightOut)
	t.UnitPrice = parseMoney(unitPrice)
	t.TotalValue = parseMoneyPtr(totalValue)
	return t, nil
}
