package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"balanca_xpto/internal/domain/entities"
	"balanca_xpto/internal/pkg/clock"
	"balanca_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrInvalidTicketID    = errors.New("invalid ticket id")
	ErrInvalidReference   = errors.New("invalid vehicle/vendor/product reference")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrPricingUnavailable = errors.New("no active price available for product")
)

// ITicketUseCase owns the weigh-ticket lifecycle: pending at creation,
// approved exactly once the load leaves the facility.
//
// Pricing policy: a caller-supplied unit price always wins. When omitted and
// resolveOnCreate is enabled, the price in force for the product as of TimeIn
// is resolved from the timeline; creation fails with ErrPricingUnavailable if
// nothing qualifies.

type ITicketUseCase interface {
	ListTickets(ctx context.Context) ([]entities.TicketView, error)
	CreateTicket(ctx context.Context, params CreateTicketParams) (entities.Ticket, error)
	ApproveTicket(ctx context.Context, ticketID int64) (entities.Ticket, error)
}

type CreateTicketParams struct {
	TicketNo    string
	VehicleID   int64
	VendorID    int64
	ProductID   int64
	PaymentType string
	WeightIn    decimal.Decimal
	WeightOut   decimal.Decimal
	UnitPrice   *decimal.Decimal
	CreatedBy   string
	Remarks     string
}

type TicketUseCase struct {
	repo            interfaces.ITicketRepository
	pricing         IPricingUseCase
	clock           clock.Clock
	logger          *zap.Logger
	resolveOnCreate bool
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository, pricing IPricingUseCase, clk clock.Clock, logger *zap.Logger, resolveOnCreate bool) *TicketUseCase {
	return &TicketUseCase{
		repo:            repo,
		pricing:         pricing,
		clock:           clk,
		logger:          logger,
		resolveOnCreate: resolveOnCreate,
	}
}

func (u *TicketUseCase) ListTickets(ctx context.Context) ([]entities.TicketView, error) {
	return u.repo.List(ctx)
}

func (u *TicketUseCase) CreateTicket(ctx context.Context, params CreateTicketParams) (entities.Ticket, error) {
	if params.VehicleID <= 0 || params.VendorID <= 0 || params.ProductID <= 0 {
		return entities.Ticket{}, ErrInvalidReference
	}
	if !params.WeightIn.IsPositive() || params.WeightOut.IsNegative() {
		return entities.Ticket{}, ErrInvalidWeight
	}

	timeIn := u.clock.Now().UTC()

	unitPrice, err := u.unitPriceFor(ctx, params, timeIn)
	if err != nil {
		return entities.Ticket{}, err
	}

	ticketNo := strings.TrimSpace(params.TicketNo)
	if ticketNo == "" {
		ticketNo = generateTicketNo()
	}

	t := entities.Ticket{
		TicketNo:    ticketNo,
		VehicleID:   params.VehicleID,
		VendorID:    params.VendorID,
		ProductID:   params.ProductID,
		Status:      entities.TicketStatusPending,
		PaymentType: strings.TrimSpace(params.PaymentType),
		WeightIn:    params.WeightIn,
		WeightOut:   params.WeightOut,
		UnitPrice:   unitPrice,
		TimeIn:      timeIn,
		CreatedBy:   strings.TrimSpace(params.CreatedBy),
		Remarks:     params.Remarks,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, interfaces.ErrReferenceViolation) {
			return entities.Ticket{}, ErrInvalidReference
		}
		return entities.Ticket{}, err
	}

	u.logger.Info("ticket created",
		zap.Int64("ticket_id", created.TicketID),
		zap.String("ticket_no", created.TicketNo),
		zap.Int64("product_id", created.ProductID),
		zap.String("unit_price", created.UnitPrice.StringFixed(2)),
	)
	return created, nil
}

// ApproveTicket stamps TimeOut and persists the transaction value. The
// transition is deliberately idempotent: re-approving an approved ticket
// re-stamps TimeOut and recomputes the total, so retries are harmless.
func (u *TicketUseCase) ApproveTicket(ctx context.Context, ticketID int64) (entities.Ticket, error) {
	if ticketID <= 0 {
		return entities.Ticket{}, ErrInvalidTicketID
	}

	t, err := u.repo.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.TicketID == 0 {
		return entities.Ticket{}, ErrTicketNotFound
	}

	timeOut := u.clock.Now().UTC()
	total := t.ComputeTotal()

	approved, err := u.repo.Approve(ctx, ticketID, timeOut, total)
	if err != nil {
		return entities.Ticket{}, err
	}
	if approved.TicketID == 0 {
		return entities.Ticket{}, ErrTicketNotFound
	}

	u.logger.Info("ticket approved",
		zap.Int64("ticket_id", approved.TicketID),
		zap.String("ticket_no", approved.TicketNo),
		zap.String("total_value", total.StringFixed(2)),
	)
	return approved, nil
}

func (u *TicketUseCase) unitPriceFor(ctx context.Context, params CreateTicketParams, timeIn time.Time) (decimal.Decimal, error) {
	if params.UnitPrice != nil {
		if !isValidMoney(*params.UnitPrice) {
			return decimal.Decimal{}, ErrInvalidUnitPrice
		}
		return *params.UnitPrice, nil
	}
	if !u.resolveOnCreate {
		return decimal.Decimal{}, ErrInvalidUnitPrice
	}

	view, err := u.pricing.ResolveActivePrice(ctx, params.ProductID, &timeIn)
	if err != nil {
		if errors.Is(err, ErrNoActivePrice) {
			return decimal.Decimal{}, ErrPricingUnavailable
		}
		return decimal.Decimal{}, err
	}
	return view.UnitPrice, nil
}

func generateTicketNo() string {
	return "WB-" + strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}
