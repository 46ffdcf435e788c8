package interfaces

import (
	"context"
	"time"

	"balanca_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ITicketRepository abstracts Postgres persistence for weigh tickets.
// "not found" is a zero-ID entity with a nil error.

type ITicketRepository interface {
	List(ctx context.Context) ([]entities.TicketView, error)
	GetByID(ctx context.Context, ticketID int64) (entities.Ticket, error)
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	Approve(ctx context.Context, ticketID int64, timeOut time.Time, total decimal.Decimal) (entities.Ticket, error)
}
