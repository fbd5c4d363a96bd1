package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// StateMachine owns every invoice status change. Rows are locked for the
// duration of a transition so concurrent cycles never lose an update.
type StateMachine interface {
	// ClaimForProcessing moves up to limit pending invoices to processing and
	// returns them. Rows locked by another transaction are skipped.
	ClaimForProcessing(ctx context.Context, limit int32) ([]invoices.Invoice, error)

	// Transition moves the given invoices to status to. Invoices whose current
	// status does not allow the move are left untouched. It returns the
	// number of rows updated.
	Transition(ctx context.Context, ids []int32, to model.InvoiceStatus) (int64, error)

	// ReleaseProcessing settles invoices stuck in processing for longer than
	// olderThan: paid when an accepted charge was recorded after they were
	// claimed, pending otherwise.
	ReleaseProcessing(ctx context.Context, olderThan time.Duration) (int64, error)
}

type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InvoiceStateMachine is the pgx backed StateMachine.
type InvoiceStateMachine struct {
	db          beginner
	invoiceRepo *invoices.Queries
}

var _ StateMachine = (*InvoiceStateMachine)(nil)

func NewInvoiceStateMachine(db *pgxpool.Pool, invoiceRepo *invoices.Queries) *InvoiceStateMachine {
	return &InvoiceStateMachine{
		db:          db,
		invoiceRepo: invoiceRepo,
	}
}

var transitions = map[model.InvoiceStatus][]model.InvoiceStatus{
	model.InvoiceStatusPending:    {model.InvoiceStatusProcessing},
	model.InvoiceStatusProcessing: {model.InvoiceStatusPaid, model.InvoiceStatusPending},
}

// CanTransition reports whether an invoice may move from one status to another.
func CanTransition(from, to model.InvoiceStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (sm *InvoiceStateMachine) ClaimForProcessing(ctx context.Context, limit int32) ([]invoices.Invoice, error) {
	if limit <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "claim limit must be positive"}
	}

	claimed, err := sm.invoiceRepo.ClaimPendingInvoices(ctx, limit)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to claim pending invoices"}
	}
	return claimed, nil
}

func (sm *InvoiceStateMachine) Transition(ctx context.Context, ids []int32, to model.InvoiceStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var updated int64
	err := sm.withTx(ctx, func(q *invoices.Queries) error {
		// SELECT ... FOR UPDATE keeps the rows locked until commit
		current, err := q.GetInvoicesForUpdate(ctx, ids)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to lock invoices for state transition"}
		}

		eligible, rejected := partitionEligible(current, to)
		for _, inv := range rejected {
			rlog.Warn("skipping invalid invoice transition",
				"invoice_id", inv.ID,
				"from", inv.Status,
				"to", string(to),
			)
		}
		if len(eligible) == 0 {
			return nil
		}

		updated, err = q.UpdateInvoiceStatuses(ctx, invoices.UpdateInvoiceStatusesParams{
			Status: string(to),
			Ids:    eligible,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update invoice statuses"}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (sm *InvoiceStateMachine) ReleaseProcessing(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "release age must be positive"}
	}

	released, err := sm.invoiceRepo.ReleaseProcessingInvoices(ctx, olderThan.Seconds())
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to release processing invoices"}
	}
	return released, nil
}

func (sm *InvoiceStateMachine) withTx(ctx context.Context, fn func(q *invoices.Queries) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(sm.invoiceRepo.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}
	return nil
}

// partitionEligible splits locked rows into the ids allowed to move to status
// to and the rows that are not. Rows already in the target status are dropped
// from both.
func partitionEligible(rows []invoices.Invoice, to model.InvoiceStatus) ([]int32, []invoices.Invoice) {
	var eligible []int32
	var rejected []invoices.Invoice
	for _, row := range rows {
		from := model.InvoiceStatus(row.Status)
		switch {
		case from == to:
			continue
		case CanTransition(from, to):
			eligible = append(eligible, row.ID)
		default:
			rejected = append(rejected, row)
		}
	}
	return eligible, rejected
}
