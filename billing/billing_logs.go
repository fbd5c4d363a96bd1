package billing

import (
	"context"

	"github.com/samber/lo"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ListBillingLogsRequest struct {
	// InvoiceID restricts the listing to one invoice when positive.
	InvoiceID int `query:"invoice_id"`
	Limit     int `query:"limit"`
	Offset    int `query:"offset"`
}

type ListBillingLogsResponse struct {
	BillingLogs []model.BillingLog `json:"billing_logs"`
	TotalCount  int64              `json:"total_count"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
}

//encore:api public path=/v1/billing-logs method=GET
func (s *Service) ListBillingLogs(ctx context.Context, req *ListBillingLogsRequest) (*ListBillingLogsResponse, error) {
	req.Limit, req.Offset = clampPage(req.Limit, req.Offset)

	var invoiceID *int32
	if req.InvoiceID > 0 {
		invoiceID = lo.ToPtr(int32(req.InvoiceID))
	}

	logs, totalCount, err := s.billingLogs.ListBillingLogs(ctx, invoiceID, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list billing logs", "error", err, "invoice_id", req.InvoiceID)
		return nil, err
	}

	return &ListBillingLogsResponse{
		BillingLogs: lo.FromSlicePtr(logs),
		TotalCount:  totalCount,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}, nil
}
