package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

//encore:api public path=/v1/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id int) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.GetInvoice(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

type ListInvoicesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices   []model.Invoice `json:"invoices"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	req.Limit, req.Offset = clampPage(req.Limit, req.Offset)

	invoices, totalCount, err := s.invoices.ListInvoices(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, invoice := range invoices {
		response.Invoices[i] = *invoice
	}

	return response, nil
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit, max(offset, 0)
}
