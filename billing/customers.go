package billing

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type CustomerResponse struct {
	Customer model.Customer `json:"customer"`
}

//encore:api public path=/v1/customers/:id method=GET
func (s *Service) GetCustomer(ctx context.Context, id int) (*CustomerResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	result, err := s.customers.GetCustomer(ctx, int32(id))
	if err != nil {
		var chargeErr *model.ChargeError
		if errors.As(err, &chargeErr) && chargeErr.Kind == model.FailureCustomerNotFound {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		rlog.Error("failed to get customer", "error", err, "id", id)
		return nil, err
	}

	return &CustomerResponse{
		Customer: *result,
	}, nil
}

type ListCustomersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListCustomersResponse struct {
	Customers  []model.Customer `json:"customers"`
	TotalCount int64            `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

//encore:api public path=/v1/customers method=GET
func (s *Service) ListCustomers(ctx context.Context, req *ListCustomersRequest) (*ListCustomersResponse, error) {
	req.Limit, req.Offset = clampPage(req.Limit, req.Offset)

	customers, totalCount, err := s.customers.ListCustomers(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list customers", "error", err)
		return nil, err
	}

	response := &ListCustomersResponse{
		Customers:  make([]model.Customer, len(customers)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, customer := range customers {
		response.Customers[i] = *customer
	}

	return response, nil
}
