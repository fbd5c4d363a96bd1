package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/billing/schedule"
)

type NextDateRequest struct {
	StartDay int `query:"start_day"`
	// From is an optional reference date (YYYY-MM-DD). Today is used when empty.
	From string `query:"from"`
}

type NextDateResponse struct {
	StartDay int       `json:"start_day"`
	NextDate time.Time `json:"next_date"`
}

//encore:api public path=/v1/billing/next-date method=GET
func (s *Service) NextDate(ctx context.Context, req *NextDateRequest) (*NextDateResponse, error) {
	var (
		next time.Time
		err  error
	)
	if req.From == "" {
		next, err = schedule.NextScheduledDateFromNow(req.StartDay)
	} else {
		from, parseErr := time.Parse(time.DateOnly, req.From)
		if parseErr != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "from must be a date formatted as YYYY-MM-DD"}
		}
		next, err = schedule.NextScheduledDateFrom(from, req.StartDay)
	}
	if err != nil {
		return nil, schedule.AsAPIError(err)
	}

	return &NextDateResponse{
		StartDay: req.StartDay,
		NextDate: next,
	}, nil
}
