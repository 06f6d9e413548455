package dto

import (
	"net/http"
	"strconv"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// QueryParams carries the common list parameters parsed from a request.
type QueryParams struct {
	Page    int
	Limit   int
	Query   string
	Status  string
	SortBy  string
	SortDir string
	From    time.Time
	To      time.Time
}

func (q *QueryParams) FromRequest(r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamPage))
	if err != nil || page < 1 {
		page = constant.DefaultValuePage
	}

	limit, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit))
	if err != nil || limit < 1 {
		limit = constant.DefaultValueLimit
	}

	q.Page = page
	q.Limit = limit
	q.Query = r.URL.Query().Get(constant.RequestParamQuery)
	q.Status = r.URL.Query().Get(constant.RequestParamStatus)

	q.SortBy = r.URL.Query().Get(constant.RequestParamSortBy)
	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy
	}

	q.SortDir = r.URL.Query().Get(constant.RequestParamSortDir)
	if q.SortDir != "ASC" && q.SortDir != "DESC" {
		q.SortDir = constant.DefaultValueSortDir
	}

	if from := r.URL.Query().Get(constant.RequestParamFrom); from != "" {
		if t, err := timezone.Parse(constant.DayFormat, from); err == nil {
			q.From = timezone.DayStart(t)
		}
	}

	if to := r.URL.Query().Get(constant.RequestParamTo); to != "" {
		if t, err := timezone.Parse(constant.DayFormat, to); err == nil {
			q.To = timezone.DayEnd(t)
		}
	}
}

func (q *QueryParams) Offset() int {
	return (q.Page - 1) * q.Limit
}
