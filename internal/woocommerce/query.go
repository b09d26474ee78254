package woocommerce

import (
	"net/url"
	"strconv"
	"strings"
)

// ProductQuery GET /products 목록 조회 조건입니다. 0 또는 빈 값인 필드는 쿼리에 포함하지 않습니다.
type ProductQuery struct {
	Include  []int64
	Exclude  []int64
	Category int64
	PerPage  int
	Page     int
	Status   string // publish, draft 등
	Order    string // asc, desc
	OrderBy  string // date, id, title 등
}

// Values URL 쿼리 파라미터로 변환합니다.
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	if len(q.Include) > 0 {
		v.Set("include", joinIDs(q.Include))
	}
	if len(q.Exclude) > 0 {
		v.Set("exclude", joinIDs(q.Exclude))
	}
	if q.Category > 0 {
		v.Set("category", strconv.FormatInt(q.Category, 10))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.OrderBy != "" {
		v.Set("orderby", q.OrderBy)
	}
	return v
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
