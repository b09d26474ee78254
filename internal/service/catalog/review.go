package catalog

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/catalog/sanitize"
	"github.com/darkkaiser/shop-catalog/internal/catalog/viewmodel"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
)

const (
	defaultReviewer = "Anonymous"
	unknownDate     = "Unknown date"
)

// reviewDateLayouts date_created 값의 형식 (사이트 시간대 기준, 오프셋 없음)
var reviewDateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Review 상품 상세 화면에 표시하는 리뷰입니다.
type Review struct {
	ID       int64  `json:"id"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`

	created time.Time
}

func (s *Service) loadReviews(ctx context.Context, productID int64) []Review {
	records, err := s.source.FetchReviews(ctx, productID, s.config.ReviewLimit)
	if err != nil {
		applog.WithComponent(component).
			WithContext(ctx).
			WithFields(applog.Fields{
				"product_id": productID,
				"error":      err.Error(),
			}).
			Warn("리뷰를 불러오지 못해 빈 목록으로 대체합니다")

		return []Review{}
	}

	return newestReviews(records, s.config.ReviewLimit)
}

// newestReviews 작성일 내림차순으로 정렬하여 최대 limit개를 반환합니다. 작성일을 알 수 없는 리뷰는 뒤로 보냅니다.
func newestReviews(records []woocommerce.Review, limit int) []Review {
	reviews := make([]Review, 0, len(records))
	for _, r := range records {
		reviews = append(reviews, toReview(r))
	}

	slices.SortStableFunc(reviews, func(a, b Review) int {
		return b.created.Compare(a.created)
	})

	if len(reviews) > limit {
		reviews = reviews[:limit]
	}

	return reviews
}

func toReview(r woocommerce.Review) Review {
	review := Review{
		ID:       r.ID,
		Reviewer: sanitize.SanitizeOr(r.Reviewer, defaultReviewer),
		Rating:   r.Rating,
		Comment:  sanitize.Sanitize(r.Review),
		Date:     unknownDate,
	}

	raw := strings.TrimSpace(r.DateCreated)
	if raw == "" {
		return review
	}

	review.Date = raw
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			review.created = t
			review.Date = t.Format(viewmodel.DeliveryDateLayout)
			break
		}
	}

	return review
}
