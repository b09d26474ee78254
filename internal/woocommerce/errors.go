package woocommerce

import (
	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
)

// classify 하위 계층 에러의 분류를 유지하며, 분류가 없는 에러는 Unavailable로 취급합니다.
func classify(err error) apperrors.ErrorType {
	for _, t := range []apperrors.ErrorType{apperrors.NotFound, apperrors.Timeout, apperrors.ParsingFailed, apperrors.InvalidInput} {
		if apperrors.Is(err, t) {
			return t
		}
	}
	return apperrors.Unavailable
}

func newErrFetchProduct(err error, id int64) error {
	return apperrors.Wrapf(err, classify(err), "상품(ID: %d) 정보를 불러오지 못했습니다", id)
}

func newErrProductNotFound(id int64) error {
	return apperrors.Newf(apperrors.NotFound, "상품(ID: %d)이 존재하지 않습니다", id)
}

func newErrFetchProducts(err error) error {
	return apperrors.Wrap(err, classify(err), "상품 목록을 불러오지 못했습니다")
}

func newErrFetchReviews(err error, productID int64) error {
	return apperrors.Wrapf(err, classify(err), "상품(ID: %d)의 리뷰를 불러오지 못했습니다", productID)
}

func newErrDecode(err error, endpoint string) error {
	return apperrors.Wrapf(err, apperrors.ParsingFailed, "응답(%s)을 해석할 수 없습니다", endpoint)
}

func newErrInvalidConfig(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}
