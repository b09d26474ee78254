package catalog

import (
	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
)

func newErrProductUnavailable(err error, id int64) error {
	if apperrors.Is(err, apperrors.NotFound) {
		return apperrors.Wrapf(err, apperrors.NotFound, "상품(%d)을 찾을 수 없습니다", id)
	}
	return apperrors.Wrapf(err, apperrors.Unavailable, "상품(%d) 정보를 불러올 수 없습니다", id)
}

func newErrProductAbsent(id int64) error {
	return apperrors.Newf(apperrors.NotFound, "상품(%d)을 찾을 수 없습니다", id)
}

func newErrNilRecord() error {
	return apperrors.New(apperrors.InvalidInput, "상품 레코드가 비어 있습니다")
}
