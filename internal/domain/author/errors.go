package author

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrEmptyName 姓或名为空
	ErrEmptyName = apperrors.New(apperrors.ErrCodeInvalidParams, "作者的姓和名不能为空")
)
