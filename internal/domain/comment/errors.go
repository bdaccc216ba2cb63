package comment

import apperrors "github.com/xiebiao/library/pkg/errors"

var (
	// ErrCommentNotFound 评论不存在
	ErrCommentNotFound = apperrors.New(apperrors.ErrCodeCommentNotFound, "评论不存在")

	// ErrEmptyContent 评论内容为空
	ErrEmptyContent = apperrors.New(apperrors.ErrCodeInvalidParams, "评论内容不能为空")
)
