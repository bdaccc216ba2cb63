package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/library/internal/application/comment"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// CommentHandler 评论HTTP处理器
type CommentHandler struct {
	createCommentUseCase *appcomment.CreateCommentUseCase
	listCommentsUseCase  *appcomment.ListCommentsUseCase
	getCommentUseCase    *appcomment.GetCommentUseCase
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(
	createCommentUseCase *appcomment.CreateCommentUseCase,
	listCommentsUseCase *appcomment.ListCommentsUseCase,
	getCommentUseCase *appcomment.GetCommentUseCase,
) *CommentHandler {
	return &CommentHandler{
		createCommentUseCase: createCommentUseCase,
		listCommentsUseCase:  listCommentsUseCase,
		getCommentUseCase:    getCommentUseCase,
	}
}

// CreateComment 创建评论
// @Summary      创建评论
// @Description  为指定图书创建评论，发表时间由服务端生成
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "评论信息"
// @Success      200 {object} response.Response{data=appcomment.CommentResponse}
// @Failure      400 {object} response.Response "参数错误或图书不存在"
// @Router       /api/comments/ [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数格式错误: "+err.Error())
		return
	}
	if fields := req.Normalize(); fields != nil {
		response.Error(c, apperrors.NewValidation(fields))
		return
	}

	result, err := h.createCommentUseCase.Execute(c.Request.Context(), appcomment.CreateCommentRequest{
		BookID:  req.BookID,
		Content: req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListComments 评论列表
// @Summary      评论列表
// @Description  全部评论（含图书摘要），新评论在前
// @Tags         评论
// @Produce      json
// @Success      200 {object} response.Response{data=[]appcomment.CommentResponse}
// @Router       /api/comments/ [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	result, err := h.listCommentsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListCommentsByBook 某本图书的评论列表
// @Summary      图书评论列表
// @Description  指定图书的评论，新评论在前；图书不存在时返回空列表
// @Tags         评论
// @Produce      json
// @Param        book_id path int true "图书ID"
// @Success      200 {object} response.Response{data=[]appcomment.CommentResponse}
// @Router       /api/comments/{book_id}/ [get]
func (h *CommentHandler) ListCommentsByBook(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("book_id"), 10, 32)
	if err != nil || bookID == 0 {
		response.ErrorWithCode(c, 40900, "非法的图书ID")
		return
	}

	result, err := h.listCommentsUseCase.ExecuteByBook(c.Request.Context(), uint(bookID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetComment 评论详情
// @Summary      评论详情
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response{data=appcomment.CommentResponse}
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /api/comment/{id}/ [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getCommentUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
