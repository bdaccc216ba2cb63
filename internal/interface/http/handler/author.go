package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createAuthorUseCase *appauthor.CreateAuthorUseCase
	updateAuthorUseCase *appauthor.UpdateAuthorUseCase
	getAuthorUseCase    *appauthor.GetAuthorUseCase
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createAuthorUseCase *appauthor.CreateAuthorUseCase,
	updateAuthorUseCase *appauthor.UpdateAuthorUseCase,
	getAuthorUseCase *appauthor.GetAuthorUseCase,
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createAuthorUseCase: createAuthorUseCase,
		updateAuthorUseCase: updateAuthorUseCase,
		getAuthorUseCase:    getAuthorUseCase,
		listAuthorsUseCase:  listAuthorsUseCase,
		deleteAuthorUseCase: deleteAuthorUseCase,
	}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Description  创建作者，嵌套图书按(书名, 年份)调和
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/authors/ [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数格式错误: "+err.Error())
		return
	}
	if fields := req.Normalize(); fields != nil {
		response.Error(c, apperrors.NewValidation(fields))
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Surname:    req.Surname,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Year:       req.Year,
		Books:      toBookRefInputs(req.Books),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  全部作者，不分页，按插入顺序
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]appauthor.AuthorResponse}
// @Router       /api/authors/ [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	result, err := h.listAuthorsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/author/{id}/ [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Description  覆盖标量字段；books非空时整体替换图书关系，空或缺省保留
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.SaveAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/author/{id}/ [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数格式错误: "+err.Error())
		return
	}
	if fields := req.Normalize(); fields != nil {
		response.Error(c, apperrors.NewValidation(fields))
		return
	}

	result, err := h.updateAuthorUseCase.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{
		ID:         id,
		Surname:    req.Surname,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Year:       req.Year,
		Books:      toBookRefInputs(req.Books),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  删除作者并解除图书关系，图书保留
// @Tags         作者
// @Param        id path int true "作者ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/author/{id}/ [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteAuthorUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// toBookRefInputs HTTP嵌套图书 → 应用层引用
func toBookRefInputs(reqs []dto.BookRefRequest) []appauthor.BookRefInput {
	refs := make([]appauthor.BookRefInput, len(reqs))
	for i, r := range reqs {
		refs[i] = appauthor.BookRefInput{Title: r.Title, Year: r.Year}
	}
	return refs
}
