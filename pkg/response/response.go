package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null（校验失败时为字段错误映射）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（201）
// 用于POST创建资源的接口（如新增作者）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// NoContent 无内容响应（204）
// 用于DELETE接口
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 业务错误码 → HTTP状态码映射：
// - 404xx → 404（资源不存在）
// - 401xx → 401（未认证）
// - 其余4xxxx → 400（客户端错误）
// - 5xxxx → 500（服务端错误）
//
// 用法：
//
//	err := createBookUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	body := Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	}
	// 校验错误时把字段级错误放进data，方便前端逐字段提示
	if len(appErr.Fields) > 0 {
		body.Data = appErr.Fields
	}

	c.JSON(httpStatus(appErr.Code), body)
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(httpStatus(code), Response{
		Code:    code,
		Message: message,
	})
}

// httpStatus 业务错误码 → HTTP状态码
func httpStatus(code int) int {
	switch code / 100 {
	case 404:
		return http.StatusNotFound
	case 401:
		return http.StatusUnauthorized
	case 500:
		return http.StatusInternalServerError
	default:
		if code >= 50000 {
			return http.StatusInternalServerError
		}
		return http.StatusBadRequest
	}
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
// 设计说明：除常规的页码/总页数外，额外携带next/previous链接，
// 前端翻页时直接请求链接即可，不必自行拼接URL
type PageData struct {
	Next       *string     `json:"next"`        // 下一页链接（最后一页时为null）
	Previous   *string     `json:"previous"`    // 上一页链接（第一页时为null）
	Page       int         `json:"pagenum"`     // 当前页码
	TotalPages int         `json:"total_pages"` // 总页数
	Total      int64       `json:"total"`       // 总记录数
	Results    interface{} `json:"results"`     // 数据列表
}

// NewPageData 创建分页数据
// path是当前接口路径（如 /api/books/），用于生成翻页链接
func NewPageData(results interface{}, total int64, page, pageSize int, path string) *PageData {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	var next, previous *string
	if page < totalPages {
		link := fmt.Sprintf("%s?page=%d", path, page+1)
		next = &link
	}
	if page > 1 {
		link := fmt.Sprintf("%s?page=%d", path, page-1)
		previous = &link
	}

	return &PageData{
		Next:       next,
		Previous:   previous,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		Results:    results,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, results interface{}, total int64, page, pageSize int) {
	Success(c, NewPageData(results, total, page, pageSize, c.Request.URL.Path))
}
