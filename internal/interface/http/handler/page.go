package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/pkg/response"
)

// PageHandler 服务端渲染页面处理器
// 页面本身只是壳，数据由页面内的脚本走JSON接口加载
type PageHandler struct{}

// NewPageHandler 创建页面处理器
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// BooksPage 图书列表页
// GET /books/
func (h *PageHandler) BooksPage(c *gin.Context) {
	c.HTML(http.StatusOK, "books_list.html", gin.H{
		"title": "图书目录",
	})
}

// BookPage 图书详情页（含评论区）
// GET /book/:id/
func (h *PageHandler) BookPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40900, "非法的图书ID")
		return
	}

	c.HTML(http.StatusOK, "book_detail.html", gin.H{
		"title":  "图书详情",
		"bookID": id,
	})
}
