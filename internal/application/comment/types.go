package comment

import (
	"time"

	"github.com/xiebiao/library/internal/domain/comment"
)

// BookSummaryItem 评论响应中的图书摘要
type BookSummaryItem struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Year  *uint16 `json:"year"`
}

// CommentResponse 评论读取表示
type CommentResponse struct {
	ID           uint             `json:"id"`
	TimeCreation string           `json:"time_creation"`
	Content      string           `json:"content"`
	Book         *BookSummaryItem `json:"book,omitempty"`
}

// toCommentResponse 领域实体 → 响应DTO
func toCommentResponse(c *comment.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:           c.ID,
		TimeCreation: c.TimeCreation.Format(time.RFC3339),
		Content:      c.Content,
	}
	if c.Book != nil {
		resp.Book = &BookSummaryItem{
			ID:    c.Book.ID,
			Title: c.Book.Title,
			Year:  c.Book.Year,
		}
	}
	return resp
}
