package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 评论模块集成测试
//
// 覆盖：创建、按图书列出（新评论在前）、全量列出（带图书摘要）、
// 详情嵌套、对不存在图书评论返回400。

func createComment(t *testing.T, base string, bookID uint, content string) CommentData {
	t.Helper()

	status, resp := PostJSON(t, base+"/api/comments/", map[string]interface{}{
		"book_id": bookID,
		"content": content,
	})
	require.Equal(t, http.StatusOK, status, "创建评论失败: %s", resp.Message)

	var comment CommentData
	unmarshalData(t, resp, &comment)
	return comment
}

// TestCommentCreateAndListByBook 创建与按图书列出
func TestCommentCreateAndListByBook(t *testing.T) {
	base := BaseURL(t)

	book := createBook(t, base, map[string]interface{}{
		"title": uniqueTitle("Книга с отзывами"),
		"year":  2020,
	})

	first := createComment(t, base, book.ID, "Отличная книга")
	// 保证两条评论的时间戳可区分
	time.Sleep(1100 * time.Millisecond)
	second := createComment(t, base, book.ID, "Согласен, рекомендую")

	status, resp := GetJSON(t, fmt.Sprintf("%s/api/comments/%d/", base, book.ID))
	require.Equal(t, http.StatusOK, status)

	var comments []CommentData
	require.NoError(t, json.Unmarshal(resp.Data, &comments))
	require.Len(t, comments, 2)

	// 新评论在前
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
	assert.Equal(t, "Согласен, рекомендую", comments[0].Content)
}

// TestCommentListByUnknownBook 不存在的图书按过滤语义返回空列表而非404
func TestCommentListByUnknownBook(t *testing.T) {
	base := BaseURL(t)

	status, resp := GetJSON(t, base+"/api/comments/99999999/")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, resp.Code)

	var comments []CommentData
	require.NoError(t, json.Unmarshal(resp.Data, &comments))
	assert.Empty(t, comments)
}

// TestCommentListAll 全量列表携带图书摘要
func TestCommentListAll(t *testing.T) {
	base := BaseURL(t)

	title := uniqueTitle("Книга для сводки")
	book := createBook(t, base, map[string]interface{}{"title": title, "year": 2021})
	created := createComment(t, base, book.ID, "Комментарий со сводкой")

	status, resp := GetJSON(t, base+"/api/comments/")
	require.Equal(t, http.StatusOK, status)

	var comments []CommentData
	require.NoError(t, json.Unmarshal(resp.Data, &comments))

	var found *CommentData
	for i := range comments {
		if comments[i].ID == created.ID {
			found = &comments[i]
			break
		}
	}
	require.NotNil(t, found, "全量列表中应包含刚创建的评论")
	require.NotNil(t, found.Book, "列表项应携带图书摘要")
	assert.Equal(t, book.ID, found.Book.ID)
	assert.Equal(t, title, found.Book.Title)
}

// TestCommentGet 详情嵌套图书摘要
func TestCommentGet(t *testing.T) {
	base := BaseURL(t)

	book := createBook(t, base, map[string]interface{}{
		"title": uniqueTitle("Книга с деталями"),
		"year":  1997,
	})
	created := createComment(t, base, book.ID, "Подробный отзыв")

	status, resp := GetJSON(t, fmt.Sprintf("%s/api/comment/%d/", base, created.ID))
	require.Equal(t, http.StatusOK, status)

	var comment CommentData
	unmarshalData(t, resp, &comment)
	assert.Equal(t, "Подробный отзыв", comment.Content)
	require.NotNil(t, comment.Book)
	assert.Equal(t, book.ID, comment.Book.ID)
	require.NotNil(t, comment.Book.Year)
	assert.Equal(t, uint16(1997), *comment.Book.Year)
	assert.NotEmpty(t, comment.TimeCreation)
}

// TestCommentValidation 校验与404
func TestCommentValidation(t *testing.T) {
	base := BaseURL(t)

	t.Run("对不存在的图书评论返回400", func(t *testing.T) {
		status, resp := PostJSON(t, base+"/api/comments/", map[string]interface{}{
			"book_id": 99999999,
			"content": "В пустоту",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, 40900, resp.Code)
	})

	t.Run("内容为空白时返回400", func(t *testing.T) {
		book := createBook(t, base, map[string]interface{}{
			"title": uniqueTitle("Книга без отзыва"),
		})
		status, _ := PostJSON(t, base+"/api/comments/", map[string]interface{}{
			"book_id": book.ID,
			"content": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("查询不存在的评论返回404", func(t *testing.T) {
		status, resp := GetJSON(t, base+"/api/comment/99999999/")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40403, resp.Code)
	})
}
