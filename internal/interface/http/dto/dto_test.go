package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func yearPtr(y uint16) *uint16 { return &y }

// TestSaveBookRequestNormalize 图书请求的去空白与字段校验
func TestSaveBookRequestNormalize(t *testing.T) {
	t.Run("合法请求返回nil并去除空白", func(t *testing.T) {
		req := SaveBookRequest{
			Title: "  Книга 1  ",
			Year:  yearPtr(2013),
			Authors: []AuthorRefRequest{
				{Surname: " Петров ", Name: " Петр ", Patronymic: " Петрович "},
			},
		}

		fields := req.Normalize()

		assert.Nil(t, fields)
		assert.Equal(t, "Книга 1", req.Title)
		assert.Equal(t, "Петров", req.Authors[0].Surname)
		assert.Equal(t, "Петр", req.Authors[0].Name)
		assert.Equal(t, "Петрович", req.Authors[0].Patronymic)
	})

	t.Run("空白书名返回字段错误", func(t *testing.T) {
		req := SaveBookRequest{Title: "   "}

		fields := req.Normalize()

		assert.Contains(t, fields, "title")
	})

	t.Run("嵌套作者空白字段带下标定位", func(t *testing.T) {
		req := SaveBookRequest{
			Title: "Книга 2",
			Authors: []AuthorRefRequest{
				{Surname: "Петров", Name: "Петр"},
				{Surname: "  ", Name: ""},
			},
		}

		fields := req.Normalize()

		assert.Contains(t, fields, "authors[1].surname")
		assert.Contains(t, fields, "authors[1].name")
		assert.NotContains(t, fields, "authors[0].surname")
	})
}

// TestSaveAuthorRequestNormalize 作者请求的去空白与字段校验
func TestSaveAuthorRequestNormalize(t *testing.T) {
	t.Run("姓名均为空白时两个字段都报错", func(t *testing.T) {
		req := SaveAuthorRequest{Surname: " ", Name: "\t"}

		fields := req.Normalize()

		assert.Contains(t, fields, "surname")
		assert.Contains(t, fields, "name")
	})

	t.Run("父称可为空", func(t *testing.T) {
		req := SaveAuthorRequest{Surname: "Петров", Name: "Петр"}

		assert.Nil(t, req.Normalize())
		assert.Equal(t, "", req.Patronymic)
	})

	t.Run("嵌套图书空白书名带下标定位", func(t *testing.T) {
		req := SaveAuthorRequest{
			Surname: "Петров",
			Name:    "Петр",
			Books: []BookRefRequest{
				{Title: "Книга 1", Year: yearPtr(2013)},
				{Title: "   "},
			},
		}

		fields := req.Normalize()

		assert.Contains(t, fields, "books[1].title")
		assert.Equal(t, "Книга 1", req.Books[0].Title)
	})
}

// TestCreateCommentRequestNormalize 评论请求校验
func TestCreateCommentRequestNormalize(t *testing.T) {
	t.Run("合法请求", func(t *testing.T) {
		req := CreateCommentRequest{BookID: 1, Content: " Отличная книга "}

		assert.Nil(t, req.Normalize())
		assert.Equal(t, "Отличная книга", req.Content)
	})

	t.Run("空白内容与缺失图书ID", func(t *testing.T) {
		req := CreateCommentRequest{Content: "   "}

		fields := req.Normalize()

		assert.Contains(t, fields, "content")
		assert.Contains(t, fields, "book_id")
	})
}
