package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：作者模块集成测试
//
// 测试场景覆盖：
// 1. 作者创建（201）与嵌套图书调和
// 2. (书名, 年份)自然键：双方缺省年份视为相等，单方缺省不命中
// 3. 更新时的关系替换与幂等
// 4. 删除作者保留图书

// TestAuthorCreateWithNestedBooks 嵌套图书的创建流程
func TestAuthorCreateWithNestedBooks(t *testing.T) {
	base := BaseURL(t)

	t.Run("嵌套图书未命中时新建并链接", func(t *testing.T) {
		title := uniqueTitle("Книга 1")

		author := createAuthor(t, base, map[string]interface{}{
			"surname": uniqueSurname("Пушкин"),
			"name":    "Александр",
			"books": []map[string]interface{}{
				{"title": title, "year": 2013},
			},
		})

		require.Len(t, author.Books, 1)
		assert.Equal(t, title, author.Books[0].Title)
		require.NotNil(t, author.Books[0].Year)
		assert.Equal(t, uint16(2013), *author.Books[0].Year)

		// 新建的图书应能通过详情接口取到
		status, _ := GetJSON(t, fmt.Sprintf("%s/api/book/%d/", base, author.Books[0].ID))
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("书名相同年份不同视为另一本书", func(t *testing.T) {
		title := uniqueTitle("Книга")
		book := createBook(t, base, map[string]interface{}{"title": title, "year": 2013})

		author := createAuthor(t, base, map[string]interface{}{
			"surname": uniqueSurname("Гоголь"),
			"name":    "Николай",
			"books": []map[string]interface{}{
				{"title": title, "year": 2014},
			},
		})

		require.Len(t, author.Books, 1)
		assert.NotEqual(t, book.ID, author.Books[0].ID, "年份不同应新建而不是链接")
	})

	t.Run("双方年份都缺省时命中", func(t *testing.T) {
		title := uniqueTitle("Книга без года")
		book := createBook(t, base, map[string]interface{}{"title": title})

		author := createAuthor(t, base, map[string]interface{}{
			"surname": uniqueSurname("Чехов"),
			"name":    "Антон",
			"books": []map[string]interface{}{
				{"title": title},
			},
		})

		require.Len(t, author.Books, 1)
		assert.Equal(t, book.ID, author.Books[0].ID, "双方缺省年份视为相等")
	})

	t.Run("同名同年的多本书全部链接", func(t *testing.T) {
		title := uniqueTitle("Дубликат")
		createBook(t, base, map[string]interface{}{"title": title, "year": 1999})
		createBook(t, base, map[string]interface{}{"title": title, "year": 1999})

		author := createAuthor(t, base, map[string]interface{}{
			"surname": uniqueSurname("Толстой"),
			"name":    "Лев",
			"books": []map[string]interface{}{
				{"title": title, "year": 1999},
			},
		})

		assert.Len(t, author.Books, 2, "自然键重复的候选应全部被链接")
	})
}

// TestAuthorUpdate 更新语义
func TestAuthorUpdate(t *testing.T) {
	base := BaseURL(t)

	title1 := uniqueTitle("Первая")
	title2 := uniqueTitle("Вторая")

	author := createAuthor(t, base, map[string]interface{}{
		"surname": uniqueSurname("Лермонтов"),
		"name":    "Михаил",
		"year":    1814,
		"books": []map[string]interface{}{
			{"title": title1, "year": 1840},
		},
	})
	authorURL := fmt.Sprintf("%s/api/author/%d/", base, author.ID)

	t.Run("books为空列表时保留既有关系", func(t *testing.T) {
		status, resp := PutJSON(t, authorURL, map[string]interface{}{
			"surname": author.Surname,
			"name":    "Михаил",
			"year":    1814,
			"books":   []map[string]interface{}{},
		})
		require.Equal(t, http.StatusOK, status)

		var updated AuthorData
		unmarshalData(t, resp, &updated)
		require.Len(t, updated.Books, 1, "空列表是'未给出指令'，不应清空关系")
		assert.Equal(t, title1, updated.Books[0].Title)
	})

	t.Run("books非空时整体替换关系", func(t *testing.T) {
		status, resp := PutJSON(t, authorURL, map[string]interface{}{
			"surname": author.Surname,
			"name":    "Михаил",
			"year":    1814,
			"books": []map[string]interface{}{
				{"title": title2, "year": 1841},
			},
		})
		require.Equal(t, http.StatusOK, status)

		var updated AuthorData
		unmarshalData(t, resp, &updated)
		require.Len(t, updated.Books, 1)
		assert.Equal(t, title2, updated.Books[0].Title, "旧关系应被完全替换")
	})

	t.Run("标量字段覆盖不影响关系", func(t *testing.T) {
		status, resp := PutJSON(t, authorURL, map[string]interface{}{
			"surname":    author.Surname,
			"name":       "Михаил",
			"patronymic": "Юрьевич",
			"year":       1814,
		})
		require.Equal(t, http.StatusOK, status)

		var updated AuthorData
		unmarshalData(t, resp, &updated)
		assert.Equal(t, "Юрьевич", updated.Patronymic)
		assert.Len(t, updated.Books, 1)
	})
}

// TestAuthorDelete 删除作者保留图书
func TestAuthorDelete(t *testing.T) {
	base := BaseURL(t)

	title := uniqueTitle("Остающаяся")
	author := createAuthor(t, base, map[string]interface{}{
		"surname": uniqueSurname("Тургенев"),
		"name":    "Иван",
		"books": []map[string]interface{}{
			{"title": title},
		},
	})
	require.Len(t, author.Books, 1)
	bookID := author.Books[0].ID

	status := Delete(t, fmt.Sprintf("%s/api/author/%d/", base, author.ID))
	assert.Equal(t, http.StatusNoContent, status)

	// 作者不存在了，图书还在且不再挂该作者
	status, _ = GetJSON(t, fmt.Sprintf("%s/api/author/%d/", base, author.ID))
	assert.Equal(t, http.StatusNotFound, status)

	status, resp := GetJSON(t, fmt.Sprintf("%s/api/book/%d/", base, bookID))
	require.Equal(t, http.StatusOK, status, "删除作者不应删除图书")

	var book BookData
	unmarshalData(t, resp, &book)
	assert.Empty(t, book.Authors)
}

// TestAuthorValidation 参数校验与404
func TestAuthorValidation(t *testing.T) {
	base := BaseURL(t)

	t.Run("姓为空白时返回400", func(t *testing.T) {
		status, _ := PostJSON(t, base+"/api/authors/", map[string]interface{}{
			"surname": "  ", "name": "Имя",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("查询不存在的作者返回404", func(t *testing.T) {
		status, resp := GetJSON(t, base+"/api/author/99999999/")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40402, resp.Code)
	})
}
