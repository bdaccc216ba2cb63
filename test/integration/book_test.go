package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：图书模块集成测试
//
// 测试场景覆盖：
// 1. 图书创建与嵌套作者调和（命中链接/未中新建）
// 2. 更新时的关系替换与"空列表不改动"规则
// 3. 分页信封
// 4. 删除级联（评论随书删除，作者保留）

// TestBookCreateWithNestedAuthors 嵌套作者的创建流程
func TestBookCreateWithNestedAuthors(t *testing.T) {
	base := BaseURL(t)

	t.Run("嵌套作者命中已有作者时只链接不新建", func(t *testing.T) {
		surname := uniqueSurname("Петров")

		// 先建一位作者：出生年份1990
		createAuthor(t, base, map[string]interface{}{
			"surname": surname, "name": "Петр", "patronymic": "Петрович", "year": 1990,
		})
		require.Equal(t, 1, countAuthorsBySurname(t, base, surname))

		// 再建图书，嵌套同名作者但年份给成201：年份不参与匹配
		book := createBook(t, base, map[string]interface{}{
			"title": uniqueTitle("Книга 2"),
			"year":  2020,
			"authors": []map[string]interface{}{
				{"surname": surname, "name": "Петр", "patronymic": "Петрович", "year": 201},
			},
		})

		assert.Equal(t, 1, countAuthorsBySurname(t, base, surname), "作者总数应保持为1")
		require.Len(t, book.Authors, 1)
		assert.Contains(t, book.Authors[0], surname)

		// 命中时保留库中年份
		for _, a := range listAuthors(t, base) {
			if a.Surname == surname {
				require.NotNil(t, a.Year)
				assert.Equal(t, uint16(1990), *a.Year, "命中时不覆盖出生年份")
			}
		}
	})

	t.Run("嵌套作者未命中时新建并链接", func(t *testing.T) {
		surname := uniqueSurname("Иванов")

		book := createBook(t, base, map[string]interface{}{
			"title": uniqueTitle("Книга 1"),
			"year":  2013,
			"authors": []map[string]interface{}{
				{"surname": surname, "name": "Иван", "patronymic": "Иванович", "year": 1985},
			},
		})

		assert.Equal(t, 1, countAuthorsBySurname(t, base, surname), "应新建恰好一位作者")
		require.Len(t, book.Authors, 1)

		// 新建时写入引用携带的年份
		for _, a := range listAuthors(t, base) {
			if a.Surname == surname {
				require.NotNil(t, a.Year)
				assert.Equal(t, uint16(1985), *a.Year)
			}
		}
	})

	t.Run("父称不同视为另一位作者", func(t *testing.T) {
		surname := uniqueSurname("Сидоров")

		createAuthor(t, base, map[string]interface{}{
			"surname": surname, "name": "Иван", "patronymic": "Иванович",
		})

		createBook(t, base, map[string]interface{}{
			"title": uniqueTitle("Книга"),
			"authors": []map[string]interface{}{
				{"surname": surname, "name": "Иван"}, // 无父称
			},
		})

		assert.Equal(t, 2, countAuthorsBySurname(t, base, surname))
	})
}

// TestBookUpdate 更新语义：覆盖标量 + 关系替换规则
func TestBookUpdate(t *testing.T) {
	base := BaseURL(t)

	surnameA := uniqueSurname("Автор")
	surnameB := uniqueSurname("Новый")

	book := createBook(t, base, map[string]interface{}{
		"title": uniqueTitle("Книга"),
		"year":  2000,
		"authors": []map[string]interface{}{
			{"surname": surnameA, "name": "Анна"},
		},
	})
	bookURL := fmt.Sprintf("%s/api/book/%d/", base, book.ID)

	t.Run("标量字段直接覆盖", func(t *testing.T) {
		newTitle := uniqueTitle("Переименованная")
		status, resp := PutJSON(t, bookURL, map[string]interface{}{
			"title": newTitle,
			"year":  2001,
		})
		require.Equal(t, http.StatusOK, status)

		var updated BookData
		unmarshalData(t, resp, &updated)
		assert.Equal(t, newTitle, updated.Title)
		require.NotNil(t, updated.Year)
		assert.Equal(t, uint16(2001), *updated.Year)
	})

	t.Run("authors缺省时保留既有关系", func(t *testing.T) {
		status, resp := PutJSON(t, bookURL, map[string]interface{}{
			"title": uniqueTitle("Книга"),
		})
		require.Equal(t, http.StatusOK, status)

		var updated BookData
		unmarshalData(t, resp, &updated)
		require.Len(t, updated.Authors, 1, "未给出authors时关系应保持不变")
		assert.Contains(t, updated.Authors[0], surnameA)
	})

	t.Run("authors非空时整体替换关系", func(t *testing.T) {
		status, resp := PutJSON(t, bookURL, map[string]interface{}{
			"title": uniqueTitle("Книга"),
			"authors": []map[string]interface{}{
				{"surname": surnameB, "name": "Николай"},
			},
		})
		require.Equal(t, http.StatusOK, status)

		var updated BookData
		unmarshalData(t, resp, &updated)
		require.Len(t, updated.Authors, 1, "旧关系应被完全替换")
		assert.Contains(t, updated.Authors[0], surnameB)
	})

	t.Run("重复提交相同请求结果幂等", func(t *testing.T) {
		req := map[string]interface{}{
			"title": uniqueTitle("Книга"),
			"authors": []map[string]interface{}{
				{"surname": surnameB, "name": "Николай"},
			},
		}

		status1, _ := PutJSON(t, bookURL, req)
		require.Equal(t, http.StatusOK, status1)
		status2, resp2 := PutJSON(t, bookURL, req)
		require.Equal(t, http.StatusOK, status2)

		var updated BookData
		unmarshalData(t, resp2, &updated)
		assert.Len(t, updated.Authors, 1)
		assert.Equal(t, 1, countAuthorsBySurname(t, base, surnameB), "第二次不应再新建作者")
	})
}

// TestBookListPagination 分页信封
func TestBookListPagination(t *testing.T) {
	base := BaseURL(t)

	// 保证至少4本书（页大小为3时产生第二页）
	for i := 0; i < 4; i++ {
		createBook(t, base, map[string]interface{}{"title": uniqueTitle("Пагинация")})
	}

	status, resp := GetJSON(t, base+"/api/books/")
	require.Equal(t, http.StatusOK, status)

	var page PageData
	unmarshalData(t, resp, &page)

	assert.Equal(t, 1, page.Pagenum)
	assert.Nil(t, page.Previous, "第一页没有上一页链接")
	assert.GreaterOrEqual(t, page.Total, int64(4))
	assert.GreaterOrEqual(t, page.TotalPages, 2)
	require.NotNil(t, page.Next, "应有下一页链接")

	var items []BookData
	require.NoError(t, json.Unmarshal(page.Results, &items))
	assert.LessOrEqual(t, len(items), 3, "页大小固定为3")

	// 沿next链接翻到第二页
	status, resp = GetJSON(t, base+*page.Next)
	require.Equal(t, http.StatusOK, status)

	var page2 PageData
	unmarshalData(t, resp, &page2)
	assert.Equal(t, 2, page2.Pagenum)
	assert.NotNil(t, page2.Previous)
}

// TestBookDelete 删除级联
func TestBookDelete(t *testing.T) {
	base := BaseURL(t)

	surname := uniqueSurname("Остающийся")
	book := createBook(t, base, map[string]interface{}{
		"title": uniqueTitle("Удаляемая"),
		"authors": []map[string]interface{}{
			{"surname": surname, "name": "Олег"},
		},
	})

	// 挂一条评论
	status, resp := PostJSON(t, base+"/api/comments/", map[string]interface{}{
		"book_id": book.ID, "content": "Комментарий к удаляемой книге",
	})
	require.Equal(t, http.StatusOK, status)
	var comment CommentData
	unmarshalData(t, resp, &comment)

	// 删除图书
	status = Delete(t, fmt.Sprintf("%s/api/book/%d/", base, book.ID))
	assert.Equal(t, http.StatusNoContent, status)

	// 图书与评论都不存在了
	status, _ = GetJSON(t, fmt.Sprintf("%s/api/book/%d/", base, book.ID))
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = GetJSON(t, fmt.Sprintf("%s/api/comment/%d/", base, comment.ID))
	assert.Equal(t, http.StatusNotFound, status, "评论应随图书级联删除")

	// 作者保留
	assert.Equal(t, 1, countAuthorsBySurname(t, base, surname), "删除图书不应删除作者")
}

// TestBookValidation 参数校验
func TestBookValidation(t *testing.T) {
	base := BaseURL(t)

	t.Run("书名为空白时返回400与字段错误", func(t *testing.T) {
		status, resp := PostJSON(t, base+"/api/books/", map[string]interface{}{
			"title": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("嵌套作者缺姓时返回400", func(t *testing.T) {
		status, _ := PostJSON(t, base+"/api/books/", map[string]interface{}{
			"title": uniqueTitle("Книга"),
			"authors": []map[string]interface{}{
				{"surname": " ", "name": "Имя"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("查询不存在的图书返回404", func(t *testing.T) {
		status, resp := GetJSON(t, base+"/api/book/99999999/")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40401, resp.Code)
	})
}
