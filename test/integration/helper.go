package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：集成测试辅助工具
// 这些测试是黑盒测试，需要一个已启动的服务实例（含MySQL）。
// 通过环境变量LIBRARY_API_URL指定服务地址，未设置时跳过，
// 这样`go test ./...`在没有外部依赖的环境下也能通过。
//
//	LIBRARY_API_URL=http://localhost:8080 go test ./test/integration/

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// BaseURL 返回被测服务地址，未配置时跳过当前测试
func BaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("LIBRARY_API_URL")
	if url == "" {
		t.Skip("未设置LIBRARY_API_URL，跳过集成测试")
	}
	return strings.TrimRight(url, "/")
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PageData 分页信封
type PageData struct {
	Next       *string         `json:"next"`
	Previous   *string         `json:"previous"`
	Pagenum    int             `json:"pagenum"`
	TotalPages int             `json:"total_pages"`
	Total      int64           `json:"total"`
	Results    json.RawMessage `json:"results"`
}

// BookData 图书响应数据
type BookData struct {
	ID       uint          `json:"id"`
	Title    string        `json:"title"`
	Year     *uint16       `json:"year"`
	Authors  []string      `json:"authors"`
	Comments []CommentData `json:"comments"`
}

// BookRefData 图书摘要
type BookRefData struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Year  *uint16 `json:"year"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID         uint          `json:"id"`
	Surname    string        `json:"surname"`
	Name       string        `json:"name"`
	Patronymic string        `json:"patronymic"`
	Year       *uint16       `json:"year"`
	FullName   string        `json:"full_name"`
	Books      []BookRefData `json:"books"`
}

// CommentData 评论响应数据
type CommentData struct {
	ID           uint         `json:"id"`
	TimeCreation string       `json:"time_creation"`
	Content      string       `json:"content"`
	Book         *BookRefData `json:"book"`
}

// doRequest 发送请求，返回HTTP状态码与响应体
func doRequest(t *testing.T, method, url string, data interface{}) (int, []byte) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	return resp.StatusCode, respBody
}

// parseResponse 解析统一响应信封
func parseResponse(t *testing.T, body []byte) *Response {
	t.Helper()
	var result Response
	err := json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))
	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) (int, *Response) {
	status, body := doRequest(t, http.MethodPost, url, data)
	return status, parseResponse(t, body)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) (int, *Response) {
	status, body := doRequest(t, http.MethodPut, url, data)
	return status, parseResponse(t, body)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) (int, *Response) {
	status, body := doRequest(t, http.MethodGet, url, nil)
	return status, parseResponse(t, body)
}

// Delete 发送DELETE请求（204时没有响应体）
func Delete(t *testing.T, url string) int {
	status, _ := doRequest(t, http.MethodDelete, url, nil)
	return status
}

// unmarshalData 把Data段解析到目标结构
func unmarshalData(t *testing.T, resp *Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out), "解析Data失败: %s", string(resp.Data))
}

// uniqueTitle 生成唯一书名，避免测试间自然键互相命中
func uniqueTitle(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// uniqueSurname 生成唯一的姓
func uniqueSurname(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
}

// yearPtr 年份字面量取指针
func yearPtr(y uint16) *uint16 { return &y }

// createBook 创建图书并返回响应数据
func createBook(t *testing.T, base string, req map[string]interface{}) *BookData {
	t.Helper()
	status, resp := PostJSON(t, base+"/api/books/", req)
	require.Equal(t, http.StatusOK, status, "创建图书应返回200: %s", resp.Message)
	require.Equal(t, 0, resp.Code)

	var data BookData
	unmarshalData(t, resp, &data)
	require.NotZero(t, data.ID)
	return &data
}

// createAuthor 创建作者并返回响应数据
func createAuthor(t *testing.T, base string, req map[string]interface{}) *AuthorData {
	t.Helper()
	status, resp := PostJSON(t, base+"/api/authors/", req)
	require.Equal(t, http.StatusCreated, status, "创建作者应返回201: %s", resp.Message)
	require.Equal(t, 0, resp.Code)

	var data AuthorData
	unmarshalData(t, resp, &data)
	require.NotZero(t, data.ID)
	return &data
}

// listAuthors 获取全部作者
func listAuthors(t *testing.T, base string) []AuthorData {
	t.Helper()
	status, resp := GetJSON(t, base+"/api/authors/")
	require.Equal(t, http.StatusOK, status)

	var data []AuthorData
	unmarshalData(t, resp, &data)
	return data
}

// countAuthorsBySurname 统计某个姓的作者数量
func countAuthorsBySurname(t *testing.T, base, surname string) int {
	count := 0
	for _, a := range listAuthors(t, base) {
		if a.Surname == surname {
			count++
		}
	}
	return count
}
