package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := response.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	page, _ = response.Paginate(items, 4, 2)
	assert.Empty(t, page)
}

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nil list is encoded as empty array", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/items", nil)

		response.List[string](c, http.StatusOK, nil)

		var env struct {
			Ok   bool     `json:"ok"`
			Data []string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.NotNil(t, env.Data)
		assert.Len(t, env.Data, 0)
	})

	t.Run("page params add meta", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/items?page=1&page_size=2", nil)

		response.List(c, http.StatusOK, []string{"a", "b", "c"})

		var env struct {
			Data []string                `json:"data"`
			Meta response.PaginationMeta `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, []string{"a", "b"}, env.Data)
		assert.Equal(t, 2, env.Meta.TotalPages)
	})
}
