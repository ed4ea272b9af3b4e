// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			name: "exact pages", total: 100, page: 2, perPage: 25,
			want: Pagination{Page: 2, PerPage: 25, Total: 100, TotalPages: 4, HasNext: true, HasPrev: true},
		},
		{
			name: "partial last page", total: 101, page: 5, perPage: 25,
			want: Pagination{Page: 5, PerPage: 25, Total: 101, TotalPages: 5, HasNext: false, HasPrev: true},
		},
		{
			name: "empty result still one page", total: 0, page: 1, perPage: 25,
			want: Pagination{Page: 1, PerPage: 25, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "zero perPage normalized", total: 10, page: 0, perPage: 0,
			want: Pagination{Page: 1, PerPage: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPagination(tt.total, tt.page, tt.perPage))
		})
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 25, 200)
		return c.SendString("ok")
	})

	tests := []struct {
		name string
		url  string
		want Paging
	}{
		{name: "defaults", url: "/x", want: Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
		{name: "explicit", url: "/x?page=3&per_page=10", want: Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{name: "limit alias", url: "/x?limit=40", want: Paging{Page: 1, PerPage: 40, Offset: 0, Limit: 40}},
		{name: "capped at max", url: "/x?per_page=9999", want: Paging{Page: 1, PerPage: 200, Offset: 0, Limit: 200}},
		{name: "negative page normalized", url: "/x?page=-2", want: Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}
