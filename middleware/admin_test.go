package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	config "github.com/yantrika/yantrika-backend-go/config"
)

func newGatedRouter(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/messages", AdminKey(&config.Config{AdminKey: adminKey}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})
	return r
}

func TestAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
	}{
		{"correct key", "s3cret", "s3cret", http.StatusOK},
		{"missing key", "s3cret", "", http.StatusUnauthorized},
		{"wrong key", "s3cret", "nope", http.StatusUnauthorized},
		{"unset server key locks route", "", "", http.StatusUnauthorized},
		{"unset server key rejects any key", "", "anything", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGatedRouter(tt.configured)

			req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
			if tt.sent != "" {
				req.Header.Set("x-admin-key", tt.sent)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				// no information about what sits behind the gate
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}
