package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	models "github.com/yantrika/yantrika-backend-go/models"
)

func TestSubmitContact_NoMailConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("message persists and the caller is acknowledged", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		// no SMTP_HOST / ADMIN_EMAIL in the config: notification is skipped
		r := gin.New()
		r.POST("/api/contact", SubmitContact(testConfig(mt)))

		body, _ := json.Marshal(map[string]string{
			"name":    "A",
			"email":   "a@x.com",
			"subject": "Hi",
			"message": "test",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(mt, http.StatusOK, rec.Code)
		assert.JSONEq(mt,
			`{"status":"ok","message":"Thank you! Your message has been received."}`,
			rec.Body.String())
	})
}

func TestListMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns messages", func(mt *mtest.T) {
		ns := testDB + ".messages"
		newer := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		older := newer.Add(-24 * time.Hour)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "B"},
				{Key: "subject", Value: "Later"},
				{Key: "created_at", Value: newer},
				{Key: "updated_at", Value: newer},
			}),
			mtest.CreateCursorResponse(1, ns, mtest.NextBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "A"},
				{Key: "subject", Value: "Earlier"},
				{Key: "created_at", Value: older},
				{Key: "updated_at", Value: older},
			}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		r := gin.New()
		r.GET("/api/messages", ListMessages(testConfig(mt)))

		req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(mt, http.StatusOK, rec.Code)

		var messages []models.Message
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &messages))
		require.Len(mt, messages, 2)
		// newest-first per the query's sort
		assert.Equal(mt, "Later", messages[0].Subject)
		assert.True(mt, messages[0].CreatedAt.After(messages[1].CreatedAt))
	})

	mt.Run("empty collection returns an empty array", func(mt *mtest.T) {
		ns := testDB + ".messages"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		r := gin.New()
		r.GET("/api/messages", ListMessages(testConfig(mt)))

		req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(mt, http.StatusOK, rec.Code)
		assert.JSONEq(mt, "[]", rec.Body.String())
	})
}
