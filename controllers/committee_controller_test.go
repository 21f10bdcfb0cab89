package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDeleteCommitteeMember_SecondDeleteIsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete twice", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		r := gin.New()
		r.DELETE("/api/committee/:id", DeleteCommitteeMember(testConfig(mt)))

		target := "/api/committee/" + primitive.NewObjectID().Hex()

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), "Committee member deleted")

		// The record is gone now, so the same call gets a defined 404.
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
		assert.Equal(mt, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateCommitteeMember_MissingRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id yields 404", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		r := gin.New()
		r.PUT("/api/committee/:id", UpdateCommitteeMember(testConfig(mt)))

		req := httptest.NewRequest(http.MethodPut,
			"/api/committee/"+primitive.NewObjectID().Hex(),
			strings.NewReader(`{"year":"Third Year"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(mt, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateCommitteeMember_EmptyBodyRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no fields", func(mt *mtest.T) {
		r := gin.New()
		r.PUT("/api/committee/:id", UpdateCommitteeMember(testConfig(mt)))

		req := httptest.NewRequest(http.MethodPut,
			"/api/committee/"+primitive.NewObjectID().Hex(),
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
	})
}
