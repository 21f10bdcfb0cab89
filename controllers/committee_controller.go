package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/yantrika/yantrika-backend-go/config"
	models "github.com/yantrika/yantrika-backend-go/models"
	utils "github.com/yantrika/yantrika-backend-go/utils"
)

// Committee routes mirror the team routes over a smaller schema.

func ListCommitteeMembers(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("committee_members")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch committee members"})
			return
		}

		var members []models.CommitteeMember
		if err := cursor.All(ctx, &members); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode committee members"})
			return
		}

		if len(members) == 0 {
			c.JSON(http.StatusOK, []models.CommitteeMember{})
			return
		}

		latest := members[0]
		for _, m := range members {
			if m.UpdatedAt.After(latest.UpdatedAt) {
				latest = m
			}
		}
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, members)
	}
}

func CreateCommitteeMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name       string `json:"name" binding:"required"`
			Role       string `json:"role" binding:"required"`
			Department string `json:"department"`
			Year       string `json:"year"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		member := models.CommitteeMember{
			ID:         primitive.NewObjectID(),
			Name:       input.Name,
			Role:       input.Role,
			Department: input.Department,
			Year:       input.Year,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := cfg.Collection("committee_members").InsertOne(ctx, member); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create committee member"})
			return
		}

		c.JSON(http.StatusCreated, member)
	}
}

func UpdateCommitteeMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		var input struct {
			Name       string `json:"name"`
			Role       string `json:"role"`
			Department string `json:"department"`
			Year       string `json:"year"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := bson.M{"updated_at": time.Now()}
		setIfPresent(update, "name", input.Name)
		setIfPresent(update, "role", input.Role)
		setIfPresent(update, "department", input.Department)
		setIfPresent(update, "year", input.Year)

		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var updated models.CommitteeMember
		err = cfg.Collection("committee_members").
			FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After)).
			Decode(&updated)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "committee member not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update committee member"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteCommitteeMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := cfg.Collection("committee_members").DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete committee member"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "committee member not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Committee member deleted",
			"id":      oid.Hex(),
		})
	}
}
