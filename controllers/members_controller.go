package controllers

import (
	"context"
	"log"
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

// ---------------- LIST ----------------
func ListTeamMembers(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("team_members")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch team members"})
			return
		}

		var members []models.TeamMember
		if err := cursor.All(ctx, &members); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode team members"})
			return
		}

		if len(members) == 0 {
			c.JSON(http.StatusOK, []models.TeamMember{})
			return
		}

		// --- ETag from the most recently updated member ---
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

// ---------------- CREATE ----------------
func CreateTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string `json:"name" binding:"required"`
			Role        string `json:"role" binding:"required"`
			ImageURL    string `json:"imageUrl"`
			GithubLink  string `json:"githubLink"`
			LinkedIn    string `json:"linkedIn"`
			Email       string `json:"email"`
			Department  string `json:"department"`
			Branch      string `json:"branch"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		member := models.TeamMember{
			ID:          primitive.NewObjectID(),
			Name:        input.Name,
			Role:        input.Role,
			ImageURL:    input.ImageURL,
			GithubLink:  input.GithubLink,
			LinkedIn:    input.LinkedIn,
			Email:       input.Email,
			Department:  input.Department,
			Branch:      input.Branch,
			Description: input.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := cfg.Collection("team_members").InsertOne(ctx, member); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create team member"})
			return
		}

		c.JSON(http.StatusCreated, member)
	}
}

// ---------------- UPDATE ----------------
func UpdateTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		var input struct {
			Name        string `json:"name"`
			Role        string `json:"role"`
			ImageURL    string `json:"imageUrl"`
			GithubLink  string `json:"githubLink"`
			LinkedIn    string `json:"linkedIn"`
			Email       string `json:"email"`
			Department  string `json:"department"`
			Branch      string `json:"branch"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := bson.M{"updated_at": time.Now()}
		setIfPresent(update, "name", input.Name)
		setIfPresent(update, "role", input.Role)
		setIfPresent(update, "image_url", input.ImageURL)
		setIfPresent(update, "github_link", input.GithubLink)
		setIfPresent(update, "linkedin", input.LinkedIn)
		setIfPresent(update, "email", input.Email)
		setIfPresent(update, "department", input.Department)
		setIfPresent(update, "branch", input.Branch)
		setIfPresent(update, "description", input.Description)

		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var updated models.TeamMember
		err = cfg.Collection("team_members").
			FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After)).
			Decode(&updated)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update team member"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- DELETE ----------------
func DeleteTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		col := cfg.Collection("team_members")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.TeamMember
		err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete team member"})
			return
		}

		if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete team member"})
			return
		}

		// Hosted portrait cleanup is best effort, the record is gone either way.
		if existing.ImageURL != "" {
			if err := utils.DeleteImage(existing.ImageURL); err != nil {
				log.Printf("cloudinary cleanup failed for %s: %v", oid.Hex(), err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Member deleted",
			"id":      oid.Hex(),
		})
	}
}

// setIfPresent adds a $set entry for non-empty values only.
func setIfPresent(update bson.M, key, value string) {
	if value != "" {
		update[key] = value
	}
}
