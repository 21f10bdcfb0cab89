package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/yantrika/yantrika-backend-go/config"
	models "github.com/yantrika/yantrika-backend-go/models"
	utils "github.com/yantrika/yantrika-backend-go/utils"
)

// SubmitContact persists the message first; the admin notification email
// is advisory and must never block the acknowledgment.
func SubmitContact(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Subject string `json:"subject"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		msg := models.Message{
			ID:        primitive.NewObjectID(),
			Name:      input.Name,
			Email:     input.Email,
			Subject:   input.Subject,
			Message:   input.Message,
			CreatedAt: now,
			UpdatedAt: now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := cfg.Collection("messages").InsertOne(ctx, msg); err != nil {
			log.Printf("contact persistence failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error. Please try again later."})
			return
		}

		if err := utils.NotifyAdmin(cfg, msg); err != nil {
			log.Printf("contact notification failed: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Thank you! Your message has been received.",
		})
	}
}

// ListMessages returns all messages newest-first. The admin-key check
// happens in middleware before this handler runs.
func ListMessages(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("messages")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			log.Printf("fetch messages failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		messages := []models.Message{}
		if err := cursor.All(ctx, &messages); err != nil {
			log.Printf("decode messages failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, messages)
	}
}
