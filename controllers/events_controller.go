package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/yantrika/yantrika-backend-go/config"
	models "github.com/yantrika/yantrika-backend-go/models"
)

// upcomingFilter matches open events dated today or later, where "today"
// starts at local midnight on the server.
func upcomingFilter(now time.Time) bson.M {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return bson.M{
		"date":   bson.M{"$gte": startOfToday},
		"status": models.EventStatusOpen,
	}
}

// parseEventDate accepts RFC3339 plus a few date-only fallbacks.
func parseEventDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return parsed, nil
	}
	layouts := []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if t, e := time.Parse(layout, raw); e == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ---------------- UPCOMING ----------------
func ListUpcomingEvents(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("upcoming_events")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
		cursor, err := col.Find(ctx, upcomingFilter(time.Now()), opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch upcoming events"})
			return
		}

		events := []models.UpcomingEvent{}
		if err := cursor.All(ctx, &events); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode upcoming events"})
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func CreateUpcomingEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Title            string `json:"title" binding:"required"`
			Type             string `json:"type"`
			Description      string `json:"description" binding:"required"`
			Date             string `json:"date" binding:"required"`
			StartTime        string `json:"startTime" binding:"required"`
			EndTime          string `json:"endTime" binding:"required"`
			Location         string `json:"location" binding:"required"`
			RegistrationLink string `json:"registrationLink"`
			Status           string `json:"status"`
			ImageURL         string `json:"imageUrl"`
			Capacity         int    `json:"capacity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		date, err := parseEventDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use RFC3339 or YYYY-MM-DD"})
			return
		}

		if input.Type == "" {
			input.Type = models.EventTypeOther
		}
		if !models.ValidEventType(input.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event type"})
			return
		}
		if input.Status == "" {
			input.Status = models.EventStatusOpen
		}
		if !models.ValidEventStatus(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event status"})
			return
		}

		now := time.Now()
		event := models.UpcomingEvent{
			ID:               primitive.NewObjectID(),
			Title:            input.Title,
			Type:             input.Type,
			Description:      input.Description,
			Date:             date,
			StartTime:        input.StartTime,
			EndTime:          input.EndTime,
			Location:         input.Location,
			RegistrationLink: input.RegistrationLink,
			Status:           input.Status,
			ImageURL:         input.ImageURL,
			Capacity:         input.Capacity,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := cfg.Collection("upcoming_events").InsertOne(ctx, event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create event"})
			return
		}

		c.JSON(http.StatusCreated, event)
	}
}

// ---------------- PAST ----------------
func ListPastEvents(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("past_events")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch past events"})
			return
		}

		events := []models.PastEvent{}
		if err := cursor.All(ctx, &events); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode past events"})
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func CreatePastEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Title       string   `json:"title" binding:"required"`
			Date        string   `json:"date" binding:"required"`
			Description string   `json:"description" binding:"required"`
			Badge       string   `json:"badge"`
			Media       []string `json:"media"`
			Category    string   `json:"category"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		date, err := parseEventDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use RFC3339 or YYYY-MM-DD"})
			return
		}

		if input.Category == "" {
			input.Category = models.EventTypeOther
		}
		if !models.ValidEventType(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event category"})
			return
		}

		if input.Media == nil {
			input.Media = []string{}
		}

		now := time.Now()
		event := models.PastEvent{
			ID:          primitive.NewObjectID(),
			Title:       input.Title,
			Date:        date,
			Description: input.Description,
			Badge:       input.Badge,
			Media:       input.Media,
			Category:    input.Category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := cfg.Collection("past_events").InsertOne(ctx, event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create past event"})
			return
		}

		c.JSON(http.StatusCreated, event)
	}
}
