package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/yantrika/yantrika-backend-go/config"
	utils "github.com/yantrika/yantrika-backend-go/utils"
)

// UploadMedia accepts multipart images under the "images" key and returns
// the hosted URLs, ready to be pasted into imageUrl/media fields. Gated by
// the admin key in middleware.
func UploadMedia(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		files := form.File["images"] // key must be "images"
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no images provided"})
			return
		}

		folder := c.DefaultPostForm("folder", "uploads")

		urls := []string{}
		for _, fileHeader := range files {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
				return
			}

			url, err := utils.UploadImage(file, folder)
			file.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "image upload failed",
					"details": err.Error(),
					"file":    fileHeader.Filename,
				})
				return
			}

			urls = append(urls, url)
		}

		c.JSON(http.StatusOK, gin.H{"urls": urls})
	}
}
