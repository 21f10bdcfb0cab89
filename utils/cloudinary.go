package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func getCloudinaryInstance() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}

// UploadImage pushes a single file to the given Cloudinary folder and
// returns its hosted URL.
func UploadImage(file multipart.File, folder string) (string, error) {
	cld, err := getCloudinaryInstance()
	if err != nil {
		return "", fmt.Errorf("cloudinary config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uploadResp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %v", err)
	}

	return uploadResp.SecureURL, nil
}

// DeleteImage removes a hosted image given its full URL.
func DeleteImage(imageURL string) error {
	cld, err := getCloudinaryInstance()
	if err != nil {
		return fmt.Errorf("cloudinary config error: %v", err)
	}

	publicID, err := extractPublicID(imageURL)
	if err != nil {
		return fmt.Errorf("could not extract public ID: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("delete error: %v", err)
	}

	return nil
}

// extractPublicID pulls the Cloudinary public ID out of a delivery URL,
// e.g. https://res.cloudinary.com/demo/image/upload/v123/uploads/abc.jpg
// yields "uploads/abc".
func extractPublicID(imageURL string) (string, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return "", err
	}

	parts := strings.Split(strings.Trim(parsedURL.Path, "/"), "/")

	// The public ID is everything after upload/, minus an optional
	// version segment (e.g. v1234567890) and the file extension.
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx == len(parts)-1 {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	rest := parts[uploadIdx+1:]
	if isVersionSegment(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	publicID := path.Join(rest...)
	return strings.TrimSuffix(publicID, path.Ext(publicID)), nil
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
