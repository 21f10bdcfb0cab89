package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerateETag derives a strong ETag for a list/detail response from the
// newest record's id and modification time.
func GenerateETag(id primitive.ObjectID, updatedAt time.Time) string {
	sum := md5.Sum([]byte(id.Hex() + strconv.FormatInt(updatedAt.UnixNano(), 10)))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
