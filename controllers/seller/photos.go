package sellerController

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/craftkart/marketplace-api/logger"
)

const (
	maxPhotos    = 5
	maxPhotoSize = 5 << 20 // 5 MB
)

// UploadDir is where product photos live; served statically under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// savePhotos stores uploaded files under UploadDir with generated names.
// Content is sniffed, not extension-trusted; any rejection removes files
// already written for this request.
func savePhotos(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > maxPhotos {
		return nil, fmt.Errorf("a maximum of %d photos is allowed", maxPhotos)
	}
	if err := os.MkdirAll(UploadDir(), 0o755); err != nil {
		return nil, err
	}

	var saved []string
	for _, fh := range files {
		if fh.Size > maxPhotoSize {
			deletePhotos(saved)
			return nil, fmt.Errorf("%s exceeds the 5 MB photo limit", fh.Filename)
		}

		f, err := fh.Open()
		if err != nil {
			deletePhotos(saved)
			return nil, err
		}
		mtype, err := mimetype.DetectReader(f)
		f.Close()
		if err != nil {
			deletePhotos(saved)
			return nil, err
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			deletePhotos(saved)
			return nil, fmt.Errorf("%s is not an image, please upload images only", fh.Filename)
		}

		name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
		if err := c.SaveUploadedFile(fh, filepath.Join(UploadDir(), name)); err != nil {
			deletePhotos(saved)
			return nil, err
		}
		saved = append(saved, name)
	}
	return saved, nil
}

func deletePhotos(names []string) {
	for _, name := range names {
		path := filepath.Join(UploadDir(), filepath.Base(name))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.L.Warn("failed to remove photo", zap.String("path", path), zap.Error(err))
		}
	}
}
