package imageprocessor

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/janmeier/inkwell/internal/pkg/env"
)

const (
	postImageDir  = "posts"
	thumbnailDir  = "posts/thumbs"
	thumbnailSize = 400
)

// UploadBaseDir resolves the root directory for stored uploads.
func UploadBaseDir() string {
	return env.GetEnv("UPLOAD_DIR", "./uploads")
}

// SavePostImage stores an uploaded post image under a uuid name and renders a
// thumbnail variant next to it. It returns the path relative to the upload
// base directory, which is what the post record keeps.
func SavePostImage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.New().String() + ext
	relPath := filepath.Join(postImageDir, name)
	absPath := filepath.Join(UploadBaseDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(absPath)
		return "", fmt.Errorf("store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	// Thumbnail generation is best-effort: some formats (animated GIF, WEBP)
	// may not decode, the original is still served in that case.
	if img, err := imaging.Open(absPath); err == nil {
		thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
		thumbPath := filepath.Join(UploadBaseDir(), thumbnailDir, name)
		if err := os.MkdirAll(filepath.Dir(thumbPath), 0o755); err == nil {
			_ = imaging.Save(thumb, thumbPath)
		}
	}

	return relPath, nil
}

// ThumbnailPath maps a stored post image path to its thumbnail variant.
func ThumbnailPath(relPath string) string {
	return filepath.Join(thumbnailDir, filepath.Base(relPath))
}
