package common

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadFile saves an uploaded file under UploadPath with a random name,
// keeping the original extension. It returns the relative link.
func UploadFile(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(UploadPath, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory %s: %w", UploadPath, err)
	}
	link := uuid.New().String() + filepath.Ext(file.Filename)
	savePath := filepath.Join(UploadPath, link)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", err
	}
	return link, nil
}

func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
