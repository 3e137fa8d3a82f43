package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"article-hub/backend/common"
	apperrors "article-hub/backend/common/errors"
	"article-hub/backend/common/httperr"
	"article-hub/backend/model"
)

// UploadAndRecordFile saves an uploaded file to disk and creates its record.
func UploadAndRecordFile(userPK int64, file *multipart.FileHeader) (*model.File, error) {
	link, err := common.UploadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	fileRecord := model.File{
		UserID:   userPK,
		Filename: file.Filename,
		Link:     link,
	}

	if err := model.DB.Create(&fileRecord).Error; err != nil {
		// Clean up the saved file if the DB record fails.
		diskPath := filepath.Join(common.UploadPath, link)
		_ = common.DeleteFile(diskPath)
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	return &fileRecord, nil
}

// DeleteFileRecord deletes an owned file record and the file from disk.
func DeleteFileRecord(fileUUID string, ownerPK int64) error {
	var fileRecord model.File
	err := model.DB.Where("uuid = ? AND user_id = ?", fileUUID, ownerPK).First(&fileRecord).Error
	if err != nil {
		return httperr.BadRequest(apperrors.ErrFileNotFound, "File is not found")
	}

	if err := model.DB.Delete(&fileRecord).Error; err != nil {
		return fmt.Errorf("failed to delete file record %s: %w", fileUUID, err)
	}

	diskPath := filepath.Join(common.UploadPath, fileRecord.Link)
	if err := common.DeleteFile(diskPath); err != nil {
		// The DB record is gone; losing the disk file is only worth a log line.
		common.SysError(fmt.Sprintf("failed to delete file %s from disk: %s", diskPath, err.Error()))
	}
	return nil
}

// FindFilesForUser lists the files a user owns.
func FindFilesForUser(userPK int64) ([]*model.File, error) {
	return model.GetFilesByUser(userPK)
}
