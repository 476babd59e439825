package entities

import "time"

// StoredFile 已上传文件的元数据，文件内容保存在对象存储
type StoredFile struct {
	ID          string    `json:"id" db:"id"`
	FileName    string    `json:"fileName" db:"file_name"`
	FileUrl     string    `json:"fileUrl" db:"file_url"`
	ObjectKey   string    `json:"-" db:"object_key"`
	ContentType string    `json:"contentType" db:"content_type"`
	Size        int64     `json:"size" db:"size"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// DeleteFilesDTO 批量删除文件的数据传输对象
type DeleteFilesDTO struct {
	FileIds []string `json:"fileIds" binding:"required,min=1"`
}
