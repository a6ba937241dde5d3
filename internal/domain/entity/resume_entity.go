package entity

import "time"

// PDFContentType is the only content type resumes are stored with.
const PDFContentType = "application/pdf"

// Resume is an uploaded PDF. FileData is only populated on the download path;
// list and detail reads leave it nil so bulk responses never carry file bytes.
type Resume struct {
	ID           string
	UserID       string
	Name         string
	OriginalName string
	FileData     []byte
	FileSize     int64
	ContentType  string
	UploadDate   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
