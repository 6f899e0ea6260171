package models

import "time"

// Image is a picture attached to a message, stored on disk and referenced by
// path.
type Image struct {
	ID        int64     `json:"id"`
	MessageID int64     `json:"message_id"`
	FilePath  string    `json:"file_path"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	Hash      string    `json:"hash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Metadata  Metadata  `json:"metadata,omitempty"`
}

// VisionAnalysis is the result of running a vision model over an image.
type VisionAnalysis struct {
	ID              int64      `json:"id"`
	ImageID         int64      `json:"image_id"`
	MessageID       int64      `json:"message_id,omitempty"`
	Model           string     `json:"model"`
	Description     string     `json:"description,omitempty"`
	DetectedObjects []Metadata `json:"detected_objects,omitempty"`
	ExtractedText   string     `json:"extracted_text,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Confidence      float64    `json:"confidence,omitempty"` // 0.0-1.0
	ProcessingTime  float64    `json:"processing_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	Metadata        Metadata   `json:"metadata,omitempty"`
}
