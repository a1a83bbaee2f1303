package dto

type UploadedFile struct {
	FileName string `json:"fileName"`
	FileId   string `json:"fileId"`
}

type UploadResponse struct {
	Files []UploadedFile `json:"files"`
}

// PublishEmbedChunksMessage is the watermill payload queued after an upload
// is split. The consumer embeds the chunks and stores the vectors.
type PublishEmbedChunksMessage struct {
	FileId   string   `json:"fileId"`
	FileName string   `json:"fileName"`
	Chunks   []string `json:"chunks"`
}
