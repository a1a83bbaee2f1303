package dto

type DiscoverItem struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Content   string `json:"content"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type DiscoverResponse struct {
	Blogs []DiscoverItem `json:"blogs"`
}
