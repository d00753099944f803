package blog

// SaveBlogDTO carries the editable draft fields. Tags arrive as the
// comma-separated string the editor holds; loading an article for editing
// re-joins the stored array into the same shape.
type SaveBlogDTO struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	Excerpt         string `json:"excerpt"`
	FeaturedImage   string `json:"featured_image"`
	Status          string `json:"status"`
	CategoryID      string `json:"category_id"`
	Tags            string `json:"tags"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	ArticleURL      string `json:"article_url"`
}
