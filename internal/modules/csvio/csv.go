// Package csvio converts blog articles to and from the spreadsheet CSV
// format the admin UI exchanges with its users: fixed Arabic headers, a
// UTF-8 byte-order mark for spreadsheet consumers, and a tolerant importer
// that accepts English fallback keys.
package csvio

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/slugify"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ContentType is the MIME type used for CSV downloads.
const ContentType = "text/csv;charset=utf-8"

const (
	statusPublishedAr = "منشور"
	statusDraftAr     = "مسودة"
	untitledAr        = "عنوان غير محدد"
)

var exportHeaders = []string{
	"العنوان",
	"المحتوى",
	"المقتطف",
	"الصورة المميزة",
	"الرابط",
	"الحالة",
	"الفئة",
	"الكلمات المفتاحية",
	"عنوان SEO",
	"وصف SEO",
	"وقت القراءة",
	"رابط المقال",
	"تاريخ الإنشاء",
	"تاريخ التحديث",
	"تاريخ النشر",
}

// importKeys maps a field to its accepted headers: the Arabic export header
// first, then the English fallback.
var importKeys = map[string][]string{
	"title":            {"العنوان", "title"},
	"content":          {"المحتوى", "content"},
	"excerpt":          {"المقتطف", "excerpt"},
	"featured_image":   {"الصورة المميزة", "featured_image"},
	"status":           {"الحالة", "status"},
	"tags":             {"الكلمات المفتاحية", "tags"},
	"meta_title":       {"عنوان SEO", "meta_title"},
	"meta_description": {"وصف SEO", "meta_description"},
	"article_url":      {"رابط المقال", "article_url"},
}

// Filename builds the download name: <context>-<ISO date>.csv.
func Filename(context string, now time.Time) string {
	return context + "-" + now.Format("2006-01-02") + ".csv"
}

// Export renders articles as CSV text with a leading byte-order mark so
// spreadsheet applications detect the encoding.
func Export(blogs []models.BlogModel) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return "", err
	}

	for _, b := range blogs {
		status := statusDraftAr
		if b.Status == models.StatusPublished {
			status = statusPublishedAr
		}
		category := ""
		if b.Category != nil {
			category = b.Category.Name
		}
		readingTime := ""
		if b.ReadingTime > 0 {
			readingTime = strconv.Itoa(b.ReadingTime)
		}
		publishedAt := ""
		if b.PublishedAt != nil {
			publishedAt = formatDate(*b.PublishedAt)
		}

		row := []string{
			b.Title,
			b.Content,
			b.Excerpt,
			b.FeaturedImage,
			b.Slug,
			status,
			category,
			strings.Join(b.Tags, ", "),
			b.MetaTitle,
			b.MetaDescription,
			readingTime,
			b.ArticleURL,
			formatDate(b.CreatedAt),
			formatDate(b.UpdatedAt),
			publishedAt,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

// Import parses uploaded CSV into article drafts. Each field accepts the
// Arabic header or its English fallback; rows lacking both title and content
// are dropped silently. The slug gets a timestamp suffix because an imported
// batch may repeat titles. CRLF line endings inside quoted fields are read
// back as LF, so content round-trips up to that normalization.
func Import(r io.Reader, now time.Time) ([]models.BlogModel, error) {
	// BOMOverride tolerates exports from spreadsheet apps that keep the mark.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []models.BlogModel{}, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	field := func(row []string, name string) string {
		for _, key := range importKeys[name] {
			if i, ok := index[key]; ok && i < len(row) && strings.TrimSpace(row[i]) != "" {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	var drafts []models.BlogModel
	rowStamp := now
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		title := field(row, "title")
		content := field(row, "content")
		if title == "" && content == "" {
			continue
		}

		slugTitle := title
		if slugTitle == "" {
			slugTitle = "article"
		}
		if title == "" {
			title = untitledAr
		}

		status := models.StatusDraft
		var publishedAt *time.Time
		rawStatus := field(row, "status")
		if rawStatus == statusPublishedAr || rawStatus == models.StatusPublished {
			status = models.StatusPublished
			stamped := now
			publishedAt = &stamped
		}

		// Each row gets its own millisecond so repeated titles still
		// produce distinct slugs within one batch.
		rowStamp = rowStamp.Add(time.Millisecond)

		drafts = append(drafts, models.BlogModel{
			Title:           title,
			Content:         content,
			Excerpt:         field(row, "excerpt"),
			FeaturedImage:   field(row, "featured_image"),
			Slug:            slugify.MakeUnique(slugTitle, rowStamp),
			Status:          status,
			Tags:            splitTags(field(row, "tags")),
			MetaTitle:       field(row, "meta_title"),
			MetaDescription: field(row, "meta_description"),
			ArticleURL:      field(row, "article_url"),
			PublishedAt:     publishedAt,
		})
	}
	if drafts == nil {
		drafts = []models.BlogModel{}
	}
	return drafts, nil
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func splitTags(raw string) models.StringArray {
	if raw == "" {
		return models.StringArray{}
	}
	parts := strings.Split(raw, ",")
	out := make(models.StringArray, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
