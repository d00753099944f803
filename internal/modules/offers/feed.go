package offers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/awqat-travel/core/internal/config"
	pkgredis "github.com/awqat-travel/core/internal/pkg/redis"
	"go.uber.org/zap"
)

const feedCacheKey = "offers:feed:csv"

// Feed fetches the published spreadsheet and maps rows into offers.
// Any network or parse failure yields an empty list plus a logged diagnostic;
// callers cannot distinguish that from a feed that is genuinely empty.
type Feed struct {
	url    string
	ttl    time.Duration
	client *http.Client
	cache  *pkgredis.Client
	logger *zap.Logger
}

// NewFeed builds the feed adapter. cache may be nil, in which case every call
// hits the network.
func NewFeed(cfg config.FeedConfig, cache *pkgredis.Client, logger *zap.Logger) *Feed {
	return &Feed{
		url:    cfg.CSVURL,
		ttl:    time.Duration(cfg.CacheTTLSec) * time.Second,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		cache:  cache,
		logger: logger,
	}
}

// Fetch returns the current offer snapshot. The raw CSV text is cached so
// that catalog selection changes within the TTL never refetch the sheet.
func (f *Feed) Fetch(ctx context.Context) []Offer {
	text, err := f.csvText(ctx)
	if err != nil {
		f.logger.Warn("offer feed fetch failed", zap.Error(err))
		return []Offer{}
	}

	parsed, err := ParseFeed(text)
	if err != nil {
		f.logger.Warn("offer feed parse failed", zap.Error(err))
		return []Offer{}
	}
	return parsed
}

func (f *Feed) csvText(ctx context.Context) (string, error) {
	if f.cache != nil {
		if cached, err := f.cache.Get(ctx, feedCacheKey); err == nil && cached != "" {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("feed responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	text := string(body)

	if f.cache != nil {
		if err := f.cache.Set(ctx, feedCacheKey, text, f.ttl); err != nil {
			f.logger.Warn("offer feed cache write failed", zap.Error(err))
		}
	}
	return text, nil
}

// Invalidate drops the cached snapshot so the next Fetch refetches the sheet.
func (f *Feed) Invalidate(ctx context.Context) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Del(ctx, feedCacheKey); err != nil {
		f.logger.Warn("offer feed cache invalidate failed", zap.Error(err))
	}
}

// ParseFeed parses CSV text with a header row into offers. Unknown columns
// are ignored and missing columns default to empty strings. Rows that are
// entirely empty are skipped.
func ParseFeed(text string) ([]Offer, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, "\uFEFF")))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return []Offer{}, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var result []Offer
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlankRow(row) {
			continue
		}

		offer := Offer{
			Category:     field(row, headerCategory),
			Name:         field(row, headerName),
			Floors:       field(row, headerFloors),
			MasterRooms:  field(row, headerMasterRooms),
			RegularRooms: field(row, headerRegularRooms),
			Bathrooms:    field(row, headerBathrooms),
			Facilities:   splitFacilities(field(row, headerFacilities)),
			Details:      field(row, headerDetails),
			Video:        field(row, headerVideo),
		}

		for _, tier := range priceTierHeaders {
			p := PriceTier{
				Label:     field(row, tier.label),
				Price:     field(row, tier.price),
				StartDate: field(row, tier.start),
				EndDate:   field(row, tier.end),
			}
			if p.Label != "" || p.Price != "" || p.StartDate != "" || p.EndDate != "" {
				offer.Prices = append(offer.Prices, p)
			}
		}

		for n := 1; n <= maxImageColumns; n++ {
			if img := field(row, imageHeader(n)); img != "" {
				offer.Images = append(offer.Images, img)
			}
		}

		result = append(result, offer)
	}
	if result == nil {
		result = []Offer{}
	}
	return result, nil
}

// splitFacilities splits the comma-separated tag list into trimmed chips.
func splitFacilities(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
