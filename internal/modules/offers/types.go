package offers

import "strconv"

// PriceTier is one of up to three pricing rows on an offer. All fields are
// free text from the spreadsheet and independently optional.
type PriceTier struct {
	Label     string `json:"label"`
	Price     string `json:"price"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Offer is one catalog entry derived from a spreadsheet row. Offers are
// rebuilt on every feed fetch and never persisted; the name is the de facto
// key within a snapshot but is not guaranteed unique by the source.
type Offer struct {
	Category     string      `json:"category"`
	Name         string      `json:"name"`
	Floors       string      `json:"floors"`
	MasterRooms  string      `json:"master_rooms"`
	RegularRooms string      `json:"regular_rooms"`
	Bathrooms    string      `json:"bathrooms"`
	Facilities   []string    `json:"facilities"`
	Prices       []PriceTier `json:"prices"`
	Details      string      `json:"details"`
	Images       []string    `json:"images"`
	Video        string      `json:"video"`
}

// Tile is one category card on the catalog root: the category name, how many
// offers it holds, and the first member's first image as a thumbnail.
type Tile struct {
	Category  string `json:"category"`
	Count     int    `json:"count"`
	Thumbnail string `json:"thumbnail"`
}

// Spreadsheet column headers. The published sheet is keyed by these fixed
// Arabic strings; a missing column reads as the empty string.
const (
	headerCategory     = "الفئة"
	headerName         = "الاسم"
	headerFloors       = "عدد الادوار"
	headerMasterRooms  = "عدد الغرف الماستر"
	headerRegularRooms = "عدد الغرف العادية"
	headerBathrooms    = "عدد الحمامات"
	headerFacilities   = "المرافق"
	headerDetails      = "التفاصيل"
	headerVideo        = "الفيديو"
)

const maxImageColumns = 12

var priceTierHeaders = [3]struct {
	label, price, start, end string
}{
	{"تسمية السعر 1", "السعر 1", "تاريخ دخول السعر 1", "تاريخ خروج السعر 1"},
	{"تسمية السعر 2", "السعر 2", "تاريخ دخول السعر 2", "تاريخ خروج السعر 2"},
	{"تسمية السعر 3", "السعر 3", "تاريخ دخول السعر 3", "تاريخ خروج السعر 3"},
}

// imageHeader returns the header of the n-th image column (1-based).
func imageHeader(n int) string {
	return "صورة رقم " + strconv.Itoa(n)
}
