package offers

// Catalog is the in-memory view-model over one feed snapshot. Filtering never
// refetches; a Catalog is built once per request from the last successful
// fetch and discarded afterwards.
type Catalog struct {
	offers []Offer
}

// NewCatalog wraps a snapshot.
func NewCatalog(snapshot []Offer) *Catalog {
	return &Catalog{offers: snapshot}
}

// Tiles groups offers by non-empty category, preserving first-seen order.
// An offer with no category never appears as (or inside) a tile.
func (c *Catalog) Tiles() []Tile {
	byCategory := map[string]*Tile{}
	var order []string

	for _, o := range c.offers {
		if o.Category == "" {
			continue
		}
		t, ok := byCategory[o.Category]
		if !ok {
			t = &Tile{Category: o.Category}
			if len(o.Images) > 0 {
				t.Thumbnail = o.Images[0]
			}
			byCategory[o.Category] = t
			order = append(order, o.Category)
		}
		t.Count++
	}

	tiles := make([]Tile, 0, len(order))
	for _, name := range order {
		tiles = append(tiles, *byCategory[name])
	}
	return tiles
}

// Visible filters the snapshot. A single-offer selection (exact name match,
// possibly several rows since names are not unique) overrides a category
// selection; with neither set, every offer is visible.
func (c *Catalog) Visible(category, offerName string) []Offer {
	switch {
	case offerName != "":
		return filter(c.offers, func(o Offer) bool { return o.Name == offerName })
	case category != "":
		return filter(c.offers, func(o Offer) bool { return o.Category == category })
	default:
		out := make([]Offer, len(c.offers))
		copy(out, c.offers)
		return out
	}
}

func filter(in []Offer, keep func(Offer) bool) []Offer {
	out := []Offer{}
	for _, o := range in {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
