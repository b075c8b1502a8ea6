package types

// CatalogItem is one record of the remote art catalog. Only the title is
// consumed; any other fields in the payload are ignored.
type CatalogItem struct {
	Title string `json:"title"`
}

// ID returns the identifier the favorites workflow uses for the item.
func (c CatalogItem) ID() ItemID { return ItemID(c.Title) }
