package domain

// Item is a catalog record owned by a user and optionally assigned to a
// category. Owner and Category are denormalized from the users and
// categories tables on every read; Category is nil when the item has no
// category set.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Owner       string  `json:"owner"`
	Category    *string `json:"category"`
}

// NewItem carries the fields accepted when creating an item.
type NewItem struct {
	Name        string
	Description string
	Price       float64
	UserID      int64
	CategoryID  *int64
}

// ItemUpdate carries the fields of a partial update. A nil field is left
// untouched. The update statement is assembled from this fixed set of
// columns only; client-supplied key names never reach the SQL text.
type ItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *int64
}
