package models

// Promotion is a single advertised deal: the regular price, the discounted
// price, and where the deal applies.
type Promotion struct {
	ID         int64
	Title      string
	FullPrice  float64
	PromoPrice float64
	Location   string
}
