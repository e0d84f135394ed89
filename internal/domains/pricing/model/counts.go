package model

const (
	FieldSoupCount         = "soup_count"
	FieldMenu1Count        = "menu1_count"
	FieldMenu2Count        = "menu2_count"
	FieldMenu3Count        = "menu3_count"
	FieldMenu4Count        = "menu4_count"
	FieldBusinessMenuCount = "business_menu_count"
	FieldDessertCount      = "dessert_count"
)

// ItemCounts holds per-item portion counts of a delivery order. A nil count
// means the item was not ordered and reads as zero everywhere.
type ItemCounts struct {
	Soup         *int `db:"soup_count"          json:"soup,omitempty"          validate:"omitempty,gte=0"`
	Menu1        *int `db:"menu1_count"         json:"menu1,omitempty"         validate:"omitempty,gte=0"`
	Menu2        *int `db:"menu2_count"         json:"menu2,omitempty"         validate:"omitempty,gte=0"`
	Menu3        *int `db:"menu3_count"         json:"menu3,omitempty"         validate:"omitempty,gte=0"`
	Menu4        *int `db:"menu4_count"         json:"menu4,omitempty"         validate:"omitempty,gte=0"`
	BusinessMenu *int `db:"business_menu_count" json:"business_menu,omitempty" validate:"omitempty,gte=0"`
	Dessert      *int `db:"dessert_count"       json:"dessert,omitempty"       validate:"omitempty,gte=0"`
}

// CountOf dereferences a nullable count.
func CountOf(c *int) int {
	if c == nil {
		return 0
	}

	return *c
}
