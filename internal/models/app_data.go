package models

// AppData is the whole-catalog snapshot exchanged with the persistence
// store and the app-data endpoint. Writes replace stored state
// wholesale; there are no partial updates.
type AppData struct {
	MenuItems []MenuItem `json:"menuItems"`
	Coupons   []Coupon   `json:"coupons"`
}
