package models

// Extra is an optional add-on with its own price. The set of extras is
// fixed per widget (it comes from the config); only the selected flag
// changes at runtime.
type Extra struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Cents  `json:"price"`
	Selected bool   `json:"selected"`
}
