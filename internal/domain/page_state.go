package domain

// PageState is a page together with its items in z-order.
type PageState struct {
	Page  Page   `json:"page"`
	Items []Item `json:"items"`
}
