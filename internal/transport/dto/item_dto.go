package dto

// SearchItemsRequest defines the query parameters for the item search endpoint.
type SearchItemsRequest struct {
	// Query string for the items to search for; must be at least 3
	// characters when supplied.
	Q string `form:"q" validate:"omitempty,min=3"`
}

// SearchItemsResponse is the search response envelope. Q is echoed back
// only when the caller supplied it.
type SearchItemsResponse struct {
	Items []SearchHitResponse `json:"items"`
	Q     string              `json:"q,omitempty"`
}

// SearchHitResponse is a single entry in the search response.
type SearchHitResponse struct {
	ItemID string `json:"item_id"`
}
