package dto

// ListUsersRequest defines the query parameters for the user listing endpoint.
type ListUsersRequest struct {
	// ID groups the returned users in the response envelope. Optional.
	ID string `form:"id"`
}
