package handlers

import (
	"log"
	"net/http"

	"chimichangapp/internal/catalog"
	"chimichangapp/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the repository dependency for user operations
type UserHandler struct {
	repo catalog.Repository
}

// NewUserHandler creates a new UserHandler with the given repository
func NewUserHandler(repo catalog.Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

// GetUsers godoc
// @Summary      List all users
// @Description  Retrieves the list of users, grouped under the supplied id query parameter.
// @Tags         users
// @Produce      json
// @Param        id  query  string  false  "Query string"  example(010)
// @Success      200  {object}  map[string][]catalog.User "Users grouped by id"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.repo.Users(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	// An absent id groups the users under a literal "null" key, matching
	// how a null map key serializes in the original service.
	key := req.ID
	if key == "" {
		key = "null"
	}
	c.JSON(http.StatusOK, gin.H{key: users})
}
