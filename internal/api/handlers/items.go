package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"chimichangapp/internal/cache"
	"chimichangapp/internal/catalog"
	"chimichangapp/internal/schema"
	"chimichangapp/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ItemHandler holds the dependencies for item operations
type ItemHandler struct {
	repo        catalog.Repository
	searchCache *cache.SearchCache
	validator   *validator.Validate
}

// NewItemHandler creates a new ItemHandler with the given repository and
// optional search cache (nil disables caching).
func NewItemHandler(repo catalog.Repository, searchCache *cache.SearchCache, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{repo: repo, searchCache: searchCache, validator: validate}
}

// GetItems godoc
// @Summary      List all items
// @Description  Retrieves the list of available items.
// @Tags         items
// @Produce      json
// @Success      200  {array}   catalog.ItemSummary "Successfully retrieved list of items"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.repo.Items(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateItem godoc
// @Summary      Update an item
// @Description  Validates the submitted item and echoes it back together with the item ID.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item_id  path      int          true  "Item ID"
// @Param        item     body      schema.Item  true  "Item fields"
// @Success      200  {object}  schema.UpdateResult "Validated item"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Malformed body"
// @Failure      422  {object}  map[string]any{detail=[]any} "Unprocessable Entity - Validation failed"
// @Router       /items/{item_id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationFailure(fieldErrorDescriptor{
			Loc:  []string{"path", "item_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}))
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("Error binding item update JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, fieldErr := schema.ValidateItem(itemID, payload)
	if fieldErr != nil {
		c.JSON(http.StatusUnprocessableEntity, validationFailure(schemaErrorDescriptor(fieldErr)))
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchItems godoc
// @Summary      Search items
// @Description  Returns items matching the query string; the query is echoed back when supplied.
// @Tags         items
// @Produce      json
// @Param        q  query  string  false  "Query string, minimum 3 characters"
// @Success      200  {object}  dto.SearchItemsResponse "Search results"
// @Failure      422  {object}  map[string]any{detail=[]any} "Unprocessable Entity - Validation failed"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /new_items [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	var req dto.SearchItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationFailure(queryErrorDescriptors(err)...))
		return
	}

	ctx := c.Request.Context()
	if body, ok := h.searchCache.Get(ctx, req.Q); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	hits, err := h.repo.Search(ctx, req.Q)
	if err != nil {
		log.Printf("Error searching items for query %q: %v", req.Q, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search items"})
		return
	}

	resp := dto.SearchItemsResponse{
		Items: make([]dto.SearchHitResponse, 0, len(hits)),
		Q:     req.Q,
	}
	for _, hit := range hits {
		resp.Items = append(resp.Items, dto.SearchHitResponse{ItemID: hit.ItemID})
	}

	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Error encoding search response: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search items"})
		return
	}

	h.searchCache.Set(ctx, req.Q, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
