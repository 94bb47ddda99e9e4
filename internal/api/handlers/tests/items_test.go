package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chimichangapp/internal/api/handlers"
	"chimichangapp/internal/api/routes"
	"chimichangapp/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockItemHandler is a mock implementation of ItemHandlerInterface
type MockItemHandler struct {
	mock.Mock
}

func (m *MockItemHandler) GetItems(c *gin.Context) {
	m.Called(c)
}

func (m *MockItemHandler) UpdateItem(c *gin.Context) {
	m.Called(c)
}

func (m *MockItemHandler) SearchItems(c *gin.Context) {
	m.Called(c)
}

// Ensure MockItemHandler implements the interface (compile-time check)
var _ handlers.ItemHandlerInterface = (*MockItemHandler)(nil)

// MockCatalogRepository is a mock type for the catalog.Repository interface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Users(ctx context.Context) ([]catalog.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.User), args.Error(1)
}

func (m *MockCatalogRepository) Items(ctx context.Context) ([]catalog.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ItemSummary), args.Error(1)
}

func (m *MockCatalogRepository) Search(ctx context.Context, query string) ([]catalog.SearchHit, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchHit), args.Error(1)
}

// Ensure mock implements the interface
var _ catalog.Repository = (*MockCatalogRepository)(nil)

// --- Helper Function for Setup ---

func setupTestRouterWithItemMocks() (*gin.Engine, *MockCatalogRepository, *handlers.ItemHandler) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockCatalogRepository)
	validate := validator.New() // Use real validator
	// No search cache in handler tests; a nil cache always misses.
	handler := handlers.NewItemHandler(mockRepo, nil, validate)
	router := gin.New()
	return router, mockRepo, handler
}

func TestRegisterItemRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockItemHandler)

	router := gin.New()
	testGroup := router.Group("/api")

	// Act
	routes.RegisterItemRoutes(testGroup, mockHandler)

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/items/"},
		{http.MethodPut, "/api/items/:item_id"},
		{http.MethodGet, "/api/new_items/"},
	}

	registeredRoutes := router.Routes()

	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		mapKey := routeInfo.Method + " " + routeInfo.Path
		registeredMap[mapKey] = true
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")

	for _, expected := range expectedRoutes {
		mapKey := expected.Method + " " + expected.Path
		assert.True(t, registeredMap[mapKey], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestItemHandler_GetItems(t *testing.T) {
	router, mockRepo, handler := setupTestRouterWithItemMocks()
	router.GET("/items", handler.GetItems)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		expectedItems := []catalog.ItemSummary{{Name: "wand"}, {Name: "flying broom"}}
		mockRepo.On("Items", mock.Anything).Return(expectedItems, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/items", nil)
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[{"name":"wand"},{"name":"flying broom"}]`, recorder.Body.String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository Error", func(t *testing.T) {
		// Arrange
		mockRepo.On("Items", mock.Anything).Return(nil, errors.New("boom")).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/items", nil)
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	router, _, handler := setupTestRouterWithItemMocks()
	router.PUT("/items/:item_id", handler.UpdateItem)

	putJSON := func(path, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("Success - Required Fields Only", func(t *testing.T) {
		recorder := putJSON("/items/1", `{"name":"Foo","price":35.4}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"item_id":1,"item":{"name":"Foo","description":null,"price":35.4,"tax":null}}`,
			recorder.Body.String())
	})

	t.Run("Success - All Fields", func(t *testing.T) {
		recorder := putJSON("/items/2", `{"name":"Foo","description":"A nice item","price":35.4,"tax":3.2}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"item_id":2,"item":{"name":"Foo","description":"A nice item","price":35.4,"tax":3.2}}`,
			recorder.Body.String())
	})

	t.Run("Missing Name", func(t *testing.T) {
		recorder := putJSON("/items/3", `{"price":10.0}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var response struct {
			Detail []struct {
				Loc  []string `json:"loc"`
				Msg  string   `json:"msg"`
				Type string   `json:"type"`
			} `json:"detail"`
		}
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Detail, 1)
		assert.Equal(t, []string{"body", "name"}, response.Detail[0].Loc)
		assert.Equal(t, "value_error.missing", response.Detail[0].Type)
	})

	t.Run("Non-Numeric Price", func(t *testing.T) {
		recorder := putJSON("/items/4", `{"name":"Foo","price":"expensive"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var response struct {
			Detail []struct {
				Loc  []string `json:"loc"`
				Type string   `json:"type"`
			} `json:"detail"`
		}
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Detail, 1)
		assert.Equal(t, []string{"body", "price"}, response.Detail[0].Loc)
		assert.Equal(t, "type_error", response.Detail[0].Type)
	})

	t.Run("Non-Integer Item ID", func(t *testing.T) {
		recorder := putJSON("/items/abc", `{"name":"Foo","price":35.4}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"item_id"`)
		assert.Contains(t, recorder.Body.String(), "type_error.integer")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		recorder := putJSON("/items/5", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestItemHandler_SearchItems(t *testing.T) {
	router, mockRepo, handler := setupTestRouterWithItemMocks()
	router.GET("/new_items", handler.SearchItems)

	searchHits := []catalog.SearchHit{{ItemID: "Foo"}, {ItemID: "Bar"}}

	t.Run("Success - With Query", func(t *testing.T) {
		mockRepo.On("Search", mock.Anything, "wand").Return(searchHits, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new_items?q=wand", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"items":[{"item_id":"Foo"},{"item_id":"Bar"}],"q":"wand"}`,
			recorder.Body.String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Without Query", func(t *testing.T) {
		mockRepo.On("Search", mock.Anything, "").Return(searchHits, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new_items", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		// q is omitted from the envelope when the caller did not supply it.
		assert.JSONEq(t,
			`{"items":[{"item_id":"Foo"},{"item_id":"Bar"}]}`,
			recorder.Body.String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Query Too Short", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new_items?q=ab", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"q"`)
		assert.Contains(t, recorder.Body.String(), "value_error.min")
		// The repository must not be hit on a validation failure.
		mockRepo.AssertNotCalled(t, "Search", mock.Anything, "ab")
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo.On("Search", mock.Anything, "wand").Return(nil, errors.New("boom")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new_items?q=wand", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		mockRepo.AssertExpectations(t)
	})
}
