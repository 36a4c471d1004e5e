package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookswap/internal/enhance"
	"bookswap/internal/events"
	"bookswap/internal/geography"
	"bookswap/internal/handlers"
	"bookswap/internal/middleware"
	"bookswap/internal/models"
	"bookswap/internal/repositories"
	"bookswap/internal/services"
	"bookswap/internal/storage"
	"bookswap/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupApp wires every handler over an in-memory store.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop()
	store := storage.NewMemoryStore()
	bus := events.NewBus()
	validate := validation.New()

	userRepo := repositories.NewStoreUserRepository(store)
	listingRepo := repositories.NewStoreListingRepository(store)

	authService := services.NewAuthService(userRepo, repositories.NewStoreSessionRepository(store), bus, log, "test_jwt_secret")
	listingService := services.NewListingService(listingRepo, userRepo, bus, validate, log)
	view := services.NewListingsView(listingService, bus)
	t.Cleanup(view.Close)
	enhanceService := enhance.NewService(nil, enhance.Config{}, log)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	auth := middleware.AuthRequired(authService, log)

	handlers.NewAuthHandler(authService, listingService, validate, log).RegisterRoutes(apiV1)
	handlers.NewListingHandler(listingService, view, log).RegisterRoutes(apiV1, auth)
	handlers.NewGeoHandler().RegisterRoutes(apiV1)
	handlers.NewEnhanceHandler(enhanceService, validate, log).RegisterRoutes(apiV1)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func login(t *testing.T, app *fiber.App, email string) (string, models.User) {
	t.Helper()
	resp, body := do(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token, out.User
}

func newListingBody() map[string]any {
	return map[string]any{
		"title":        "Organic Chemistry",
		"author":       "Morrison",
		"subject":      "Chemistry",
		"condition":    "Good",
		"price":        320,
		"contactPhone": "01900000000",
		"description":  "Some notes in margins",
		"location":     map[string]string{"divisionId": "sylhet", "districtId": "moulvibazar", "upazilaId": "sreemangal"},
	}
}

func listings(t *testing.T, app *fiber.App, path string) []models.BookListing {
	t.Helper()
	resp, body := do(t, app, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out []models.BookListing
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAuthLoginLogoutAndMe(t *testing.T) {
	app := setupApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user":null}`, string(body))

	_, user := login(t, app, "rahim@example.com")
	assert.Equal(t, "rahim", user.DisplayName)

	_, again := login(t, app, "rahim@example.com")
	assert.Equal(t, user.UID, again.UID)

	_, body = do(t, app, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Contains(t, string(body), user.UID)

	resp, body = do(t, app, http.MethodGet, "/api/v1/users/"+user.UID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"email":"rahim@example.com"`)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, body = do(t, app, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.JSONEq(t, `{"user":null}`, string(body))

	resp, _ = do(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/users/nobody", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListingsSeededAndSorted(t *testing.T) {
	app := setupApp(t)

	all := listings(t, app, "/api/v1/listings")
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt))
	}

	resp, _ := do(t, app, http.MethodGet, "/api/v1/listings/"+all[0].ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, "/api/v1/listings/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListingsFilter(t *testing.T) {
	app := setupApp(t)

	byDivision := listings(t, app, "/api/v1/listings?division=chattogram")
	require.Len(t, byDivision, 1)
	assert.Equal(t, "chattogram", byDivision[0].Location.DivisionID)

	byText := listings(t, app, "/api/v1/listings?q=BIOLOGY")
	require.Len(t, byText, 1)
	assert.Equal(t, "Campbell Biology", byText[0].Title)

	none := listings(t, app, "/api/v1/listings?q=biology&division=dhaka")
	assert.Empty(t, none)
}

func TestCreateListingRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/listings", "", newListingBody())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Len(t, listings(t, app, "/api/v1/listings"), 3)
}

func TestCreateListingAppearsFirst(t *testing.T) {
	app := setupApp(t)
	token, user := login(t, app, "nusrat@uni.edu")

	assert.Len(t, listings(t, app, "/api/v1/listings"), 3)

	resp, body := do(t, app, http.MethodPost, "/api/v1/listings", token, newListingBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created models.BookListing
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, user.UID, created.SellerID)
	assert.Equal(t, "nusrat", created.SellerName)

	all := listings(t, app, "/api/v1/listings")
	require.Len(t, all, 4)
	assert.Equal(t, created.ID, all[0].ID)

	mine := listings(t, app, "/api/v1/users/"+user.UID+"/listings")
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
}

func TestCreateListingValidation(t *testing.T) {
	app := setupApp(t)
	token, _ := login(t, app, "a@x.com")

	negative := newListingBody()
	negative["price"] = -10
	resp, body := do(t, app, http.MethodPost, "/api/v1/listings", token, negative)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "price")

	badCondition := newListingBody()
	badCondition["condition"] = "Mint"
	resp, _ = do(t, app, http.MethodPost, "/api/v1/listings", token, badCondition)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	wrongPath := newListingBody()
	wrongPath["location"] = map[string]string{"divisionId": "dhaka", "districtId": "moulvibazar", "upazilaId": "sreemangal"}
	resp, body = do(t, app, http.MethodPost, "/api/v1/listings", token, wrongPath)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "location")

	assert.Len(t, listings(t, app, "/api/v1/listings"), 3)
}

func TestUpdateAndDeleteListing(t *testing.T) {
	app := setupApp(t)
	owner, _ := login(t, app, "owner@x.com")
	other, _ := login(t, app, "other@x.com")

	_, body := do(t, app, http.MethodPost, "/api/v1/listings", owner, newListingBody())
	var created models.BookListing
	require.NoError(t, json.Unmarshal(body, &created))
	path := "/api/v1/listings/" + created.ID

	resp, _ := do(t, app, http.MethodPatch, path, other, map[string]any{"price": 1})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPatch, "/api/v1/listings/missing", owner, map[string]any{"price": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, app, http.MethodPatch, path, owner, map[string]any{"price": 150, "condition": "Fair"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var updated models.BookListing
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, models.ConditionFair, updated.Condition)
	assert.Equal(t, created.Title, updated.Title)

	assert.Equal(t, 150.0, listings(t, app, "/api/v1/listings")[0].Price)

	resp, _ = do(t, app, http.MethodDelete, path, other, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "deleting twice is a no-op")
	assert.Len(t, listings(t, app, "/api/v1/listings"), 3)
}

func TestGeoRoutes(t *testing.T) {
	app := setupApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/v1/geo/divisions", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var divisions []models.Division
	require.NoError(t, json.Unmarshal(body, &divisions))
	assert.Len(t, divisions, 8)

	resp, body = do(t, app, http.MethodGet, "/api/v1/geo/divisions/sylhet/districts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var districts []models.District
	require.NoError(t, json.Unmarshal(body, &districts))
	require.NotEmpty(t, districts)
	for _, d := range districts {
		assert.Equal(t, "sylhet", d.DivisionID)
	}

	resp, body = do(t, app, http.MethodGet, "/api/v1/geo/districts/moulvibazar/upazilas", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "sreemangal")

	resp, _ = do(t, app, http.MethodGet, "/api/v1/geo/divisions/atlantis/districts", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGeoOptions(t *testing.T) {
	app := setupApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/v1/geo/options", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out handlers.OptionsResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Options.Divisions, 8)
	assert.Empty(t, out.Options.Districts)
	assert.False(t, out.Complete)
	assert.Nil(t, out.Location)

	resp, body = do(t, app, http.MethodGet, "/api/v1/geo/options?district=gazipur&upazila=kaliakair", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = handlers.OptionsResponse{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, geography.Selection{}, out.Selection, "children without a division are dropped")

	resp, body = do(t, app, http.MethodGet, "/api/v1/geo/options?division=dhaka&district=gazipur", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = handlers.OptionsResponse{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.Options.Districts)
	require.NotEmpty(t, out.Options.Upazilas)
	for _, u := range out.Options.Upazilas {
		assert.Equal(t, "gazipur", u.DistrictID)
	}
	assert.False(t, out.Complete)

	resp, body = do(t, app, http.MethodGet, "/api/v1/geo/options?division=dhaka&district=gazipur&upazila=kaliakair", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = handlers.OptionsResponse{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Complete)
	require.NotNil(t, out.Location)
	assert.Equal(t, models.LocationData{DivisionID: "dhaka", DistrictID: "gazipur", UpazilaID: "kaliakair"}, *out.Location)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/geo/options?division=khulna&district=gazipur&upazila=kaliakair", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEnhanceFallsBackWhenDisabled(t *testing.T) {
	app := setupApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/enhance/description", "",
		map[string]string{"title": "Physics", "author": "Verma", "description": "good condition"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"description":"good condition","enhanced":false}`, string(body))

	resp, _ = do(t, app, http.MethodPost, "/api/v1/enhance/description", "", map[string]string{"title": "Physics"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, app, http.MethodGet, "/api/v1/insights?title=Physics&author=Verma", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"insights":""}`, string(body))
}
