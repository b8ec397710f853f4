package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageTestRouter() (*gin.Engine, *fakeNavbarRepo, *fakeCategoryRepo, *fakeSubCategoryRepo, *fakeProductRepo) {
	navbars := &fakeNavbarRepo{}
	cats := &fakeCategoryRepo{}
	subs := &fakeSubCategoryRepo{}
	products := &fakeProductRepo{}
	h := NewPageHandler(navbars, cats, subs, products)

	r := gin.New()
	r.GET("/api/page/*slugs", h.Resolve)
	return r, navbars, cats, subs, products
}

// seedCatalog builds the canonical four-level chain used across the
// resolution tests: networking / switches / poe-switches / switch-24.
func seedCatalog(t *testing.T, navbars *fakeNavbarRepo, cats *fakeCategoryRepo, subs *fakeSubCategoryRepo, products *fakeProductRepo) {
	t.Helper()
	networking := seedNavbar(t, navbars, "Networking")
	switches := seedCategory(t, cats, networking, "Switches")
	seedCategory(t, cats, networking, "Wireless Routers")
	poe := seedSubCategory(t, subs, switches, "PoE Switches")
	seedSubCategory(t, subs, switches, "Rack Switches")
	seedProduct(t, products, switches, &poe, "Switch-24")
	seedProduct(t, products, switches, nil, "Switch-8")
}

func TestPageResolveNavbarOnly(t *testing.T) {
	r, navbars, cats, subs, products := newPageTestRouter()
	seedCatalog(t, navbars, cats, subs, products)

	w := performJSON(t, r, http.MethodGet, "/api/page/networking", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "networking", data["navbarCategory"].(map[string]interface{})["slug"])
	assert.Len(t, data["categories"].([]interface{}), 2)
	assert.NotContains(t, data, "category")
}

func TestPageResolveCategoryLevel(t *testing.T) {
	r, navbars, cats, subs, products := newPageTestRouter()
	seedCatalog(t, navbars, cats, subs, products)

	w := performJSON(t, r, http.MethodGet, "/api/page/networking/switches", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "switches", data["category"].(map[string]interface{})["slug"])
	assert.Len(t, data["categories"].([]interface{}), 2)
	assert.Len(t, data["subCategories"].([]interface{}), 2)
	// Category-level product listing spans subcategory-filed products.
	assert.Len(t, data["products"].([]interface{}), 2)
}

func TestPageResolveSubCategoryLevel(t *testing.T) {
	r, navbars, cats, subs, products := newPageTestRouter()
	seedCatalog(t, navbars, cats, subs, products)

	w := performJSON(t, r, http.MethodGet, "/api/page/networking/switches/poe-switches", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "poe-switches", data["subCategory"].(map[string]interface{})["slug"])
	assert.Len(t, data["subCategories"].([]interface{}), 2)

	productsData := data["products"].([]interface{})
	require.Len(t, productsData, 1)
	assert.Equal(t, "switch-24", productsData[0].(map[string]interface{})["slug"])
}

func TestPageResolveProductLevel(t *testing.T) {
	r, navbars, cats, subs, products := newPageTestRouter()
	seedCatalog(t, navbars, cats, subs, products)

	w := performJSON(t, r, http.MethodGet, "/api/page/networking/switches/poe-switches/switch-24", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "networking", data["navbarCategory"].(map[string]interface{})["slug"])
	assert.Equal(t, "switches", data["category"].(map[string]interface{})["slug"])
	assert.Equal(t, "poe-switches", data["subCategory"].(map[string]interface{})["slug"])
	assert.Equal(t, "switch-24", data["product"].(map[string]interface{})["slug"])
	assert.Len(t, data["relatedProducts"].([]interface{}), 1)
}

func TestPageResolveMisses(t *testing.T) {
	r, navbars, cats, subs, products := newPageTestRouter()
	seedCatalog(t, navbars, cats, subs, products)

	paths := []string{
		"/api/page/no-such-menu",
		"/api/page/networking/no-such-category",
		"/api/page/networking/switches/no-such-subcategory",
		"/api/page/networking/switches/poe-switches/no-such-product",
		// Product exists but is not filed under the named subcategory.
		"/api/page/networking/switches/rack-switches/switch-24",
		// A direct category product cannot resolve through a subcategory URL.
		"/api/page/networking/switches/poe-switches/switch-8",
		// Deeper than the hierarchy goes.
		"/api/page/networking/switches/poe-switches/switch-24/datasheet",
	}
	for _, path := range paths {
		w := performJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "GET %s", path)
	}
}

func TestPageResolveScopedSlugLookup(t *testing.T) {
	r, navbars, cats, subs, products := newPageTestRouter()
	seedCatalog(t, navbars, cats, subs, products)

	// A second menu with its own "switches" category must not shadow
	// the networking one.
	industrial := seedNavbar(t, navbars, "Industrial")
	seedCategory(t, cats, industrial, "Switches")

	w := performJSON(t, r, http.MethodGet, "/api/page/industrial/switches", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	cat := data["category"].(map[string]interface{})
	assert.Equal(t, industrial.ID.Hex(), cat["navbarCategoryId"])
	assert.Empty(t, data["subCategories"].([]interface{}))
	assert.Empty(t, data["products"].([]interface{}))
}
