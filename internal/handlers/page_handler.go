package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/internal/models"
	"github.com/regiondist/catalog-backend/utils"
	"github.com/sirupsen/logrus"
)

// PageHandler resolves a public page URL of up to four slug segments
// (navbar/category/subcategory/product) into the entity chain plus the
// sibling and child context the page needs, in one request. The chain
// is walked left to right; sibling and child lists are fetched
// concurrently once their parent is known.
type PageHandler struct {
	Navbars       repository.NavbarCategoryRepository
	Categories    repository.CategoryRepository
	SubCategories repository.SubCategoryRepository
	Products      repository.ProductRepository
}

func NewPageHandler(navbars repository.NavbarCategoryRepository, categories repository.CategoryRepository, subCategories repository.SubCategoryRepository, products repository.ProductRepository) *PageHandler {
	return &PageHandler{Navbars: navbars, Categories: categories, SubCategories: subCategories, Products: products}
}

func (h *PageHandler) Resolve(c *gin.Context) {
	raw := strings.Trim(c.Param("slugs"), "/")
	if raw == "" {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Not found"))
		return
	}
	segments := strings.Split(raw, "/")
	if len(segments) > 4 {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Not found"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	navbar, err := h.Navbars.GetBySlug(ctx, segments[0])
	if err != nil {
		h.miss(c, err)
		return
	}
	data := gin.H{"navbarCategory": navbar}

	if len(segments) == 1 {
		categories, err := h.Categories.ListByNavbar(ctx, navbar.ID, true)
		if err != nil {
			h.miss(c, err)
			return
		}
		data["categories"] = categories
		c.JSON(http.StatusOK, utils.SuccessResponse("", data))
		return
	}

	cat, err := h.Categories.GetBySlug(ctx, navbar.ID, segments[1])
	if err != nil {
		h.miss(c, err)
		return
	}
	data["category"] = cat

	switch len(segments) {
	case 2:
		var (
			siblings []models.Category
			subs     []models.SubCategory
			products []models.Product
		)
		err = h.parallel(ctx,
			func(ctx context.Context) (e error) { siblings, e = h.Categories.ListByNavbar(ctx, navbar.ID, true); return },
			func(ctx context.Context) (e error) { subs, e = h.SubCategories.ListByCategory(ctx, cat.ID, true); return },
			func(ctx context.Context) (e error) { products, e = h.Products.ListByCategory(ctx, cat.ID, true); return },
		)
		if err != nil {
			h.miss(c, err)
			return
		}
		data["categories"] = siblings
		data["subCategories"] = subs
		data["products"] = products

	case 3:
		sub, err := h.SubCategories.GetBySlug(ctx, cat.ID, segments[2])
		if err != nil {
			h.miss(c, err)
			return
		}
		data["subCategory"] = sub

		var (
			siblingSubs []models.SubCategory
			products    []models.Product
		)
		err = h.parallel(ctx,
			func(ctx context.Context) (e error) { siblingSubs, e = h.SubCategories.ListByCategory(ctx, cat.ID, true); return },
			func(ctx context.Context) (e error) { products, e = h.Products.ListBySubCategory(ctx, sub.ID, true); return },
		)
		if err != nil {
			h.miss(c, err)
			return
		}
		data["subCategories"] = siblingSubs
		data["products"] = products

	case 4:
		sub, err := h.SubCategories.GetBySlug(ctx, cat.ID, segments[2])
		if err != nil {
			h.miss(c, err)
			return
		}
		data["subCategory"] = sub

		product, err := h.Products.GetBySlug(ctx, cat.ID, segments[3])
		if err != nil {
			h.miss(c, err)
			return
		}
		// The URL names a subcategory, so the product must be filed there.
		if product.SubCategoryID == nil || *product.SubCategoryID != sub.ID {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Not found"))
			return
		}
		data["product"] = product

		related, err := h.Products.ListBySubCategory(ctx, sub.ID, true)
		if err != nil {
			h.miss(c, err)
			return
		}
		data["relatedProducts"] = related
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("", data))
}

// parallel runs the side fetches concurrently and returns the first
// error, if any.
func (h *PageHandler) parallel(ctx context.Context, fetches ...func(context.Context) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(context.Context) error) {
			defer wg.Done()
			errs[i] = fetch(ctx)
		}(i, fetch)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// miss maps a failed resolution step: an absent entity is a terminal
// not-found page, anything else is a store failure.
func (h *PageHandler) miss(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Not found"))
		return
	}
	logrus.Errorf("page resolution failed: %v", err)
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to resolve page"))
}
