package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/internal/models"
	"github.com/regiondist/catalog-backend/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductHandler struct {
	Products      repository.ProductRepository
	Categories    repository.CategoryRepository
	SubCategories repository.SubCategoryRepository
}

func NewProductHandler(products repository.ProductRepository, categories repository.CategoryRepository, subCategories repository.SubCategoryRepository) *ProductHandler {
	return &ProductHandler{Products: products, Categories: categories, SubCategories: subCategories}
}

type createProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	KeyFeatures []string `json:"keyFeatures"`

	Image1 string `json:"image1" validate:"required"`
	Image2 string `json:"image2"`
	Image3 string `json:"image3"`
	Image4 string `json:"image4"`

	CategoryID    string `json:"categoryId" validate:"required"`
	SubCategoryID string `json:"subCategoryId"`
	IsActive      *bool  `json:"isActive"`
}

// ListByCategorySlug is the public category-level product listing. It
// includes products filed under the category's subcategories.
func (h *ProductHandler) ListByCategorySlug(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.Categories.GetBySlugAny(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
			return
		}
		logrus.Errorf("category lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch products"))
		return
	}

	products, err := h.Products.ListByCategory(ctx, cat.ID, true)
	if err != nil {
		logrus.Errorf("product listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch products"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     products,
		"category": cat,
	})
}

func (h *ProductHandler) ListBySubCategorySlug(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	sub, err := h.SubCategories.GetBySlugAny(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
			return
		}
		logrus.Errorf("subcategory lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch products"))
		return
	}

	products, err := h.Products.ListBySubCategory(ctx, sub.ID, true)
	if err != nil {
		logrus.Errorf("product listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch products"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        products,
		"subCategory": sub,
	})
}

func (h *ProductHandler) GetBySlugPublic(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.Products.GetBySlugAny(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.Errorf("product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch product"))
		return
	}
	h.populate(c, &p)
	c.JSON(http.StatusOK, utils.SuccessResponse("", p))
}

func (h *ProductHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := h.Products.List(ctx)
	if err != nil {
		logrus.Errorf("product listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch products"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", products))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input createProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name, image1 and categoryId are required"))
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name is required"))
		return
	}
	categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid categoryId"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
			return
		}
		logrus.Errorf("category lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create product"))
		return
	}

	var subID *primitive.ObjectID
	var sub models.SubCategory
	if input.SubCategoryID != "" {
		parsed, err := primitive.ObjectIDFromHex(input.SubCategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid subCategoryId"))
			return
		}
		sub, err = h.SubCategories.GetByID(ctx, parsed)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
				return
			}
			logrus.Errorf("subcategory lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create product"))
			return
		}
		// A product's subcategory must belong to its own category.
		if sub.CategoryID != cat.ID {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Subcategory does not belong to the selected category"))
			return
		}
		subID = &parsed
	}

	exists, err := h.Products.NameExists(ctx, categoryID, subID, name, primitive.NilObjectID)
	if err != nil {
		logrus.Errorf("name uniqueness check failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create product"))
		return
	}
	if exists {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A product named %q already exists in this scope", name)))
		return
	}

	now := time.Now()
	p := models.Product{
		Name:             name,
		Slug:             utils.Slugify(name),
		Description:      strings.TrimSpace(input.Description),
		KeyFeatures:      input.KeyFeatures,
		Image1:           strings.TrimSpace(input.Image1),
		Image2:           strings.TrimSpace(input.Image2),
		Image3:           strings.TrimSpace(input.Image3),
		Image4:           strings.TrimSpace(input.Image4),
		CategoryID:       categoryID,
		SubCategoryID:    subID,
		NavbarCategoryID: cat.NavbarCategoryID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if p.KeyFeatures == nil {
		p.KeyFeatures = []string{}
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	created, err := h.Products.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Slug %q already exists, try a different name", p.Slug)))
			return
		}
		logrus.Errorf("failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create product"))
		return
	}
	created.Category = &models.Ref{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	if subID != nil {
		created.SubCategory = &models.Ref{ID: sub.ID, Name: sub.Name, Slug: sub.Slug}
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Product created", created))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.Errorf("failed to fetch product: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch product"))
		return
	}
	h.populate(c, &p)
	c.JSON(http.StatusOK, utils.SuccessResponse("", p))
}

// Update applies a partial update, re-validating the subcategory
// invariant whenever the category or subcategory changes and
// recomputing the denormalized navbarCategoryId on category moves.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	existing, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.Errorf("failed to fetch product: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update product"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	targetCategoryID := existing.CategoryID
	categoryChanged := false
	if input.CategoryID != nil && *input.CategoryID != existing.CategoryID {
		cat, err := h.Categories.GetByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
				return
			}
			logrus.Errorf("category lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update product"))
			return
		}
		targetCategoryID = cat.ID
		categoryChanged = true
		set["categoryId"] = cat.ID
		set["navbarCategoryId"] = cat.NavbarCategoryID
	}

	// The zero ObjectID clears the subcategory assignment.
	targetSubID := existing.SubCategoryID
	subChanged := false
	if input.SubCategoryID != nil {
		if input.SubCategoryID.IsZero() {
			targetSubID = nil
			subChanged = true
			unset["subCategoryId"] = ""
		} else {
			targetSubID = input.SubCategoryID
			subChanged = true
			set["subCategoryId"] = *input.SubCategoryID
		}
	}

	if targetSubID != nil && (categoryChanged || subChanged) {
		sub, err := h.SubCategories.GetByID(ctx, *targetSubID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
				return
			}
			logrus.Errorf("subcategory lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update product"))
			return
		}
		if sub.CategoryID != targetCategoryID {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Subcategory does not belong to the product's category"))
			return
		}
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name cannot be empty"))
			return
		}
		if name != existing.Name {
			exists, err := h.Products.NameExists(ctx, targetCategoryID, targetSubID, name, id)
			if err != nil {
				logrus.Errorf("name uniqueness check failed: %v", err)
				c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update product"))
				return
			}
			if exists {
				c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A product named %q already exists in this scope", name)))
				return
			}
			set["name"] = name
			set["slug"] = utils.Slugify(name)
		}
	}
	if input.Description != nil {
		set["description"] = strings.TrimSpace(*input.Description)
	}
	if input.KeyFeatures != nil {
		set["keyFeatures"] = *input.KeyFeatures
	}
	if input.Image1 != nil {
		img := strings.TrimSpace(*input.Image1)
		if img == "" {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("image1 cannot be empty"))
			return
		}
		set["image1"] = img
	}
	if input.Image2 != nil {
		set["image2"] = strings.TrimSpace(*input.Image2)
	}
	if input.Image3 != nil {
		set["image3"] = strings.TrimSpace(*input.Image3)
	}
	if input.Image4 != nil {
		set["image4"] = strings.TrimSpace(*input.Image4)
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	updated, err := h.Products.Update(ctx, id, set, unset)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, utils.ErrorResponse("Slug already exists, try a different name"))
		default:
			logrus.Errorf("failed to update product: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update product"))
		}
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Product updated", updated))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	deleted, err := h.Products.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.Errorf("failed to delete product: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete product"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Product deleted", deleted))
}

// populate attaches parent summaries; lookup misses leave the refs nil
// rather than failing the read.
func (h *ProductHandler) populate(c *gin.Context, p *models.Product) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if cat, err := h.Categories.GetByID(ctx, p.CategoryID); err == nil {
		p.Category = &models.Ref{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	}
	if p.SubCategoryID != nil {
		if sub, err := h.SubCategories.GetByID(ctx, *p.SubCategoryID); err == nil {
			p.SubCategory = &models.Ref{ID: sub.ID, Name: sub.Name, Slug: sub.Slug}
		}
	}
}
