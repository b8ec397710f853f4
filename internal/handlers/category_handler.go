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

type CategoryHandler struct {
	Categories    repository.CategoryRepository
	Navbars       repository.NavbarCategoryRepository
	SubCategories repository.SubCategoryRepository
	Products      repository.ProductRepository
}

func NewCategoryHandler(categories repository.CategoryRepository, navbars repository.NavbarCategoryRepository, subCategories repository.SubCategoryRepository, products repository.ProductRepository) *CategoryHandler {
	return &CategoryHandler{Categories: categories, Navbars: navbars, SubCategories: subCategories, Products: products}
}

type createCategoryInput struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Image            string `json:"image"`
	Order            int    `json:"order"`
	NavbarCategoryID string `json:"navbarCategoryId" validate:"required"`
	IsActive         *bool  `json:"isActive"`
}

// ListByNavbarSlug serves the public category listing for one navbar
// menu entry: `{success, data, navbarCategory}`.
func (h *CategoryHandler) ListByNavbarSlug(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	navbar, err := h.Navbars.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
			return
		}
		logrus.Errorf("navbar lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch categories"))
		return
	}

	cats, err := h.Categories.ListByNavbar(ctx, navbar.ID, true)
	if err != nil {
		logrus.Errorf("category listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"data":           cats,
		"navbarCategory": navbar,
	})
}

func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cats, err := h.Categories.List(ctx)
	if err != nil {
		logrus.Errorf("category listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch categories"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", cats))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input createCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name is required"))
		return
	}
	navbarID, err := primitive.ObjectIDFromHex(input.NavbarCategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid navbarCategoryId"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	navbar, err := h.Navbars.GetByID(ctx, navbarID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
			return
		}
		logrus.Errorf("navbar lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create category"))
		return
	}

	exists, err := h.Categories.NameExists(ctx, navbarID, name, primitive.NilObjectID)
	if err != nil {
		logrus.Errorf("name uniqueness check failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create category"))
		return
	}
	if exists {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A category named %q already exists under %q", name, navbar.Name)))
		return
	}

	now := time.Now()
	cat := models.Category{
		Name:             name,
		Slug:             utils.Slugify(name),
		Description:      strings.TrimSpace(input.Description),
		Image:            strings.TrimSpace(input.Image),
		Order:            input.Order,
		NavbarCategoryID: navbarID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.IsActive != nil {
		cat.IsActive = *input.IsActive
	}

	created, err := h.Categories.Create(ctx, cat)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Slug %q already exists, try a different name", cat.Slug)))
			return
		}
		logrus.Errorf("failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create category"))
		return
	}
	created.NavbarCategory = &models.Ref{ID: navbar.ID, Name: navbar.Name, Slug: navbar.Slug}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Category created", created))
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
			return
		}
		logrus.Errorf("failed to fetch category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch category"))
		return
	}
	if navbar, err := h.Navbars.GetByID(ctx, cat.NavbarCategoryID); err == nil {
		cat.NavbarCategory = &models.Ref{ID: navbar.ID, Name: navbar.Name, Slug: navbar.Slug}
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", cat))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var input models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	existing, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
			return
		}
		logrus.Errorf("failed to fetch category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update category"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	scopeNavbarID := existing.NavbarCategoryID
	if input.NavbarCategoryID != nil {
		if _, err := h.Navbars.GetByID(ctx, *input.NavbarCategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
				return
			}
			logrus.Errorf("navbar lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update category"))
			return
		}
		scopeNavbarID = *input.NavbarCategoryID
		set["navbarCategoryId"] = scopeNavbarID
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name cannot be empty"))
			return
		}
		if name != existing.Name {
			exists, err := h.Categories.NameExists(ctx, scopeNavbarID, name, id)
			if err != nil {
				logrus.Errorf("name uniqueness check failed: %v", err)
				c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update category"))
				return
			}
			if exists {
				c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A category named %q already exists in this navbar category", name)))
				return
			}
			set["name"] = name
			set["slug"] = utils.Slugify(name)
		}
	}
	if input.Description != nil {
		set["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Image != nil {
		set["image"] = strings.TrimSpace(*input.Image)
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	updated, err := h.Categories.Update(ctx, id, set)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, utils.ErrorResponse("Slug already exists, try a different name"))
		default:
			logrus.Errorf("failed to update category: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update category"))
		}
		return
	}

	// Moving the category to another navbar must carry its products'
	// denormalized navbarCategoryId along.
	if input.NavbarCategoryID != nil && *input.NavbarCategoryID != existing.NavbarCategoryID {
		if _, err := h.Products.ReassignNavbar(ctx, id, *input.NavbarCategoryID); err != nil {
			logrus.Errorf("failed to reassign product navbar: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update category"))
			return
		}
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Category updated", updated))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	subs, err := h.SubCategories.CountByCategory(ctx, id)
	if err != nil {
		logrus.Errorf("child count failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete category"))
		return
	}
	if subs > 0 {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Cannot delete: %d subcategories still belong to this category", subs)))
		return
	}
	prods, err := h.Products.CountByCategory(ctx, id)
	if err != nil {
		logrus.Errorf("child count failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete category"))
		return
	}
	if prods > 0 {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Cannot delete: %d products still belong to this category", prods)))
		return
	}

	deleted, err := h.Categories.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
			return
		}
		logrus.Errorf("failed to delete category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete category"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Category deleted", deleted))
}
