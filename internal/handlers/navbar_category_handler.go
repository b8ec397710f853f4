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

type NavbarCategoryHandler struct {
	Navbars    repository.NavbarCategoryRepository
	Categories repository.CategoryRepository
}

func NewNavbarCategoryHandler(navbars repository.NavbarCategoryRepository, categories repository.CategoryRepository) *NavbarCategoryHandler {
	return &NavbarCategoryHandler{Navbars: navbars, Categories: categories}
}

type createNavbarCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// ListPublic returns active navbar categories for the site menu.
func (h *NavbarCategoryHandler) ListPublic(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.Navbars.List(ctx, true)
	if err != nil {
		logrus.Errorf("failed to list navbar categories: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch navbar categories"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", items))
}

func (h *NavbarCategoryHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.Navbars.List(ctx, false)
	if err != nil {
		logrus.Errorf("failed to list navbar categories: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch navbar categories"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", items))
}

func (h *NavbarCategoryHandler) Create(c *gin.Context) {
	var input createNavbarCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name is required"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	exists, err := h.Navbars.NameExists(ctx, name, primitive.NilObjectID)
	if err != nil {
		logrus.Errorf("name uniqueness check failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create navbar category"))
		return
	}
	if exists {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A navbar category named %q already exists", name)))
		return
	}

	now := time.Now()
	nc := models.NavbarCategory{
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: strings.TrimSpace(input.Description),
		Order:       input.Order,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		nc.IsActive = *input.IsActive
	}

	created, err := h.Navbars.Create(ctx, nc)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Slug %q already exists, try a different name", nc.Slug)))
			return
		}
		logrus.Errorf("failed to create navbar category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create navbar category"))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Navbar category created", created))
}

func (h *NavbarCategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	nc, err := h.Navbars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
			return
		}
		logrus.Errorf("failed to fetch navbar category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch navbar category"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", nc))
}

func (h *NavbarCategoryHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var input models.UpdateNavbarCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	existing, err := h.Navbars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
			return
		}
		logrus.Errorf("failed to fetch navbar category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update navbar category"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name cannot be empty"))
			return
		}
		// Uniqueness is only re-checked when the trimmed name actually changed.
		if name != existing.Name {
			exists, err := h.Navbars.NameExists(ctx, name, id)
			if err != nil {
				logrus.Errorf("name uniqueness check failed: %v", err)
				c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update navbar category"))
				return
			}
			if exists {
				c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A navbar category named %q already exists", name)))
				return
			}
			set["name"] = name
			set["slug"] = utils.Slugify(name)
		}
	}
	if input.Description != nil {
		set["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	updated, err := h.Navbars.Update(ctx, id, set)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, utils.ErrorResponse("Slug already exists, try a different name"))
		default:
			logrus.Errorf("failed to update navbar category: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update navbar category"))
		}
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Navbar category updated", updated))
}

// Delete refuses to orphan children: a navbar category with categories
// under it cannot be removed.
func (h *NavbarCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	children, err := h.Categories.CountByNavbar(ctx, id)
	if err != nil {
		logrus.Errorf("child count failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete navbar category"))
		return
	}
	if children > 0 {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Cannot delete: %d categories still belong to this navbar category", children)))
		return
	}

	deleted, err := h.Navbars.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Navbar category not found"))
			return
		}
		logrus.Errorf("failed to delete navbar category: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete navbar category"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Navbar category deleted", deleted))
}
