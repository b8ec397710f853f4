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

type SubCategoryHandler struct {
	SubCategories repository.SubCategoryRepository
	Categories    repository.CategoryRepository
	Products      repository.ProductRepository
}

func NewSubCategoryHandler(subCategories repository.SubCategoryRepository, categories repository.CategoryRepository, products repository.ProductRepository) *SubCategoryHandler {
	return &SubCategoryHandler{SubCategories: subCategories, Categories: categories, Products: products}
}

type createSubCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
	CategoryID  string `json:"categoryId" validate:"required"`
	IsActive    *bool  `json:"isActive"`
}

// ListByCategorySlug serves the public subcategory listing for a
// category page.
func (h *SubCategoryHandler) ListByCategorySlug(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.Categories.GetBySlugAny(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
			return
		}
		logrus.Errorf("category lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch subcategories"))
		return
	}

	subs, err := h.SubCategories.ListByCategory(ctx, cat.ID, true)
	if err != nil {
		logrus.Errorf("subcategory listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch subcategories"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     subs,
		"category": cat,
	})
}

func (h *SubCategoryHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	subs, err := h.SubCategories.List(ctx)
	if err != nil {
		logrus.Errorf("subcategory listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch subcategories"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", subs))
}

func (h *SubCategoryHandler) Create(c *gin.Context) {
	var input createSubCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
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
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create subcategory"))
		return
	}

	exists, err := h.SubCategories.NameExists(ctx, categoryID, name, primitive.NilObjectID)
	if err != nil {
		logrus.Errorf("name uniqueness check failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create subcategory"))
		return
	}
	if exists {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A subcategory named %q already exists under %q", name, cat.Name)))
		return
	}

	now := time.Now()
	sc := models.SubCategory{
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
		Order:       input.Order,
		CategoryID:  categoryID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		sc.IsActive = *input.IsActive
	}

	created, err := h.SubCategories.Create(ctx, sc)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Slug %q already exists, try a different name", sc.Slug)))
			return
		}
		logrus.Errorf("failed to create subcategory: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create subcategory"))
		return
	}
	created.Category = &models.Ref{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Subcategory created", created))
}

func (h *SubCategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	sc, err := h.SubCategories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
			return
		}
		logrus.Errorf("failed to fetch subcategory: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch subcategory"))
		return
	}
	if cat, err := h.Categories.GetByID(ctx, sc.CategoryID); err == nil {
		sc.Category = &models.Ref{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", sc))
}

func (h *SubCategoryHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var input models.UpdateSubCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	existing, err := h.SubCategories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
			return
		}
		logrus.Errorf("failed to fetch subcategory: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update subcategory"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	scopeCategoryID := existing.CategoryID
	if input.CategoryID != nil {
		if _, err := h.Categories.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, utils.ErrorResponse("Category not found"))
				return
			}
			logrus.Errorf("category lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update subcategory"))
			return
		}
		scopeCategoryID = *input.CategoryID
		set["categoryId"] = scopeCategoryID
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name cannot be empty"))
			return
		}
		if name != existing.Name {
			exists, err := h.SubCategories.NameExists(ctx, scopeCategoryID, name, id)
			if err != nil {
				logrus.Errorf("name uniqueness check failed: %v", err)
				c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update subcategory"))
				return
			}
			if exists {
				c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("A subcategory named %q already exists in this category", name)))
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

	updated, err := h.SubCategories.Update(ctx, id, set)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
		case errors.Is(err, repository.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, utils.ErrorResponse("Slug already exists, try a different name"))
		default:
			logrus.Errorf("failed to update subcategory: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update subcategory"))
		}
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Subcategory updated", updated))
}

func (h *SubCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	prods, err := h.Products.CountBySubCategory(ctx, id)
	if err != nil {
		logrus.Errorf("child count failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete subcategory"))
		return
	}
	if prods > 0 {
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("Cannot delete: %d products still belong to this subcategory", prods)))
		return
	}

	deleted, err := h.SubCategories.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Subcategory not found"))
			return
		}
		logrus.Errorf("failed to delete subcategory: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete subcategory"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Subcategory deleted", deleted))
}
