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
)

type EnquiryHandler struct {
	Contact       repository.ContactEnquiryRepository
	Product       repository.ProductEnquiryRepository
	Notifications repository.NotificationRepository
}

func NewEnquiryHandler(contact repository.ContactEnquiryRepository, product repository.ProductEnquiryRepository, notifications repository.NotificationRepository) *EnquiryHandler {
	return &EnquiryHandler{Contact: contact, Product: product, Notifications: notifications}
}

type updateEnquiryStatusInput struct {
	Status models.EnquiryStatus `json:"status" validate:"required"`
}

type createContactEnquiryInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type createProductEnquiryInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required"`
	ProductName string `json:"productName" validate:"required"`
	Description string `json:"description"`
}

// CreateContactEnquiry is the public contact form endpoint. A failed
// notification write is logged but never fails the submission.
func (h *EnquiryHandler) CreateContactEnquiry(c *gin.Context) {
	var input createContactEnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Message = strings.TrimSpace(input.Message)
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name, a valid email and a message are required"))
		return
	}
	e := models.ContactEnquiry{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Status:    models.EnquiryStatusPending,
		CreatedAt: time.Now(),
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.Contact.Create(ctx, e)
	if err != nil {
		logrus.Errorf("failed to create contact enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to submit enquiry"))
		return
	}

	h.notify(c, models.Notification{
		Type:      models.NotificationTypeContactEnquiry,
		Title:     "New contact enquiry",
		Message:   fmt.Sprintf("%s sent a message", created.Name),
		Icon:      "mail",
		Link:      "/admin/enquiries/contact",
		RelatedID: &created.ID,
	})

	c.JSON(http.StatusCreated, utils.SuccessResponse("Enquiry submitted", created))
}

func (h *EnquiryHandler) CreateProductEnquiry(c *gin.Context) {
	var input createProductEnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.ProductName = strings.TrimSpace(input.ProductName)
	input.Description = strings.TrimSpace(input.Description)
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Name, a valid email, mobile and productName are required"))
		return
	}
	e := models.ProductEnquiry{
		Name:        input.Name,
		Email:       input.Email,
		Mobile:      input.Mobile,
		ProductName: input.ProductName,
		Description: input.Description,
		Status:      models.EnquiryStatusPending,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.Product.Create(ctx, e)
	if err != nil {
		logrus.Errorf("failed to create product enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to submit enquiry"))
		return
	}

	h.notify(c, models.Notification{
		Type:      models.NotificationTypeProductEnquiry,
		Title:     "New product enquiry",
		Message:   fmt.Sprintf("%s is interested in %s", created.Name, created.ProductName),
		Icon:      "package",
		Link:      "/admin/enquiries/product",
		RelatedID: &created.ID,
	})

	c.JSON(http.StatusCreated, utils.SuccessResponse("Enquiry submitted", created))
}

func (h *EnquiryHandler) ListContactEnquiries(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.Contact.List(ctx)
	if err != nil {
		logrus.Errorf("failed to list contact enquiries: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch enquiries"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", items))
}

func (h *EnquiryHandler) ListProductEnquiries(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.Product.List(ctx)
	if err != nil {
		logrus.Errorf("failed to list product enquiries: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch enquiries"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", items))
}

func (h *EnquiryHandler) UpdateContactEnquiryStatus(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var input updateEnquiryStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidEnquiryStatus(input.Status) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Status must be pending, contacted or resolved"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	updated, err := h.Contact.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Enquiry not found"))
			return
		}
		logrus.Errorf("failed to update enquiry status: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update enquiry"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Enquiry updated", updated))
}

func (h *EnquiryHandler) UpdateProductEnquiryStatus(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var input updateEnquiryStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidEnquiryStatus(input.Status) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Status must be pending, contacted or resolved"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	updated, err := h.Product.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Enquiry not found"))
			return
		}
		logrus.Errorf("failed to update enquiry status: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update enquiry"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Enquiry updated", updated))
}

func (h *EnquiryHandler) DeleteContactEnquiry(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	deleted, err := h.Contact.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Enquiry not found"))
			return
		}
		logrus.Errorf("failed to delete enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete enquiry"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Enquiry deleted", deleted))
}

func (h *EnquiryHandler) DeleteProductEnquiry(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	deleted, err := h.Product.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Enquiry not found"))
			return
		}
		logrus.Errorf("failed to delete enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete enquiry"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Enquiry deleted", deleted))
}

func (h *EnquiryHandler) notify(c *gin.Context, n models.Notification) {
	ctx, cancel := requestContext(c)
	defer cancel()

	n.CreatedAt = time.Now()
	if _, err := h.Notifications.Create(ctx, n); err != nil {
		logrus.Errorf("failed to create notification: %v", err)
	}
}
