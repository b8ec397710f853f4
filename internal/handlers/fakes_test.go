package handlers

import (
	"context"
	"strings"

	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the store-level behavior the
// handlers rely on: scoped slug uniqueness rejected with
// ErrDuplicateSlug, absent documents as ErrNotFound.

type fakeNavbarRepo struct {
	items []models.NavbarCategory
}

func (f *fakeNavbarRepo) Create(_ context.Context, nc models.NavbarCategory) (models.NavbarCategory, error) {
	for _, it := range f.items {
		if it.Slug == nc.Slug {
			return models.NavbarCategory{}, repository.ErrDuplicateSlug
		}
	}
	nc.ID = primitive.NewObjectID()
	f.items = append(f.items, nc)
	return nc, nil
}

func (f *fakeNavbarRepo) GetByID(_ context.Context, id primitive.ObjectID) (models.NavbarCategory, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.NavbarCategory{}, repository.ErrNotFound
}

func (f *fakeNavbarRepo) GetBySlug(_ context.Context, slug string) (models.NavbarCategory, error) {
	for _, it := range f.items {
		if it.Slug == slug {
			return it, nil
		}
	}
	return models.NavbarCategory{}, repository.ErrNotFound
}

func (f *fakeNavbarRepo) List(_ context.Context, activeOnly bool) ([]models.NavbarCategory, error) {
	out := []models.NavbarCategory{}
	for _, it := range f.items {
		if !activeOnly || it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeNavbarRepo) NameExists(_ context.Context, name string, excludeID primitive.ObjectID) (bool, error) {
	for _, it := range f.items {
		if it.ID != excludeID && strings.EqualFold(it.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNavbarRepo) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.NavbarCategory, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			it := &f.items[i]
			for k, v := range set {
				switch k {
				case "name":
					it.Name = v.(string)
				case "slug":
					it.Slug = v.(string)
				case "description":
					it.Description = v.(string)
				case "order":
					it.Order = v.(int)
				case "isActive":
					it.IsActive = v.(bool)
				}
			}
			return *it, nil
		}
	}
	return models.NavbarCategory{}, repository.ErrNotFound
}

func (f *fakeNavbarRepo) Delete(_ context.Context, id primitive.ObjectID) (models.NavbarCategory, error) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, nil
		}
	}
	return models.NavbarCategory{}, repository.ErrNotFound
}

type fakeCategoryRepo struct {
	items []models.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, cat models.Category) (models.Category, error) {
	for _, it := range f.items {
		if it.NavbarCategoryID == cat.NavbarCategoryID && it.Slug == cat.Slug {
			return models.Category{}, repository.ErrDuplicateSlug
		}
	}
	cat.ID = primitive.NewObjectID()
	cat.NavbarCategory = nil
	f.items = append(f.items, cat)
	return cat, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id primitive.ObjectID) (models.Category, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, navbarID primitive.ObjectID, slug string) (models.Category, error) {
	for _, it := range f.items {
		if it.NavbarCategoryID == navbarID && it.Slug == slug {
			return it, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

func (f *fakeCategoryRepo) GetBySlugAny(_ context.Context, slug string) (models.Category, error) {
	for _, it := range f.items {
		if it.Slug == slug {
			return it, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	return append([]models.Category{}, f.items...), nil
}

func (f *fakeCategoryRepo) ListByNavbar(_ context.Context, navbarID primitive.ObjectID, activeOnly bool) ([]models.Category, error) {
	out := []models.Category{}
	for _, it := range f.items {
		if it.NavbarCategoryID == navbarID && (!activeOnly || it.IsActive) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) NameExists(_ context.Context, navbarID primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error) {
	for _, it := range f.items {
		if it.ID != excludeID && it.NavbarCategoryID == navbarID && strings.EqualFold(it.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) CountByNavbar(_ context.Context, navbarID primitive.ObjectID) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.NavbarCategoryID == navbarID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.Category, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			it := &f.items[i]
			for k, v := range set {
				switch k {
				case "name":
					it.Name = v.(string)
				case "slug":
					it.Slug = v.(string)
				case "description":
					it.Description = v.(string)
				case "image":
					it.Image = v.(string)
				case "order":
					it.Order = v.(int)
				case "isActive":
					it.IsActive = v.(bool)
				case "navbarCategoryId":
					it.NavbarCategoryID = v.(primitive.ObjectID)
				}
			}
			return *it, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) (models.Category, error) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

type fakeSubCategoryRepo struct {
	items []models.SubCategory
}

func (f *fakeSubCategoryRepo) Create(_ context.Context, sc models.SubCategory) (models.SubCategory, error) {
	for _, it := range f.items {
		if it.CategoryID == sc.CategoryID && it.Slug == sc.Slug {
			return models.SubCategory{}, repository.ErrDuplicateSlug
		}
	}
	sc.ID = primitive.NewObjectID()
	sc.Category = nil
	f.items = append(f.items, sc)
	return sc, nil
}

func (f *fakeSubCategoryRepo) GetByID(_ context.Context, id primitive.ObjectID) (models.SubCategory, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.SubCategory{}, repository.ErrNotFound
}

func (f *fakeSubCategoryRepo) GetBySlug(_ context.Context, categoryID primitive.ObjectID, slug string) (models.SubCategory, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID && it.Slug == slug {
			return it, nil
		}
	}
	return models.SubCategory{}, repository.ErrNotFound
}

func (f *fakeSubCategoryRepo) GetBySlugAny(_ context.Context, slug string) (models.SubCategory, error) {
	for _, it := range f.items {
		if it.Slug == slug {
			return it, nil
		}
	}
	return models.SubCategory{}, repository.ErrNotFound
}

func (f *fakeSubCategoryRepo) List(_ context.Context) ([]models.SubCategory, error) {
	return append([]models.SubCategory{}, f.items...), nil
}

func (f *fakeSubCategoryRepo) ListByCategory(_ context.Context, categoryID primitive.ObjectID, activeOnly bool) ([]models.SubCategory, error) {
	out := []models.SubCategory{}
	for _, it := range f.items {
		if it.CategoryID == categoryID && (!activeOnly || it.IsActive) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeSubCategoryRepo) NameExists(_ context.Context, categoryID primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error) {
	for _, it := range f.items {
		if it.ID != excludeID && it.CategoryID == categoryID && strings.EqualFold(it.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubCategoryRepo) CountByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubCategoryRepo) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.SubCategory, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			it := &f.items[i]
			for k, v := range set {
				switch k {
				case "name":
					it.Name = v.(string)
				case "slug":
					it.Slug = v.(string)
				case "description":
					it.Description = v.(string)
				case "image":
					it.Image = v.(string)
				case "order":
					it.Order = v.(int)
				case "isActive":
					it.IsActive = v.(bool)
				case "categoryId":
					it.CategoryID = v.(primitive.ObjectID)
				}
			}
			return *it, nil
		}
	}
	return models.SubCategory{}, repository.ErrNotFound
}

func (f *fakeSubCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) (models.SubCategory, error) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, nil
		}
	}
	return models.SubCategory{}, repository.ErrNotFound
}

type fakeProductRepo struct {
	items []models.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p models.Product) (models.Product, error) {
	for _, it := range f.items {
		if it.CategoryID == p.CategoryID && it.Slug == p.Slug {
			return models.Product{}, repository.ErrDuplicateSlug
		}
	}
	p.ID = primitive.NewObjectID()
	p.Category = nil
	p.SubCategory = nil
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

func (f *fakeProductRepo) GetBySlug(_ context.Context, categoryID primitive.ObjectID, slug string) (models.Product, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID && it.Slug == slug {
			return it, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

func (f *fakeProductRepo) GetBySlugAny(_ context.Context, slug string) (models.Product, error) {
	for _, it := range f.items {
		if it.Slug == slug {
			return it, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

func (f *fakeProductRepo) List(_ context.Context) ([]models.Product, error) {
	return append([]models.Product{}, f.items...), nil
}

func (f *fakeProductRepo) ListByCategory(_ context.Context, categoryID primitive.ObjectID, activeOnly bool) ([]models.Product, error) {
	out := []models.Product{}
	for _, it := range f.items {
		if it.CategoryID == categoryID && (!activeOnly || it.IsActive) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListBySubCategory(_ context.Context, subCategoryID primitive.ObjectID, activeOnly bool) ([]models.Product, error) {
	out := []models.Product{}
	for _, it := range f.items {
		if it.SubCategoryID != nil && *it.SubCategoryID == subCategoryID && (!activeOnly || it.IsActive) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) NameExists(_ context.Context, categoryID primitive.ObjectID, subCategoryID *primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error) {
	for _, it := range f.items {
		if it.ID == excludeID || it.CategoryID != categoryID || !strings.EqualFold(it.Name, name) {
			continue
		}
		switch {
		case subCategoryID == nil && it.SubCategoryID == nil:
			return true, nil
		case subCategoryID != nil && it.SubCategoryID != nil && *subCategoryID == *it.SubCategoryID:
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) CountBySubCategory(_ context.Context, subCategoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.SubCategoryID != nil && *it.SubCategoryID == subCategoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (models.Product, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			it := &f.items[i]
			for k, v := range set {
				switch k {
				case "name":
					it.Name = v.(string)
				case "slug":
					it.Slug = v.(string)
				case "description":
					it.Description = v.(string)
				case "keyFeatures":
					it.KeyFeatures = v.([]string)
				case "image1":
					it.Image1 = v.(string)
				case "image2":
					it.Image2 = v.(string)
				case "image3":
					it.Image3 = v.(string)
				case "image4":
					it.Image4 = v.(string)
				case "isActive":
					it.IsActive = v.(bool)
				case "categoryId":
					it.CategoryID = v.(primitive.ObjectID)
				case "navbarCategoryId":
					it.NavbarCategoryID = v.(primitive.ObjectID)
				case "subCategoryId":
					sub := v.(primitive.ObjectID)
					it.SubCategoryID = &sub
				}
			}
			if _, ok := unset["subCategoryId"]; ok {
				it.SubCategoryID = nil
			}
			return *it, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

func (f *fakeProductRepo) ReassignNavbar(_ context.Context, categoryID, navbarID primitive.ObjectID) (int64, error) {
	var n int64
	for i := range f.items {
		if f.items[i].CategoryID == categoryID && f.items[i].NavbarCategoryID != navbarID {
			f.items[i].NavbarCategoryID = navbarID
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

type fakeContactEnquiryRepo struct {
	items []models.ContactEnquiry
}

func (f *fakeContactEnquiryRepo) Create(_ context.Context, e models.ContactEnquiry) (models.ContactEnquiry, error) {
	// InsertOne keeps a caller-supplied _id, so only generate on zero.
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeContactEnquiryRepo) List(_ context.Context) ([]models.ContactEnquiry, error) {
	return append([]models.ContactEnquiry{}, f.items...), nil
}

func (f *fakeContactEnquiryRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.EnquiryStatus) (models.ContactEnquiry, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return f.items[i], nil
		}
	}
	return models.ContactEnquiry{}, repository.ErrNotFound
}

func (f *fakeContactEnquiryRepo) Delete(_ context.Context, id primitive.ObjectID) (models.ContactEnquiry, error) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, nil
		}
	}
	return models.ContactEnquiry{}, repository.ErrNotFound
}

type fakeProductEnquiryRepo struct {
	items []models.ProductEnquiry
}

func (f *fakeProductEnquiryRepo) Create(_ context.Context, e models.ProductEnquiry) (models.ProductEnquiry, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeProductEnquiryRepo) List(_ context.Context) ([]models.ProductEnquiry, error) {
	return append([]models.ProductEnquiry{}, f.items...), nil
}

func (f *fakeProductEnquiryRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.EnquiryStatus) (models.ProductEnquiry, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return f.items[i], nil
		}
	}
	return models.ProductEnquiry{}, repository.ErrNotFound
}

func (f *fakeProductEnquiryRepo) Delete(_ context.Context, id primitive.ObjectID) (models.ProductEnquiry, error) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, nil
		}
	}
	return models.ProductEnquiry{}, repository.ErrNotFound
}

type fakeNotificationRepo struct {
	items     []models.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n models.Notification) (models.Notification, error) {
	if f.createErr != nil {
		return models.Notification{}, f.createErr
	}
	n.ID = primitive.NewObjectID()
	f.items = append(f.items, n)
	return n, nil
}

func (f *fakeNotificationRepo) List(_ context.Context, limit int64) ([]models.Notification, error) {
	out := append([]models.Notification{}, f.items...)
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotificationRepo) UnreadCount(_ context.Context) (int64, error) {
	var n int64
	for _, it := range f.items {
		if !it.Read {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id primitive.ObjectID) (models.Notification, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return f.items[i], nil
		}
	}
	return models.Notification{}, repository.ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context) (int64, error) {
	var n int64
	for i := range f.items {
		if !f.items[i].Read {
			f.items[i].Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeNotificationRepo) Clear(_ context.Context) (int64, error) {
	n := int64(len(f.items))
	f.items = nil
	return n, nil
}

type fakeAdminRepo struct {
	admins []models.Admin
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Admin{}, repository.ErrNotFound
}
