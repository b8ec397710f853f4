package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardStats is the single-pass reporting view behind the admin
// dashboard endpoint.
type DashboardStats struct {
	Products struct {
		Total    int64 `json:"total"`
		Active   int64 `json:"active"`
		Inactive int64 `json:"inactive"`
	} `json:"products"`
	Tiers struct {
		NavbarCategories int64 `json:"navbarCategories"`
		Categories       int64 `json:"categories"`
		SubCategories    int64 `json:"subCategories"`
	} `json:"tiers"`
	Enquiries struct {
		Total    int64            `json:"total"`
		Contact  int64            `json:"contact"`
		Product  int64            `json:"product"`
		ByStatus map[string]int64 `json:"byStatus"`
	} `json:"enquiries"`

	ContactTrend []DailyCount `json:"contactTrend"`
	ProductTrend []DailyCount `json:"productTrend"`

	ContactGrowth string `json:"contactGrowth"`
	ProductGrowth string `json:"productGrowth"`

	TopCategories  []CategoryProductCount `json:"topCategories"`
	RecentActivity []ActivityEvent        `json:"recentActivity"`
}

// DailyCount is one calendar-day bucket of a 30-day trend series.
type DailyCount struct {
	Date  string `json:"date" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

type CategoryProductCount struct {
	CategoryID   primitive.ObjectID `json:"categoryId" bson:"_id"`
	CategoryName string             `json:"categoryName" bson:"categoryName"`
	Count        int64              `json:"count" bson:"count"`
}

type ActivityEvent struct {
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	ID        primitive.ObjectID `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
}

// GrowthPercent formats period-over-period growth. A zero previous
// period is reported as +100% when the current period has activity and
// +0% when both are empty; otherwise the percentage carries one decimal.
func GrowthPercent(previous, current int64) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "+0%"
	}
	pct := float64(current-previous) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", pct)
}

type DashboardRepository interface {
	GetStats(ctx context.Context) (DashboardStats, error)
}

type MongoDashboardRepository struct {
	DB *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) DashboardRepository {
	return &MongoDashboardRepository{DB: db}
}

func (r *MongoDashboardRepository) GetStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	now := time.Now()
	since30 := now.AddDate(0, 0, -30)
	since60 := now.AddDate(0, 0, -60)

	products := r.DB.Collection("products")
	contact := r.DB.Collection("contactenquiries")
	productEnq := r.DB.Collection("productenquiries")

	var err error
	if stats.Products.Total, err = products.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Products.Active, err = products.CountDocuments(ctx, bson.M{"isActive": true}); err != nil {
		return stats, err
	}
	stats.Products.Inactive = stats.Products.Total - stats.Products.Active

	if stats.Tiers.NavbarCategories, err = r.DB.Collection("navbarcategories").CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Tiers.Categories, err = r.DB.Collection("categories").CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Tiers.SubCategories, err = r.DB.Collection("subcategories").CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}

	if stats.Enquiries.Contact, err = contact.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Enquiries.Product, err = productEnq.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	stats.Enquiries.Total = stats.Enquiries.Contact + stats.Enquiries.Product

	stats.Enquiries.ByStatus = map[string]int64{}
	for _, status := range []string{"pending", "contacted", "resolved"} {
		c1, err := contact.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return stats, err
		}
		c2, err := productEnq.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return stats, err
		}
		stats.Enquiries.ByStatus[status] = c1 + c2
	}

	if stats.ContactTrend, err = r.dailySeries(ctx, contact, since30); err != nil {
		return stats, err
	}
	if stats.ProductTrend, err = r.dailySeries(ctx, productEnq, since30); err != nil {
		return stats, err
	}

	contactPrev, contactCurr, err := r.periodCounts(ctx, contact, since60, since30)
	if err != nil {
		return stats, err
	}
	productPrev, productCurr, err := r.periodCounts(ctx, productEnq, since60, since30)
	if err != nil {
		return stats, err
	}
	stats.ContactGrowth = GrowthPercent(contactPrev, contactCurr)
	stats.ProductGrowth = GrowthPercent(productPrev, productCurr)

	if stats.TopCategories, err = r.topCategories(ctx); err != nil {
		return stats, err
	}
	if stats.RecentActivity, err = r.recentActivity(ctx); err != nil {
		return stats, err
	}

	return stats, nil
}

func (r *MongoDashboardRepository) dailySeries(ctx context.Context, coll *mongo.Collection, since time.Time) ([]DailyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	series := []DailyCount{}
	if err := cursor.All(ctx, &series); err != nil {
		return nil, err
	}
	return series, nil
}

func (r *MongoDashboardRepository) periodCounts(ctx context.Context, coll *mongo.Collection, since60, since30 time.Time) (previous, current int64, err error) {
	previous, err = coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since60, "$lt": since30}})
	if err != nil {
		return 0, 0, err
	}
	current, err = coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since30}})
	if err != nil {
		return 0, 0, err
	}
	return previous, current, nil
}

func (r *MongoDashboardRepository) topCategories(ctx context.Context) ([]CategoryProductCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$categoryId",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: 5}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"categoryName": bson.M{"$first": "$category.name"},
		}}},
		{{Key: "$project", Value: bson.M{"category": 0}}},
	}
	cursor, err := r.DB.Collection("products").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	top := []CategoryProductCount{}
	if err := cursor.All(ctx, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// recentActivity merges the newest records of each collection and keeps
// the 8 most recent overall.
func (r *MongoDashboardRepository) recentActivity(ctx context.Context) ([]ActivityEvent, error) {
	const recentLimit = 8

	sources := []struct {
		collection string
		eventType  string
		titleField string
	}{
		{"products", "product", "name"},
		{"categories", "category", "name"},
		{"subcategories", "subcategory", "name"},
		{"contactenquiries", "contact-enquiry", "name"},
		{"productenquiries", "product-enquiry", "productName"},
	}

	events := []ActivityEvent{}
	for _, src := range sources {
		opts := options.Find().
			SetSort(bson.M{"createdAt": -1}).
			SetLimit(recentLimit).
			SetProjection(bson.M{"_id": 1, src.titleField: 1, "createdAt": 1})
		cursor, err := r.DB.Collection(src.collection).Find(ctx, bson.M{}, opts)
		if err != nil {
			return nil, err
		}
		var docs []bson.M
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			ev := ActivityEvent{Type: src.eventType}
			if id, ok := doc["_id"].(primitive.ObjectID); ok {
				ev.ID = id
			}
			if title, ok := doc[src.titleField].(string); ok {
				ev.Title = title
			}
			if ts, ok := doc["createdAt"].(primitive.DateTime); ok {
				ev.CreatedAt = ts.Time()
			}
			events = append(events, ev)
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if len(events) > recentLimit {
		events = events[:recentLimit]
	}
	return events, nil
}
