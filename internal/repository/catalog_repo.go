package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maturiq/internal/model"
)

// CatalogRepo handles MongoDB operations for the question catalog
type CatalogRepo interface {
	GetQuestionByID(ctx context.Context, id string) (*model.Question, error)
	ListActiveQuestions(ctx context.Context) ([]*model.Question, error)
	ListDeepQuestions(ctx context.Context) ([]*model.Question, error)
	ListActiveCategories(ctx context.Context) ([]*model.Category, error)
}

type catalogRepo struct {
	questions  *mongo.Collection
	categories *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		questions:  db.Collection("questions"),
		categories: db.Collection("categories"),
	}
}

func (r *catalogRepo) GetQuestionByID(ctx context.Context, id string) (*model.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var question model.Question
	err = r.questions.FindOne(ctx, bson.M{"_id": oid}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	question.ID = id
	return &question, nil
}

func (r *catalogRepo) ListActiveQuestions(ctx context.Context) ([]*model.Question, error) {
	return r.findQuestions(ctx, bson.M{"isActive": true})
}

func (r *catalogRepo) ListDeepQuestions(ctx context.Context) ([]*model.Question, error) {
	return r.findQuestions(ctx, bson.M{"isActive": true, "deep": bson.M{"$ne": nil}})
}

func (r *catalogRepo) findQuestions(ctx context.Context, filter bson.M) ([]*model.Question, error) {
	cursor, err := r.questions.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ListActiveCategories returns the active categories in catalog order; this
// ordering drives aggregation output ordering and tie-breaks.
func (r *catalogRepo) ListActiveCategories(ctx context.Context) ([]*model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
