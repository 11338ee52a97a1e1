package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"maturiq/internal/model"
)

// AssessmentRepo handles MongoDB operations for assessments
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	GetByProjectID(ctx context.Context, projectID string) ([]*model.Assessment, error)
	// SaveAnswers replaces the answer set and its counters in one update,
	// the atomic commit point after recording an answer.
	SaveAnswers(ctx context.Context, id string, answers []model.Answer, questionsAnswered int, avgTime float64) error
	// SaveResults publishes the completed assessment's score collections and
	// summary fields in a single update so a partially-rewritten score set
	// is never visible.
	SaveResults(ctx context.Context, assessment *model.Assessment) error
	UpdateStatus(ctx context.Context, id string, status model.AssessmentStatus) error
	Delete(ctx context.Context, id string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	if assessment.StartedAt.IsZero() {
		assessment.StartedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	assessment.ID = oid.Hex()
	return assessment.ID, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var assessment model.Assessment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	assessment.ID = id
	return &assessment, nil
}

func (r *assessmentRepo) GetByProjectID(ctx context.Context, projectID string) ([]*model.Assessment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) SaveAnswers(ctx context.Context, id string, answers []model.Answer, questionsAnswered int, avgTime float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"answers":                answers,
		"questionsAnswered":      questionsAnswered,
		"averageTimePerQuestion": avgTime,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *assessmentRepo) SaveResults(ctx context.Context, assessment *model.Assessment) error {
	oid, err := primitive.ObjectIDFromHex(assessment.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"status":               assessment.Status,
		"categoryScores":       assessment.CategoryScores,
		"moduleScores":         assessment.ModuleScores,
		"overallScore":         assessment.OverallScore,
		"overallWeightedScore": assessment.OverallWeightedScore,
		"overallPercentage":    assessment.OverallPercentage,
		"maturityLevel":        assessment.MaturityLevel,
		"weakestCategoryId":    assessment.WeakestCategoryID,
		"strongestCategoryId":  assessment.StrongestCategoryID,
		"feedback":             assessment.Feedback,
		"completedAt":          assessment.CompletedAt,
		"durationMinutes":      assessment.DurationMinutes,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *assessmentRepo) UpdateStatus(ctx context.Context, id string, status model.AssessmentStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
