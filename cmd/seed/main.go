package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maturiq/internal/config"
	"maturiq/internal/model"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	now := time.Now()

	categories := []interface{}{
		model.Category{Name: "Governance & Steering", Description: "Steering routines, decision bodies, roles", Order: 1, IsActive: true, CreatedAt: now},
		model.Category{Name: "Methods & Processes", Description: "Ways of working, process discipline", Order: 2, IsActive: true, CreatedAt: now},
		model.Category{Name: "Tools & Digital", Description: "Tooling coverage and adoption", Order: 3, IsActive: true, CreatedAt: now},
		model.Category{Name: "Risks & Compliance", Description: "Risk registers, compliance follow-up", Order: 4, IsActive: true, CreatedAt: now},
	}
	catResult, err := db.Collection("categories").InsertMany(ctx, categories)
	if err != nil {
		log.Fatalf("Failed to insert categories: %v", err)
	}
	catIDs := make([]string, len(catResult.InsertedIDs))
	for i, id := range catResult.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			catIDs[i] = oid.Hex()
		}
	}

	scaleOptions := []model.QuestionOption{
		{ID: "opt0", Text: "Not in place", Value: 0},
		{ID: "opt1", Text: "Initiated", Value: 1},
		{ID: "opt2", Text: "Partially deployed", Value: 2},
		{ID: "opt3", Text: "Fully in place", Value: 3},
	}

	questions := []interface{}{
		model.Question{
			CategoryID: catIDs[0], Type: model.QuestionTypeMultipleChoice, IsActive: true, CreatedAt: now,
			Text:    "Is a project steering committee in place with a defined cadence?",
			Options: scaleOptions,
		},
		model.Question{
			CategoryID: catIDs[0], Type: model.QuestionTypeMultipleChoice, IsActive: true, CreatedAt: now,
			Text:    "Are project roles and responsibilities documented and communicated?",
			Options: scaleOptions,
			Deep: &model.DeepQuestionMeta{
				Module: model.ModulePM, IRLPhase: model.IRL1,
				QuestionFamily: model.FamilyGouvernancePilotage, Criticality: 3,
			},
		},
		model.Question{
			CategoryID: catIDs[1], Type: model.QuestionTypeMultipleChoice, IsActive: true, CreatedAt: now,
			Text:    "Are structuring deliverables identified and tracked for the current phase?",
			Options: scaleOptions,
			Deep: &model.DeepQuestionMeta{
				Module: model.ModulePM, IRLPhase: model.IRL1,
				QuestionFamily: model.FamilyLivrablesStructurants, Criticality: 2,
			},
		},
		model.Question{
			CategoryID: catIDs[2], Type: model.QuestionTypeMultipleChoice, IsActive: true, CreatedAt: now,
			Text:    "Is the engineering toolchain deployed and used by the whole team?",
			Options: scaleOptions,
			Deep: &model.DeepQuestionMeta{
				Module: model.ModuleEngineering, IRLPhase: model.IRL2,
				QuestionFamily: model.FamilyOutilsDigital, Criticality: 2,
			},
		},
		model.Question{
			CategoryID: catIDs[3], Type: model.QuestionTypeMultipleChoice, IsActive: true, CreatedAt: now,
			Text:    "Is an HSE risk register maintained and reviewed at each phase gate?",
			Options: scaleOptions,
			Deep: &model.DeepQuestionMeta{
				Module: model.ModuleHSE, IRLPhase: model.IRL1,
				QuestionFamily: model.FamilyRisquesConformite, Criticality: 3,
			},
		},
		model.Question{
			CategoryID: catIDs[3], Type: model.QuestionTypeYesNo, IsActive: true, CreatedAt: now,
			Text: "Has a compliance review been performed for the current phase?",
			Options: []model.QuestionOption{
				{ID: "no", Text: "No", Value: 0},
				{ID: "yes", Text: "Yes", Value: 3},
			},
		},
	}
	if _, err := db.Collection("questions").InsertMany(ctx, questions); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}

	fmt.Printf("Seeded %d categories and %d questions into %s\n", len(categories), len(questions), cfg.MongoDB)
}
