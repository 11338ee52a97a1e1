package model

import "time"

// SelectedOption is the option chosen for a scored question
type SelectedOption struct {
	ID    string  `json:"id,omitempty" bson:"id,omitempty"`
	Text  string  `json:"text,omitempty" bson:"text,omitempty"`
	Value float64 `json:"value" bson:"value"`
}

// Answer is one recorded answer inside an assessment. Catalog tags and
// criticality are snapshotted at record time; the snapshot is authoritative
// for aggregation even if the catalog question changes afterwards.
type Answer struct {
	QuestionID     string          `json:"questionId" bson:"questionId"`
	CategoryID     string          `json:"categoryId" bson:"categoryId"`
	Selected       *SelectedOption `json:"selected,omitempty" bson:"selected,omitempty"`
	FreeText       string          `json:"freeText,omitempty" bson:"freeText,omitempty"`
	RawScore       float64         `json:"rawScore" bson:"rawScore"` // 0-3
	Criticality    int             `json:"criticality" bson:"criticality"`
	WeightedScore  float64         `json:"weightedScore" bson:"weightedScore"` // rawScore * criticality, max 9
	Module         Module          `json:"module,omitempty" bson:"module,omitempty"`
	IRLPhase       IRLPhase        `json:"irlPhase,omitempty" bson:"irlPhase,omitempty"`
	QuestionFamily QuestionFamily  `json:"questionFamily,omitempty" bson:"questionFamily,omitempty"`
	TimeSpentSec   int             `json:"timeSpentSec" bson:"timeSpentSec"`
	AnsweredAt     time.Time       `json:"answeredAt" bson:"answeredAt"`
}
