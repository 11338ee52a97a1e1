package model

import "time"

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeScale          QuestionType = "scale"
	QuestionTypeFreeText       QuestionType = "free_text"
)

// Module is a deep-assessment evaluation module
type Module string

const (
	ModulePM          Module = "PM"
	ModuleEngineering Module = "Engineering"
	ModuleHSE         Module = "HSE"
	ModuleOMDOI       Module = "O&M_DOI"
)

// Modules lists the known modules in canonical order
var Modules = []Module{ModulePM, ModuleEngineering, ModuleHSE, ModuleOMDOI}

// IRLPhase is an industrial readiness level phase
type IRLPhase string

const (
	IRL1 IRLPhase = "IRL1"
	IRL2 IRLPhase = "IRL2"
	IRL3 IRLPhase = "IRL3"
	IRL4 IRLPhase = "IRL4"
	IRL5 IRLPhase = "IRL5"
	IRL6 IRLPhase = "IRL6"
)

// IRLPhases lists the phases in progression order
var IRLPhases = []IRLPhase{IRL1, IRL2, IRL3, IRL4, IRL5, IRL6}

// NextIRLPhase returns the phase following p, or "" for the last phase and
// unknown phases.
func NextIRLPhase(p IRLPhase) IRLPhase {
	for i, phase := range IRLPhases {
		if phase == p && i+1 < len(IRLPhases) {
			return IRLPhases[i+1]
		}
	}
	return ""
}

// QuestionFamily is a canonical deep-assessment question family
type QuestionFamily string

const (
	FamilyGouvernancePilotage   QuestionFamily = "Gouvernance_Pilotage"
	FamilyLivrablesStructurants QuestionFamily = "Livrables_Structurants"
	FamilyMethodologieProcess   QuestionFamily = "Methodologie_Process"
	FamilyOutilsDigital         QuestionFamily = "Outils_Digital"
	FamilyRisquesConformite     QuestionFamily = "Risques_Conformite"
	FamilyModuleSpecifique      QuestionFamily = "Module_Specifique"
)

// QuestionFamilies lists the canonical families in reporting order
var QuestionFamilies = []QuestionFamily{
	FamilyGouvernancePilotage,
	FamilyLivrablesStructurants,
	FamilyMethodologieProcess,
	FamilyOutilsDigital,
	FamilyRisquesConformite,
	FamilyModuleSpecifique,
}

// IsCanonicalFamily reports whether f is one of the known families
func IsCanonicalFamily(f QuestionFamily) bool {
	for _, known := range QuestionFamilies {
		if f == known {
			return true
		}
	}
	return false
}

// Category groups quick-mode questions. Order drives aggregation output
// ordering and weakest/strongest tie-breaks.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Order       int       `json:"order" bson:"order"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// QuestionOption is one selectable answer of a multiple-choice question
type QuestionOption struct {
	ID    string  `json:"id" bson:"id"`
	Text  string  `json:"text" bson:"text"`
	Value float64 `json:"value" bson:"value"` // raw score 0-3
}

// DeepQuestionMeta carries the tags a question needs to participate in a
// deep assessment. Questions without it are quick-only.
type DeepQuestionMeta struct {
	Module         Module         `json:"module" bson:"module"`
	IRLPhase       IRLPhase       `json:"irlPhase" bson:"irlPhase"`
	QuestionFamily QuestionFamily `json:"questionFamily" bson:"questionFamily"`
	Criticality    int            `json:"criticality" bson:"criticality"` // 1-3 weight multiplier
}

// Valid reports whether the meta carries all four tags with a canonical
// family and a criticality in range. Nil-safe.
func (m *DeepQuestionMeta) Valid() bool {
	if m == nil {
		return false
	}
	if m.Module == "" || m.IRLPhase == "" {
		return false
	}
	if !IsCanonicalFamily(m.QuestionFamily) {
		return false
	}
	return m.Criticality >= 1 && m.Criticality <= 3
}

// Question is a catalog question. Deep is nil for quick-only questions.
type Question struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	CategoryID string            `json:"categoryId" bson:"categoryId"`
	Text       string            `json:"text" bson:"text"`
	Type       QuestionType      `json:"type" bson:"type"`
	Options    []QuestionOption  `json:"options,omitempty" bson:"options,omitempty"`
	Deep       *DeepQuestionMeta `json:"deep,omitempty" bson:"deep,omitempty"`
	IsActive   bool              `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time         `json:"createdAt" bson:"createdAt"`
}

// DeepEligible reports whether the question can appear in a deep assessment
func (q *Question) DeepEligible() bool {
	return q.Deep.Valid()
}
