package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// ProfileField identifies one intake question.
type ProfileField string

const (
	FieldName   ProfileField = "name"
	FieldAge    ProfileField = "age"
	FieldGoal   ProfileField = "goal"
	FieldGender ProfileField = "gender"
	FieldHeight ProfileField = "height"
	FieldWeight ProfileField = "weight"
)

// IntakeOrder is the fixed order in which profile fields are collected.
var IntakeOrder = []ProfileField{
	FieldName,
	FieldAge,
	FieldGoal,
	FieldGender,
	FieldHeight,
	FieldWeight,
}

// Profile is the per-conversation draft of the client's profile,
// filled field-by-field during intake. Pointer fields distinguish
// "never asked" from "answered with whatever was sent": filling is
// presence-based, never validated.
type Profile struct {
	Name   *string `json:"name,omitempty"`
	Age    *string `json:"age,omitempty"`
	Goal   *string `json:"goal,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Height *string `json:"height,omitempty"`
	Weight *string `json:"weight,omitempty"`

	// Superset draft fields the dashboard may fill; the intake flow
	// itself never asks for these.
	Experience          *string `json:"experience,omitempty"`
	AvailableDays       *string `json:"available_days,omitempty"`
	HealthConditions    *string `json:"health_conditions,omitempty"`
	ExercisePreferences *string `json:"exercise_preferences,omitempty"`
	DietaryRestrictions *string `json:"dietary_restrictions,omitempty"`
	Equipment           *string `json:"equipment,omitempty"`
	Motivation          *string `json:"motivation,omitempty"`
}

func (p *Profile) slot(field ProfileField) **string {
	switch field {
	case FieldName:
		return &p.Name
	case FieldAge:
		return &p.Age
	case FieldGoal:
		return &p.Goal
	case FieldGender:
		return &p.Gender
	case FieldHeight:
		return &p.Height
	case FieldWeight:
		return &p.Weight
	default:
		return nil
	}
}

// Set stores a value into the given intake field
func (p *Profile) Set(field ProfileField, value string) {
	if slot := p.slot(field); slot != nil {
		*slot = &value
	}
}

// Get returns the stored value of the given intake field, or ""
func (p *Profile) Get(field ProfileField) string {
	if slot := p.slot(field); slot != nil && *slot != nil {
		return **slot
	}
	return ""
}

// NextMissingField returns the first intake field not yet filled,
// following IntakeOrder. ok is false once the profile is complete.
func (p *Profile) NextMissingField() (ProfileField, bool) {
	for _, field := range IntakeOrder {
		if slot := p.slot(field); *slot == nil {
			return field, true
		}
	}
	return "", false
}

// Complete reports whether every intake field has been filled
func (p *Profile) Complete() bool {
	_, missing := p.NextMissingField()
	return !missing
}

// ToJSON serializes the profile for storage in Conversation.Context
func (p *Profile) ToJSON() (datatypes.JSON, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return datatypes.JSON(data), nil
}

// ProfileFromJSON decodes a stored conversation context. An empty or
// nil context yields an empty profile.
func ProfileFromJSON(data datatypes.JSON) (*Profile, error) {
	p := &Profile{}
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return p, nil
}

// Rows returns the filled intake fields as labeled pairs, in intake
// order, for the rendered document.
func (p *Profile) Rows() [][2]string {
	labels := map[ProfileField]string{
		FieldName:   "Nome",
		FieldAge:    "Idade",
		FieldGoal:   "Objetivo",
		FieldGender: "Género",
		FieldHeight: "Altura",
		FieldWeight: "Peso",
	}

	var rows [][2]string
	for _, field := range IntakeOrder {
		if slot := p.slot(field); *slot != nil {
			rows = append(rows, [2]string{labels[field], **slot})
		}
	}
	return rows
}

// Description renders the profile as prompt text for the plan author
func (p *Profile) Description() string {
	var sb strings.Builder
	for _, row := range p.Rows() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", row[0], row[1]))
	}
	if sb.Len() == 0 {
		return "- (sem dados de perfil)\n"
	}
	return sb.String()
}
