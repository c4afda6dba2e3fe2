package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servergreen991/designer-mom/models"
)

func TestAgeDescription(t *testing.T) {
	tests := []struct {
		age      int
		sex      models.Sex
		expected string
	}{
		{8, models.SexFemale, "an Indian girl aged around 8"},
		{8, models.SexMale, "an Indian boy aged around 8"},
		{15, models.SexFemale, "an Indian teenage girl aged around 15"},
		{19, models.SexMale, "an Indian teenage boy aged around 19"},
		{25, models.SexFemale, "an Indian woman aged around 25"},
		{40, models.SexMale, "an Indian man aged around 40"},
		{40, models.SexOther, "an Indian man aged around 40"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ageDescription(tt.age, tt.sex))
	}
}

func TestBuildViewPromptIsDeterministic(t *testing.T) {
	m := models.Measurements{Age: 30, Sex: models.SexFemale}
	fabrics := []models.Fabric{{Name: "Silk"}, {Name: "Chiffon"}}
	design := models.Design{Name: "Lehenga"}

	first := BuildViewPrompt("front", m, fabrics, design)
	second := BuildViewPrompt("front", m, fabrics, design)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "an Indian woman aged around 30")
	assert.Contains(t, first, `"Lehenga"`)
	assert.Contains(t, first, "Silk, Chiffon")
	assert.Contains(t, first, "showing the complete front of the dress")
	assert.Contains(t, first, "fashion catalog")
}

func TestBuildViewPromptVariesByAngle(t *testing.T) {
	m := models.Measurements{Age: 30, Sex: models.SexFemale}
	fabrics := []models.Fabric{{Name: "Silk"}}
	design := models.Design{Name: "Saree"}

	seen := make(map[string]bool)
	for _, angle := range ViewAngles {
		prompt := BuildViewPrompt(angle, m, fabrics, design)
		assert.False(t, seen[prompt], "prompt for angle %q duplicates another angle", angle)
		seen[prompt] = true
	}
}
