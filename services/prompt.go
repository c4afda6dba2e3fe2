package services

import (
	"fmt"
	"strings"

	"github.com/servergreen991/designer-mom/models"
)

// ViewAngles are the renders produced for every draft, in the order they
// appear in the preview gallery.
var ViewAngles = []string{"front", "back", "detail", "lifestyle"}

// viewDirections is the fixed per-angle clause appended to the base
// prompt.
var viewDirections = map[string]string{
	"front":     "The model faces the camera directly, showing the complete front of the dress.",
	"back":      "The model faces away from the camera, showing the complete back of the dress.",
	"detail":    "A close-up shot focusing on the fabric texture, embroidery and stitching details of the dress.",
	"lifestyle": "The model is posed candidly in an elegant lifestyle setting that complements the dress.",
}

// ageDescription phrases the model for the prompt from age and sex.
func ageDescription(age int, sex models.Sex) string {
	female := sex == models.SexFemale
	switch {
	case age < 13:
		if female {
			return fmt.Sprintf("an Indian girl aged around %d", age)
		}
		return fmt.Sprintf("an Indian boy aged around %d", age)
	case age <= 19:
		if female {
			return fmt.Sprintf("an Indian teenage girl aged around %d", age)
		}
		return fmt.Sprintf("an Indian teenage boy aged around %d", age)
	default:
		if female {
			return fmt.Sprintf("an Indian woman aged around %d", age)
		}
		return fmt.Sprintf("an Indian man aged around %d", age)
	}
}

// BuildViewPrompt deterministically builds the generation prompt for one
// view angle from the measurements, the selected fabrics and the design
// style.
func BuildViewPrompt(angle string, m models.Measurements, fabrics []models.Fabric, design models.Design) string {
	names := make([]string, len(fabrics))
	for i, f := range fabrics {
		names[i] = f.Name
	}
	fabricNames := strings.Join(names, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a photorealistic, full-body image of %s.\n", ageDescription(m.Age, m.Sex))
	fmt.Fprintf(&b, "The model must be wearing a dress in the style of a %q.\n", design.Name)
	fmt.Fprintf(&b, "The dress must be made from a creative combination of the following fabrics: %s.\n", fabricNames)
	b.WriteString("The setting is a professional fashion studio with a clean, neutral background.\n")
	if direction, ok := viewDirections[angle]; ok {
		b.WriteString(direction)
		b.WriteString("\n")
	}
	b.WriteString("The final image should be of ultra-high quality, suitable for a fashion catalog.")
	return b.String()
}
