package interview

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/virtual-interview-agent/internal/llm"
	"github.com/BerylCAtieno/virtual-interview-agent/internal/models"
)

const defaultPersonaAge = 30

// Filler catalogs for deterministic placeholder personas. Cycled by index
// when the model under-delivers.
var (
	fillerOccupations = []string{"Office worker", "Homemaker", "Freelancer", "Student", "Shop owner"}
	fillerHouseholds  = []string{"Single", "Married, no children", "Married, two children", "Living with parents"}
	fillerIncomes     = []string{"$30k-50k", "$50k-75k", "$75k-100k"}
	fillerLifestyles  = []string{"Health conscious", "Budget conscious", "Trend driven", "Convenience first"}
	fillerBehaviors   = []string{"Shops monthly at large supermarkets", "Buys mostly online", "Impulse buys when discounted"}
	fillerTraits      = []string{"Cautious", "Outgoing", "Analytical", "Easygoing"}
)

// PersonaGenerator turns survey requirements plus a target count into
// exactly that many persona records.
type PersonaGenerator struct {
	provider llm.Provider
}

func NewPersonaGenerator(provider llm.Provider) *PersonaGenerator {
	return &PersonaGenerator{provider: provider}
}

// Generate requests count personas from the model and parses whatever comes
// back. Segments the model garbles are skipped; the shortfall is padded
// with deterministic filler personas so the result always has exactly count
// entries with IDs unique against existingIDs and each other.
func (g *PersonaGenerator) Generate(ctx context.Context, req *models.SurveyRequirements, count int, existingIDs map[string]bool) ([]models.Persona, error) {
	if count <= 0 {
		return nil, preconditionErr("generate personas", fmt.Sprintf("count must be positive, got %d", count))
	}

	var raw string
	result, err := g.provider.Complete(ctx, personaSystemPrompt, personaUserPrompt(req, count))
	if err != nil {
		log.Printf("WARN: persona generation call failed, relying on filler personas: %v", err)
	} else {
		raw = result
	}

	parsed, skipped := parsePersonaBlocks(raw)
	if len(skipped) > 0 {
		log.Printf("WARN: skipped %d unparseable persona segment(s)", len(skipped))
	}
	if len(parsed) > count {
		parsed = parsed[:count]
	}

	seen := make(map[string]bool, len(existingIDs)+count)
	for id := range existingIDs {
		seen[id] = true
	}

	personas := make([]models.Persona, 0, count)
	for _, p := range parsed {
		ordinal := len(existingIDs) + len(personas) + 1
		if p.ID == "" || seen[p.ID] {
			p.ID = fmt.Sprintf("persona_%d", ordinal)
		}
		for seen[p.ID] {
			ordinal++
			p.ID = fmt.Sprintf("persona_%d", ordinal)
		}
		seen[p.ID] = true
		personas = append(personas, p)
	}

	for i := 0; len(personas) < count; i++ {
		p := fillerPersona(i)
		ordinal := len(existingIDs) + len(personas) + 1
		p.ID = fmt.Sprintf("persona_%d", ordinal)
		for seen[p.ID] {
			ordinal++
			p.ID = fmt.Sprintf("persona_%d", ordinal)
		}
		p.Name = fmt.Sprintf("Persona %d", ordinal)
		seen[p.ID] = true
		personas = append(personas, p)
	}

	return personas, nil
}

const personaSystemPrompt = "You are an expert at generating virtual consumer personas for CPG marketing research."

func personaUserPrompt(req *models.SurveyRequirements, count int) string {
	return fmt.Sprintf(`Based on the following survey requirements, generate %d virtual personas:

Product category: %s
Target age range: %s
Target gender: %s
Survey purpose: %s
Additional requirements: %s

Output each persona in exactly this format:
id: unique id
name: full name
age: number
gender: male/female
occupation: specific occupation
household_composition: family structure
income_level: income range
lifestyle: way of living
shopping_behavior: purchase pattern
personality: character traits
background_story: detailed background

Leave one blank line between personas.`,
		count, req.ProductCategory, req.TargetAgeRange, req.TargetGender,
		req.SurveyPurpose, req.AdditionalRequirements)
}

// parsePersonaBlocks splits the model output into blank-line delimited
// segments and scans each for "key: value" lines. Lines that don't parse
// are skipped; segments yielding no recognized field at all are returned in
// skipped rather than raising.
func parsePersonaBlocks(text string) (personas []models.Persona, skipped []string) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	if text == "" {
		return nil, nil
	}

	for _, segment := range strings.Split(text, "\n\n") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		fields := make(map[string]string)
		for _, line := range strings.Split(segment, "\n") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}
			key := normalizePersonaKey(parts[0])
			value := strings.TrimSpace(parts[1])
			if key == "" || value == "" {
				continue
			}
			fields[key] = value
		}

		if len(fields) == 0 {
			skipped = append(skipped, segment)
			continue
		}

		personas = append(personas, personaFromFields(fields))
	}

	return personas, skipped
}

func normalizePersonaKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.TrimLeft(key, "-*# \t")
	key = strings.ReplaceAll(key, " ", "_")
	return key
}

func personaFromFields(fields map[string]string) models.Persona {
	return models.Persona{
		ID:                   fields["id"],
		Name:                 fields["name"],
		Age:                  coerceAge(fields["age"]),
		Gender:               valueOr(fields, "gender", "female"),
		Occupation:           valueOr(fields, "occupation", "Office worker"),
		HouseholdComposition: valueOr(fields, "household_composition", "Single"),
		IncomeLevel:          valueOr(fields, "income_level", "$30k-50k"),
		Lifestyle:            valueOr(fields, "lifestyle", "Average"),
		ShoppingBehavior:     valueOr(fields, "shopping_behavior", "Shops about once a month"),
		Personality:          valueOr(fields, "personality", "Cautious"),
		BackgroundStory:      valueOr(fields, "background_story", "No detailed background provided"),
	}
}

// coerceAge pulls the leading integer out of strings like "34" or
// "34 years old". Anything unusable falls back to the default.
func coerceAge(raw string) int {
	raw = strings.TrimSpace(raw)
	digits := raw
	for i, r := range raw {
		if r < '0' || r > '9' {
			digits = raw[:i]
			break
		}
	}
	age, err := strconv.Atoi(digits)
	if err != nil || age <= 0 {
		return defaultPersonaAge
	}
	return age
}

func valueOr(fields map[string]string, key, fallback string) string {
	if v := fields[key]; v != "" {
		return v
	}
	return fallback
}

// fillerPersona synthesizes a deterministic placeholder: attributes cycle
// over the fixed catalogs, ages step by five years, gender alternates.
func fillerPersona(i int) models.Persona {
	gender := "female"
	if i%2 == 1 {
		gender = "male"
	}
	return models.Persona{
		Age:                  20 + (i*5)%45,
		Gender:               gender,
		Occupation:           fillerOccupations[i%len(fillerOccupations)],
		HouseholdComposition: fillerHouseholds[i%len(fillerHouseholds)],
		IncomeLevel:          fillerIncomes[i%len(fillerIncomes)],
		Lifestyle:            fillerLifestyles[i%len(fillerLifestyles)],
		ShoppingBehavior:     fillerBehaviors[i%len(fillerBehaviors)],
		Personality:          fillerTraits[i%len(fillerTraits)],
		BackgroundStory:      "Placeholder persona generated to reach the requested panel size.",
	}
}
