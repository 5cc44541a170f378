// Package plandata bundles fallback copies of the habit metadata and
// per-script plan documents. The plan service serves these when the
// remote data source is unreachable, so a first run without network
// still produces a usable plan.
package plandata

import (
	"embed"
	"encoding/json"
	"fmt"

	"selftalk/internal/domain"
)

//go:embed habits.json scripts
var files embed.FS

// Metadata parses the bundled habit metadata document.
func Metadata() (*domain.HabitMetadata, error) {
	raw, err := files.ReadFile("habits.json")
	if err != nil {
		return nil, fmt.Errorf("reading bundled metadata: %w", err)
	}
	var meta domain.HabitMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parsing bundled metadata: %w", err)
	}
	return &meta, nil
}

// Script parses the bundled plan document for a script id. The second
// return is false when no copy is bundled for that id.
func Script(id string) (*domain.PlanDocument, bool) {
	raw, err := files.ReadFile("scripts/" + id + ".json")
	if err != nil {
		return nil, false
	}
	var doc domain.PlanDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

// learningLibrary maps phase ids to further-reading resources.
var learningLibrary = map[string]map[domain.Locale]domain.LearningResource{
	"phase-identity": {
		domain.LocaleZH: {Title: "身份重塑：用自我对话建立“无烟者”身份", URL: "/learn/identity-reset"},
		domain.LocaleEN: {Title: "Identity reset: build your smoke-free narrative", URL: "/learn/identity-reset"},
	},
	"phase-reasons": {
		domain.LocaleZH: {Title: "理由强化：把戒烟动机说出口", URL: "/learn/reasons-playbook"},
		domain.LocaleEN: {Title: "Reason reinforcement: say your why aloud", URL: "/learn/reasons-playbook"},
	},
	"phase-consolidation": {
		domain.LocaleZH: {Title: "巩固期：保持 21 天后的节奏", URL: "/learn/consolidation"},
		domain.LocaleEN: {Title: "Consolidation: sustain momentum beyond day 21", URL: "/learn/consolidation"},
	},
}

// Learning returns the further-reading resource registered for a phase,
// if any.
func Learning(phaseID string, loc domain.Locale) (domain.LearningResource, bool) {
	byLocale, ok := learningLibrary[phaseID]
	if !ok {
		return domain.LearningResource{}, false
	}
	res, ok := byLocale[loc]
	return res, ok
}
