package domain

// LocalizedText is a field carried in both supported languages.
// Either side may be empty; ForLocale falls back to the other.
type LocalizedText struct {
	ZH string `json:"zh,omitempty"`
	EN string `json:"en,omitempty"`
}

// ForLocale returns the text for the given locale, falling back to the
// other language when the requested one is empty.
func (t LocalizedText) ForLocale(loc Locale) string {
	if loc == LocaleZH {
		if t.ZH != "" {
			return t.ZH
		}
		return t.EN
	}
	if t.EN != "" {
		return t.EN
	}
	return t.ZH
}

// IsEmpty reports whether no language carries any text.
func (t LocalizedText) IsEmpty() bool {
	return t.ZH == "" && t.EN == ""
}

// PlanPhase groups consecutive plan days under a theme.
type PlanPhase struct {
	ID    string        `json:"id"`
	Title LocalizedText `json:"title"`
	Focus LocalizedText `json:"focus,omitempty"`
}

// PlanDay is one day of a practice script.
type PlanDay struct {
	Day           int                      `json:"day"`
	Phase         string                   `json:"phase,omitempty"`
	Affirmation   LocalizedText            `json:"affirmation"`
	Why           LocalizedText            `json:"why,omitempty"`
	Action        LocalizedText            `json:"action,omitempty"`
	RecordingHint LocalizedText            `json:"recordingHint,omitempty"`
	Prompts       map[string]LocalizedText `json:"prompts,omitempty"`
	Tags          []string                 `json:"tags,omitempty"`
}

// PromptOrder is the display order for known prompt keys; unknown keys
// render after these with a generic label.
var PromptOrder = []string{"morning", "afternoon", "evening"}

// PlanDocument is a fetched per-script plan: ordered days plus the
// phases they reference.
type PlanDocument struct {
	ID     string        `json:"id"`
	Title  LocalizedText `json:"title,omitempty"`
	Days   []PlanDay     `json:"days"`
	Phases []PlanPhase   `json:"phases,omitempty"`
}

// PhaseByID resolves a phase reference; nil when absent.
func (d *PlanDocument) PhaseByID(id string) *PlanPhase {
	for i := range d.Phases {
		if d.Phases[i].ID == id {
			return &d.Phases[i]
		}
	}
	return nil
}

// Template statuses as shipped in the metadata document.
const (
	TemplateStatusReady      = "ready"
	TemplateStatusComingSoon = "coming-soon"
	TemplateStatusCustom     = "custom"
)

// HabitTemplate describes one selectable practice template. Script is
// the identifier of its plan document; templates without a script are
// not yet practicable.
type HabitTemplate struct {
	HabitID string        `json:"habitId"`
	Label   LocalizedText `json:"label"`
	Script  string        `json:"script,omitempty"`
	Status  string        `json:"status,omitempty"`
}

// Ready reports whether the template has a practicable script.
func (t HabitTemplate) Ready() bool {
	return t.Script != ""
}

// HabitCategory groups templates under a change pathway.
type HabitCategory struct {
	ID        string          `json:"id"`
	Pathway   string          `json:"pathway"`
	Title     LocalizedText   `json:"title"`
	Templates []HabitTemplate `json:"templates"`
}

// HabitMetadata is the top-level metadata document listing every
// category and template.
type HabitMetadata struct {
	Categories []HabitCategory `json:"categories"`
}

// TemplateByID finds a template across all categories.
func (m *HabitMetadata) TemplateByID(habitID string) *HabitTemplate {
	for ci := range m.Categories {
		for ti := range m.Categories[ci].Templates {
			if m.Categories[ci].Templates[ti].HabitID == habitID {
				return &m.Categories[ci].Templates[ti]
			}
		}
	}
	return nil
}

// CategoriesForPathway filters categories by pathway id.
func (m *HabitMetadata) CategoriesForPathway(pathway string) []HabitCategory {
	var out []HabitCategory
	for _, c := range m.Categories {
		if c.Pathway == pathway {
			out = append(out, c)
		}
	}
	return out
}

// Pathways returns the distinct pathway ids in first-seen order.
func (m *HabitMetadata) Pathways() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range m.Categories {
		if !seen[c.Pathway] {
			seen[c.Pathway] = true
			out = append(out, c.Pathway)
		}
	}
	return out
}

// LearningResource is a further-reading link attached to a phase.
type LearningResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
