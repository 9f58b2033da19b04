package domain

import "time"

// Step is one stage of a catalog problem. Its acceptance criteria are the
// templates subtask instances start from.
type Step struct {
	Step               int      `json:"step,omitempty"`
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Details            []any    `json:"details,omitempty"`
	AcceptanceCriteria []string `json:"acceptanceCriteria,omitempty"`
}

type Problem struct {
	ProblemNum        string           `json:"problem_num"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	LongDescription   string           `json:"longDescription"`
	Difficulty        string           `json:"difficulty"`
	Category          string           `json:"category"`
	Requirements      map[string]any   `json:"requirements"`
	Tags              []string         `json:"tags"`
	Steps             []Step           `json:"steps"`
	Resources         []map[string]any `json:"resources"`
	Metadata          map[string]any   `json:"metadata"`
	DownloadableItems []any            `json:"downloadableItems"`
	PreparationSteps  []any            `json:"preparationSteps"`

	// AcceptanceCriteria is the legacy root-level list; see NormalizeCriteria.
	AcceptanceCriteria []string `json:"acceptanceCriteria,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// ProblemPatch carries the catalog fields an update replaces. Nil fields are
// left untouched.
type ProblemPatch struct {
	Title              *string
	Description        *string
	LongDescription    *string
	Difficulty         *string
	Category           *string
	Requirements       map[string]any
	Tags               *[]string
	Steps              *[]Step
	Resources          *[]map[string]any
	Metadata           map[string]any
	DownloadableItems  *[]any
	PreparationSteps   *[]any
	AcceptanceCriteria *[]string
}

// NormalizeCriteria copies a legacy root-level criteria list into every step
// that has none of its own, dropping duplicate entries, and clears the root list.
func (p *Problem) NormalizeCriteria() {
	if len(p.AcceptanceCriteria) == 0 {
		return
	}

	root := dedupe(p.AcceptanceCriteria)

	for i := range p.Steps {
		if len(p.Steps[i].AcceptanceCriteria) > 0 {
			continue
		}

		p.Steps[i].AcceptanceCriteria = append([]string(nil), root...)
	}

	p.AcceptanceCriteria = nil
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}
