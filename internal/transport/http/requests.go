package http

import (
	"time"

	"github.com/YusovID/pangea-backend/internal/domain"
)

type ownerRequest struct {
	UserID   string `json:"userId" validate:"required,custom_id,max=100"`
	Username string `json:"username" validate:"max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type memberRequest struct {
	UserID   string `json:"userId" validate:"omitempty,custom_id,max=100"`
	Username string `json:"username" validate:"max=100"`
}

func (m *memberRequest) toDomain() domain.Member {
	if m == nil {
		return domain.Member{}
	}

	return domain.Member{UserID: m.UserID, Username: m.Username}
}

type criterionRequest struct {
	CriteriaText string `json:"criteriaText" validate:"required"`
	Completed    bool   `json:"completed"`
}

func toCriteria(in []criterionRequest) []domain.AcceptanceCriterion {
	if in == nil {
		return nil
	}

	out := make([]domain.AcceptanceCriterion, len(in))
	for i, c := range in {
		out[i] = domain.AcceptanceCriterion{CriteriaText: c.CriteriaText, Completed: c.Completed}
	}

	return out
}

func toFeedback(in []map[string]any) []domain.PRFeedback {
	if in == nil {
		return nil
	}

	out := make([]domain.PRFeedback, len(in))
	for i, f := range in {
		out[i] = domain.PRFeedback(f)
	}

	return out
}

type createInstanceRequest struct {
	ProblemNum           string         `json:"problemNum" validate:"required,max=100"`
	Owner                *ownerRequest  `json:"owner" validate:"required"`
	CollaborationMode    string         `json:"collaborationMode" validate:"required,oneof=solo pair"`
	Status               string         `json:"status" validate:"omitempty,status,max=32"`
	CollaborationDetails map[string]any `json:"collaborationDetails"`
}

type addCollaboratorRequest struct {
	UserID   string `json:"userId" validate:"required,custom_id,max=100"`
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

type updateInstanceRequest struct {
	Status               *string        `json:"status" validate:"omitempty,status,max=32"`
	CollaborationMode    *string        `json:"collaborationMode" validate:"omitempty,oneof=solo pair"`
	CollaborationDetails map[string]any `json:"collaborationDetails"`
	CompletedAt          *time.Time     `json:"completedAt"`
}

func (r updateInstanceRequest) toChanges() domain.ProblemInstanceChanges {
	var changes domain.ProblemInstanceChanges

	if r.Status != nil {
		status := domain.Status(*r.Status)
		changes.Status = &status
	}

	if r.CollaborationMode != nil {
		mode := domain.CollaborationMode(*r.CollaborationMode)
		changes.CollaborationMode = &mode
	}

	changes.CollaborationDetails = r.CollaborationDetails
	changes.CompletedAt = r.CompletedAt

	return changes
}

type updateStatusRequest struct {
	Status      string     `json:"status" validate:"required,status,max=32"`
	CompletedAt *time.Time `json:"completedAt"`
}

type createSubtaskRequest struct {
	StepNum            *int               `json:"stepNum" validate:"required,min=0"`
	Assignee           *memberRequest     `json:"assignee"`
	Reporter           *memberRequest     `json:"reporter"`
	Status             string             `json:"status" validate:"omitempty,status,max=32"`
	BranchCreated      bool               `json:"branchCreated"`
	PRCreated          bool               `json:"prCreated"`
	Deliverables       string             `json:"deliverables"`
	AcceptanceCriteria []criterionRequest `json:"acceptanceCriteria" validate:"omitempty,dive"`
	PRFeedback         []map[string]any   `json:"prFeedback"`
}

func (r createSubtaskRequest) toDomain() domain.NewSubtask {
	return domain.NewSubtask{
		StepNum:            *r.StepNum,
		Assignee:           r.Assignee.toDomain(),
		Reporter:           r.Reporter.toDomain(),
		Status:             domain.Status(r.Status),
		BranchCreated:      r.BranchCreated,
		PRCreated:          r.PRCreated,
		Deliverables:       r.Deliverables,
		AcceptanceCriteria: toCriteria(r.AcceptanceCriteria),
		PRFeedback:         toFeedback(r.PRFeedback),
	}
}

// updateSubtaskRequest distinguishes absent lists (nil) from lists sent empty.
type updateSubtaskRequest struct {
	Status             *string            `json:"status" validate:"omitempty,status,max=32"`
	Assignee           *memberRequest     `json:"assignee"`
	Reporter           *memberRequest     `json:"reporter"`
	BranchCreated      *bool              `json:"branchCreated"`
	PRCreated          *bool              `json:"prCreated"`
	Deliverables       *string            `json:"deliverables"`
	AcceptanceCriteria []criterionRequest `json:"acceptanceCriteria" validate:"omitempty,dive"`
	PRFeedback         []map[string]any   `json:"prFeedback"`
	CompletedAt        *time.Time         `json:"completedAt"`
}

func (r updateSubtaskRequest) toChanges() domain.SubtaskChanges {
	changes := domain.SubtaskChanges{
		BranchCreated: r.BranchCreated,
		PRCreated:     r.PRCreated,
		Deliverables:  r.Deliverables,
		CompletedAt:   r.CompletedAt,
	}

	if r.Status != nil {
		status := domain.Status(*r.Status)
		changes.Status = &status
	}

	if r.Assignee != nil {
		m := r.Assignee.toDomain()
		changes.Assignee = &m
	}

	if r.Reporter != nil {
		m := r.Reporter.toDomain()
		changes.Reporter = &m
	}

	if r.AcceptanceCriteria != nil {
		criteria := toCriteria(r.AcceptanceCriteria)
		changes.AcceptanceCriteria = &criteria
	}

	if r.PRFeedback != nil {
		feedback := toFeedback(r.PRFeedback)
		changes.PRFeedback = &feedback
	}

	return changes
}

type updateCriterionRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type createDiscussionRequest struct {
	ProblemID string  `json:"problemId" validate:"required,max=100"`
	Content   string  `json:"content" validate:"required,max=10000"`
	UserID    string  `json:"userId" validate:"required,custom_id,max=100"`
	ParentID  *string `json:"parentId" validate:"omitempty,max=100"`
}

type updateProblemRequest struct {
	Title              *string           `json:"title"`
	Description        *string           `json:"description"`
	LongDescription    *string           `json:"longDescription"`
	Difficulty         *string           `json:"difficulty"`
	Category           *string           `json:"category"`
	Requirements       map[string]any    `json:"requirements"`
	Tags               *[]string         `json:"tags"`
	Steps              *[]domain.Step    `json:"steps"`
	Resources          *[]map[string]any `json:"resources"`
	Metadata           map[string]any    `json:"metadata"`
	DownloadableItems  *[]any            `json:"downloadableItems"`
	PreparationSteps   *[]any            `json:"preparationSteps"`
	AcceptanceCriteria *[]string         `json:"acceptanceCriteria"`
}

func (r updateProblemRequest) toPatch() domain.ProblemPatch {
	return domain.ProblemPatch{
		Title:              r.Title,
		Description:        r.Description,
		LongDescription:    r.LongDescription,
		Difficulty:         r.Difficulty,
		Category:           r.Category,
		Requirements:       r.Requirements,
		Tags:               r.Tags,
		Steps:              r.Steps,
		Resources:          r.Resources,
		Metadata:           r.Metadata,
		DownloadableItems:  r.DownloadableItems,
		PreparationSteps:   r.PreparationSteps,
		AcceptanceCriteria: r.AcceptanceCriteria,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=10000"`
}
