package domain

import "time"

type CollaborationMode string

const (
	CollaborationSolo CollaborationMode = "solo"
	CollaborationPair CollaborationMode = "pair"
)

type CollaboratorStatus string

const (
	CollaboratorInvited CollaboratorStatus = "invited"
	CollaboratorActive  CollaboratorStatus = "active"
)

// Owner identifies the user a problem instance belongs to.
type Owner struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Member is a lightweight user reference used for subtask assignment.
type Member struct {
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

type Collaborator struct {
	UserID    string             `json:"userId"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	InvitedAt time.Time          `json:"invitedAt"`
	JoinedAt  *time.Time         `json:"joinedAt,omitempty"`
	Status    CollaboratorStatus `json:"status"`
}

type ProblemInstance struct {
	ID                   string            `json:"_id"`
	ProblemNum           string            `json:"problemNum"`
	Owner                Owner             `json:"owner"`
	CollaborationMode    CollaborationMode `json:"collaborationMode"`
	Collaborators        []Collaborator    `json:"collaborators"`
	Status               Status            `json:"status"`
	StartedAt            time.Time         `json:"startedAt"`
	LastUpdatedAt        time.Time         `json:"lastUpdatedAt"`
	CompletedAt          *time.Time        `json:"completedAt"`
	CollaborationDetails map[string]any    `json:"collaborationDetails"`
}

type NewProblemInstance struct {
	ProblemNum           string
	Owner                Owner
	CollaborationMode    CollaborationMode
	Status               Status
	CollaborationDetails map[string]any
}

// ProblemInstanceChanges lists the fields a general update may touch.
// Nil fields are left as they are.
type ProblemInstanceChanges struct {
	Status               *Status
	CollaborationMode    *CollaborationMode
	CollaborationDetails map[string]any
	CompletedAt          *time.Time
}

type AcceptanceCriterion struct {
	CriteriaText string `json:"criteriaText"`
	Completed    bool   `json:"completed"`
}

// PRFeedback is a feedback record produced outside this service and stored as is.
type PRFeedback map[string]any

type SubtaskInstance struct {
	ID                 string                `json:"_id"`
	ProblemInstanceID  string                `json:"problemInstanceId"`
	StepNum            int                   `json:"stepNum"`
	Assignee           Member                `json:"assignee"`
	Reporter           Member                `json:"reporter"`
	Status             Status                `json:"status"`
	BranchCreated      bool                  `json:"branchCreated"`
	PRCreated          bool                  `json:"prCreated"`
	Deliverables       string                `json:"deliverables"`
	AcceptanceCriteria []AcceptanceCriterion `json:"acceptanceCriteria"`
	PRFeedback         []PRFeedback          `json:"prFeedback"`
	StartedAt          *time.Time            `json:"startedAt"`
	CompletedAt        *time.Time            `json:"completedAt"`
}

type NewSubtask struct {
	StepNum            int
	Assignee           Member
	Reporter           Member
	Status             Status
	BranchCreated      bool
	PRCreated          bool
	Deliverables       string
	AcceptanceCriteria []AcceptanceCriterion
	PRFeedback         []PRFeedback
}

type SubtaskChanges struct {
	Status             *Status
	Assignee           *Member
	Reporter           *Member
	BranchCreated      *bool
	PRCreated          *bool
	Deliverables       *string
	AcceptanceCriteria *[]AcceptanceCriterion
	PRFeedback         *[]PRFeedback
	CompletedAt        *time.Time
}

type Discussion struct {
	ID        string    `json:"_id"`
	ProblemID string    `json:"problemId"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	ParentID  *string   `json:"parentId"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
}

// DiscussionThread is a top-level discussion with its direct replies.
type DiscussionThread struct {
	Discussion
	Replies []Discussion `json:"replies"`
}

type ContactMessage struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
