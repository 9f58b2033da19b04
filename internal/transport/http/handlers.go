package http

import (
	"context"
	"net/http"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/auth"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/YusovID/pangea-backend/internal/validation"
	"github.com/YusovID/pangea-backend/pkg/api"
)

var _ api.ServerInterface = (*Server)(nil)

func (s *Server) CreateInstance(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.CreateInstance"

	var req createInstanceRequest
	if err := s.decode(r.Body, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	// Without an explicit owner the caller starts the instance for themselves.
	if id, ok := auth.IdentityFromContext(r.Context()); ok && req.Owner == nil {
		req.Owner = &ownerRequest{UserID: id.UserID, Username: id.Username, Email: id.Email}
	}

	if err := validation.ValidateStruct(&req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	id, err := s.svc.Instances.Create(r.Context(), domain.NewProblemInstance{
		ProblemNum:           req.ProblemNum,
		Owner:                domain.Owner{UserID: req.Owner.UserID, Username: req.Owner.Username, Email: req.Owner.Email},
		CollaborationMode:    domain.CollaborationMode(req.CollaborationMode),
		Status:               domain.Status(req.Status),
		CollaborationDetails: req.CollaborationDetails,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]string{
		"message":    "Problem instance created successfully",
		"instanceId": id,
	})
}

func (s *Server) GetInstance(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.GetInstance"

	inst, err := s.svc.Instances.GetByID(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, missing("problem instance", err))
		return
	}

	s.respond(w, http.StatusOK, inst)
}

func (s *Server) GetInstanceByOwner(w http.ResponseWriter, r *http.Request, problemNum, userID string) {
	const op = "internal.transport.http.GetInstanceByOwner"

	inst, err := s.svc.Instances.GetByProblemAndUser(r.Context(), problemNum, userID)
	if err != nil {
		s.handleServiceError(w, r, op, missing("problem instance", err))
		return
	}

	s.respond(w, http.StatusOK, inst)
}

func (s *Server) UpdateInstance(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.UpdateInstance"

	var req updateInstanceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.svc.Instances.UpdateFields(r.Context(), id, req.toChanges()); err != nil {
		s.handleServiceError(w, r, op, rejected("problem instance", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Problem instance updated successfully")
}

func (s *Server) UpdateInstanceStatus(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.UpdateInstanceStatus"

	var req updateStatusRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	err := s.svc.Instances.UpdateStatus(r.Context(), id, domain.Status(req.Status), req.CompletedAt)
	if err != nil {
		s.handleServiceError(w, r, op, rejected("problem instance", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Problem instance updated successfully")
}

func (s *Server) ListCollaborators(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.ListCollaborators"

	collaborators, err := s.svc.Instances.ListCollaborators(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, missing("problem instance", err))
		return
	}

	s.respond(w, http.StatusOK, collaborators)
}

func (s *Server) AddCollaborator(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.AddCollaborator"

	var req addCollaboratorRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	user := domain.Owner{UserID: req.UserID, Username: req.Username, Email: req.Email}
	if err := s.svc.Instances.AddCollaborator(r.Context(), id, user); err != nil {
		s.handleServiceError(w, r, op, rejected("problem instance", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Collaborator added successfully")
}

func (s *Server) ListSubtasks(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.ListSubtasks"

	subtasks, err := s.svc.Subtasks.ListByParent(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, missing("problem instance", err))
		return
	}

	s.respond(w, http.StatusOK, subtasks)
}

func (s *Server) CreateSubtask(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.CreateSubtask"

	var req createSubtaskRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	id, err := s.svc.Subtasks.Create(r.Context(), id, req.toDomain())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, map[string]string{
		"message":   "Subtask instance created successfully",
		"subtaskId": id,
	})
}

func (s *Server) GetSubtask(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.GetSubtask"

	st, err := s.svc.Subtasks.Get(r.Context(), id)
	if err != nil {
		s.handleServiceError(w, r, op, missing("subtask instance", err))
		return
	}

	s.respond(w, http.StatusOK, st)
}

// checkParent fails unless the subtask exists and belongs to the instance
// named in the path.
func (s *Server) checkParent(ctx context.Context, instanceID, subtaskID string) error {
	st, err := s.svc.Subtasks.Get(ctx, subtaskID)
	if err != nil {
		return missing("subtask instance", err)
	}

	if st.ProblemInstanceID != instanceID {
		return apperrors.ErrParentMismatch
	}

	return nil
}

func (s *Server) UpdateSubtask(w http.ResponseWriter, r *http.Request, id, subtaskID string) {
	const op = "internal.transport.http.UpdateSubtask"

	var req updateSubtaskRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.checkParent(r.Context(), id, subtaskID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.svc.Subtasks.Update(r.Context(), subtaskID, req.toChanges()); err != nil {
		s.handleServiceError(w, r, op, missing("subtask instance", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Subtask instance updated successfully")
}

func (s *Server) UpdateCriterion(w http.ResponseWriter, r *http.Request, id, subtaskID, criteriaID string) {
	const op = "internal.transport.http.UpdateCriterion"

	var req updateCriterionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.checkParent(r.Context(), id, subtaskID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	ref := domain.ParseCriterionRef(criteriaID)
	if err := s.svc.Subtasks.UpdateCriterion(r.Context(), subtaskID, ref, *req.Completed); err != nil {
		s.handleServiceError(w, r, op, missing("subtask instance", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Acceptance criterion updated successfully")
}

func (s *Server) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.CreateDiscussion"

	var req createDiscussionRequest
	if err := s.decode(r.Body, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if id, ok := auth.IdentityFromContext(r.Context()); ok && req.UserID == "" {
		req.UserID = id.UserID
	}

	if err := validation.ValidateStruct(&req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	d, err := s.svc.Discussions.Create(r.Context(), req.ProblemID, req.Content, req.UserID, req.ParentID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, d)
}

func (s *Server) ListDiscussions(w http.ResponseWriter, r *http.Request, problemID string) {
	const op = "internal.transport.http.ListDiscussions"

	threads, err := s.svc.Discussions.ListByProblem(r.Context(), problemID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, threads)
}

func (s *Server) VoteDiscussion(w http.ResponseWriter, r *http.Request, id string) {
	const op = "internal.transport.http.VoteDiscussion"

	if err := s.svc.Discussions.Vote(r.Context(), id); err != nil {
		s.handleServiceError(w, r, op, missing("discussion", err))
		return
	}

	s.respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) ListProblems(w http.ResponseWriter, r *http.Request, params api.ListProblemsParams) {
	const op = "internal.transport.http.ListProblems"

	problems, err := s.svc.Problems.List(r.Context(), deref(params.Category))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, problems)
}

func (s *Server) GetProblem(w http.ResponseWriter, r *http.Request, problemNum string) {
	const op = "internal.transport.http.GetProblem"

	p, err := s.svc.Problems.Get(r.Context(), problemNum)
	if err != nil {
		s.handleServiceError(w, r, op, missing("problem", err))
		return
	}

	s.respond(w, http.StatusOK, p)
}

func (s *Server) AddProblem(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.AddProblem"

	var p domain.Problem
	if err := s.decode(r.Body, &p); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if p.ProblemNum == "" {
		s.handleServiceError(w, r, op, validation.Invalid("field 'problem_num' is required"))
		return
	}

	if err := s.svc.Problems.Add(r.Context(), p); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respondMessage(w, http.StatusCreated, "Problem added successfully")
}

func (s *Server) UpdateProblem(w http.ResponseWriter, r *http.Request, problemNum string) {
	const op = "internal.transport.http.UpdateProblem"

	var req updateProblemRequest
	if err := s.decode(r.Body, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.svc.Problems.Update(r.Context(), problemNum, req.toPatch()); err != nil {
		s.handleServiceError(w, r, op, missing("problem", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Problem updated successfully")
}

func (s *Server) DeleteProblem(w http.ResponseWriter, r *http.Request, problemNum string) {
	const op = "internal.transport.http.DeleteProblem"

	if err := s.svc.Problems.Delete(r.Context(), problemNum); err != nil {
		s.handleServiceError(w, r, op, missing("problem", err))
		return
	}

	s.respondMessage(w, http.StatusOK, "Problem deleted successfully")
}

func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.SubmitContact"

	var req contactRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.svc.Contact.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respondMessage(w, http.StatusOK, "Your message has been received. We will get back to you soon.")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
