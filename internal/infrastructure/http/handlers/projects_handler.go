package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"taskboard/internal/application/board"
	"taskboard/internal/domain"
	"taskboard/internal/infrastructure/http/middleware"
)

// ProjectsHandler serves the /projects resource and the nested
// /projects/{id}/tasks collection.
type ProjectsHandler struct {
	createProject *board.CreateProject
	listProjects  *board.ListProjects
	getProject    *board.GetProject
	updateProject *board.UpdateProject
	removeProject *board.RemoveProject
	createTask    *board.CreateTask
	listTasks     *board.ListTasks
	getTask       *board.GetTask
	updateTask    *board.UpdateTask
	removeTask    *board.RemoveTask
	validate      *validator.Validate
	log           zerolog.Logger
}

func NewProjectsHandler(
	createProject *board.CreateProject,
	listProjects *board.ListProjects,
	getProject *board.GetProject,
	updateProject *board.UpdateProject,
	removeProject *board.RemoveProject,
	createTask *board.CreateTask,
	listTasks *board.ListTasks,
	getTask *board.GetTask,
	updateTask *board.UpdateTask,
	removeTask *board.RemoveTask,
	log zerolog.Logger,
) *ProjectsHandler {
	return &ProjectsHandler{
		createProject: createProject,
		listProjects:  listProjects,
		getProject:    getProject,
		updateProject: updateProject,
		removeProject: removeProject,
		createTask:    createTask,
		listTasks:     listTasks,
		getTask:       getTask,
		updateTask:    updateTask,
		removeTask:    removeTask,
		validate:      validator.New(),
		log:           log,
	}
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

type taskResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type projectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	OwnerID     string         `json:"owner_id"`
	TaskIDs     []string       `json:"task_ids"`
	Tasks       []taskResponse `json:"tasks"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

func taskToResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID.String(),
		ProjectID: t.ProjectID.String(),
		Title:     t.Title,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(timeLayout),
		UpdatedAt: t.UpdatedAt.Format(timeLayout),
	}
}

func projectToResponse(p *domain.Project) projectResponse {
	taskIDs := make([]string, 0, len(p.TaskIDs))
	for _, id := range p.TaskIDs {
		taskIDs = append(taskIDs, id.String())
	}
	tasks := make([]taskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, taskToResponse(t))
	}
	return projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		OwnerID:     p.OwnerID.String(),
		TaskIDs:     taskIDs,
		Tasks:       tasks,
		CreatedAt:   p.CreatedAt.Format(timeLayout),
		UpdatedAt:   p.UpdatedAt.Format(timeLayout),
	}
}

func (h *ProjectsHandler) writeDomainErr(w http.ResponseWriter, err error) {
	code, errCode := statusFor(err)
	if code == http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("project operation failed")
		writeErr(w, code, errCode, "internal error")
		return
	}
	writeErr(w, code, errCode, err.Error())
}

type inlineTaskRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Status string `json:"status" validate:"omitempty,oneof=in_progress completed"`
}

type createProjectRequest struct {
	Name        string              `json:"name" validate:"required,min=3,max=120"`
	Description string              `json:"description" validate:"required,max=2000"`
	Status      string              `json:"status" validate:"omitempty,oneof=active suspended completed"`
	OwnerID     string              `json:"owner_id" validate:"omitempty"`
	Tasks       []inlineTaskRequest `json:"tasks" validate:"omitempty,dive"`
}

// Create handles POST /projects. The owner is always the token subject;
// a client-supplied owner_id is rejected.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserFromContext(r.Context())
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
		return
	}
	owner, err := domain.ParseUserID(userID)
	if err != nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidToken, "invalid token subject")
		return
	}
	var body createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	input := board.CreateProjectInput{
		Name:        body.Name,
		Description: body.Description,
		Status:      domain.ProjectStatus(body.Status),
		OwnerID:     body.OwnerID,
	}
	for _, t := range body.Tasks {
		input.Tasks = append(input.Tasks, board.InlineTaskInput{
			Title:  t.Title,
			Status: domain.TaskStatus(t.Status),
		})
	}
	project, err := h.createProject.Execute(r.Context(), input, owner)
	if err != nil {
		AuditLog(h.log, r, "project.create", userID, false, err.Error())
		h.writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "project.create", userID, true, "")
	writeJSON(w, http.StatusCreated, projectToResponse(project))
}

// List handles GET /projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.listProjects.Execute(r.Context())
	if err != nil {
		h.writeDomainErr(w, err)
		return
	}
	items := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectToResponse(p))
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /projects/{id}.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.getProject.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(project))
}

type taskEntryRequest struct {
	ID     string  `json:"id" validate:"omitempty,uuid"`
	Title  *string `json:"title" validate:"omitempty,max=200"`
	Status *string `json:"status" validate:"omitempty,oneof=in_progress completed"`
}

type updateProjectRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=3,max=120"`
	Description *string             `json:"description" validate:"omitempty,min=1,max=2000"`
	Status      *string             `json:"status" validate:"omitempty,oneof=active suspended completed"`
	OwnerID     string              `json:"owner_id" validate:"omitempty"`
	Tasks       *[]taskEntryRequest `json:"tasks" validate:"omitempty,dive"`
}

// Update handles PATCH /projects/{id}. A supplied task list is reconciled
// against the stored tasks; absent fields are left unchanged.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	input := board.UpdateProjectInput{
		Name:        body.Name,
		Description: body.Description,
		OwnerID:     body.OwnerID,
	}
	if body.Status != nil {
		status := domain.ProjectStatus(*body.Status)
		input.Status = &status
	}
	if body.Tasks != nil {
		entries := make([]board.TaskEntryInput, 0, len(*body.Tasks))
		for _, e := range *body.Tasks {
			entry := board.TaskEntryInput{ID: e.ID, Title: e.Title}
			if e.Status != nil {
				status := domain.TaskStatus(*e.Status)
				entry.Status = &status
			}
			entries = append(entries, entry)
		}
		input.Tasks = &entries
	}
	userID, _ := middleware.UserFromContext(r.Context())
	project, err := h.updateProject.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		AuditLog(h.log, r, "project.update", userID, false, err.Error())
		h.writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "project.update", userID, true, "")
	writeJSON(w, http.StatusOK, projectToResponse(project))
}

// Delete handles DELETE /projects/{id}. Tasks of the project are not
// cascaded; only the project row is removed.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserFromContext(r.Context())
	project, err := h.removeProject.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		AuditLog(h.log, r, "project.delete", userID, false, err.Error())
		h.writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "project.delete", userID, true, "")
	writeJSON(w, http.StatusOK, projectToResponse(project))
}

type createTaskRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Status string `json:"status" validate:"omitempty,oneof=in_progress completed"`
}

// CreateTask handles POST /projects/{id}/tasks. The response is the updated
// project aggregate, not the created task.
func (h *ProjectsHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	userID, _ := middleware.UserFromContext(r.Context())
	project, err := h.createTask.Execute(r.Context(), chi.URLParam(r, "id"), board.CreateTaskInput{
		Title:  body.Title,
		Status: domain.TaskStatus(body.Status),
	})
	if err != nil {
		AuditLog(h.log, r, "task.create", userID, false, err.Error())
		h.writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "task.create", userID, true, "")
	writeJSON(w, http.StatusCreated, projectToResponse(project))
}

// ListTasks handles GET /projects/{id}/tasks.
func (h *ProjectsHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.listTasks.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainErr(w, err)
		return
	}
	items := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskToResponse(t))
	}
	writeJSON(w, http.StatusOK, items)
}

// GetTask handles GET /projects/{id}/tasks/{taskId}.
func (h *ProjectsHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.getTask.Execute(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskId"))
	if err != nil {
		h.writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(task))
}

type updateTaskRequest struct {
	Title  *string `json:"title" validate:"omitempty,max=200"`
	Status *string `json:"status" validate:"omitempty,oneof=in_progress completed"`
}

// UpdateTask handles PATCH /projects/{id}/tasks/{taskId}.
func (h *ProjectsHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var body updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	input := board.UpdateTaskInput{Title: body.Title}
	if body.Status != nil {
		status := domain.TaskStatus(*body.Status)
		input.Status = &status
	}
	userID, _ := middleware.UserFromContext(r.Context())
	task, err := h.updateTask.Execute(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskId"), input)
	if err != nil {
		AuditLog(h.log, r, "task.update", userID, false, err.Error())
		h.writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "task.update", userID, true, "")
	writeJSON(w, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /projects/{id}/tasks/{taskId}.
func (h *ProjectsHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserFromContext(r.Context())
	message, err := h.removeTask.Execute(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskId"))
	if err != nil {
		AuditLog(h.log, r, "task.delete", userID, false, err.Error())
		h.writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "task.delete", userID, true, "")
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
