package v1

import (
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=100"`
	Description *string `json:"description" binding:"omitnil,nonempty,max=255"`
}

func (r JobRequest) toDomain(id string) *domain.Job {
	return &domain.Job{ID: id, Title: r.Title, Description: r.Description}
}

// Create godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := req.toDomain("")
	if err := h.jobUC.Create(c.Request.Context(), job); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created successfully", gin.H{"job": job})
}

// List godoc
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved all Jobs successfully", gin.H{"jobs": jobs})
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Job successfully", gin.H{"job": job})
}

// Update godoc
// @Summary      Replace a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string      true  "Job ID"
// @Param        job  body      JobRequest  true  "Job"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := req.toDomain(id)
	if err := h.jobUC.Update(c.Request.Context(), job); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", gin.H{"job": job})
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.jobUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
