package v1

import (
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterviewerHandler struct {
	interviewerUC domain.InterviewerUsecase
}

func NewInterviewerHandler(api *gin.RouterGroup, interviewerUC domain.InterviewerUsecase) {
	handler := &InterviewerHandler{interviewerUC: interviewerUC}

	interviewers := api.Group("/interviewers")
	{
		interviewers.POST("", handler.Create)
		interviewers.GET("", handler.List)
		interviewers.GET("/:id", handler.Get)
		interviewers.PUT("/:id", handler.Update)
		interviewers.DELETE("/:id", handler.Delete)
	}
}

// InterviewerRequest manages profile fields only. Passwords are set through
// signup.
type InterviewerRequest struct {
	Name           string  `json:"name" binding:"required,min=3,max=50"`
	Email          string  `json:"email" binding:"required,email"`
	Designation    *string `json:"designation" binding:"omitnil,nonempty"`
	BusinessAreaID *string `json:"business_area_id" binding:"omitnil,uuid"`
	EmployeeID     *string `json:"employee_id" binding:"omitnil,nonempty"`
}

func (r InterviewerRequest) toDomain(id string) *domain.Interviewer {
	return &domain.Interviewer{
		ID:             id,
		Name:           r.Name,
		Email:          r.Email,
		Designation:    r.Designation,
		BusinessAreaID: r.BusinessAreaID,
		EmployeeID:     r.EmployeeID,
	}
}

// Create godoc
// @Summary      Create an interviewer
// @Tags         interviewers
// @Accept       json
// @Produce      json
// @Param        interviewer  body      InterviewerRequest  true  "Interviewer"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviewers [post]
func (h *InterviewerHandler) Create(c *gin.Context) {
	var req InterviewerRequest
	if !bindJSON(c, &req) {
		return
	}

	interviewer := req.toDomain("")
	if err := h.interviewerUC.Create(c.Request.Context(), interviewer); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interviewer created successfully", gin.H{"interviewer": interviewer})
}

// List godoc
// @Summary      List interviewers
// @Tags         interviewers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviewers [get]
func (h *InterviewerHandler) List(c *gin.Context) {
	interviewers, err := h.interviewerUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved all Interviewers successfully", gin.H{"interviewers": interviewers})
}

// Get godoc
// @Summary      Get an interviewer
// @Tags         interviewers
// @Produce      json
// @Param        id   path      string  true  "Interviewer ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id} [get]
func (h *InterviewerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	interviewer, err := h.interviewerUC.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Interviewer successfully", gin.H{"interviewer": interviewer})
}

// Update replaces the profile. An omitted employee_id keeps the stored one.
// Update godoc
// @Summary      Replace an interviewer
// @Tags         interviewers
// @Accept       json
// @Produce      json
// @Param        id           path      string  true  "Interviewer ID"
// @Param        interviewer  body      InterviewerRequest  true  "Interviewer"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id} [put]
func (h *InterviewerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req InterviewerRequest
	if !bindJSON(c, &req) {
		return
	}

	interviewer := req.toDomain(id)
	if err := h.interviewerUC.Update(c.Request.Context(), interviewer); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviewer updated successfully", gin.H{"interviewer": interviewer})
}

// Delete godoc
// @Summary      Delete an interviewer
// @Tags         interviewers
// @Produce      json
// @Param        id   path      string  true  "Interviewer ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewers/{id} [delete]
func (h *InterviewerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.interviewerUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviewer deleted successfully", nil)
}
