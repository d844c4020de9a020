package v1

import (
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type IntervieweeHandler struct {
	intervieweeUC domain.IntervieweeUsecase
}

func NewIntervieweeHandler(api *gin.RouterGroup, intervieweeUC domain.IntervieweeUsecase) {
	handler := &IntervieweeHandler{intervieweeUC: intervieweeUC}

	interviewees := api.Group("/interviewees")
	{
		interviewees.POST("", handler.Create)
		interviewees.GET("", handler.List)
		interviewees.GET("/:id", handler.Get)
		interviewees.PUT("/:id", handler.Update)
		interviewees.DELETE("/:id", handler.Delete)
	}
}

type IntervieweeRequest struct {
	Name     string  `json:"name" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	Resume   *string `json:"resume" binding:"omitnil,nonempty"`
	Comments *string `json:"comments" binding:"omitnil,nonempty"`
}

func (r IntervieweeRequest) toDomain(id string) *domain.Interviewee {
	email := r.Email
	return &domain.Interviewee{
		ID:       id,
		Name:     r.Name,
		Email:    &email,
		Resume:   r.Resume,
		Comments: r.Comments,
	}
}

// Create godoc
// @Summary      Create an interviewee
// @Tags         interviewees
// @Accept       json
// @Produce      json
// @Param        interviewee  body      IntervieweeRequest  true  "Interviewee"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviewees [post]
func (h *IntervieweeHandler) Create(c *gin.Context) {
	var req IntervieweeRequest
	if !bindJSON(c, &req) {
		return
	}

	interviewee := req.toDomain("")
	if err := h.intervieweeUC.Create(c.Request.Context(), interviewee); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interviewee created successfully", gin.H{"interviewee": interviewee})
}

// List godoc
// @Summary      List interviewees
// @Tags         interviewees
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviewees [get]
func (h *IntervieweeHandler) List(c *gin.Context) {
	interviewees, err := h.intervieweeUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved all Interviewees successfully", gin.H{"interviewees": interviewees})
}

// Get godoc
// @Summary      Get an interviewee
// @Tags         interviewees
// @Produce      json
// @Param        id   path      string  true  "Interviewee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewees/{id} [get]
func (h *IntervieweeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	interviewee, err := h.intervieweeUC.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Interviewee successfully", gin.H{"interviewee": interviewee})
}

// Update godoc
// @Summary      Replace an interviewee
// @Tags         interviewees
// @Accept       json
// @Produce      json
// @Param        id           path      string  true  "Interviewee ID"
// @Param        interviewee  body      IntervieweeRequest  true  "Interviewee"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewees/{id} [put]
func (h *IntervieweeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req IntervieweeRequest
	if !bindJSON(c, &req) {
		return
	}

	interviewee := req.toDomain(id)
	if err := h.intervieweeUC.Update(c.Request.Context(), interviewee); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviewee updated successfully", gin.H{"interviewee": interviewee})
}

// Delete godoc
// @Summary      Delete an interviewee
// @Tags         interviewees
// @Produce      json
// @Param        id   path      string  true  "Interviewee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviewees/{id} [delete]
func (h *IntervieweeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.intervieweeUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interviewee deleted successfully", nil)
}
