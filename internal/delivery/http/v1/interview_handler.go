package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"
	"interview-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
)

// maxFilterBodyBytes caps the filter payload, which bypasses gin binding.
const maxFilterBodyBytes = 1 << 20

type InterviewHandler struct {
	interviewUC    domain.InterviewUsecase
	interviewTagUC domain.InterviewTagUsecase
}

func NewInterviewHandler(api *gin.RouterGroup, interviewUC domain.InterviewUsecase, interviewTagUC domain.InterviewTagUsecase) {
	handler := &InterviewHandler{
		interviewUC:    interviewUC,
		interviewTagUC: interviewTagUC,
	}

	interviews := api.Group("/interviews")
	{
		interviews.POST("", handler.Create)
		interviews.GET("", handler.List)
		interviews.POST("/filteredInterview", handler.Filter)
		interviews.GET("/:id", handler.Get)
		interviews.PUT("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)

		interviews.GET("/:id/tags", handler.ListTags)
		interviews.POST("/:id/tags", handler.AttachTag)
		interviews.DELETE("/:id/tags/:tagId", handler.DetachTag)
	}
}

type InterviewRequest struct {
	Interviewer  []string         `json:"interviewer" binding:"required,min=1,dive,uuid"`
	BusinessArea *string          `json:"business_area" binding:"omitnil,uuid"`
	Job          *string          `json:"job" binding:"omitnil,uuid"`
	Interviewee  *string          `json:"interviewee" binding:"omitnil,uuid"`
	DateTime     *domain.DateTime `json:"date_time" binding:"required"`
	Duration     *int             `json:"duration" binding:"omitnil,min=0,max=2147483647"`
	Location     *string          `json:"location" binding:"omitnil,nonempty"`
	Status       *string          `json:"status" binding:"omitnil,nonempty"`
	Notes        *string          `json:"notes" binding:"omitnil,nonempty"`
}

func (r InterviewRequest) toDomain(id string) *domain.Interview {
	return &domain.Interview{
		ID:           id,
		Interviewer:  r.Interviewer,
		BusinessArea: r.BusinessArea,
		Job:          r.Job,
		Interviewee:  r.Interviewee,
		DateTime:     r.DateTime.UTC(),
		Duration:     r.Duration,
		Location:     r.Location,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}

type AttachTagRequest struct {
	TagID    string           `json:"tag_id" binding:"required,uuid"`
	DateTime *domain.DateTime `json:"date_time"`
}

// Create godoc
// @Summary      Schedule an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      InterviewRequest  true  "Interview"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviews [post]
func (h *InterviewHandler) Create(c *gin.Context) {
	var req InterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	interview := req.toDomain("")
	if err := h.interviewUC.Create(c.Request.Context(), interview); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview created successfully", gin.H{"interview": interview})
}

// List godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.interviewUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved all Interviews successfully", gin.H{"interviews": interviews})
}

// Get godoc
// @Summary      Get an interview with its references resolved
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	interview, err := h.interviewUC.GetHydrated(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Interview successfully", gin.H{"interview": interview})
}

// Update godoc
// @Summary      Replace an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id         path      string            true  "Interview ID"
// @Param        interview  body      InterviewRequest  true  "Interview"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [put]
func (h *InterviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req InterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	interview := req.toDomain(id)
	if err := h.interviewUC.Update(c.Request.Context(), interview); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview updated successfully", gin.H{"interview": interview})
}

// Delete godoc
// @Summary      Delete an interview
// @Description  Tag associations are removed with the interview.
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.interviewUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview deleted successfully", nil)
}

// Filter godoc
// @Summary      Search interviews
// @Description  "from" and "to" bound date_time when both are given. "interviewer" takes one id or a list, all of which must be linked. Other keys match by equality; null values are ignored.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        filter  body      object  false  "Filter"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /interviews/filteredInterview [post]
func (h *InterviewHandler) Filter(c *gin.Context) {
	payload, err := decodeFilterPayload(c.Request.Body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	interviews, err := h.interviewUC.Filter(c.Request.Context(), payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved filtered interviews successfully", gin.H{"interviews": interviews})
}

// decodeFilterPayload reads a JSON object, keeping numbers as json.Number. An
// empty body is an empty filter.
func decodeFilterPayload(body io.Reader) (map[string]any, error) {
	if body == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(io.LimitReader(body, maxFilterBodyBytes))
	if err != nil {
		return nil, apperror.BadRequest("could not read request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperror.Validation(`"value" must be of type object`)
		}
		return nil, apperror.Validation(validation.FirstError(err))
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// ListTags godoc
// @Summary      List the tags on an interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/tags [get]
func (h *InterviewHandler) ListTags(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tags, err := h.interviewTagUC.ListTags(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Interview tags successfully", gin.H{"tags": tags})
}

// AttachTag godoc
// @Summary      Attach a tag to an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Interview ID"
// @Param        tag  body      AttachTagRequest  true  "Tag reference"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/tags [post]
func (h *InterviewHandler) AttachTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AttachTagRequest
	if !bindJSON(c, &req) {
		return
	}

	link := &domain.InterviewTag{InterviewID: id, TagID: req.TagID}
	if req.DateTime != nil {
		link.DateTime = req.DateTime.UTC()
	}
	if err := h.interviewTagUC.Attach(c.Request.Context(), link); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Tag attached successfully", gin.H{"interviewTag": link})
}

// DetachTag godoc
// @Summary      Detach a tag from an interview
// @Tags         interviews
// @Produce      json
// @Param        id     path      string  true  "Interview ID"
// @Param        tagId  path      string  true  "Tag ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/tags/{tagId} [delete]
func (h *InterviewHandler) DetachTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	if err := h.interviewTagUC.Detach(c.Request.Context(), id, tagID); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tag detached successfully", nil)
}
