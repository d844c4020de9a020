package v1

import (
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagUC domain.TagUsecase
}

func NewTagHandler(api *gin.RouterGroup, tagUC domain.TagUsecase) {
	handler := &TagHandler{tagUC: tagUC}

	tags := api.Group("/tags")
	{
		tags.POST("", handler.Create)
		tags.GET("", handler.List)
		tags.GET("/:id", handler.Get)
		tags.PUT("/:id", handler.Update)
		tags.DELETE("/:id", handler.Delete)
	}
}

type TagRequest struct {
	TagName string `json:"tag_name" binding:"required,min=3,max=50"`
}

// Create godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        tag  body      TagRequest  true  "Tag"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var req TagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag := &domain.Tag{TagName: req.TagName}
	if err := h.tagUC.Create(c.Request.Context(), tag); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Tag created successfully", gin.H{"tag": tag})
}

// List godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved all Tags successfully", gin.H{"tags": tags})
}

// Get godoc
// @Summary      Get a tag
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tag, err := h.tagUC.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Tag successfully", gin.H{"tag": tag})
}

// Update godoc
// @Summary      Replace a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Param        tag  body      TagRequest  true  "Tag"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req TagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag := &domain.Tag{ID: id, TagName: req.TagName}
	if err := h.tagUC.Update(c.Request.Context(), tag); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tag updated successfully", gin.H{"tag": tag})
}

// Delete godoc
// @Summary      Delete a tag
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.tagUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tag deleted successfully", nil)
}
