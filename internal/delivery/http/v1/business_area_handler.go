package v1

import (
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type BusinessAreaHandler struct {
	businessAreaUC domain.BusinessAreaUsecase
}

func NewBusinessAreaHandler(api *gin.RouterGroup, businessAreaUC domain.BusinessAreaUsecase) {
	handler := &BusinessAreaHandler{businessAreaUC: businessAreaUC}

	areas := api.Group("/businessareas")
	{
		areas.POST("", handler.Create)
		areas.GET("", handler.List)
		areas.GET("/:id", handler.Get)
		areas.PUT("/:id", handler.Update)
		areas.DELETE("/:id", handler.Delete)
	}
}

type BusinessAreaRequest struct {
	Name string `json:"name" binding:"required,min=3,max=50"`
}

// Create godoc
// @Summary      Create a business area
// @Tags         businessareas
// @Accept       json
// @Produce      json
// @Param        businessArea  body      BusinessAreaRequest  true  "Business area"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /businessareas [post]
func (h *BusinessAreaHandler) Create(c *gin.Context) {
	var req BusinessAreaRequest
	if !bindJSON(c, &req) {
		return
	}

	area := &domain.BusinessArea{Name: req.Name}
	if err := h.businessAreaUC.Create(c.Request.Context(), area); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Business Area created successfully", gin.H{"businessArea": area})
}

// List godoc
// @Summary      List business areas
// @Tags         businessareas
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /businessareas [get]
func (h *BusinessAreaHandler) List(c *gin.Context) {
	areas, err := h.businessAreaUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved all Business Areas successfully", gin.H{"businessAreas": areas})
}

// Get godoc
// @Summary      Get a business area
// @Tags         businessareas
// @Produce      json
// @Param        id   path      string  true  "Business area ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /businessareas/{id} [get]
func (h *BusinessAreaHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	area, err := h.businessAreaUC.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retrieved Business Area successfully", gin.H{"businessArea": area})
}

// Update godoc
// @Summary      Replace a business area
// @Tags         businessareas
// @Accept       json
// @Produce      json
// @Param        id            path      string               true  "Business area ID"
// @Param        businessArea  body      BusinessAreaRequest  true  "Business area"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /businessareas/{id} [put]
func (h *BusinessAreaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req BusinessAreaRequest
	if !bindJSON(c, &req) {
		return
	}

	area := &domain.BusinessArea{ID: id, Name: req.Name}
	if err := h.businessAreaUC.Update(c.Request.Context(), area); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Business Area updated successfully", gin.H{"businessArea": area})
}

// Delete godoc
// @Summary      Delete a business area
// @Tags         businessareas
// @Produce      json
// @Param        id   path      string  true  "Business area ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /businessareas/{id} [delete]
func (h *BusinessAreaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.businessAreaUC.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Business Area deleted successfully", nil)
}
