package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/domain/dto"
	"github.com/guttosm/print-orders/internal/service"
)

// CatalogHandler lists the registered layouts.
type CatalogHandler struct {
	catalog *service.LayoutCatalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.LayoutCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListLayouts handles GET /api/layouts requests.
//
// @Summary      List layouts
// @Description  Returns every layout group in registration order, each item with its geometry resolved against its paper. Items whose geometry does not fit carry an error instead.
// @Tags         Layouts
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.LayoutGroupResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/layouts [get]
func (h *CatalogHandler) ListLayouts(c *gin.Context) {
	groups := h.catalog.Groups()
	out := make([]dto.LayoutGroupResponse, 0, len(groups))

	for _, g := range groups {
		resp := dto.LayoutGroupResponse{
			Slug:  g.Slug,
			Name:  g.Name,
			Items: make([]dto.LayoutItemResponse, 0, len(g.Order)),
		}
		for _, slug := range g.Order {
			item := dto.LayoutItemResponse{Slug: slug, Definition: g.Items[slug]}
			resolved, err := h.catalog.Resolve(g.Slug, slug)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Resolved = &resolved
			}
			resp.Items = append(resp.Items, item)
		}
		out = append(out, resp)
	}

	NewResponseBuilder(c).SuccessOK(out)
}
