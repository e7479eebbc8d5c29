package controllers

import (
	"github.com/gin-gonic/gin"

	"tripnation/internal/catalog"
	"tripnation/pkg/utils"
)

type CatalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: cat}
}

// ListPackages godoc
// @Summary List packaged trips
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]catalog.Package}
// @Router /catalog/packages [get]
func (cc *CatalogController) ListPackages(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalog.Packages(), "Fetched packages successfully")
}

// GetPackage godoc
// @Summary Get a packaged trip by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} utils.APIResponse{data=catalog.Package}
// @Failure 404 {object} utils.APIResponse
// @Router /catalog/packages/{slug} [get]
func (cc *CatalogController) GetPackage(c *gin.Context) {
	p, ok := cc.catalog.PackageBySlug(c.Param("slug"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrPackageNotFound)
		return
	}
	utils.RespondSuccess(c, p, "Fetched package successfully")
}

// ListGuides godoc
// @Summary List local guides
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]catalog.Guide}
// @Router /catalog/guides [get]
func (cc *CatalogController) ListGuides(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalog.Guides(), "Fetched guides successfully")
}

// GetGuide godoc
// @Summary Get a guide
// @Tags Catalog
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} utils.APIResponse{data=catalog.Guide}
// @Failure 404 {object} utils.APIResponse
// @Router /catalog/guides/{id} [get]
func (cc *CatalogController) GetGuide(c *gin.Context) {
	g, ok := cc.catalog.GuideByID(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrGuideNotFound)
		return
	}
	utils.RespondSuccess(c, g, "Fetched guide successfully")
}
