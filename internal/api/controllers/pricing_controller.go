package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnation/internal/models/request_models"
	"tripnation/internal/services"
	"tripnation/pkg/utils"
)

type PricingController struct {
	pricingService services.PricingServiceInterface
}

func NewPricingController(pricingService services.PricingServiceInterface) *PricingController {
	return &PricingController{pricingService: pricingService}
}

// Quote godoc
// @Summary Price breakdown
// @Description Subtotal, service fee and total for optional line items. Amounts may be numbers or pt-BR currency strings.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body request_models.QuoteRequest true "Line items"
// @Success 200 {object} utils.APIResponse{data=response_models.QuoteResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /pricing/quote [post]
func (pc *PricingController) Quote(c *gin.Context) {
	var req request_models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	utils.RespondSuccess(c, pc.pricingService.QuoteRequest(req), "Quote computed")
}

// QuoteForm godoc
// @Summary Price breakdown from a checkout form
// @Tags Pricing
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body request_models.QuoteFormRequest true "Form fields"
// @Success 200 {object} utils.APIResponse{data=response_models.QuoteResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /pricing/quote-form [post]
func (pc *PricingController) QuoteForm(c *gin.Context) {
	var form request_models.QuoteFormRequest
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form")
		return
	}

	res, err := pc.pricingService.QuoteForm(form)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Quote computed")
}

// QuotePackage godoc
// @Summary Price breakdown of a catalog package
// @Tags Pricing
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} utils.APIResponse{data=response_models.PackageQuoteResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /pricing/packages/{id} [get]
func (pc *PricingController) QuotePackage(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	res, err := pc.pricingService.QuotePackage(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Quote computed")
}
