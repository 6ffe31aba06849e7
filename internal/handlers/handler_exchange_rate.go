package handlers

import (
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExchangeRatesResponse lists the USD conversion rates in use.
type ExchangeRatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type exchangeRateHandler struct {
	rates *currency.RateTable
}

func registerExchangeRateRoutes(rg *gin.RouterGroup, rates *currency.RateTable) {
	h := &exchangeRateHandler{rates: rates}
	rg.GET("/exchange-rates", h.listRates)
}

// listRates godoc
// @Summary List exchange rates
// @Description Units of each currency per 1 USD, as loaded at start-up.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} ExchangeRatesResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	codes := h.rates.Codes()
	resp := ExchangeRatesResponse{Base: domain.USD, Rates: make(map[string]decimal.Decimal, len(codes))}
	for _, code := range codes {
		if rate, ok := h.rates.Lookup(code); ok {
			resp.Rates[code] = rate
		}
	}
	c.JSON(http.StatusOK, resp)
}
