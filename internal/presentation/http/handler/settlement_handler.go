package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andresproyectosx24/chayotex/internal/application/service"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/dto/request"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/dto/response"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
)

// SettlementHandler handles supplier settlement HTTP requests. There is
// no update or delete route: settlements are immutable once registered.
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// Create handles registering a settlement
func (h *SettlementHandler) Create(c *gin.Context) {
	var req request.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	entries := make([]service.EntryInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		itemID, err := uuid.Parse(entry.ItemID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		entries = append(entries, service.EntryInput{
			ItemID:    itemID,
			Boxes:     entry.Boxes,
			UnitPrice: entry.UnitPrice,
		})
	}

	deductions := make([]service.DeductionInput, 0, len(req.Deductions))
	for _, deduction := range req.Deductions {
		deductions = append(deductions, service.DeductionInput{
			Concept: deduction.Concept,
			Amount:  deduction.Amount,
		})
	}

	settlement, err := h.settlementService.CreateSettlement(c.Request.Context(), &service.CreateSettlementInput{
		SupplierID: supplierID,
		Date:       req.Date,
		Entries:    entries,
		Deductions: deductions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Liquidación registrada", settlement)
}

// List handles listing settlements with optional filters
func (h *SettlementHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SettlementFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
	}

	if supplierIDStr := c.Query("proveedor_id"); supplierIDStr != "" {
		supplierID, err := uuid.Parse(supplierIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		params.SupplierID = &supplierID
	}
	if yearStr := c.Query("anio"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		params.FolioYear = &year
	}

	result, err := h.settlementService.ListSettlements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Liquidaciones obtenidas", result)
}

// Get handles getting a single settlement with its entry and expense lines
func (h *SettlementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid settlement ID")
		return
	}

	settlement, err := h.settlementService.GetSettlement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Liquidación obtenida", settlement)
}
