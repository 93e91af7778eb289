package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andresproyectosx24/chayotex/internal/application/service"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/dto/request"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/dto/response"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles registering a sale note
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	method := enum.PaymentMethod(req.Method)
	if method != enum.MethodCredit && method != enum.MethodPaid {
		response.BadRequest(c, "Método de pago inválido")
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		lines = append(lines, service.SaleLineInput{
			ItemID:    itemID,
			Boxes:     line.Boxes,
			UnitPrice: line.UnitPrice,
		})
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		CustomerID: customerID,
		Method:     method,
		Lines:      lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Venta registrada", sale)
}

// List handles listing sales with optional filters
func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
	}

	if statusStr := c.Query("estado"); statusStr != "" {
		status := enum.PaymentStatus(statusStr)
		params.Status = &status
	}
	if customerIDStr := c.Query("cliente_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if yearStr := c.Query("anio"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		params.FolioYear = &year
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ventas obtenidas", result)
}

// Get handles getting a single sale with its line items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venta obtenida", sale)
}

// Delete handles voiding a sale. Stock sold on the note goes back to
// the warehouse in the same transaction.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// MarkPaid handles settling a batch of credit sales
func (h *SaleHandler) MarkPaid(c *gin.Context) {
	var req request.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.SaleIDs))
	for _, idStr := range req.SaleIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			response.BadRequest(c, "Invalid sale ID")
			return
		}
		ids = append(ids, id)
	}

	updated, err := h.saleService.MarkPaid(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ventas marcadas como pagadas", gin.H{"actualizadas": updated})
}
