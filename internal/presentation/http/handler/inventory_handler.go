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

// InventoryHandler handles warehouse inventory HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InventoryFilterParams{
		Pagination:  &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:      c.Query("search"),
		InStockOnly: c.Query("en_stock") == "true",
	}

	if categoryStr := c.Query("categoria"); categoryStr != "" {
		category := enum.ItemCategory(categoryStr)
		if !category.IsValid() {
			response.BadRequest(c, "Categoría inválida")
			return
		}
		params.Category = &category
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventario obtenido", result)
}

// Create handles creating an inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.InventoryInput{
		Category: enum.ItemCategory(req.Category),
		Type:     req.Type,
		Quality:  req.Quality,
		Origin:   req.Origin,
		Stock:    req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Producto creado", item)
}

// Get handles getting a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Producto obtenido", item)
}

// Update handles updating an inventory item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, &service.InventoryInput{
		Category: enum.ItemCategory(req.Category),
		Type:     req.Type,
		Quality:  req.Quality,
		Origin:   req.Origin,
		Stock:    req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Producto actualizado", item)
}

// Delete handles deleting an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
