package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for inventory items. All routes are
// protected; authentication and role checks happen in the middleware chain
// before any of these methods run.
type ItemHandler struct {
	service ports.ItemService
	log     zerolog.Logger
}

func NewItemHandler(service ports.ItemService, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{service: service, log: log}
}

// Create handles POST /items.
//
// @Summary      Create a new inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	sc, err := securityContext(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateItemInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Currency:    req.Currency,
	})
	if err != nil {
		return err
	}

	h.log.Info().Str("subject", sc.Subject).Str("sku", item.SKU).Msg("item created")
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// Get handles GET /items/:id.
//
// @Summary      Get an item by id
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  itemResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// List handles GET /items with optional sku/search/page/limit query params.
//
// @Summary      List inventory items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        sku     query     string  false  "Exact SKU match"
// @Param        search  query     string  false  "Partial match on sku or name"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listItemsResponse
// @Failure      401     {object}  map[string]string
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListItems(c.Request().Context(), ports.ListItemsInput{
		SKU:    c.QueryParam("sku"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	data := make([]itemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		data = append(data, toItemResponse(item))
	}

	return c.JSON(http.StatusOK, listItemsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Update handles PUT /items/:id.
//
// @Summary      Update an inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Item id"
// @Param        body  body      updateItemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.UpdateItem(c.Request().Context(), ports.UpdateItemInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Currency:    req.Currency,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /items/:id.
//
// @Summary      Delete an inventory item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	sc, err := securityContext(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	h.log.Info().Str("subject", sc.Subject).Str("item_id", c.Param("id")).Msg("item deleted")
	return c.NoContent(http.StatusNoContent)
}

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Currency:    item.Currency,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
