package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/api/metrics"
	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	ProductID int     `json:"productId" validate:"gt=0"`
	Name      string  `json:"name"      validate:"required"`
	Price     float64 `json:"price"     validate:"gte=0"`
	Quantity  int     `json:"quantity"  validate:"gte=1"`
}

// createOrderRequest keeps Total as a pointer so an omitted total can be told
// apart from zero.
type createOrderRequest struct {
	Items   []orderItemRequest `json:"items" validate:"dive"`
	Total   *float64           `json:"total"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Address string             `json:"address"`
	Phone   string             `json:"phone"`
}

// Create places an order from a cart snapshot.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Cart snapshot and customer details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		Items:   items,
		Total:   req.Total,
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderValue.Observe(order.Total)
	return c.JSON(http.StatusCreated, order)
}

// List returns every order, newest first.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      500  {object}  map[string]string
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
