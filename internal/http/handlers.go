package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"medmarket/internal/cart"
	"medmarket/internal/domain"
	"medmarket/internal/medinfo"
	"medmarket/internal/query"
	"medmarket/internal/repository"
	"medmarket/internal/service"
)

type Server struct {
	engine  *gin.Engine
	shops   *service.ShopService
	orders  *service.OrderService
	carts   *service.CartService
	info    *medinfo.Service
	version string
}

func NewServer(shops *service.ShopService, orders *service.OrderService, carts *service.CartService, info *medinfo.Service, version string) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.Default())
	s := &Server{engine: r, shops: shops, orders: orders, carts: carts, info: info, version: version}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/health", s.health)

		shops := v1.Group("/shops")
		shops.POST("", s.registerShop)
		shops.GET("", s.listShops)
		shops.GET(":id", s.getShop)
		shops.POST(":id/approve", s.approveShop)
		shops.POST(":id/reject", s.rejectShop)
		shops.GET(":id/orders", s.listShopOrders)

		orders := v1.Group("/orders")
		orders.POST("", s.placeOrder)
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)
		orders.PATCH(":id/status", s.setOrderStatus)

		v1.GET("/customers/:name/orders", s.customerOrders)

		carts := v1.Group("/carts")
		carts.POST("", s.openCart)
		carts.GET(":id", s.getCart)
		carts.POST(":id/items", s.addCartItem)
		carts.DELETE(":id/items/:medicineId", s.removeCartItem)
		carts.POST(":id/checkout", s.checkout)

		v1.GET("/medicines/info", s.medicineInfo)
	}
}

// @Summary Health check
// @Description medinfo reports whether the text generator is configured
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.version, "medinfo": s.info.Configured()})
}

type medicineResp struct {
	domain.Medicine
	InStock bool `json:"in_stock"`
}

type shopResp struct {
	domain.Shop
	Inventory []medicineResp `json:"inventory"`
}

func toShopResp(shop domain.Shop) shopResp {
	inv := make([]medicineResp, 0, len(shop.Inventory))
	for _, m := range shop.Inventory {
		inv = append(inv, medicineResp{Medicine: m, InStock: query.InStock(m)})
	}
	return shopResp{Shop: shop, Inventory: inv}
}

func toShopList(shops []domain.Shop) []shopResp {
	out := make([]shopResp, 0, len(shops))
	for _, sh := range shops {
		out = append(out, toShopResp(sh))
	}
	return out
}

// Shop handlers
type registerShopReq struct {
	Name      string `json:"name" binding:"required"`
	OwnerName string `json:"owner_name" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

// @Summary Register shop
// @Description New shops start in Pending and are hidden from customers until approved
// @Tags shops
// @Accept json
// @Produce json
// @Param input body registerShopReq true "Shop"
// @Success 201 {object} shopResp
// @Failure 400 {object} map[string]string
// @Router /shops [post]
func (s *Server) registerShop(c *gin.Context) {
	var req registerShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	shop, err := s.shops.RegisterShop(c, req.Name, req.OwnerName, req.Address)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toShopResp(*shop))
}

// @Summary List shops
// @Description status=approved is the customer storefront, status=pending the admin review queue
// @Tags shops
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Param owner query string false "Owner name"
// @Param q query string false "Name contains"
// @Success 200 {array} shopResp
// @Failure 400 {object} map[string]string
// @Router /shops [get]
func (s *Server) listShops(c *gin.Context) {
	f := repository.ShopFilter{OwnerName: c.Query("owner"), NameSubstring: c.Query("q")}
	if v := c.Query("status"); v != "" {
		st, err := domain.ParseShopStatus(v)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Status = st
	}
	var (
		list []domain.Shop
		err  error
	)
	plain := f.OwnerName == "" && f.NameSubstring == ""
	switch {
	case plain && f.Status == domain.ShopStatusApproved:
		list, err = s.shops.ListApprovedShops(c)
	case plain && f.Status == domain.ShopStatusPending:
		list, err = s.shops.ListPendingShops(c)
	default:
		list, err = s.shops.ListShops(c, f)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShopList(list))
}

// @Summary Get shop by id
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} shopResp
// @Failure 404 {object} map[string]string
// @Router /shops/{id} [get]
func (s *Server) getShop(c *gin.Context) {
	shop, err := s.shops.GetShop(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShopResp(*shop))
}

// @Summary Approve shop
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} shopResp
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /shops/{id}/approve [post]
func (s *Server) approveShop(c *gin.Context) {
	shop, err := s.shops.ApproveShop(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShopResp(*shop))
}

// @Summary Reject shop
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} shopResp
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /shops/{id}/reject [post]
func (s *Server) rejectShop(c *gin.Context) {
	shop, err := s.shops.RejectShop(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShopResp(*shop))
}

// @Summary Orders of a shop
// @Description Newest first
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Param status query string false "Order status"
// @Success 200 {array} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/{id}/orders [get]
func (s *Server) listShopOrders(c *gin.Context) {
	var status domain.OrderStatus
	if v := c.Query("status"); v != "" {
		st, err := domain.ParseOrderStatus(v)
		if err != nil {
			writeError(c, err)
			return
		}
		status = st
	}
	list, err := s.orders.ListOrdersForShop(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if status != "" {
		list = query.OrdersByStatus(list, status)
	}
	c.JSON(http.StatusOK, list)
}

// Order handlers
type orderLineReq struct {
	MedicineID string `json:"medicine_id" binding:"required"`
	Quantity   int64  `json:"quantity" binding:"required"`
}

type placeOrderReq struct {
	ShopID       string         `json:"shop_id" binding:"required"`
	CustomerName string         `json:"customer_name" binding:"required"`
	Items        []orderLineReq `json:"items"`
}

// @Summary Place order
// @Description Prices are taken from the shop inventory; stock is reserved atomically
// @Tags orders
// @Accept json
// @Produce json
// @Param input body placeOrderReq true "Order"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.PlaceOrder(c, req.ShopID, req.CustomerName, toItems(req.Items))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// @Summary List orders
// @Description Newest first
// @Tags orders
// @Produce json
// @Param shop_id query string false "Shop ID"
// @Param status query string false "Order status"
// @Param customer query string false "Customer name"
// @Success 200 {array} domain.Order
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	f := repository.OrderFilter{ShopID: c.Query("shop_id"), CustomerName: c.Query("customer")}
	if v := c.Query("status"); v != "" {
		st, err := domain.ParseOrderStatus(v)
		if err != nil {
			writeError(c, err)
			return
		}
		f.Status = st
	}
	list, err := s.orders.ListOrders(c, f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// @Summary Change order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body setStatusReq true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (s *Server) setOrderStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	st, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	o, err := s.orders.SetOrderStatus(c, c.Param("id"), st)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type customerOrdersResp struct {
	Orders    []domain.Order `json:"orders"`
	OpenCount int            `json:"open_count"`
}

// @Summary Orders of a customer
// @Description Newest first; open_count counts orders not yet completed
// @Tags orders
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} customerOrdersResp
// @Failure 400 {object} map[string]string
// @Router /customers/{name}/orders [get]
func (s *Server) customerOrders(c *gin.Context) {
	list, err := s.orders.ListOrdersForCustomer(c, c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerOrdersResp{Orders: list, OpenCount: query.OpenOrderCount(list)})
}

// Cart handlers
type cartLineResp struct {
	Medicine  domain.Medicine `json:"medicine"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type cartResp struct {
	ID        string          `json:"id"`
	ShopID    string          `json:"shop_id"`
	Items     []cartLineResp  `json:"items"`
	ItemCount int64           `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func toCartResp(c *cart.Cart) cartResp {
	lines := make([]cartLineResp, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, cartLineResp{Medicine: it.Medicine, Quantity: it.Quantity, LineTotal: query.LineTotal(it)})
	}
	return cartResp{
		ID:        c.ID,
		ShopID:    c.ShopID,
		Items:     lines,
		ItemCount: query.ItemCount(c.Items),
		Subtotal:  c.Subtotal(),
	}
}

type openCartReq struct {
	ShopID string `json:"shop_id" binding:"required"`
}

// @Summary Open cart
// @Tags carts
// @Accept json
// @Produce json
// @Param input body openCartReq true "Shop"
// @Success 201 {object} cartResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts [post]
func (s *Server) openCart(c *gin.Context) {
	var req openCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ct, err := s.carts.Open(c, req.ShopID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartResp(ct))
}

// @Summary Get cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} cartResp
// @Failure 404 {object} map[string]string
// @Router /carts/{id} [get]
func (s *Server) getCart(c *gin.Context) {
	ct, err := s.carts.Get(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResp(ct))
}

// @Summary Add medicine to cart
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body orderLineReq true "Line"
// @Success 200 {object} cartResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req orderLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ct, err := s.carts.AddItem(c, c.Param("id"), req.MedicineID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResp(ct))
}

// @Summary Remove medicine from cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param medicineId path string true "Medicine ID"
// @Success 200 {object} cartResp
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items/{medicineId} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	ct, err := s.carts.RemoveItem(c, c.Param("id"), c.Param("medicineId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResp(ct))
}

type checkoutReq struct {
	CustomerName string `json:"customer_name" binding:"required"`
}

// @Summary Checkout cart
// @Description Converts the cart into an order and discards the cart
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body checkoutReq true "Customer"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/checkout [post]
func (s *Server) checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.carts.Checkout(c, c.Param("id"), req.CustomerName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// Medicine info
type medicineInfoResp struct {
	Name   string          `json:"name"`
	Text   string          `json:"text"`
	Blocks []medinfo.Block `json:"blocks"`
}

// @Summary Medicine information
// @Description Short description from the text generator; degrades to a fallback message
// @Tags medicines
// @Produce json
// @Param name query string true "Medicine name"
// @Success 200 {object} medicineInfoResp
// @Failure 400 {object} map[string]string
// @Router /medicines/info [get]
func (s *Server) medicineInfo(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	text := s.info.Describe(c.Request.Context(), name)
	c.JSON(http.StatusOK, medicineInfoResp{Name: name, Text: text, Blocks: medinfo.Parse(text)})
}

func toItems(lines []orderLineReq) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.CartItem{Medicine: domain.Medicine{ID: l.MedicineID}, Quantity: l.Quantity})
	}
	return items
}

func writeError(c *gin.Context, err error) {
	c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, domain.ErrUnknownStatus):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
