package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkout   *apporder.CheckoutUseCase
	getOrder   *apporder.GetOrderUseCase
	listOrders *apporder.ListOrdersUseCase
}

func NewOrderHandler(
	checkout *apporder.CheckoutUseCase,
	getOrder *apporder.GetOrderUseCase,
	listOrders *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkout:   checkout,
		getOrder:   getOrder,
		listOrders: listOrders,
	}
}

// Checkout 购物车结算下单
// @Summary      结算下单
// @Description  把当前购物车转成订单：按图书ID顺序锁库存、按当前价格计价、扣库存并清空购物车，全部在一个事务里
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} response.Response{data=apporder.OrderResponse}
// @Failure      400 {object} response.Response "购物车为空或库存不足"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "购物车不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	result, err := h.checkout.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListOrders 我的订单
// @Summary      我的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page      query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData{list=[]apporder.OrderResponse}}
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.listOrders.Execute(c.Request.Context(), middleware.MustGetUserID(c), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderResponse}
// @Failure      403 {object} response.Response "不是自己的订单"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := uintParam(c, "id", "订单ID格式错误")
	if !ok {
		return
	}

	result, err := h.getOrder.Execute(c.Request.Context(), id, middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
