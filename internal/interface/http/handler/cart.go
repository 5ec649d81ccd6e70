package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	getCart        *appcart.GetCartUseCase
	createCart     *appcart.CreateCartUseCase
	addBook        *appcart.AddBookUseCase
	removeBook     *appcart.RemoveBookUseCase
	updateQuantity *appcart.UpdateQuantityUseCase
}

func NewCartHandler(
	getCart *appcart.GetCartUseCase,
	createCart *appcart.CreateCartUseCase,
	addBook *appcart.AddBookUseCase,
	removeBook *appcart.RemoveBookUseCase,
	updateQuantity *appcart.UpdateQuantityUseCase,
) *CartHandler {
	return &CartHandler{
		getCart:        getCart,
		createCart:     createCart,
		addBook:        addBook,
		removeBook:     removeBook,
		updateQuantity: updateQuantity,
	}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  返回当前用户的购物车及明细
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "购物车不存在"
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.getCart.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateCart 创建购物车
// @Summary      创建购物车
// @Description  每个用户最多一个购物车，重复创建返回400
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} response.Response{data=appcart.CartResponse}
// @Failure      400 {object} response.Response "购物车已存在"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/cart [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	result, err := h.createCart.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// AddBook 加入购物车
// @Summary      加入购物车
// @Description  已有该图书时累加数量，否则新增一行，单价取当前价格
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddBookRequest true "图书与数量"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "不是自己的购物车"
// @Failure      404 {object} response.Response "购物车或图书不存在"
// @Router       /api/v1/cart/books [post]
func (h *CartHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	cartID, err := parseCartID(req.CartID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.addBook.Execute(c.Request.Context(), appcart.AddBookRequest{
		UserID:   middleware.MustGetUserID(c),
		CartID:   cartID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveBook 移出购物车
// @Summary      移出购物车
// @Description  删除整行，图书不在购物车里返回404
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        bookId  path  int     true   "图书ID"
// @Param        cart_id query string  false  "购物车ID，默认当前用户的购物车"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      403 {object} response.Response "不是自己的购物车"
// @Failure      404 {object} response.Response "购物车、图书或明细不存在"
// @Router       /api/v1/cart/books/{bookId} [delete]
func (h *CartHandler) RemoveBook(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}
	cartID, ok := cartIDQuery(c)
	if !ok {
		return
	}

	result, err := h.removeBook.Execute(c.Request.Context(), appcart.RemoveBookRequest{
		UserID: middleware.MustGetUserID(c),
		CartID: cartID,
		BookID: bookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateQuantity 修改数量
// @Summary      修改购物车中图书的数量
// @Description  数量直接覆盖，为0时删除该行
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId  path  int     true   "图书ID"
// @Param        cart_id query string  false  "购物车ID，默认当前用户的购物车"
// @Param        request body dto.UpdateQuantityRequest true "新数量"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "购物车或明细不存在"
// @Router       /api/v1/cart/books/{bookId} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}
	cartID, ok := cartIDQuery(c)
	if !ok {
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateQuantity.Execute(c.Request.Context(), appcart.UpdateQuantityRequest{
		UserID:   middleware.MustGetUserID(c),
		CartID:   cartID,
		BookID:   bookID,
		Quantity: *req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// parseCartID 空串表示当前用户的购物车
func parseCartID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.ErrCodeInvalidParams, "cart_id格式错误")
	}
	return id, nil
}

func cartIDQuery(c *gin.Context) (uuid.UUID, bool) {
	var q dto.CartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return uuid.Nil, false
	}
	id, err := parseCartID(q.CartID)
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, false
	}
	return id, true
}

func bookIDParam(c *gin.Context) (uint, bool) {
	return uintParam(c, "bookId", "图书ID格式错误")
}

// uintParam 解析路径中的正整数ID，失败时已写好响应
func uintParam(c *gin.Context, name, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, message)
		return 0, false
	}
	return uint(id), true
}

// uuidParam 解析路径中的UUID，失败时已写好响应
func uuidParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, message)
		return uuid.Nil, false
	}
	return id, true
}
