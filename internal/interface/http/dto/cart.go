package dto

// AddBookRequest 加入购物车
// cart_id为空时使用当前用户的购物车，quantity不传按1处理
type AddBookRequest struct {
	CartID   string `json:"cart_id" binding:"omitempty,uuid" example:"6f1c2a8e-4b1d-4c55-9a3e-2f1b7c9d0e11"`
	BookID   uint   `json:"book_id" binding:"required,min=1" example:"1"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1,max=999" example:"1"`
}

// UpdateQuantityRequest 修改数量，0表示删除
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=999" example:"2"`
}

// CartQuery 可选的购物车ID
type CartQuery struct {
	CartID string `form:"cart_id" binding:"omitempty,uuid"`
}
