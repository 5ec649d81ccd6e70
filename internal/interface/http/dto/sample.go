package dto

type CreateSampleRequest struct {
	Text string `json:"text" binding:"required" example:"hello bookshop"`
}
