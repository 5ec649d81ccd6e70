package dto

// CreateAuthorRequest 名字三项必填，长度按字符计
type CreateAuthorRequest struct {
	Forename  string `json:"forename" binding:"required" example:"树人"`
	Surname   string `json:"surname" binding:"required" example:"周"`
	PenName   string `json:"pen_name" binding:"required" example:"鲁迅"`
	Biography string `json:"biography" example:"中国现代文学的奠基人之一"`
}

// UpdateAuthorRequest 只更新提交的字段
type UpdateAuthorRequest struct {
	Forename  *string `json:"forename" example:"树人"`
	Surname   *string `json:"surname" example:"周"`
	PenName   *string `json:"pen_name" example:"鲁迅"`
	Biography *string `json:"biography" example:"小说家、思想家"`
}
