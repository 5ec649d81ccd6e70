package dto

// PublishBookRequest 价格单位为分，ISBN可以带连字符
type PublishBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,min=10,max=17" example:"978-7-111-55842-2"`
	Title       string `json:"title" binding:"required,max=128" example:"Go程序设计语言"`
	Author      string `json:"author" binding:"required,max=100" example:"艾伦·多诺万"`
	Publisher   string `json:"publisher" binding:"required,max=100" example:"机械工业出版社"`
	Price       int64  `json:"price" binding:"required,min=1,max=999999" example:"7900"`
	Stock       int    `json:"stock" binding:"min=0,max=100000" example:"50"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500"`
	Description string `json:"description" binding:"max=2000" example:"Go语言圣经"`
}

// ListBooksRequest page和page_size不传时由用例取默认值
type ListBooksRequest struct {
	PageQuery
	Keyword string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc"`
}

type UpdatePriceRequest struct {
	Price int64 `json:"price" binding:"required,min=1,max=999999" example:"6900"`
}
