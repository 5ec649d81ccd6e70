package mysql

import (
	"time"

	"gorm.io/gorm"
)

// 这里是带GORM tag的数据模型，domain层实体不依赖GORM，由各仓储负责转换

type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// BookModel 价格单位为分
type BookModel struct {
	ID          uint           `gorm:"primaryKey"`
	ISBN        string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title       string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string         `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Publisher   string         `gorm:"size:100;not null;comment:出版社"`
	Price       int64          `gorm:"index:idx_list;not null;comment:价格(分)"`
	Stock       int            `gorm:"default:0;comment:库存数量"`
	CoverURL    string         `gorm:"size:500;comment:封面图片URL"`
	Description string         `gorm:"type:text;comment:图书描述"`
	PublisherID uint           `gorm:"index;not null;comment:发布者用户ID"`
	CreatedAt   time.Time      `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (BookModel) TableName() string {
	return "books"
}

type AuthorModel struct {
	ID        string         `gorm:"primaryKey;size:36;comment:作者ID(UUID)"`
	Forename  string         `gorm:"size:32;not null;comment:名"`
	Surname   string         `gorm:"index;size:32;not null;comment:姓"`
	PenName   string         `gorm:"size:32;not null;comment:笔名"`
	Biography string         `gorm:"size:256;comment:简介"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// CartModel user_id唯一索引保证一人一车，并发创建时由数据库拒绝第二次插入
type CartModel struct {
	ID        string          `gorm:"primaryKey;size:36;comment:购物车ID(UUID)"`
	UserID    uint            `gorm:"uniqueIndex;not null;comment:用户ID"`
	Subtotal  int64           `gorm:"not null;default:0;comment:小计(分)"`
	Items     []CartBookModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"comment:创建时间"`
	UpdatedAt time.Time       `gorm:"comment:更新时间"`
}

func (CartModel) TableName() string {
	return "carts"
}

// CartBookModel 复合主键(cart_id, book_id)，upsert依赖这个主键冲突
type CartBookModel struct {
	CartID    string    `gorm:"primaryKey;size:36;comment:购物车ID"`
	BookID    uint      `gorm:"primaryKey;index;comment:图书ID"`
	Book      BookModel `gorm:"foreignKey:BookID"`
	Quantity  int       `gorm:"not null;default:1;comment:数量"`
	Price     int64     `gorm:"not null;default:0;comment:加入时单价(分)"`
	CreatedAt time.Time `gorm:"comment:加入时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CartBookModel) TableName() string {
	return "cart_books"
}

type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	OrderNo   string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID    uint             `gorm:"index;not null;comment:买家用户ID"`
	CartID    string           `gorm:"size:36;comment:来源购物车ID"`
	Total     int64            `gorm:"not null;comment:订单总金额(分)"`
	Status    int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待支付2已支付3已发货4已完成5已取消)"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel Price是下单时的价格快照
type OrderItemModel struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"index;not null;comment:订单ID"`
	BookID   uint   `gorm:"index;not null;comment:图书ID"`
	Title    string `gorm:"size:200;comment:下单时书名"`
	Quantity int    `gorm:"not null;comment:购买数量"`
	Price    int64  `gorm:"not null;comment:下单时单价(分)"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// SampleModel /api/v1/tests的演示数据
type SampleModel struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"size:128;not null;comment:内容"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (SampleModel) TableName() string {
	return "samples"
}
