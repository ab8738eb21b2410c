package transport

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PatchCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Count       uint       `json:"count"`
	Featured    bool       `json:"featured"`
}

type PatchProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	Count       *uint      `json:"count"`
	Featured    *bool      `json:"featured"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
	AtHome      bool    `json:"at_home"`
	AtClinic    bool    `json:"at_clinic"`
	Online      bool    `json:"online"`
}

type PatchServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Type        *string  `json:"type"`
	AtHome      *bool    `json:"at_home"`
	AtClinic    *bool    `json:"at_clinic"`
	Online      *bool    `json:"online"`
}

type CreateServicePackageRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	ServiceIDs  []uuid.UUID `json:"service_ids"`
}

type PatchServicePackageRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsActive    *bool    `json:"is_active"`
}

type CreatePromotionRequest struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	MaxUses       int       `json:"max_uses"`
}

type PatchPromotionRequest struct {
	DiscountType  *string    `json:"discount_type"`
	DiscountValue *float64   `json:"discount_value"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	MaxUses       *int       `json:"max_uses"`
}

type CreateOrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  uint      `json:"quantity"`
}

type CreateOrderRequest struct {
	Items         []CreateOrderItem `json:"items"`
	PromotionCode string            `json:"promotion_code"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreatePaymentRequest struct {
	OrderID uuid.UUID `json:"order_id"`
	Amount  float64   `json:"amount"`
	Method  string    `json:"method"`
}

type CreateReviewRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Rating int       `json:"rating"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
}

type CreateAppointmentRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Channel     string    `json:"channel"`
	Note        string    `json:"note"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

func NewPageMeta(page, size, offset int, total int64) PageMeta {
	return PageMeta{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: (total + int64(size) - 1) / int64(size),
		HasPrev:    page > 1,
		HasNext:    int64(offset+size) < total,
	}
}
