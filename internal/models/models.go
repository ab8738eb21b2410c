package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:customer" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null"      json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"      json:"category_id,omitempty"`
	Name        string     `gorm:"not null"             json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null"             json:"price"`
	Count       uint       `json:"count"`
	Featured    bool       `gorm:"default:false;index"  json:"featured"`

	// Derived from reviews, rewritten by the review service after each write.
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	ReviewCount   int64   `gorm:"default:0" json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	ServiceTypeConsultation = "consultation"
	ServiceTypeTest         = "test"
	ServiceTypeTreatment    = "treatment"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null"             json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"             json:"price"`
	Type        string    `gorm:"not null"             json:"type"`
	AtHome      bool      `gorm:"default:false"        json:"at_home"`
	AtClinic    bool      `gorm:"default:true"         json:"at_clinic"`
	Online      bool      `gorm:"default:false"        json:"online"`
	IsDeleted   bool      `gorm:"default:false;index"  json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServicePackage struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string               `gorm:"not null"             json:"name"`
	Description string               `json:"description"`
	Price       float64              `gorm:"not null"             json:"price"`
	IsActive    bool                 `gorm:"default:true"         json:"is_active"`
	Items       []ServicePackageItem `gorm:"foreignKey:PackageID" json:"items"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type ServicePackageItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PackageID uuid.UUID `gorm:"type:uuid;index;not null" json:"package_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null"   json:"service_id"`
}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Promotion struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code          string    `gorm:"unique;not null"      json:"code"`
	DiscountType  string    `gorm:"not null"             json:"discount_type"`
	DiscountValue float64   `gorm:"not null"             json:"discount_value"`
	StartDate     time.Time `gorm:"not null"             json:"start_date"`
	EndDate       time.Time `gorm:"not null"             json:"end_date"`
	MaxUses       int       `gorm:"default:0"            json:"max_uses"`
	UsedCount     int       `gorm:"default:0"            json:"used_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InWindow reports whether now falls inside the closed validity window.
func (p *Promotion) InWindow(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// Redeemable additionally requires the usage limit not to be exhausted.
// MaxUses == 0 means unlimited.
func (p *Promotion) Redeemable(now time.Time) bool {
	if !p.InWindow(now) {
		return false
	}
	return p.MaxUses == 0 || p.UsedCount < p.MaxUses
}

// Discount returns the amount to subtract from subtotal, capped at subtotal.
func (p *Promotion) Discount(subtotal float64) float64 {
	var d float64
	switch p.DiscountType {
	case DiscountTypePercentage:
		d = subtotal * p.DiscountValue / 100
	case DiscountTypeFixed:
		d = p.DiscountValue
	}
	if d > subtotal {
		d = subtotal
	}
	if d < 0 {
		d = 0
	}
	return d
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;index;not null" json:"user_id"`
	PromotionID   *uuid.UUID  `gorm:"type:uuid"            json:"promotion_id,omitempty"`
	PromotionCode string      `json:"promotion_code,omitempty"`
	Subtotal      float64     `gorm:"not null"             json:"subtotal"`
	Discount      float64     `gorm:"not null"             json:"discount"`
	Total         float64     `gorm:"not null"             json:"total"`
	Status        string      `gorm:"not null;index"       json:"status"`
	Items         []OrderItem `gorm:"foreignKey:OrderID"   json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"   json:"product_id"`
	Quantity  uint      `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice float64   `gorm:"not null"             json:"unit_price"`
	LineTotal float64   `gorm:"not null"             json:"line_total"`
}

const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodWallet       = "wallet"
	PaymentMethodBankTransfer = "bank_transfer"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	Amount    float64   `gorm:"not null"             json:"amount"`
	Method    string    `gorm:"not null"             json:"method"`
	Status    string    `gorm:"not null"             json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null"   json:"service_id"`
	ScheduledAt time.Time `gorm:"not null"             json:"scheduled_at"`
	Channel     string    `json:"channel"`
	Note        string    `json:"note"`
	Status      string    `gorm:"not null"             json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error           { ensureID(&u.ID); return nil }
func (c *Category) BeforeCreate(*gorm.DB) error       { ensureID(&c.ID); return nil }
func (p *Product) BeforeCreate(*gorm.DB) error        { ensureID(&p.ID); return nil }
func (r *Review) BeforeCreate(*gorm.DB) error         { ensureID(&r.ID); return nil }
func (s *Service) BeforeCreate(*gorm.DB) error        { ensureID(&s.ID); return nil }
func (s *ServicePackage) BeforeCreate(*gorm.DB) error { ensureID(&s.ID); return nil }
func (s *ServicePackageItem) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
func (p *Promotion) BeforeCreate(*gorm.DB) error   { ensureID(&p.ID); return nil }
func (o *Order) BeforeCreate(*gorm.DB) error       { ensureID(&o.ID); return nil }
func (i *OrderItem) BeforeCreate(*gorm.DB) error   { ensureID(&i.ID); return nil }
func (p *Payment) BeforeCreate(*gorm.DB) error     { ensureID(&p.ID); return nil }
func (a *Appointment) BeforeCreate(*gorm.DB) error { ensureID(&a.ID); return nil }
