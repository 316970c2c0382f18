package models

import (
	"encoding/json"
	"errors"
	"time"
)

type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemProcessing ItemStatus = "processing"
	ItemShipped    ItemStatus = "shipped"
	ItemDelivered  ItemStatus = "delivered"
	ItemCancelled  ItemStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// itemTransitions is the legal transition table for line item statuses.
// delivered and cancelled are terminal.
var itemTransitions = map[ItemStatus][]ItemStatus{
	ItemPending:    {ItemProcessing, ItemShipped, ItemCancelled},
	ItemProcessing: {ItemShipped, ItemCancelled},
	ItemShipped:    {ItemDelivered, ItemCancelled},
	ItemDelivered:  {},
	ItemCancelled:  {},
}

func (s ItemStatus) Valid() bool {
	_, ok := itemTransitions[s]
	return ok
}

func (s ItemStatus) Terminal() bool {
	return len(itemTransitions[s]) == 0
}

func (s ItemStatus) CanTransitionTo(target ItemStatus) bool {
	for _, t := range itemTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint        `gorm:"index;not null" json:"customerId"`
	Customer   *User       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total      float64     `gorm:"not null" json:"total"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint       `gorm:"index" json:"orderId"`
	ProductID uint       `gorm:"not null" json:"product"`
	Product   *Product   `gorm:"foreignKey:ProductID" json:"productDetails,omitempty"`
	SellerID  uint       `gorm:"index;not null" json:"seller"`
	Quantity  int        `gorm:"not null" json:"quantity"`
	Price     float64    `gorm:"not null" json:"price"`
	Status    ItemStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CanCancel reports whether a customer may still cancel the whole order,
// which requires every item to be pending.
func (o *Order) CanCancel() bool {
	for _, item := range o.Items {
		if item.Status != ItemPending {
			return false
		}
	}
	return len(o.Items) > 0
}

// DerivedStatus computes the order-level display status from its items.
// It is never persisted.
func (o *Order) DerivedStatus() ItemStatus {
	if len(o.Items) == 0 {
		return ItemPending
	}
	allPending, allCancelled, allTerminal := true, true, true
	delivered := false
	for _, item := range o.Items {
		if item.Status != ItemPending {
			allPending = false
		}
		if item.Status != ItemCancelled {
			allCancelled = false
		}
		if !item.Status.Terminal() {
			allTerminal = false
		}
		if item.Status == ItemDelivered {
			delivered = true
		}
	}
	switch {
	case allCancelled:
		return ItemCancelled
	case allTerminal && delivered:
		return ItemDelivered
	case allPending:
		return ItemPending
	default:
		return ItemProcessing
	}
}

// ItemsForSeller returns the order's items belonging to one seller.
func (o *Order) ItemsForSeller(sellerID uint) []OrderItem {
	var items []OrderItem
	for _, item := range o.Items {
		if item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	return items
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		Status ItemStatus `json:"status"`
	}{alias(o), o.DerivedStatus()})
}
