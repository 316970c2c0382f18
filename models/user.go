package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Phone     string `gorm:"not null" json:"phone"`
	Role      Role   `gorm:"type:VARCHAR(20);default:'customer'" json:"userType"`

	// Seller-only fields. Present iff Role == RoleSeller, enforced at signup.
	ShopName        string `json:"shopName,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Summary is the role-shaped user payload returned by signup and login.
func (u *User) Summary() map[string]any {
	s := map[string]any{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"phone":     u.Phone,
		"userType":  u.Role,
	}
	if u.Role == RoleSeller {
		s["shopName"] = u.ShopName
		s["businessAddress"] = u.BusinessAddress
	}
	return s
}
