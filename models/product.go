package models

import (
	"encoding/json"
	"time"
)

type Category string

const (
	CategoryCrafts   Category = "Crafts"
	CategoryHandmade Category = "handmade"
	CategoryJewelry  Category = "jewelry"
	CategoryArtwork  Category = "artwork"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCrafts, CategoryHandmade, CategoryJewelry, CategoryArtwork:
		return true
	}
	return false
}

type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductOutOfStock ProductStatus = "outOfStock"
	ProductDraft      ProductStatus = "draft"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductOutOfStock, ProductDraft:
		return true
	}
	return false
}

type Product struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID       uint          `gorm:"index;not null" json:"sellerId"`
	Seller         *User         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Name           string        `gorm:"unique;not null" json:"name"`
	Price          float64       `gorm:"not null" json:"price"`
	Quantity       int           `gorm:"not null;default:0" json:"quantity"`
	Category       Category      `gorm:"type:VARCHAR(20);not null;default:'Crafts'" json:"category"`
	Description    string        `gorm:"not null" json:"description"`
	Photos         []string      `gorm:"serializer:json" json:"photos"`
	Status         ProductStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Specifications string        `json:"specifications"`
	ShippingInfo   string        `json:"shippingInfo"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// PhotoURLs maps stored filenames to the public /uploads paths served by gin.
func (p *Product) PhotoURLs() []string {
	urls := make([]string, 0, len(p.Photos))
	for _, name := range p.Photos {
		urls = append(urls, "/uploads/"+name)
	}
	return urls
}

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		PhotoURLs []string `json:"photoUrls"`
	}{alias(p), p.PhotoURLs()})
}
