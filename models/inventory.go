package models

import "time"

type InventoryItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	Unit            string    `json:"unit"`
	ReorderPoint    int       `json:"reorder_point"`
	SupplierName    string    `json:"supplier_name,omitempty"`
	SupplierContact string    `json:"supplier_contact,omitempty"`
	LastRestocked   time.Time `json:"last_restocked"`
}

// LowStock reports whether the item has fallen to its reorder point.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderPoint
}
