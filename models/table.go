package models

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

type Table struct {
	ID       string      `json:"id"`
	Number   int         `json:"number"`
	Capacity int         `json:"capacity"`
	Shape    string      `json:"shape"`
	Status   TableStatus `json:"status"`
}
