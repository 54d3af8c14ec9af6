package shop

import "time"

type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	Audit
	ID         int64
	CustomerID int64
	notes      string
}

type OrderDTO struct {
	Audit
	ID         int64
	CustomerID int64
}

//mapcheck:complete
func ToDTO(src *Order, dst *OrderDTO) *OrderDTO {
	dst.ID = src.ID
	dst.CustomerID = src.CustomerID
	dst.Audit = src.Audit
	return dst
}
