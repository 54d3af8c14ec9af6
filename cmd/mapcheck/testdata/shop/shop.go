package shop

type Audit struct {
	CreatedAt int64
	UpdatedAt int64
}

type Order struct {
	Audit
	ID     int64
	Status string
	Total  int64
}

type OrderDTO struct {
	Audit
	ID     int64
	Status string
	Total  int64
}

//mapcheck:complete("Audit")
func ToDTO(src *Order, dst *OrderDTO) *OrderDTO {
	dst.ID = src.ID
	dst.Status = src.Status
	return dst
}

//mapcheck:complete("Totl")
func FromDTO(src *OrderDTO, dst *Order) *Order {
	dst.Audit = src.Audit
	dst.ID = src.ID
	dst.Status = src.Status
	dst.Total = src.Total
	return dst
}

//dto:mapped
func Copy(src *Order, dst *Order) *Order {
	dst.ID = src.ID
	return dst
}
