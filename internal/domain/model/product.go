package model

// Product は商品レコード。IDはクライアント指定で、ストア内で一意。
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// ProductUpdate は部分更新パッチ。nilのフィールドは変更しない。
type ProductUpdate struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int64   `json:"stock"`
}

// ApplyTo は送られてきたフィールドだけをコピーに上書きして返す。
func (u ProductUpdate) ApplyTo(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	return p
}
