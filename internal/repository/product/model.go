package product

type ProductDB struct {
	ID          int64
	Name        string
	Price       string
	Description *string
}

type ProductModifyDB struct {
	ID          *int64
	Name        *string
	Price       *string
	Description *string
}
