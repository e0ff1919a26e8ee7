package transport

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

type DecrementItemRequest struct {
	Quantity uint `json:"quantity"`
}

type CreateProductRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

type PatchProductRequest struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	ImageURL *string `json:"image_url"`
}

// CheckoutLine is a cart item joined with its product's current price.
type CheckoutLine struct {
	ItemID      uint   `json:"item_id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    uint   `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type CheckoutSummary struct {
	Lines []CheckoutLine `json:"lines"`
	Total int64          `json:"total"`
}
