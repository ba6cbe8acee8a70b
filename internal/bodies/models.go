package bodies

import "github.com/shopspring/decimal"

// Pointers mark fields that must be present but may legitimately be zero,
// or that are optional and echoed back as null.

// Item is the plain request body example.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
}

// TotalPrice is price plus price*tax; ok is false when no non-zero tax was sent.
func (it Item) TotalPrice() (total float64, ok bool) {
	if it.Tax == nil || *it.Tax == 0 {
		return 0, false
	}
	price := decimal.NewFromFloat(*it.Price)
	total = price.Add(price.Mul(decimal.NewFromFloat(*it.Tax))).InexactFloat64()
	return total, true
}

type createdItem struct {
	Item
	TotalPrice *float64 `json:"total_price,omitempty"`
}

type updatedItem struct {
	ItemID int `json:"item_id"`
	Item
}

// Multiple body parameters.

type DescribedItem struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
}

type User struct {
	Username  string  `json:"username" validate:"required"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     *string `json:"email"`
}

type itemUserPath struct {
	ItemID int `json:"item_id" validate:"gte=0,lte=100"`
	UserID int `json:"user_id" validate:"gte=1,lte=5000"`
}

type itemUserBody struct {
	Item *DescribedItem `json:"item"`
	User *User          `json:"user"`
	Age  *int           `json:"age" validate:"required,gt=0,lt=150"`
}

type itemUserResp struct {
	ItemID int            `json:"item_id"`
	UserID int            `json:"user_id"`
	Item   *DescribedItem `json:"item"`
	User   *User          `json:"user"`
	Age    int            `json:"age"`
}

// Field-level constraints.

type ConstrainedItem struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Tax         *float64 `json:"tax"`
}

type embeddedItemBody struct {
	Item *ConstrainedItem `json:"item" validate:"required"`
}

// Nested models.

type Image struct {
	URL         string  `json:"url" validate:"required,http_url"`
	Description *string `json:"description"`
}

type NestedItem struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Image       *Image   `json:"image" validate:"required"`
}

type Product struct {
	Image *Image      `json:"image" validate:"required"`
	Item  *NestedItem `json:"item" validate:"required"`
}

type itemIDPath struct {
	ItemID int `json:"item_id" validate:"gte=1"`
}

type productIDPath struct {
	ProductID int `json:"product_id" validate:"gte=1"`
}

type itemResp struct {
	ItemID int `json:"item_id"`
	Item   any `json:"item"`
}

type productResp struct {
	ProductID int      `json:"product_id"`
	Product   *Product `json:"product"`
}
