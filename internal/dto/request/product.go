package request

// ProductFilter holds the optional browse filters. Empty means no filter.
type ProductFilter struct {
	Gender   string `json:"gender" validate:"omitempty,oneof=Men Women"`
	Category string `json:"category" validate:"omitempty,oneof=T-shirts Shirts Pants Tops One-pieces Sarees Other"`
}

type ContactRequest struct {
	BuyerPhone string `json:"buyer_phone" validate:"required,phone"`
}

type CreateRatingRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
}
