package request

// ListingBasics is step 1 of the listing form.
type ListingBasics struct {
	Title       string `json:"title" validate:"notblank,max=120"`
	Description string `json:"description" validate:"notblank"`
	Gender      string `json:"gender" validate:"required,oneof=Men Women"`
	Category    string `json:"category" validate:"required,oneof=T-shirts Shirts Pants Tops One-pieces Sarees Other"`
}

// ListingPricing is step 2. Price stays a string so "abc" and "-3" reach
// the validator instead of failing the decode.
type ListingPricing struct {
	Size        string `json:"size" validate:"notblank,max=20"`
	Price       string `json:"price" validate:"required,posint"`
	Condition   string `json:"condition" validate:"required,oneof=Good Average 'Recently Used' 'With Tags' 'Without Tags'"`
	SellerPhone string `json:"seller_phone" validate:"required,phone"`
}

// ListingImage describes a picked file without its bytes.
type ListingImage struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ListingDraft is the whole form. Step is the step being submitted when
// the draft goes to the validate endpoint.
type ListingDraft struct {
	Step int `json:"step"`
	ListingBasics
	ListingPricing
	Images []ListingImage `json:"images"`
}
