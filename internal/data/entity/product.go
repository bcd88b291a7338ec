package entity

import (
	"github.com/google/uuid"
)

type Gender string

const (
	GenderMen   Gender = "Men"
	GenderWomen Gender = "Women"
)

var Genders = []Gender{GenderMen, GenderWomen}

func (g Gender) Valid() bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

type Category string

const (
	CategoryTShirts   Category = "T-shirts"
	CategoryShirts    Category = "Shirts"
	CategoryPants     Category = "Pants"
	CategoryTops      Category = "Tops"
	CategoryOnePieces Category = "One-pieces"
	CategorySarees    Category = "Sarees"
	CategoryOther     Category = "Other"
)

var Categories = []Category{
	CategoryTShirts, CategoryShirts, CategoryPants, CategoryTops,
	CategoryOnePieces, CategorySarees, CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Condition string

const (
	ConditionGood         Condition = "Good"
	ConditionAverage      Condition = "Average"
	ConditionRecentlyUsed Condition = "Recently Used"
	ConditionWithTags     Condition = "With Tags"
	ConditionWithoutTags  Condition = "Without Tags"
)

// Product is a listing. After insert the only change it ever sees is Sold
// going from false to true.
type Product struct {
	BaseSimple
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    Category  `db:"category"`
	Gender      Gender    `db:"gender"`
	Size        string    `db:"size"`
	Price       int       `db:"price"`
	Condition   Condition `db:"condition"`
	SellerID    uuid.UUID `db:"seller_id"`
	SellerPhone string    `db:"seller_phone"`
	Images      []string  `db:"images"`
	Sold        bool      `db:"sold"`
}
