package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemCategory separates produce from packing material in the warehouse.
// Stored values are "chayote" and "material" to match the existing schema.
type ItemCategory string

const (
	CategoryProduce  ItemCategory = "chayote"
	CategoryMaterial ItemCategory = "material"
)

func (c ItemCategory) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the known values.
func (c ItemCategory) IsValid() bool {
	return c == CategoryProduce || c == CategoryMaterial
}

func (c ItemCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *ItemCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ItemCategory(str)
	return nil
}

func (c ItemCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *ItemCategory) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryProduce
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = ItemCategory(v)
	case []byte:
		*c = ItemCategory(string(v))
	}
	return nil
}
