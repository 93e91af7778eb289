package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus is the collection state of a sale note.
// Stored values are "Pendiente" and "Pagado" to match the existing schema.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pendiente"
	PaymentPaid    PaymentStatus = "Pagado"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PaymentStatus(str)
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(string(v))
	}
	return nil
}

// PaymentMethod is the payment condition chosen when a sale is registered.
// Anything other than "Pagado" leaves the note pending for its full total.
type PaymentMethod string

const (
	MethodCredit PaymentMethod = "Credito"
	MethodPaid   PaymentMethod = "Pagado"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Status derives the initial payment state of a sale from the method.
func (m PaymentMethod) Status() PaymentStatus {
	if m == MethodPaid {
		return PaymentPaid
	}
	return PaymentPending
}
