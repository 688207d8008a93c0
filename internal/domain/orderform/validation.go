package orderform

import (
	"errors"
	"strings"

	"opticai/internal/domain/entities"
)

var (
	ErrInvalidOrder        = errors.New("invalid service order")
	ErrClientNameRequired  = errors.New("client name is required")
	ErrClientPhoneRequired = errors.New("client phone is required")
	ErrClientPhoneInvalid  = errors.New("client phone must have 11 digits")
	ErrLensTypeRequired    = errors.New("lens type is required")
	ErrDeliveryBeforeSale  = errors.New("delivery date cannot be before sale date")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
)

// Warning is advisory feedback shown next to a field while editing.
type Warning struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidatePhone returns a warning when some digits were typed but not exactly 11.
func ValidatePhone(value string) string {
	if n := len(Digits(value)); n != 0 && n != phoneDigits {
		return ErrClientPhoneInvalid.Error()
	}
	return ""
}

// ValidateDates returns a warning when a set date is malformed, or when both
// dates are set and delivery comes before sale.
func ValidateDates(saleDate, deliveryDate string) string {
	if !validDate(saleDate) || !validDate(deliveryDate) {
		return ErrInvalidDate.Error()
	}
	if deliveryBeforeSale(saleDate, deliveryDate) {
		return ErrDeliveryBeforeSale.Error()
	}
	return ""
}

// DeriveWarnings recomputes every advisory warning of d.
func DeriveWarnings(d *Draft) []Warning {
	var out []Warning
	if msg := ValidatePhone(d.Value(FieldClientPhone)); msg != "" {
		out = append(out, Warning{Field: FieldClientPhone, Message: msg})
	}
	for _, f := range dateFields {
		if !validDate(d.Value(f)) {
			out = append(out, Warning{Field: f, Message: ErrInvalidDate.Error()})
		}
	}
	if deliveryBeforeSale(d.Value(FieldSaleDate), d.Value(FieldDeliveryDate)) {
		out = append(out, Warning{Field: FieldDeliveryDate, Message: ErrDeliveryBeforeSale.Error()})
	}
	return out
}

// FieldError is one blocking problem of a record.
type FieldError struct {
	Field Field
	Err   error
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors carries every blocking error of a record at once.
type ValidationErrors struct {
	Errors []FieldError
}

func (e *ValidationErrors) Error() string {
	return ErrInvalidOrder.Error() + ": " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidOrder
}

func (e *ValidationErrors) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe
	}
	return out
}

// Messages lists the human-readable message of each error, in order.
func (e *ValidationErrors) Messages() []string {
	out := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe.Err.Error()
	}
	return out
}

// BlockingErrors runs the full-record validation in a fixed order: client
// name, phone, lens type, date format, date order. Nothing is corrected.
func BlockingErrors(o entities.ServiceOrder) []FieldError {
	var out []FieldError
	if strings.TrimSpace(o.ClientName) == "" {
		out = append(out, FieldError{Field: FieldClientName, Err: ErrClientNameRequired})
	}
	switch n := len(Digits(o.ClientPhone)); {
	case n == 0:
		out = append(out, FieldError{Field: FieldClientPhone, Err: ErrClientPhoneRequired})
	case n != phoneDigits:
		out = append(out, FieldError{Field: FieldClientPhone, Err: ErrClientPhoneInvalid})
	}
	if !o.LensType.Valid() {
		out = append(out, FieldError{Field: FieldLensType, Err: ErrLensTypeRequired})
	}
	dates := map[Field]string{
		FieldSaleDate:     o.SaleDate,
		FieldDeliveryDate: o.DeliveryDate,
		FieldBirthDate:    o.BirthDate,
	}
	for _, f := range dateFields {
		if !validDate(dates[f]) {
			out = append(out, FieldError{Field: f, Err: ErrInvalidDate})
		}
	}
	if deliveryBeforeSale(o.SaleDate, o.DeliveryDate) {
		out = append(out, FieldError{Field: FieldDeliveryDate, Err: ErrDeliveryBeforeSale})
	}
	return out
}

// ValidateOrder wraps BlockingErrors; nil means the record may be persisted.
func ValidateOrder(o entities.ServiceOrder) error {
	if errs := BlockingErrors(o); len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

var dateFields = []Field{FieldSaleDate, FieldDeliveryDate, FieldBirthDate}

// validDate accepts an unset date or one in entities.DateLayout.
func validDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := entities.ParseDate(s)
	return ok
}

func deliveryBeforeSale(saleDate, deliveryDate string) bool {
	sale, okSale := entities.ParseDate(saleDate)
	delivery, okDelivery := entities.ParseDate(deliveryDate)
	return okSale && okDelivery && delivery.Before(sale)
}
