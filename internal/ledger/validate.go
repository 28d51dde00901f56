package ledger

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// VehicleFields - raw vehicle input as submitted by the caller. ID, Position and
// AddedDate are never part of the input; the lifecycle manager assigns them.
type VehicleFields struct {
	ModelName     string          `json:"model_name" validate:"required"`
	Year          int             `json:"year" validate:"min=1900,max=2100"`
	Registration  string          `json:"registration" validate:"required"`
	Color         string          `json:"color" validate:"required"`
	ChassisNo     string          `json:"chassis_no" validate:"required"`
	EngineNo      string          `json:"engine_no" validate:"required"`
	Notes         string          `json:"notes"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"decimalgt0"`
}

// SaleFields - raw sale input. The one-sale-per-vehicle rule is NOT checked here:
// it is a cross-record invariant and belongs to the lifecycle manager.
type SaleFields struct {
	VehicleID    string          `json:"vehicle_id" validate:"required"`
	SaleDate     string          `json:"sale_date" validate:"required,datetime=2006-01-02"`
	SellingPrice decimal.Decimal `json:"selling_price" validate:"decimalgt0"`
	Method       string          `json:"payment_method" validate:"required,oneof=cash bank_transfer cheque leasing"`
	BuyerName    string          `json:"buyer_name" validate:"required"`
	BuyerAddress string          `json:"buyer_address" validate:"required"`
	BuyerNIC     string          `json:"buyer_nic" validate:"required"`
	BuyerPhone   string          `json:"buyer_phone" validate:"required"`
	Notes        string          `json:"notes"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("decimalgt0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.GreaterThan(decimal.Zero)
	})

	return v
}

func (f VehicleFields) normalized() VehicleFields {
	f.ModelName = strings.TrimSpace(f.ModelName)
	f.Registration = strings.TrimSpace(f.Registration)
	f.Color = strings.TrimSpace(f.Color)
	f.ChassisNo = strings.TrimSpace(f.ChassisNo)
	f.EngineNo = strings.TrimSpace(f.EngineNo)
	f.Notes = strings.TrimSpace(f.Notes)
	return f
}

func (f SaleFields) normalized() SaleFields {
	f.VehicleID = strings.TrimSpace(f.VehicleID)
	f.SaleDate = strings.TrimSpace(f.SaleDate)
	f.Method = strings.TrimSpace(f.Method)
	f.BuyerName = strings.TrimSpace(f.BuyerName)
	f.BuyerAddress = strings.TrimSpace(f.BuyerAddress)
	f.BuyerNIC = strings.TrimSpace(f.BuyerNIC)
	f.BuyerPhone = strings.TrimSpace(f.BuyerPhone)
	f.Notes = strings.TrimSpace(f.Notes)
	return f
}

// ValidateVehicle enforces every per-field constraint and returns the first
// violation as a ValidationError. Nothing is partially applied.
func ValidateVehicle(f VehicleFields) error {
	return firstViolation(validate.Struct(f))
}

// ValidateSale enforces required fields, date format and positive price.
func ValidateSale(f SaleFields) error {
	return firstViolation(validate.Struct(f))
}

func firstViolation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Message: violationMessage(fe)}
	}
	return err
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return "must be a date formatted YYYY-MM-DD"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "decimalgt0":
		return "must be greater than 0"
	default:
		return "is invalid"
	}
}
