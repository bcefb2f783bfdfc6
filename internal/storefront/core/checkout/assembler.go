package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

// orderNumberPrefix namespaces every identifier generated by this storefront.
const orderNumberPrefix = "ORD"

// fieldLabels maps struct field names to the labels shown to the user in a
// "missing information" message.
var fieldLabels = map[string]string{
	"Name":        "name",
	"Phone":       "phone",
	"CompanyType": "companyType",
	"Email":       "email",
}

// Assembler validates a submission attempt and builds the immutable
// OrderSubmission snapshot from the cart and the customer form. It only
// reads cart state; it never mutates it.
type Assembler struct {
	validate *validator.Validate
}

func NewAssembler() *Assembler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("company_type", func(fl validator.FieldLevel) bool {
		return entity.IsValidCompanyType(fl.Field().String())
	})
	return &Assembler{validate: v}
}

// Validate checks the attempt before any network traffic: required customer
// fields first, then a non-empty cart.
func (a *Assembler) Validate(cart entity.Cart, info entity.CustomerInfo) error {
	if err := a.validate.Struct(info); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			label, ok := fieldLabels[fe.StructField()]
			if !ok {
				label = fe.StructField()
			}
			fields = append(fields, label)
		}
		return &entity.ValidationError{Fields: fields}
	}
	if cart.IsEmpty() {
		return entity.ErrEmptyCart
	}
	return nil
}

// Assemble builds the snapshot from an already-validated cart and form.
// Aggregates use the same arithmetic as the cart's own TotalItems/TotalPrice
// reads, so the two always agree for the same snapshot.
func (a *Assembler) Assemble(cart entity.Cart, info entity.CustomerInfo, now time.Time) *entity.OrderSubmission {
	lines := make([]entity.SubmissionLine, 0, len(cart.Lines))
	totalUnits := 0
	totalAmount := decimal.Zero
	for _, l := range cart.Lines {
		subtotal := l.Subtotal()
		lines = append(lines, entity.SubmissionLine{
			ItemID:    l.Product.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			Subtotal:  subtotal,
		})
		totalUnits += l.Quantity
		totalAmount = totalAmount.Add(subtotal)
	}

	return &entity.OrderSubmission{
		OrderNumber: newOrderNumber(now),
		PlacedAt:    now,
		Lines:       lines,
		TotalLines:  len(lines),
		TotalUnits:  totalUnits,
		TotalAmount: totalAmount,
		Customer:    info,
	}
}

// newOrderNumber derives a unique identifier per attempt: namespace prefix,
// timestamp, and a short random suffix so two attempts in the same
// millisecond cannot collide.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, now.UnixMilli(), uuid.NewString()[:8])
}
