package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

func validCustomer() entity.CustomerInfo {
	return entity.CustomerInfo{
		Name:        "Abel Construction",
		Phone:       "+251911000000",
		CompanyType: "Private Limited Company (PLC)",
	}
}

func cartWith(lines ...entity.CartLine) entity.Cart {
	return entity.Cart{Lines: lines}
}

func line(id string, itemID int64, qty int, price int64) entity.CartLine {
	return entity.CartLine{
		Product: entity.Product{
			ID:     id,
			ItemID: itemID,
			Name:   "p-" + id,
			Unit:   "pcs",
			Price:  decimal.NewFromInt(price),
		},
		Quantity: qty,
	}
}

func TestAssembler_Validate(t *testing.T) {
	a := NewAssembler()
	oneLine := cartWith(line("a", 1, 1, 100))

	tests := []struct {
		name       string
		cart       entity.Cart
		info       entity.CustomerInfo
		wantFields []string
		wantErr    error
	}{
		{
			name: "valid",
			cart: oneLine,
			info: validCustomer(),
		},
		{
			name: "missing phone",
			cart: oneLine,
			info: entity.CustomerInfo{
				Name:        "Abel Construction",
				CompanyType: "Partnership",
			},
			wantFields: []string{"phone"},
		},
		{
			name:       "missing everything required",
			cart:       oneLine,
			info:       entity.CustomerInfo{},
			wantFields: []string{"name", "phone", "companyType"},
		},
		{
			name: "company type outside the enumerated set",
			cart: oneLine,
			info: entity.CustomerInfo{
				Name:        "Abel Construction",
				Phone:       "+251911000000",
				CompanyType: "Megacorp",
			},
			wantFields: []string{"companyType"},
		},
		{
			name: "bad email",
			cart: oneLine,
			info: func() entity.CustomerInfo {
				i := validCustomer()
				i.Email = "not-an-email"
				return i
			}(),
			wantFields: []string{"email"},
		},
		{
			name:    "empty cart",
			cart:    entity.Cart{},
			info:    validCustomer(),
			wantErr: entity.ErrEmptyCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Validate(tt.cart, tt.info)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case len(tt.wantFields) > 0:
				var verr *entity.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.ElementsMatch(t, tt.wantFields, verr.Fields)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssembler_Assemble_TotalsMatchCartReads(t *testing.T) {
	a := NewAssembler()
	c := cartWith(
		line("a", 11, 2, 100),
		line("b", 22, 1, 50),
	)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	sub := a.Assemble(c, validCustomer(), now)

	assert.Equal(t, 2, sub.TotalLines)
	assert.Equal(t, 3, sub.TotalUnits)
	assert.True(t, decimal.NewFromInt(250).Equal(sub.TotalAmount))

	// Same snapshot, same arithmetic: the assembler's aggregates agree with
	// the cart store's own derived reads.
	assert.Equal(t, c.TotalItems(), sub.TotalUnits)
	assert.True(t, c.TotalPrice().Equal(sub.TotalAmount))

	require.Len(t, sub.Lines, 2)
	assert.Equal(t, int64(11), sub.Lines[0].ItemID)
	assert.Equal(t, 2, sub.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(200).Equal(sub.Lines[0].Subtotal))
	assert.Equal(t, now, sub.PlacedAt)
}

func TestAssembler_Assemble_OrderNumbersAreUnique(t *testing.T) {
	a := NewAssembler()
	c := cartWith(line("a", 1, 1, 100))
	now := time.Now().UTC()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sub := a.Assemble(c, validCustomer(), now)
		assert.True(t, strings.HasPrefix(sub.OrderNumber, "ORD-"))
		assert.False(t, seen[sub.OrderNumber], "duplicate order number %s", sub.OrderNumber)
		seen[sub.OrderNumber] = true
	}
}
