package httpx

import "github.com/buildline/storefront/internal/storefront/core/domain/entity"

type ProductResponse struct {
	ID               string  `json:"id"`
	ItemID           int64   `json:"item_id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	Unit             string  `json:"unit"`
	Price            float64 `json:"price"`
	InStock          int     `json:"in_stock"`
	MinOrderQuantity int     `json:"min_order_quantity"`
	Image            string  `json:"image,omitempty"`
}

type ProductGroupResponse struct {
	ID          string            `json:"id"`
	Code        string            `json:"code"`
	Description string            `json:"description"`
	Products    []ProductResponse `json:"products"`
}

type CategoryResponse struct {
	ID          string                 `json:"id"`
	Code        string                 `json:"code"`
	Description string                 `json:"description"`
	Groups      []ProductGroupResponse `json:"groups"`
}

type CartLineResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int                `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CustomerInfoDTO struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CompanyType string `json:"companyType"`
	TINNumber   string `json:"tinNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type SubmitOrderRequest struct {
	CustomerInfo CustomerInfoDTO `json:"customer_info"`
}

type OrderStatusResponse struct {
	State       string `json:"state"`
	OrderNumber string `json:"order_number,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
	Message     string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error     string   `json:"error"`
	Message   string   `json:"message,omitempty"`
	Fields    []string `json:"fields,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
}

func mapProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		ItemID:           p.ItemID,
		Name:             p.Name,
		Category:         p.Category,
		Description:      p.Description,
		Unit:             p.Unit,
		Price:            p.Price.InexactFloat64(),
		InStock:          p.InStock,
		MinOrderQuantity: p.MinOrderQuantity,
		Image:            p.Image,
	}
}

func mapProducts(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapCategories(cats []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		groups := make([]ProductGroupResponse, 0, len(cat.Groups))
		for _, g := range cat.Groups {
			groups = append(groups, ProductGroupResponse{
				ID:          g.ID,
				Code:        g.Code,
				Description: g.Description,
				Products:    mapProducts(g.Products),
			})
		}
		out = append(out, CategoryResponse{
			ID:          cat.ID,
			Code:        cat.Code,
			Description: cat.Description,
			Groups:      groups,
		})
	}
	return out
}

func mapCart(c entity.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			Product:  mapProduct(l.Product),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal().InexactFloat64(),
		})
	}
	return CartResponse{
		Lines:      lines,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice().InexactFloat64(),
	}
}

func mapCustomerInfo(dto CustomerInfoDTO) entity.CustomerInfo {
	return entity.CustomerInfo{
		Name:        dto.Name,
		Phone:       dto.Phone,
		CompanyType: dto.CompanyType,
		TINNumber:   dto.TINNumber,
		Email:       dto.Email,
		Address:     dto.Address,
		Notes:       dto.Notes,
	}
}
