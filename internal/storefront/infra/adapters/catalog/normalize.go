package catalog

import (
	"fmt"
	"strconv"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

// unitNames maps the upstream unit-of-measure codes to display labels.
var unitNames = map[int64]string{
	1: "kg",
	2: "pcs",
	3: "meter",
	4: "roll",
	5: "liter",
	6: "box",
	7: "bag",
}

func unitName(code int64) string {
	if name, ok := unitNames[code]; ok {
		return name
	}
	return "unit"
}

// normalizeCategories converts the coerced wire tree into display-ready
// records. Items with is_active != 1 are not eligible for display or cart
// and are dropped here.
func normalizeCategories(data []wireCategory) []entity.Category {
	cats := make([]entity.Category, 0, len(data))
	for _, wc := range data {
		cat := entity.Category{
			ID:          strconv.FormatInt(int64(wc.ID), 10),
			Code:        wc.Code,
			Description: wc.Description,
			Groups:      make([]entity.ProductGroup, 0, len(wc.Groups)),
		}
		for _, wg := range wc.Groups {
			group := entity.ProductGroup{
				ID:          strconv.FormatInt(int64(wg.ID), 10),
				Code:        wg.Code,
				Description: wg.Description,
			}
			for _, wi := range wg.Items {
				if wi.IsActive != 1 {
					continue
				}
				group.Products = append(group.Products, normalizeItem(wi, wc, wg))
			}
			cat.Groups = append(cat.Groups, group)
		}
		cats = append(cats, cat)
	}
	return cats
}

func normalizeItem(wi wireItem, wc wireCategory, wg wireGroup) entity.Product {
	price := wi.WAC.Decimal
	if price.IsNegative() {
		price = price.Neg()
	}
	return entity.Product{
		ID:               strconv.FormatInt(int64(wi.ID), 10),
		ItemID:           int64(wi.ID),
		Name:             wi.Description,
		Category:         wc.Description,
		Description:      fmt.Sprintf("%s - %s", wc.Description, wg.Description),
		Unit:             unitName(int64(wi.UnitOfMeasure)),
		Price:            price,
		InStock:          nonNegative(int(wi.Stock)),
		MinOrderQuantity: 1,
		Image:            firstImage(wi.Images, wg.Images, wc.Images),
	}
}

// firstImage walks item, then group, then category images and returns the
// first available path. Empty when none exist; the UI has its own fallback.
func firstImage(sets ...[]wireImage) string {
	for _, set := range sets {
		for _, img := range set {
			if img.Path != "" {
				return img.Path
			}
		}
	}
	return ""
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// FlattenProducts collects every product in the tree into a single list,
// preserving category and group order.
func FlattenProducts(cats []entity.Category) []entity.Product {
	var out []entity.Product
	for _, cat := range cats {
		for _, group := range cat.Groups {
			out = append(out, group.Products...)
		}
	}
	return out
}
