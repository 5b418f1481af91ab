package request

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	domainSpec "sales/src/product/domain/specification"
	shared "sales/src/shared/domain/specification"
)

// ParseListProductsRequest construye el contrato de búsqueda de productos a
// partir de la query string. Los valores ilegibles se reportan como mensajes
// de validación; el ordenamiento inválido no: lo descarta el builder.
func ParseListProductsRequest(values url.Values) (domainSpec.GetProductsSpecificationContract, []string) {
	var contract domainSpec.GetProductsSpecificationContract
	var messages []string

	if raw := values.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			messages = append(messages, "Product ID must be a number.")
		} else {
			contract.ID = &id
		}
	}

	contract.ProductName = values.Get("product_name")

	if raw := values.Get("unit_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			messages = append(messages, "Unit price must be a number.")
		} else {
			contract.UnitPrice = price
		}
	}

	skip, take, pageMessages := parsePagination(values)
	contract.Skip = skip
	contract.Take = take
	messages = append(messages, pageMessages...)

	contract.OrderingFields = shared.ParseOrderingFields(values.Get("order_by"))

	return contract, messages
}

func parsePagination(values url.Values) (*int, *int, []string) {
	var skip, take *int
	var messages []string

	if raw := values.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			messages = append(messages, "Skip must be a non-negative number.")
		} else {
			skip = &n
		}
	}

	if raw := values.Get("take"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			messages = append(messages, "Take must be a positive number.")
		} else {
			take = &n
		}
	}

	return skip, take, messages
}
