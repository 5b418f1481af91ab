package request

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"sales/src/sale/domain/entity"
	domainSpec "sales/src/sale/domain/specification"
	shared "sales/src/shared/domain/specification"
)

// ParseListSalesRequest construye el contrato de búsqueda de ventas desde la
// query string. Fechas en RFC 3339 o AAAA-MM-DD.
func ParseListSalesRequest(values url.Values) (domainSpec.GetSalesSpecificationContract, []string) {
	var contract domainSpec.GetSalesSpecificationContract
	var messages []string

	contract.ID = parseID(values, "id", "Sale ID must be a number.", &messages)
	contract.CustomerID = parseID(values, "customer_id", "Customer ID must be a number.", &messages)
	contract.BranchID = parseID(values, "branch_id", "Branch ID must be a number.", &messages)

	contract.SaleDateFrom = parseDate(values, "sale_date_from", "Sale date from is not a valid date.", &messages)
	contract.SaleDateTo = parseDate(values, "sale_date_to", "Sale date to is not a valid date.", &messages)

	if raw := values.Get("sale_status"); raw != "" {
		status := entity.SaleStatus(raw)
		if !status.IsValid() {
			messages = append(messages, "Sale status is not valid.")
		} else {
			contract.SaleStatus = &status
		}
	}

	contract.MinTotalSaleValue = parseDecimal(values, "min_total_sale_value", "Min total sale value must be a number.", &messages)
	contract.MaxTotalSaleValue = parseDecimal(values, "max_total_sale_value", "Max total sale value must be a number.", &messages)

	skip, take, pageMessages := parsePagination(values)
	contract.Skip = skip
	contract.Take = take
	messages = append(messages, pageMessages...)

	contract.OrderingFields = shared.ParseOrderingFields(values.Get("order_by"))

	return contract, messages
}

func parseID(values url.Values, key, message string, messages *[]string) *int64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*messages = append(*messages, message)
		return nil
	}
	return &id
}

func parseDate(values url.Values, key, message string, messages *[]string) *time.Time {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	*messages = append(*messages, message)
	return nil
}

func parseDecimal(values url.Values, key, message string, messages *[]string) *decimal.Decimal {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		*messages = append(*messages, message)
		return nil
	}
	return &d
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
