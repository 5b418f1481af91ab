package specification

import "strings"

// ParseOrderingFields interpreta el parámetro de ordenamiento tal como llega
// en la query string: "SaleDate:desc,Id:asc". La dirección por defecto es
// descendente cuando no se indica sufijo.
func ParseOrderingFields(raw string) []OrderingField {
	if raw == "" {
		return nil
	}

	var fields []OrderingField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name := part
		ascending := false
		if idx := strings.IndexByte(part, ':'); idx >= 0 {
			name = part[:idx]
			ascending = strings.EqualFold(part[idx+1:], "asc")
		}
		if name == "" {
			continue
		}

		fields = append(fields, OrderingField{FieldName: name, Ascending: ascending})
	}
	return fields
}
