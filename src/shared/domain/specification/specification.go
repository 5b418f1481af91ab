package specification

// Specification representa una consulta ya compilada: texto SQL más sus
// parámetros posicionales, lista para ser ejecutada por un repositorio.
type Specification interface {
	ToSQLQuery() string
	Parameters() []any
}

// OrderingField es un campo de ordenamiento solicitado por el cliente.
type OrderingField struct {
	FieldName string `json:"field_name"`
	Ascending bool   `json:"ascending"`
}

// AllowedOrderingFields mapea los nombres de campo permitidos para ordenar
// hacia su columna calificada en SQL. Cada entidad define su propia tabla;
// cualquier nombre fuera de la tabla se descarta silenciosamente.
type AllowedOrderingFields map[string]string

// Resolve devuelve la columna calificada para un nombre de campo permitido.
func (a AllowedOrderingFields) Resolve(fieldName string) (string, bool) {
	column, ok := a[fieldName]
	return column, ok
}

// Direction traduce el sentido de ordenamiento a su palabra clave SQL.
func Direction(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
