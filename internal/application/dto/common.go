package dto

// Límites de paginación compartidos por todos los listados.
const (
	MaxPage     = 1_000_000
	MaxPageSize = 200
)

// Clamp acota value al rango [min, max].
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NormalizePage acota page a [1, MaxPage] y pageSize a [1, MaxPageSize].
func NormalizePage(page, pageSize int) (int, int) {
	return Clamp(page, 1, MaxPage), Clamp(pageSize, 1, MaxPageSize)
}

// PagedResponse envoltorio estándar de listados paginados.
type PagedResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Items      any   `json:"items"`
}

// NewPagedResponse arma el envoltorio calculando totalPages.
func NewPagedResponse(page, pageSize int, total int64, items any) PagedResponse {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PagedResponse{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		Items:      items,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
