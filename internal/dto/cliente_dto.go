package dto

// ─── Cliente ─────────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"   validate:"required"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"    validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Usuario   string  `json:"usuario"  validate:"required,min=3"`
	Password  string  `json:"password" validate:"required,min=6"`
	EsAdmin   bool    `json:"es_admin"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	EsAdmin   *bool   `json:"es_admin"`
}

type ClienteResponse struct {
	ID        string  `json:"cliente_id"`
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
	Usuario   string  `json:"usuario"`
	EsAdmin   bool    `json:"es_admin"`
}

type ClienteListResponse struct {
	Data   []ClienteResponse `json:"data"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Usuario  string `json:"usuario"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiraEn  int64           `json:"expira_en"` // unix seconds
	Cliente   ClienteResponse `json:"cliente"`
}
