package dto

// DTOs for the flat catalog entities: categorías, tallas, patrones y
// colaboradores.

// ─── Categoría ───────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

type CategoriaResponse struct {
	ID          string  `json:"categoria_id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// ─── Talla ───────────────────────────────────────────────────────────────────

type CrearTallaRequest struct {
	NombreTalla string `json:"nombre_talla" validate:"required"`
}

type TallaResponse struct {
	ID          string `json:"talla_id"`
	NombreTalla string `json:"nombre_talla"`
}

// ─── Patrón ──────────────────────────────────────────────────────────────────

type CrearPatronRequest struct {
	CodigoPatron string  `json:"codigo_patron" validate:"required"`
	NombrePatron string  `json:"nombre_patron" validate:"required"`
	Descripcion  *string `json:"descripcion"`
}

type ActualizarPatronRequest struct {
	CodigoPatron *string `json:"codigo_patron"`
	NombrePatron *string `json:"nombre_patron"`
	Descripcion  *string `json:"descripcion"`
}

type PatronResponse struct {
	ID           string  `json:"patron_id"`
	CodigoPatron string  `json:"codigo_patron"`
	NombrePatron string  `json:"nombre_patron"`
	Descripcion  *string `json:"descripcion"`
}

// ─── Colaborador ─────────────────────────────────────────────────────────────

type CrearColaboradorRequest struct {
	Nombre         string  `json:"nombre" validate:"required"`
	Contacto       *string `json:"contacto"`
	DetalleAcuerdo *string `json:"detalle_acuerdo"`
}

type ActualizarColaboradorRequest struct {
	Nombre         *string `json:"nombre"`
	Contacto       *string `json:"contacto"`
	DetalleAcuerdo *string `json:"detalle_acuerdo"`
}

type ColaboradorResponse struct {
	ID             string  `json:"colaborador_id"`
	Nombre         string  `json:"nombre"`
	Contacto       *string `json:"contacto"`
	DetalleAcuerdo *string `json:"detalle_acuerdo"`
}
