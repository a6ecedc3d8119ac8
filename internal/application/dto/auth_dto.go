package dto

// SetupRequest crea el primer (y único) operador.
type SetupRequest struct {
	Password string `json:"password"`
}

// LoginRequest login mono-usuario: solo contraseña.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest cambio de contraseña verificando la actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SalonSettingsRequest datos del salón.
type SalonSettingsRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	ICO     string `json:"ico"`
	DIC     string `json:"dic"`
}

// SalonSettingsResponse datos del salón.
type SalonSettingsResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	ICO     string `json:"ico"`
	DIC     string `json:"dic"`
}

// ServiceResponse servicio del catálogo.
type ServiceResponse struct {
	ID      string `json:"id"`
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
}

// ServiceGroupResponse grupo de servicios con sus servicios.
type ServiceGroupResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Order    int               `json:"order"`
	Services []ServiceResponse `json:"services"`
}
