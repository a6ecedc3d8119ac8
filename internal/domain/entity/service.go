package entity

// ServiceGroup agrupa servicios del catálogo (cortes, barvení...).
type ServiceGroup struct {
	ID    string
	Name  string
	Order int
}

// Service es un servicio ofrecido por el salón.
type Service struct {
	ID      string
	GroupID string
	Name    string
	Order   int
}
