package entity

import "time"

// Roles válidos para Company. El rol reemplaza al antiguo valor centinela
// "administrator" en la columna plan; EnsureDefaultAdmin todavía reconoce
// filas legacy con ese centinela.
const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

// Planes de suscripción disponibles (deben coincidir con la tabla plans).
const (
	PlanBasic        = "basic"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// Estados válidos para Company.
const (
	CompanyStatusActive  = "active"
	CompanyStatusBlocked = "blocked"
	CompanyStatusPending = "pending"
)

// LegacyAdminPlanSentinel valor histórico de plan que marcaba una fila admin.
const LegacyAdminPlanSentinel = "administrator"

// Company representa un tenant del sistema: una empresa cliente del portal de
// visitas. Las filas con Role=admin son cuentas del área administrativa.
type Company struct {
	ID              string
	CompanyName     string
	ResponsibleName string
	Email           string
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Phone           string
	Plan            string // basic, professional, enterprise
	Status          string // active, blocked, pending
	Role            string // admin, company
	CreatedAt       time.Time
}

// IsActive informa si la empresa puede operar en el portal.
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

// IsAdmin informa si la cuenta pertenece al área administrativa.
// Considera también filas legacy marcadas vía plan centinela.
func (c *Company) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Plan == LegacyAdminPlanSentinel
}
