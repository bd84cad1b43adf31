package domain

// Role aktor yang dikenal engine.
const (
	RoleIntern = "intern"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// ActorContext adalah identitas eksplisit pemanggil yang dioper ke setiap
// operasi engine. Engine tidak pernah membaca state global/ambient; semua
// keputusan otorisasi berangkat dari struct ini.
type ActorContext struct {
	UserID       uint
	Role         string
	InternshipID uint // 0 untuk mentor/admin yang beroperasi lintas internship
}

func (a ActorContext) IsIntern() bool { return a.Role == RoleIntern }
func (a ActorContext) IsMentor() bool { return a.Role == RoleMentor }
func (a ActorContext) IsAdmin() bool  { return a.Role == RoleAdmin }
