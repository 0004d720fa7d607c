package game

// RoleProvider reports which side the human-controlled seat wants to play.
// The referee consults it exactly once per StartNewGame; answers other
// than "farmer" keep the dealt landlord.
type RoleProvider interface {
	HumanRole() string
}

// FixedRole is a RoleProvider with a constant answer.
type FixedRole string

func (r FixedRole) HumanRole() string {
	return string(r)
}
