package model

// Role distinguishes customers from back-office staff.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a customer or admin profile. Orders reference users by Phone1.
type User struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BirthDate        string `json:"birthDate"`
	Phone1           string `json:"phone1"`
	Phone2           string `json:"phone2,omitempty"`
	Email            string `json:"email"`
	Wilaya           string `json:"wilaya"`
	Baladyia         string `json:"baladyia"`
	Address          string `json:"address"`
	CCPNumber        string `json:"ccpNumber"`
	CCPKey           string `json:"ccpKey"`
	NIN              string `json:"nin"`
	NINExpiry        string `json:"ninExpiry"`
	Role             Role   `json:"role,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
	LastLoginDate    string `json:"lastLoginDate,omitempty"`
	IDCardFront      string `json:"idCardFront,omitempty"`
	IDCardBack       string `json:"idCardBack,omitempty"`
	ChequeImage      string `json:"chequeImage,omitempty"`
	AccountStatement string `json:"accountStatement,omitempty"`
	PasswordHash     string `json:"passwordHash,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user may use the back office.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
