package employee

import "time"

type Employee struct {
	Code        string     `json:"code"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Mobile      string     `json:"mobile"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Roles       []string   `json:"roles"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type UpdateParams struct {
	FirstName    string
	LastName     string
	Mobile       string
	DateOfBirth  *time.Time
	PasswordHash string
}
