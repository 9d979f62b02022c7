package entities

// Account is a tenant (dealership). The username is the tenancy boundary:
// every vehicle, report, expense, deposit and task row carries it, and every
// read/write filters by it.
//
// Storage model (DynamoDB):
//   - PK: username
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	CompanyName  string `json:"company_name"`
	PhoneNumber  string `json:"phone_number"`
}
