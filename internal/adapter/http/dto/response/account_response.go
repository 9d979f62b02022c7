package response

import "dealcost/internal/domain/entities"

// AccountResponse never carries the password hash.
type AccountResponse struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	PhoneNumber string `json:"phone_number"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		Username:    a.Username,
		Email:       a.Email,
		CompanyName: a.CompanyName,
		PhoneNumber: a.PhoneNumber,
	}
}
