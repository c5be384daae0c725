package customer

// CreateCustomerRequest carries the fields for creating a customer.
// Password is optional; when absent the customer has no credential and
// password verification always fails.
type CreateCustomerRequest struct {
	Email     string
	FirstName string
	LastName  string
	Password  *string
}

// UpdateCustomerRequest carries the mutable fields for updating a customer.
// Nil fields are left unchanged. Credential fields are not updatable here;
// SetPassword is the only way to change them.
type UpdateCustomerRequest struct {
	Email     *string
	FirstName *string
	LastName  *string
}
