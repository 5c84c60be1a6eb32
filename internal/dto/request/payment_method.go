package request

type PaymentMethodRequest struct {
	Name         string         `json:"name" validate:"required,max=100"`
	Type         string         `json:"type" validate:"required,oneof=bank_transfer crypto card wallet other"`
	Instructions *string        `json:"instructions,omitempty" validate:"omitempty,max=2000"`
	Details      map[string]any `json:"details,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
}
