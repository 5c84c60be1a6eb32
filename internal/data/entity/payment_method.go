package entity

type PaymentMethodType string

const (
	PaymentMethodBankTransfer PaymentMethodType = "bank_transfer"
	PaymentMethodCrypto       PaymentMethodType = "crypto"
	PaymentMethodCard         PaymentMethodType = "card"
	PaymentMethodWallet       PaymentMethodType = "wallet"
	PaymentMethodOther        PaymentMethodType = "other"
)

type PaymentMethod struct {
	Base
	Name         string            `db:"name"`
	Type         PaymentMethodType `db:"type"`
	Instructions *string           `db:"instructions"`
	Details      map[string]any    `db:"details"`
	IsActive     bool              `db:"is_active"`
}
