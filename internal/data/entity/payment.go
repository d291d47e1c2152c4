package entity

type PaymentMethod string

const (
	PaymentMethodUnset           PaymentMethod = ""
	PaymentMethodInternetBanking PaymentMethod = "internet-banking"
	PaymentMethodEWallet         PaymentMethod = "e-wallet"
	PaymentMethodCard            PaymentMethod = "card"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodInternetBanking, PaymentMethodEWallet, PaymentMethodCard:
		return true
	}
	return false
}

// legacy codes used by the mobile client
var paymentAliases = map[string]PaymentMethod{
	"fpx": PaymentMethodInternetBanking,
	"tng": PaymentMethodEWallet,
}

// ParsePaymentMethod resolves legacy aliases. Codes are matched exactly;
// anything else comes back as-is so callers can reject it.
func ParsePaymentMethod(code string) PaymentMethod {
	if alias, ok := paymentAliases[code]; ok {
		return alias
	}
	return PaymentMethod(code)
}

type PaymentMethodInfo struct {
	Code  PaymentMethod
	Name  string
	Alias string
}
