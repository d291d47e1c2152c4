package request

type SelectMachineRequest struct {
	MachineType string `json:"machine_type" validate:"required,oneof=washer dryer"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,numeric,max=2"`
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required"`
}

// PaymentMethod accepts internet-banking, e-wallet, card, and the
// legacy fpx and tng codes.
type SelectPaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=internet-banking e-wallet card fpx tng"`
}

type ReportProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}
