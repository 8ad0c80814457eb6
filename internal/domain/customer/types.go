package customer

import "errors"

var ErrInvalidContractType = errors.New("invalid contract type")

// ContractType distinguishes one-off "spot" bookings from recurring
// contract customers.
type ContractType string

const (
	ContractTypeSpot     ContractType = "spot"
	ContractTypeContract ContractType = "contract"
)

func (t ContractType) String() string {
	return string(t)
}

func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeSpot, ContractTypeContract:
		return true
	default:
		return false
	}
}
