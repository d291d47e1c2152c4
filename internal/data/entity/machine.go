package entity

type MachineType string

const (
	MachineTypeUnset  MachineType = ""
	MachineTypeWasher MachineType = "washer"
	MachineTypeDryer  MachineType = "dryer"
)

func (t MachineType) Valid() bool {
	return t == MachineTypeWasher || t == MachineTypeDryer
}

type MachineStatus string

const (
	MachineStatusAvailable   MachineStatus = "available"
	MachineStatusInUse       MachineStatus = "in-use"
	MachineStatusMaintenance MachineStatus = "maintenance"
)

// Machine is a board entry on the home screen. Status is static mock data.
type Machine struct {
	Number           string
	Type             MachineType
	Status           MachineStatus
	MinutesRemaining int
}

func (m Machine) Bookable() bool {
	return m.Status == MachineStatusAvailable
}
