package employee

const (
	StatusActive   = "ACTIVE"
	StatusDisabled = "DISABLED"
)
