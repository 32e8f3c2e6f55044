package employment

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)
