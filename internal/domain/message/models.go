package message

import "time"

type Message struct {
	ID           string     `json:"id"`
	EmployeeCode string     `json:"employeeCode"`
	EmployeeName string     `json:"employeeName,omitempty"`
	Subject      string     `json:"subject"`
	Content      string     `json:"content"`
	IsRead       bool       `json:"isRead"`
	CreatedAt    time.Time  `json:"createdAt"`
	ReadAt       *time.Time `json:"readAt,omitempty"`
}
