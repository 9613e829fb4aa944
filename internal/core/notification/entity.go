package notification

import "time"

// Kind は通知種別のタグです。
type Kind string

const (
	KindPerformanceReview Kind = "performance_review"
	KindVacationRequest   Kind = "vacation_request"
	KindVacationApproval  Kind = "vacation_approval"
	KindNewEmployee       Kind = "new_employee"
	KindCustom            Kind = "custom"
)

// Type は通知種別です。Label は KindCustom の場合のみ意味を持ちます。
type Type struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label,omitempty"`
}

var (
	TypePerformanceReview = Type{Kind: KindPerformanceReview}
	TypeVacationRequest   = Type{Kind: KindVacationRequest}
	TypeVacationApproval  = Type{Kind: KindVacationApproval}
	TypeNewEmployee       = Type{Kind: KindNewEmployee}
)

// Custom は任意ラベルの通知種別を返します。
func Custom(label string) Type {
	return Type{Kind: KindCustom, Label: label}
}

// Notification は通知エンティティです。
type Notification struct {
	ID           string    `json:"id"`
	Type         Type      `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	EmployeeName string    `json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
	IsRead       bool      `json:"is_read"`
}
