package domain

// UserRole controls access to administrative endpoints.
type UserRole string

const (
	UserRoleVoter UserRole = "voter"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleVoter, UserRoleAdmin:
		return true
	}
	return false
}

// AccountStatus of a registered user.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
)

func (s AccountStatus) String() string { return string(s) }

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusSuspended:
		return true
	}
	return false
}

// ExportFormat selects a results export formatter.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatText ExportFormat = "text"
	ExportFormatJSON ExportFormat = "json"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatCSV, ExportFormatText, ExportFormatJSON:
		return true
	}
	return false
}
