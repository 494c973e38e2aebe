// Package entity contains the core business objects of the project.
package entity

// AccountKind represents the fixed kind an account is registered with.
type AccountKind string

const (
	// AccountKindCreator indicates a content creator account.
	AccountKindCreator AccountKind = "creator"
	// AccountKindAdvertiser indicates an advertiser account.
	AccountKindAdvertiser AccountKind = "advertiser"
)

// String returns the string representation of the AccountKind.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid checks if the AccountKind is a valid value.
func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindCreator, AccountKindAdvertiser:
		return true
	default:
		return false
	}
}
