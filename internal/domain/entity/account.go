package entity

// AccountStatus is the lifecycle state of an account.
// New accounts start PENDING and become ACTIVE after email certification.
type AccountStatus string

const (
	AccountPending AccountStatus = "PENDING"
	AccountActive  AccountStatus = "ACTIVE"
)

// Account is the aggregate root for the account domain.
// CertificationCode is assigned once at creation and never reissued here.
type Account struct {
	ID                string
	Email             string
	Nickname          string
	Address           string
	CertificationCode string
	Status            AccountStatus
	LastLoginAt       *int64 // millis; nil until first login
}

// NewAccount builds a PENDING account with the given certification code.
// The ID is assigned by the repository on first save.
func NewAccount(email, nickname, address, certificationCode string) *Account {
	return &Account{
		Email:             email,
		Nickname:          nickname,
		Address:           address,
		CertificationCode: certificationCode,
		Status:            AccountPending,
	}
}

// UpdateProfile overwrites the mutable display fields. Status,
// certification code and last login are untouched.
func (a *Account) UpdateProfile(nickname, address string) {
	a.Nickname = nickname
	a.Address = address
}

// Login stamps the last login time in epoch millis.
func (a *Account) Login(nowMillis int64) {
	t := nowMillis
	a.LastLoginAt = &t
}

// Verify compares the supplied code against the stored certification code
// and activates the account on an exact match. A mismatch reports ok=false
// and leaves the status unchanged. Verifying an already ACTIVE account with
// the correct code is a no-op.
func (a *Account) Verify(certificationCode string) (ok bool) {
	if a.CertificationCode != certificationCode {
		return false
	}
	a.Status = AccountActive
	return true
}
