package entity

type OTPPurpose int16

const (
	// OTPPurposeUnknown mean the purpose is not known / not set.
	OTPPurposeUnknown OTPPurpose = 0

	// OTPPurposeRegister mean the code verifies a newly registered email.
	OTPPurposeRegister OTPPurpose = 1

	// OTPPurposeResetPassword mean the code authorizes a password reset.
	OTPPurposeResetPassword OTPPurpose = 2

	// OTPPurposeChangePhone mean the code commits a pending phone number change.
	OTPPurposeChangePhone OTPPurpose = 3

	// OTPPurposeChangeEmail mean the code commits a pending email change.
	OTPPurposeChangeEmail OTPPurpose = 4
)

func OTPPurposeFromString(str string) OTPPurpose {
	switch str {
	case "REGISTER":
		return OTPPurposeRegister
	case "RESET_PASSWORD":
		return OTPPurposeResetPassword
	case "CHANGE_PHONE":
		return OTPPurposeChangePhone
	case "CHANGE_EMAIL":
		return OTPPurposeChangeEmail
	default:
		return OTPPurposeUnknown
	}
}

func (p OTPPurpose) String() string {
	switch p {
	case OTPPurposeRegister:
		return "REGISTER"
	case OTPPurposeResetPassword:
		return "RESET_PASSWORD"
	case OTPPurposeChangePhone:
		return "CHANGE_PHONE"
	case OTPPurposeChangeEmail:
		return "CHANGE_EMAIL"
	default:
		return "UNKNOWN"
	}
}

func (p OTPPurpose) IsUnknown() bool {
	switch p {
	case OTPPurposeRegister, OTPPurposeResetPassword, OTPPurposeChangePhone, OTPPurposeChangeEmail:
		return false
	default:
		return true
	}
}

type Role int16

const (
	RoleUnknown Role = 0
	RoleUser    Role = 1
	RoleAdmin   Role = 2
)

func RoleFromString(str string) Role {
	switch str {
	case "user":
		return RoleUser
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
