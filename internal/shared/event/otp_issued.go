package event

import "github.com/danishfaisall/gokart/internal/pkg/valueobject"

const OTPIssuedDestination string = "otp_issued"
const OTPIssuedConsumerNotification string = "otp_issued_notification"

// OTPIssuedMessage is published whenever a one-time code is issued. The
// notification module delivers the code to Recipient, which is the account
// email except for email changes, where it is the address being claimed.
type OTPIssuedMessage struct {
	UserID    int64               `json:"user_id"`
	Recipient string              `json:"recipient"`
	FullName  string              `json:"full_name"`
	Code      string              `json:"code"`
	Purpose   string              `json:"purpose"`
	ExpiresIn int64               `json:"expires_in_seconds"`
	Metadata  valueobject.JSONMap `json:"metadata,omitempty"`
}
