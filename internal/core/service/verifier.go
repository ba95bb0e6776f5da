package service

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// SentinelCode is the only code the default verifier accepts.
const SentinelCode = "123456"

// CodeVerifier decides whether a confirmation code is good for an address.
type CodeVerifier interface {
	Verify(emailOrUsername, code string) bool
}

// SentinelVerifier accepts exactly one fixed code. No code is ever generated.
type SentinelVerifier struct {
	Code string
}

func (v SentinelVerifier) Verify(_ string, code string) bool {
	return code == v.Code
}

// TOTPVerifier checks codes against a shared TOTP secret, for running the
// mock against an authenticator app.
type TOTPVerifier struct {
	Secret string
	Now    func() time.Time
}

func (v TOTPVerifier) Verify(_ string, code string) bool {
	if v.Secret == "" || code == "" {
		return false
	}

	ok, err := totp.ValidateCustom(code, v.Secret, nowUTC(v.Now), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
