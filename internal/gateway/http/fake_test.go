package http

import (
	"context"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
)

// fakeService records the arguments of the last call and returns canned
// results. A non-nil err fails every call.
type fakeService struct {
	err   error
	calls int
	args  []string

	signIn  domain.SignInResult
	respond domain.SignInResult
	refresh domain.AuthenticationResult
	enroll  domain.TOTPEnrollment
}

var _ AuthService = (*fakeService)(nil)

func (f *fakeService) record(args ...string) error {
	f.calls++
	f.args = args
	return f.err
}

func (f *fakeService) SignUp(_ context.Context, email, password string) (domain.SignUpResult, error) {
	if err := f.record(email, password); err != nil {
		return domain.SignUpResult{}, err
	}
	return domain.SignUpResult{UserSub: "sub-123"}, nil
}

func (f *fakeService) SignIn(_ context.Context, email, password string) (domain.SignInResult, error) {
	if err := f.record(email, password); err != nil {
		return domain.SignInResult{}, err
	}
	return f.signIn, nil
}

func (f *fakeService) ConfirmSignUp(_ context.Context, email, code string) (domain.ConfirmSignUpResult, error) {
	return domain.ConfirmSignUpResult{}, f.record(email, code)
}

func (f *fakeService) ResendConfirmationCode(_ context.Context, email string) (domain.CodeDeliveryResult, error) {
	if err := f.record(email); err != nil {
		return domain.CodeDeliveryResult{}, err
	}
	return domain.CodeDeliveryResult{
		CodeDeliveryDetails: &domain.CodeDeliveryDetails{DeliveryMedium: "EMAIL", Destination: "u***@e***"},
	}, nil
}

func (f *fakeService) AssociateSoftwareToken(_ context.Context, accessToken string) (domain.TOTPEnrollment, error) {
	if err := f.record(accessToken); err != nil {
		return domain.TOTPEnrollment{}, err
	}
	return f.enroll, nil
}

func (f *fakeService) VerifySoftwareToken(_ context.Context, accessToken, code string) (domain.VerifyTOTPResult, error) {
	if err := f.record(accessToken, code); err != nil {
		return domain.VerifyTOTPResult{}, err
	}
	return domain.VerifyTOTPResult{Status: "SUCCESS"}, nil
}

func (f *fakeService) EnableMFA(_ context.Context, accessToken string) (domain.MFAPreferenceResult, error) {
	if err := f.record(accessToken); err != nil {
		return domain.MFAPreferenceResult{}, err
	}
	return domain.MFAPreferenceResult{SoftwareTokenMfaEnabled: true}, nil
}

func (f *fakeService) DisableMFA(_ context.Context, accessToken string) (domain.MFAPreferenceResult, error) {
	return domain.MFAPreferenceResult{}, f.record(accessToken)
}

func (f *fakeService) RespondToMFAChallenge(_ context.Context, code, session, email string) (domain.SignInResult, error) {
	if err := f.record(code, session, email); err != nil {
		return domain.SignInResult{}, err
	}
	return f.respond, nil
}

func (f *fakeService) ChangePassword(_ context.Context, accessToken, oldPassword, newPassword string) (domain.Ack, error) {
	return domain.Ack{}, f.record(accessToken, oldPassword, newPassword)
}

func (f *fakeService) ForgotPassword(_ context.Context, email string) (domain.CodeDeliveryResult, error) {
	return domain.CodeDeliveryResult{}, f.record(email)
}

func (f *fakeService) ConfirmForgotPassword(_ context.Context, email, code, newPassword string) (domain.Ack, error) {
	return domain.Ack{}, f.record(email, code, newPassword)
}

func (f *fakeService) RefreshToken(_ context.Context, refreshToken, username string) (domain.AuthenticationResult, error) {
	if err := f.record(refreshToken, username); err != nil {
		return domain.AuthenticationResult{}, err
	}
	return f.refresh, nil
}
