package service

import (
	"context"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// fakeProvider records the last input of every call and returns canned
// outputs. A non-nil err fails every call.
type fakeProvider struct {
	err error

	signUpIn     *cip.SignUpInput
	initiateIn   *cip.InitiateAuthInput
	confirmIn    *cip.ConfirmSignUpInput
	resendIn     *cip.ResendConfirmationCodeInput
	associateIn  *cip.AssociateSoftwareTokenInput
	verifyIn     *cip.VerifySoftwareTokenInput
	mfaPrefIn    *cip.SetUserMFAPreferenceInput
	respondIn    *cip.RespondToAuthChallengeInput
	changePwIn   *cip.ChangePasswordInput
	forgotIn     *cip.ForgotPasswordInput
	confirmPwdIn *cip.ConfirmForgotPasswordInput

	signUpOut    cip.SignUpOutput
	initiateOut  cip.InitiateAuthOutput
	confirmOut   cip.ConfirmSignUpOutput
	resendOut    cip.ResendConfirmationCodeOutput
	associateOut cip.AssociateSoftwareTokenOutput
	verifyOut    cip.VerifySoftwareTokenOutput
	respondOut   cip.RespondToAuthChallengeOutput
	forgotOut    cip.ForgotPasswordOutput
}

var _ IdentityProvider = (*fakeProvider)(nil)

func (f *fakeProvider) SignUp(_ context.Context, in *cip.SignUpInput, _ ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	f.signUpIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.signUpOut, nil
}

func (f *fakeProvider) InitiateAuth(_ context.Context, in *cip.InitiateAuthInput, _ ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	f.initiateIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.initiateOut, nil
}

func (f *fakeProvider) ConfirmSignUp(_ context.Context, in *cip.ConfirmSignUpInput, _ ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error) {
	f.confirmIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.confirmOut, nil
}

func (f *fakeProvider) ResendConfirmationCode(_ context.Context, in *cip.ResendConfirmationCodeInput, _ ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error) {
	f.resendIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.resendOut, nil
}

func (f *fakeProvider) AssociateSoftwareToken(_ context.Context, in *cip.AssociateSoftwareTokenInput, _ ...func(*cip.Options)) (*cip.AssociateSoftwareTokenOutput, error) {
	f.associateIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.associateOut, nil
}

func (f *fakeProvider) VerifySoftwareToken(_ context.Context, in *cip.VerifySoftwareTokenInput, _ ...func(*cip.Options)) (*cip.VerifySoftwareTokenOutput, error) {
	f.verifyIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.verifyOut, nil
}

func (f *fakeProvider) SetUserMFAPreference(_ context.Context, in *cip.SetUserMFAPreferenceInput, _ ...func(*cip.Options)) (*cip.SetUserMFAPreferenceOutput, error) {
	f.mfaPrefIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &cip.SetUserMFAPreferenceOutput{}, nil
}

func (f *fakeProvider) RespondToAuthChallenge(_ context.Context, in *cip.RespondToAuthChallengeInput, _ ...func(*cip.Options)) (*cip.RespondToAuthChallengeOutput, error) {
	f.respondIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.respondOut, nil
}

func (f *fakeProvider) ChangePassword(_ context.Context, in *cip.ChangePasswordInput, _ ...func(*cip.Options)) (*cip.ChangePasswordOutput, error) {
	f.changePwIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &cip.ChangePasswordOutput{}, nil
}

func (f *fakeProvider) ForgotPassword(_ context.Context, in *cip.ForgotPasswordInput, _ ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error) {
	f.forgotIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &f.forgotOut, nil
}

func (f *fakeProvider) ConfirmForgotPassword(_ context.Context, in *cip.ConfirmForgotPasswordInput, _ ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error) {
	f.confirmPwdIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &cip.ConfirmForgotPasswordOutput{}, nil
}
