package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/mail"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

type fakeRepoMail struct {
	send func(ctx context.Context, msg mail.Message) error
}

func (f *fakeRepoMail) Send(ctx context.Context, msg mail.Message) error {
	if f.send == nil {
		return nil
	}
	return f.send(ctx, msg)
}

type stubConfig struct {
	config.Config

	strings map[string]string
}

func (s *stubConfig) GetString(key string) string {
	return s.strings[key]
}

func newTestUsecase(t *testing.T, repoMail *fakeRepoMail) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return NewNotification(Dependency{
		Config: &stubConfig{strings: map[string]string{
			"modules.notification.support_email": "support@example.com",
			"app.name":                           "GoKart",
		}},
		Clock: clock.Func(func() time.Time {
			return time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)
		}),
		Validator:  v,
		RepoMail:   repoMail,
		Instrument: instrument.NewNoop(),
	})
}

func validInput() ConsumeOTPIssuedInput {
	return ConsumeOTPIssuedInput{
		UserID:    7,
		Recipient: "jane@example.com",
		FullName:  "Jane Smith",
		Code:      "123456",
		Purpose:   "REGISTER",
		ExpiresIn: 600,
	}
}

func TestConsumeOTPIssued(t *testing.T) {
	t.Run("sends the code to the recipient", func(t *testing.T) {
		var sent mail.Message
		repoMail := &fakeRepoMail{send: func(_ context.Context, msg mail.Message) error {
			sent = msg
			return nil
		}}
		uc := newTestUsecase(t, repoMail)

		if err := uc.ConsumeOTPIssued(context.Background(), validInput()); err != nil {
			t.Fatalf("ConsumeOTPIssued() error = %v", err)
		}

		if len(sent.To) != 1 || sent.To[0] != "jane@example.com" {
			t.Fatalf("message to = %v", sent.To)
		}
		if sent.Subject != "Verify your email address" {
			t.Fatalf("subject = %q", sent.Subject)
		}
		for _, want := range []string{"123456", "Jane Smith", "10 minutes", "support@example.com", "GoKart", "2026"} {
			if !strings.Contains(sent.HTMLBody, want) {
				t.Fatalf("body missing %q:\n%s", want, sent.HTMLBody)
			}
		}
	})

	t.Run("purpose picks the subject", func(t *testing.T) {
		subjects := map[string]string{
			"RESET_PASSWORD": "Reset your password",
			"CHANGE_PHONE":   "Confirm your phone number change",
			"CHANGE_EMAIL":   "Confirm your new email address",
		}

		for purpose, wantSubject := range subjects {
			t.Run(purpose, func(t *testing.T) {
				var sent mail.Message
				repoMail := &fakeRepoMail{send: func(_ context.Context, msg mail.Message) error {
					sent = msg
					return nil
				}}
				uc := newTestUsecase(t, repoMail)

				in := validInput()
				in.Purpose = purpose
				if err := uc.ConsumeOTPIssued(context.Background(), in); err != nil {
					t.Fatalf("ConsumeOTPIssued() error = %v", err)
				}

				if sent.Subject != wantSubject {
					t.Fatalf("subject = %q, want %q", sent.Subject, wantSubject)
				}
			})
		}
	})

	t.Run("unknown purpose is dropped without sending", func(t *testing.T) {
		repoMail := &fakeRepoMail{send: func(context.Context, mail.Message) error {
			t.Fatal("email sent for unknown purpose")
			return nil
		}}
		uc := newTestUsecase(t, repoMail)

		in := validInput()
		in.Purpose = "SOMETHING"
		if err := uc.ConsumeOTPIssued(context.Background(), in); err != nil {
			t.Fatalf("ConsumeOTPIssued() error = %v, want nil so the message is not redelivered", err)
		}
	})

	t.Run("malformed payload is dropped without sending", func(t *testing.T) {
		repoMail := &fakeRepoMail{send: func(context.Context, mail.Message) error {
			t.Fatal("email sent for malformed payload")
			return nil
		}}
		uc := newTestUsecase(t, repoMail)

		in := validInput()
		in.Code = "12ab56"
		if err := uc.ConsumeOTPIssued(context.Background(), in); err != nil {
			t.Fatalf("ConsumeOTPIssued() error = %v, want nil so the message is not redelivered", err)
		}
	})

	t.Run("delivery failure is returned for retry", func(t *testing.T) {
		sendErr := errors.New("smtp unavailable")
		repoMail := &fakeRepoMail{send: func(context.Context, mail.Message) error {
			return sendErr
		}}
		uc := newTestUsecase(t, repoMail)

		if err := uc.ConsumeOTPIssued(context.Background(), validInput()); !errors.Is(err, sendErr) {
			t.Fatalf("ConsumeOTPIssued() error = %v, want delivery error", err)
		}
	})
}
