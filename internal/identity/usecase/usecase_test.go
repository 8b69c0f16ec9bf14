package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/idempotency"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
	"github.com/danishfaisall/gokart/internal/pkg/otpcode"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

var testNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

const testOTPCode = "123456"

type fakeRepoDB struct {
	getUserByEmail        func(ctx context.Context, email string) (*entity.User, error)
	getUserByID           func(ctx context.Context, id int64) (*entity.User, error)
	createUser            func(ctx context.Context, user entity.NewUser) error
	setOTP                func(ctx context.Context, userID int64, otp entity.OTPState) error
	consumeOTPRegister    func(ctx context.Context, userID int64) error
	consumeOTP            func(ctx context.Context, userID int64) error
	consumeOTPChangePhone func(ctx context.Context, userID int64, phone string) error
	consumeOTPChangeEmail func(ctx context.Context, userID int64, email string) error
	updatePassword        func(ctx context.Context, userID int64, hash string) error
	updateProfile         func(ctx context.Context, id int64, fullName string) error
	updateAvatar          func(ctx context.Context, id int64, avatarURL string) error
}

func (f *fakeRepoDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.getUserByEmail == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getUserByEmail(ctx, email)
}

func (f *fakeRepoDB) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.getUserByID == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getUserByID(ctx, id)
}

func (f *fakeRepoDB) CreateUser(ctx context.Context, user entity.NewUser) error {
	if f.createUser == nil {
		return nil
	}
	return f.createUser(ctx, user)
}

func (f *fakeRepoDB) SetOTP(ctx context.Context, userID int64, otp entity.OTPState) error {
	if f.setOTP == nil {
		return nil
	}
	return f.setOTP(ctx, userID, otp)
}

func (f *fakeRepoDB) ConsumeOTPRegister(ctx context.Context, userID int64) error {
	if f.consumeOTPRegister == nil {
		return nil
	}
	return f.consumeOTPRegister(ctx, userID)
}

func (f *fakeRepoDB) ConsumeOTP(ctx context.Context, userID int64) error {
	if f.consumeOTP == nil {
		return nil
	}
	return f.consumeOTP(ctx, userID)
}

func (f *fakeRepoDB) ConsumeOTPChangePhone(ctx context.Context, userID int64, phone string) error {
	if f.consumeOTPChangePhone == nil {
		return nil
	}
	return f.consumeOTPChangePhone(ctx, userID, phone)
}

func (f *fakeRepoDB) ConsumeOTPChangeEmail(ctx context.Context, userID int64, email string) error {
	if f.consumeOTPChangeEmail == nil {
		return nil
	}
	return f.consumeOTPChangeEmail(ctx, userID, email)
}

func (f *fakeRepoDB) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	if f.updatePassword == nil {
		return nil
	}
	return f.updatePassword(ctx, userID, hash)
}

func (f *fakeRepoDB) UpdateProfile(ctx context.Context, id int64, fullName string) error {
	if f.updateProfile == nil {
		return nil
	}
	return f.updateProfile(ctx, id, fullName)
}

func (f *fakeRepoDB) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	if f.updateAvatar == nil {
		return nil
	}
	return f.updateAvatar(ctx, id, avatarURL)
}

type fakeMessaging struct {
	publishOTPIssued func(ctx context.Context, msg OTPIssuedEvent) error
}

func (f *fakeMessaging) PublishOTPIssued(ctx context.Context, msg OTPIssuedEvent) error {
	if f.publishOTPIssued == nil {
		return nil
	}
	return f.publishOTPIssued(ctx, msg)
}

// stubHasher fakes bcrypt with a reversible marker so tests can seed stored
// hashes with plain strings.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) ([]byte, error) {
	return []byte("hashed:" + plaintext), nil
}

func (stubHasher) Verify(hashed, plaintext string) bool {
	return hashed == "hashed:"+plaintext
}

type stubJWT struct {
	generate       func(uid int64, email, role string) (string, error)
	generateScoped func(uid int64, email, scope string, ttl time.Duration) (string, error)
	verify         func(tokenStr string) (jwt.Claims, error)
}

func (s *stubJWT) Generate(uid int64, email, role string) (string, error) {
	if s.generate == nil {
		return "access-token", nil
	}
	return s.generate(uid, email, role)
}

func (s *stubJWT) GenerateScoped(uid int64, email, scope string, ttl time.Duration) (string, error) {
	if s.generateScoped == nil {
		return "scoped-token", nil
	}
	return s.generateScoped(uid, email, scope, ttl)
}

func (s *stubJWT) Verify(tokenStr string) (jwt.Claims, error) {
	if s.verify == nil {
		return jwt.Claims{}, errors.New("verify not configured")
	}
	return s.verify(tokenStr)
}

type stubIdempotency struct {
	idempotency.Idempotency

	exec func(ctx context.Context, key string, fn func(context.Context) error, opts ...idempotency.Option) error
}

func (s *stubIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...idempotency.Option) error {
	if s.exec == nil {
		return fn(ctx)
	}
	return s.exec(ctx, key, fn, opts...)
}

type stubStorage struct {
	storage.Storage

	putObject    func(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error)
	deleteObject func(ctx context.Context, bucket, key string) error
}

func (s *stubStorage) PutObject(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	if s.putObject == nil {
		return storage.ObjectInfo{}, nil
	}
	return s.putObject(ctx, bucket, key, r, opts)
}

func (s *stubStorage) DeleteObject(ctx context.Context, bucket, key string) error {
	if s.deleteObject == nil {
		return nil
	}
	return s.deleteObject(ctx, bucket, key)
}

type stubConfig struct {
	config.Config

	strings map[string]string
	int64s  map[string]int64
	minutes map[string]time.Duration
}

func (s *stubConfig) GetString(key string) string {
	return s.strings[key]
}

func (s *stubConfig) GetInt64(key string) int64 {
	return s.int64s[key]
}

func (s *stubConfig) GetMinute(key string) time.Duration {
	return s.minutes[key]
}

type stubNumberID int64

func (s stubNumberID) Generate() int64 { return int64(s) }

type stubStringID string

func (s stubStringID) Generate() string { return string(s) }

type testDeps struct {
	db      *fakeRepoDB
	msg     *fakeMessaging
	jwt     *stubJWT
	idemp   *stubIdempotency
	storage *stubStorage
	cfg     *stubConfig
}

func newTestDeps() *testDeps {
	return &testDeps{
		db:      &fakeRepoDB{},
		msg:     &fakeMessaging{},
		jwt:     &stubJWT{},
		idemp:   &stubIdempotency{},
		storage: &stubStorage{},
		cfg: &stubConfig{
			strings: map[string]string{
				"modules.identity.avatar_bucket":   "avatars",
				"modules.identity.avatar_base_url": "https://cdn.example.com/avatars",
			},
			int64s: map[string]int64{
				"modules.identity.avatar_max_size_bytes": 1 << 20,
			},
			minutes: map[string]time.Duration{
				"modules.identity.otp_ttl_minutes":         10 * time.Minute,
				"modules.identity.reset_token_ttl_minutes": 15 * time.Minute,
			},
		},
	}
}

func newTestUsecase(t *testing.T, d *testDeps) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return New(Dependency{
		RepoDB:        d.db,
		RepoMessaging: d.msg,
		Idempotency:   d.idemp,
		Validator:     v,
		Config:        d.cfg,
		Storage:       d.storage,
		Bcrypt:        stubHasher{},
		OTP:           otpcode.Func(func() (string, error) { return testOTPCode, nil }),
		UID:           stubNumberID(99),
		UUID:          stubStringID("uuid-1"),
		Clock:         clock.Func(func() time.Time { return testNow }),
		JWT:           d.jwt,
		Instrument:    instrument.NewNoop(),
	})
}

func authedContext(userID int64, email string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:    userID,
		UserEmail: email,
		Role:      entity.RoleUser.String(),
		Scope:     jwt.ScopeSession,
	})
}

func verifiedUser() *entity.User {
	return &entity.User{
		ID:         7,
		Email:      "jane@example.com",
		FullName:   "Jane Smith",
		Phone:      "628111222333",
		Password:   "hashed:correct-password",
		Role:       entity.RoleUser,
		IsVerified: true,
	}
}

func assertBusinessError(t *testing.T, err error, wantMsg string, wantCode goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *goerror.Error", err)
	}
	if gerr.Msg() != wantMsg {
		t.Fatalf("error message = %q, want %q", gerr.Msg(), wantMsg)
	}
	if gerr.Code() != wantCode {
		t.Fatalf("error code = %v, want %v", gerr.Code(), wantCode)
	}
}

func assertInvalidInput(t *testing.T, err error) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *goerror.Error", err)
	}
	if gerr.Code() != goerror.CodeInvalidInput {
		t.Fatalf("error code = %v, want %v", gerr.Code(), goerror.CodeInvalidInput)
	}
}
