package identity_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appidentity "github.com/muhammadheryan/esports-tournament/application/identity"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/constant"
	identitymocks "github.com/muhammadheryan/esports-tournament/mocks/repository/identity"
	redismocks "github.com/muhammadheryan/esports-tournament/mocks/repository/redis"
	smsmocks "github.com/muhammadheryan/esports-tournament/mocks/thirdparty/sms"
	"github.com/muhammadheryan/esports-tournament/model"
	"github.com/muhammadheryan/esports-tournament/repository/memory"
	redisrepo "github.com/muhammadheryan/esports-tournament/repository/redis"
	"github.com/muhammadheryan/esports-tournament/thirdparty/sms"
	cerr "github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPhone = "919876543210"

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		OTP: config.OTPConfig{
			TTL:               5 * time.Minute,
			ResendCooldown:    30 * time.Second,
			MaxVerifyAttempts: 5,
			BcryptCost:        bcrypt.MinCost,
		},
	}
}

func fixedCode() (string, error) {
	return "123456", nil
}

func hashOf(t *testing.T, code string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
func timePtr(t time.Time) *time.Time {
	return &t
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestIdentityApp_IssueCredential(t *testing.T) {
	type fields struct {
		identityRepo *identitymocks.IdentityRepository
		redisRepo    *redismocks.RedisRepository
		sender       *smsmocks.Sender
	}
	type args struct {
		ctx context.Context
		req *model.SendOTPRequest
	}
	tests := []struct {
		name         string
		args         args
		mockCall     func(f fields)
		want         *model.SendOTPResponse
		wantTracking bool
		wantErr      bool
		errCode      constant.ErrorType
	}{
		{
			name: "success: stores hashed code then delivers",
			args: args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: testPhone}},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetNX", mock.Anything, redisrepo.OTPCooldownKey(testPhone), "1", 30*time.Second).
					Return(true, nil).
					Once()
				f.identityRepo.
					On("UpsertCredential", mock.Anything, mock.MatchedBy(func(c *model.CredentialUpdate) bool {
						return c.Phone == testPhone &&
							c.ExpiresAt.Equal(fixedNow.Add(5*time.Minute)) &&
							bcrypt.CompareHashAndPassword([]byte(c.CodeHash), []byte("123456")) == nil
					})).
					Return(nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, redisrepo.OTPAttemptsKey(testPhone)).
					Return(nil).
					Once()
				f.sender.
					On("Send", mock.Anything, mock.MatchedBy(func(m sms.Message) bool {
						return m.Phone == testPhone && m.Code == "123456" && m.TrackingID != ""
					})).
					Return("req-1", nil).
					Once()
			},
			want: &model.SendOTPResponse{RequestID: "req-1"},
		},
		{
			name: "success: falls back to tracking id without provider id",
			args: args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: "+" + testPhone}},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, mock.Anything, "1", mock.Anything).Return(true, nil).Once()
				f.identityRepo.On("UpsertCredential", mock.Anything, mock.Anything).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
				f.sender.On("Send", mock.Anything, mock.Anything).Return("", nil).Once()
			},
			wantTracking: true,
		},
		{
			name: "success: surrounding whitespace is trimmed from phone",
			args: args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: "  " + testPhone + " "}},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, redisrepo.OTPCooldownKey(testPhone), "1", mock.Anything).Return(true, nil).Once()
				f.identityRepo.On("UpsertCredential", mock.Anything, mock.MatchedBy(func(c *model.CredentialUpdate) bool {
					return c.Phone == testPhone
				})).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, redisrepo.OTPAttemptsKey(testPhone)).Return(nil).Once()
				f.sender.On("Send", mock.Anything, mock.MatchedBy(func(m sms.Message) bool {
					return m.Phone == testPhone
				})).Return("req-2", nil).Once()
			},
			want: &model.SendOTPResponse{RequestID: "req-2"},
		},
		{
			name:    "error: missing phone",
			args:    args{ctx: context.Background(), req: &model.SendOTPRequest{}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: malformed phone",
			args:    args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: "12ab"}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: resend cooldown active",
			args: args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: testPhone}},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, redisrepo.OTPCooldownKey(testPhone), "1", mock.Anything).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTooManyRequests,
		},
		{
			name: "error: store failure",
			args: args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: testPhone}},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, mock.Anything, "1", mock.Anything).Return(true, nil).Once()
				f.identityRepo.On("UpsertCredential", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: every channel failed",
			args: args{ctx: context.Background(), req: &model.SendOTPRequest{Phone: testPhone}},
			mockCall: func(f fields) {
				f.redisRepo.On("SetNX", mock.Anything, mock.Anything, "1", mock.Anything).Return(true, nil).Once()
				f.identityRepo.On("UpsertCredential", mock.Anything, mock.Anything).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, redisrepo.OTPAttemptsKey(testPhone)).Return(nil).Once()
				f.sender.On("Send", mock.Anything, mock.Anything).Return("", sms.ErrDeliveryFailed).Once()
				f.redisRepo.On("Delete", mock.Anything, redisrepo.OTPCooldownKey(testPhone)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				identityRepo: identitymocks.NewIdentityRepository(t),
				redisRepo:    redismocks.NewRedisRepository(t),
				sender:       smsmocks.NewSender(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appidentity.NewIdentityApp(testConfig(), f.identityRepo, f.redisRepo, f.sender,
				appidentity.WithClock(func() time.Time { return fixedNow }),
				appidentity.WithCodeGenerator(fixedCode),
			)

			got, err := app.IssueCredential(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("IssueCredential() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if tt.wantTracking {
				if got == nil || got.RequestID == "" {
					t.Fatalf("IssueCredential() = %+v, want tracking id", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("IssueCredential() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIdentityApp_ResendCredential(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository, sender *smsmocks.Sender)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: replaces code of known identity",
			mockCall: func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository, sender *smsmocks.Sender) {
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{Phone: testPhone}, nil).Once()
				redis.On("SetNX", mock.Anything, mock.Anything, "1", mock.Anything).Return(true, nil).Once()
				repo.On("UpdateCredential", mock.Anything, mock.Anything).Return(true, nil).Once()
				redis.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
				sender.On("Send", mock.Anything, mock.Anything).Return("req-2", nil).Once()
			},
		},
		{
			name: "error: unknown identity",
			mockCall: func(repo *identitymocks.IdentityRepository, _ *redismocks.RedisRepository, _ *smsmocks.Sender) {
				repo.On("Get", mock.Anything, testPhone).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrIdentityNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := identitymocks.NewIdentityRepository(t)
			redis := redismocks.NewRedisRepository(t)
			sender := smsmocks.NewSender(t)
			tt.mockCall(repo, redis, sender)

			app := appidentity.NewIdentityApp(testConfig(), repo, redis, sender,
				appidentity.WithClock(func() time.Time { return fixedNow }),
				appidentity.WithCodeGenerator(fixedCode),
			)
			err := app.ResendCredential(context.Background(), &model.SendOTPRequest{Phone: testPhone})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResendCredential() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}
}

func TestIdentityApp_VerifyCredential(t *testing.T) {
	hash := hashOf(t, "123456")
	expires := fixedNow.Add(time.Minute)

	tests := []struct {
		name     string
		req      *model.VerifyOTPRequest
		mockCall func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository)
		want     *model.VerifiedIdentity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: consumes the stored code",
			req:  &model.VerifyOTPRequest{Phone: testPhone, OTP: "123456"},
			mockCall: func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository) {
				redis.On("IncrWithTTL", mock.Anything, redisrepo.OTPAttemptsKey(testPhone), 5*time.Minute).Return(int64(1), nil).Once()
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{
					Phone:        testPhone,
					Name:         strPtr("Ravi"),
					ConsentGiven: true,
					OTPHash:      strPtr(hash),
					OTPExpiresAt: timePtr(expires),
				}, nil).Once()
				repo.On("ConsumeCredential", mock.Anything, testPhone, hash, fixedNow).Return(true, nil).Once()
				redis.On("Delete", mock.Anything, redisrepo.OTPAttemptsKey(testPhone)).Return(nil).Once()
			},
			want: &model.VerifiedIdentity{Phone: testPhone, Name: "Ravi", ConsentGiven: true},
		},
		{
			name: "error: wrong code",
			req:  &model.VerifyOTPRequest{Phone: testPhone, OTP: "654321"},
			mockCall: func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository) {
				redis.On("IncrWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{
					Phone:        testPhone,
					OTPHash:      strPtr(hash),
					OTPExpiresAt: timePtr(expires),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: no stored code",
			req:  &model.VerifyOTPRequest{Phone: testPhone, OTP: "123456"},
			mockCall: func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository) {
				redis.On("IncrWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{Phone: testPhone}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: concurrent verifier consumed it first",
			req:  &model.VerifyOTPRequest{Phone: testPhone, OTP: "123456"},
			mockCall: func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository) {
				redis.On("IncrWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{
					Phone:        testPhone,
					OTPHash:      strPtr(hash),
					OTPExpiresAt: timePtr(expires),
				}, nil).Once()
				repo.On("ConsumeCredential", mock.Anything, testPhone, hash, fixedNow).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: unknown identity",
			req:  &model.VerifyOTPRequest{Phone: testPhone, OTP: "123456"},
			mockCall: func(repo *identitymocks.IdentityRepository, redis *redismocks.RedisRepository) {
				redis.On("IncrWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
				repo.On("Get", mock.Anything, testPhone).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrIdentityNotFound,
		},
		{
			name: "error: attempt budget exhausted",
			req:  &model.VerifyOTPRequest{Phone: testPhone, OTP: "123456"},
			mockCall: func(_ *identitymocks.IdentityRepository, redis *redismocks.RedisRepository) {
				redis.On("IncrWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(6), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTooManyRequests,
		},
		{
			name:    "error: code is not six digits",
			req:     &model.VerifyOTPRequest{Phone: testPhone, OTP: "12a"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := identitymocks.NewIdentityRepository(t)
			redis := redismocks.NewRedisRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo, redis)
			}

			app := appidentity.NewIdentityApp(testConfig(), repo, redis, smsmocks.NewSender(t),
				appidentity.WithClock(func() time.Time { return fixedNow }),
			)
			got, err := app.VerifyCredential(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyCredential() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("VerifyCredential() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestIdentityApp_CredentialLifetime drives the real in-memory store through
// issue and verify around the five minute expiry.
func TestIdentityApp_CredentialLifetime(t *testing.T) {
	issuedAt := fixedNow

	tests := []struct {
		name     string
		verifyAt time.Time
		wantErr  bool
	}{
		{name: "one second before expiry", verifyAt: issuedAt.Add(299 * time.Second)},
		{name: "exactly at expiry", verifyAt: issuedAt.Add(300 * time.Second), wantErr: true},
		{name: "one second after expiry", verifyAt: issuedAt.Add(301 * time.Second), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := issuedAt
			store := memory.NewIdentityStore()
			sender := smsmocks.NewSender(t)
			sender.On("Send", mock.Anything, mock.Anything).Return("req-1", nil).Once()

			app := appidentity.NewIdentityApp(testConfig(), store, redisrepo.NewRepository(), sender,
				appidentity.WithClock(func() time.Time { return now }),
				appidentity.WithCodeGenerator(fixedCode),
			)

			_, err := app.IssueCredential(context.Background(), &model.SendOTPRequest{Phone: testPhone})
			require.NoError(t, err)

			now = tt.verifyAt
			req := &model.VerifyOTPRequest{Phone: testPhone, OTP: "123456"}
			got, err := app.VerifyCredential(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assertErrType(t, err, constant.ErrInvalidCredential)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testPhone, got.Phone)
			require.False(t, got.ConsentGiven)

			// a consumed code cannot be replayed
			_, err = app.VerifyCredential(context.Background(), req)
			require.Error(t, err)
			assertErrType(t, err, constant.ErrInvalidCredential)
		})
	}
}

func TestIdentityApp_RecordConsent(t *testing.T) {
	tests := []struct {
		name       string
		req        *model.ConsentRequest
		mockCall   func(repo *identitymocks.IdentityRepository)
		want       *model.ProfileSnapshot
		wantErr    bool
		errCode    constant.ErrorType
		wantFields int
	}{
		{
			name: "success: records profile",
			req:  &model.ConsentRequest{Phone: testPhone, Name: "Ravi", Age: intPtr(21), Consent: boolPtr(true)},
			mockCall: func(repo *identitymocks.IdentityRepository) {
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{Phone: testPhone}, nil).Once()
				repo.On("UpdateProfile", mock.Anything, &model.ProfileUpdate{
					Phone: testPhone, Name: "Ravi", Age: 21, ConsentGiven: true,
				}).Return(nil).Once()
			},
			want: &model.ProfileSnapshot{Phone: testPhone, Name: "Ravi", Age: 21, ConsentGiven: true},
		},
		{
			name: "success: identical resubmission does not write",
			req:  &model.ConsentRequest{Phone: testPhone, Name: "Ravi", Age: intPtr(21), Consent: boolPtr(true)},
			mockCall: func(repo *identitymocks.IdentityRepository) {
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{
					Phone: testPhone, Name: strPtr("Ravi"), Age: intPtr(21), ConsentGiven: true,
				}, nil).Once()
			},
			want: &model.ProfileSnapshot{Phone: testPhone, Name: "Ravi", Age: 21, ConsentGiven: true},
		},
		{
			name: "success: padded phone and name are stored trimmed",
			req:  &model.ConsentRequest{Phone: " " + testPhone + " ", Name: "  Ravi  ", Age: intPtr(21), Consent: boolPtr(true)},
			mockCall: func(repo *identitymocks.IdentityRepository) {
				repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{Phone: testPhone}, nil).Once()
				repo.On("UpdateProfile", mock.Anything, &model.ProfileUpdate{
					Phone: testPhone, Name: "Ravi", Age: 21, ConsentGiven: true,
				}).Return(nil).Once()
			},
			want: &model.ProfileSnapshot{Phone: testPhone, Name: "Ravi", Age: 21, ConsentGiven: true},
		},
		{
			name:       "error: padding does not count towards name length",
			req:        &model.ConsentRequest{Phone: testPhone, Name: "  a ", Age: intPtr(21), Consent: boolPtr(true)},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
			wantFields: 1,
		},
		{
			name:       "error: every invalid field is listed",
			req:        &model.ConsentRequest{Phone: testPhone, Name: "R", Age: intPtr(12)},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
			wantFields: 3,
		},
		{
			name: "error: identity never issued a code",
			req:  &model.ConsentRequest{Phone: testPhone, Name: "Ravi", Age: intPtr(30), Consent: boolPtr(false)},
			mockCall: func(repo *identitymocks.IdentityRepository) {
				repo.On("Get", mock.Anything, testPhone).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrIdentityNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := identitymocks.NewIdentityRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appidentity.NewIdentityApp(testConfig(), repo, redismocks.NewRedisRepository(t), smsmocks.NewSender(t))

			got, err := app.RecordConsent(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecordConsent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				if tt.wantFields > 0 {
					var ce cerr.CustomError
					errors.As(err, &ce)
					if len(ce.Errors()) != tt.wantFields {
						t.Fatalf("field errors = %v, want %d entries", ce.Errors(), tt.wantFields)
					}
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("RecordConsent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIdentityApp_SetActive(t *testing.T) {
	repo := identitymocks.NewIdentityRepository(t)
	repo.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{Phone: testPhone, IsActive: true}, nil).Once()
	repo.On("SetActive", mock.Anything, testPhone, false).Return(nil).Once()

	app := appidentity.NewIdentityApp(testConfig(), repo, redismocks.NewRedisRepository(t), smsmocks.NewSender(t))
	got, err := app.SetActive(context.Background(), testPhone, false)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestIdentityApp_GetProfile(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		mockCall func(m *identitymocks.IdentityRepository)
		want     *model.Profile
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:  "consented profile",
			phone: testPhone,
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("Get", mock.Anything, testPhone).Return(&model.IdentityEntity{
					Phone:        testPhone,
					Name:         strPtr("Arjun"),
					Age:          intPtr(22),
					ConsentGiven: true,
					IsActive:     true,
					CreatedAt:    fixedNow,
				}, nil).Once()
			},
			want: &model.Profile{
				Phone:        testPhone,
				Name:         "Arjun",
				Age:          intPtr(22),
				ConsentGiven: true,
				IsActive:     true,
				CreatedAt:    fixedNow,
			},
		},
		{
			name:     "invalid phone",
			phone:    "abc",
			mockCall: func(m *identitymocks.IdentityRepository) {},
			wantErr:  true,
			errType:  constant.ErrInvalidRequest,
		},
		{
			name:  "unknown phone",
			phone: testPhone,
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("Get", mock.Anything, testPhone).Return(nil, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrIdentityNotFound,
		},
		{
			name:  "repository failure",
			phone: testPhone,
			mockCall: func(m *identitymocks.IdentityRepository) {
				m.On("Get", mock.Anything, testPhone).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := identitymocks.NewIdentityRepository(t)
			tt.mockCall(repo)

			app := appidentity.NewIdentityApp(testConfig(), repo, redismocks.NewRedisRepository(t), smsmocks.NewSender(t))
			got, err := app.GetProfile(context.Background(), tt.phone)
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
