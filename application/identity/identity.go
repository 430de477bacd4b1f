package identity

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/model"
	identityrepo "github.com/muhammadheryan/esports-tournament/repository/identity"
	redisrepo "github.com/muhammadheryan/esports-tournament/repository/redis"
	"github.com/muhammadheryan/esports-tournament/thirdparty/sms"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	validatorx "github.com/muhammadheryan/esports-tournament/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type IdentityApp interface {
	IssueCredential(ctx context.Context, req *model.SendOTPRequest) (*model.SendOTPResponse, error)
	ResendCredential(ctx context.Context, req *model.SendOTPRequest) error
	VerifyCredential(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifiedIdentity, error)
	RecordConsent(ctx context.Context, req *model.ConsentRequest) (*model.ProfileSnapshot, error)
	GetProfile(ctx context.Context, phone string) (*model.Profile, error)
	SetActive(ctx context.Context, phone string, active bool) (*model.Profile, error)
}

type IdentityAppImpl struct {
	config       *config.Config
	identityRepo identityrepo.IdentityRepository
	redisRepo    redisrepo.Repository
	sender       sms.Sender
	now          func() time.Time
	generateCode func() (string, error)
}

type Option func(*IdentityAppImpl)

// WithClock replaces the wall clock used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(s *IdentityAppImpl) {
		s.now = now
	}
}

// WithCodeGenerator replaces the random one-time code source.
func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *IdentityAppImpl) {
		s.generateCode = gen
	}
}

func NewIdentityApp(config *config.Config, identityRepo identityrepo.IdentityRepository, redisRepo redisrepo.Repository, sender sms.Sender, opts ...Option) IdentityApp {
	s := &IdentityAppImpl{
		config:       config,
		identityRepo: identityRepo,
		redisRepo:    redisRepo,
		sender:       sender,
		now:          func() time.Time { return time.Now().UTC() },
		generateCode: GenerateCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCode returns a uniformly random six digit code in [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func (s *IdentityAppImpl) IssueCredential(ctx context.Context, req *model.SendOTPRequest) (*model.SendOTPResponse, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.NewValidationError(validatorx.Messages(err))
	}

	requestID, err := s.issue(ctx, "IssueCredential", req.Phone, true)
	if err != nil {
		return nil, err
	}
	return &model.SendOTPResponse{RequestID: requestID}, nil
}

func (s *IdentityAppImpl) ResendCredential(ctx context.Context, req *model.SendOTPRequest) error {
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.NewValidationError(validatorx.Messages(err))
	}

	existing, err := s.identityRepo.Get(ctx, req.Phone)
	if err != nil {
		logger.Error("[ResendCredential] err identityRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrIdentityNotFound)
	}

	_, err = s.issue(ctx, "ResendCredential", req.Phone, false)
	return err
}

// issue stores a fresh code for phone and hands it to the sender. The code is
// persisted first, so it stays verifiable whatever the delivery outcome.
func (s *IdentityAppImpl) issue(ctx context.Context, op, phone string, create bool) (string, error) {
	cooldownKey := redisrepo.OTPCooldownKey(phone)
	allowed, err := s.redisRepo.SetNX(ctx, cooldownKey, "1", s.config.OTP.ResendCooldown)
	if err != nil {
		logger.Warn("["+op+"] err redisRepo.SetNX", zap.String("error", err.Error()))
		allowed = true
	}
	if !allowed {
		return "", errors.SetCustomError(constant.ErrTooManyRequests)
	}

	code, err := s.generateCode()
	if err != nil {
		logger.Error("["+op+"] err generateCode", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.bcryptCost())
	if err != nil {
		logger.Error("["+op+"] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	cred := &model.CredentialUpdate{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: s.now().Add(s.config.OTP.TTL),
	}
	if create {
		err = s.identityRepo.UpsertCredential(ctx, cred)
	} else {
		var found bool
		found, err = s.identityRepo.UpdateCredential(ctx, cred)
		if err == nil && !found {
			return "", errors.SetCustomError(constant.ErrIdentityNotFound)
		}
	}
	if err != nil {
		logger.Error("["+op+"] err identityRepo store credential", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	// a new code gets a fresh attempt budget
	if err := s.redisRepo.Delete(ctx, redisrepo.OTPAttemptsKey(phone)); err != nil {
		logger.Warn("["+op+"] err redisRepo.Delete attempts", zap.String("error", err.Error()))
	}

	trackingID := uuid.NewString()
	requestID, err := s.sender.Send(ctx, sms.Message{
		Phone:      phone,
		Code:       code,
		TrackingID: trackingID,
		ExpiresAt:  cred.ExpiresAt,
	})
	if err != nil {
		logger.Error("["+op+"] err sender.Send", zap.String("tracking_id", trackingID), zap.String("error", err.Error()))
		// let the caller retry right away
		if err := s.redisRepo.Delete(ctx, cooldownKey); err != nil {
			logger.Warn("["+op+"] err redisRepo.Delete cooldown", zap.String("error", err.Error()))
		}
		return "", errors.SetCustomError(constant.ErrGateway)
	}

	if requestID == "" {
		requestID = trackingID
	}
	return requestID, nil
}

func (s *IdentityAppImpl) VerifyCredential(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifiedIdentity, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.OTP = strings.TrimSpace(req.OTP)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.NewValidationError(validatorx.Messages(err))
	}

	attemptsKey := redisrepo.OTPAttemptsKey(req.Phone)
	attempts, err := s.redisRepo.IncrWithTTL(ctx, attemptsKey, s.config.OTP.TTL)
	if err != nil {
		logger.Warn("[VerifyCredential] err redisRepo.IncrWithTTL", zap.String("error", err.Error()))
	}
	if limit := s.config.OTP.MaxVerifyAttempts; limit > 0 && attempts > int64(limit) {
		return nil, errors.SetCustomError(constant.ErrTooManyRequests)
	}

	entity, err := s.identityRepo.Get(ctx, req.Phone)
	if err != nil {
		logger.Error("[VerifyCredential] err identityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrIdentityNotFound)
	}

	now := s.now()
	if !entity.HasCredential() || entity.CredentialExpired(now) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*entity.OTPHash), []byte(req.OTP)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	// only one verifier can clear a given hash
	consumed, err := s.identityRepo.ConsumeCredential(ctx, req.Phone, *entity.OTPHash, now)
	if err != nil {
		logger.Error("[VerifyCredential] err identityRepo.ConsumeCredential", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !consumed {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	if err := s.redisRepo.Delete(ctx, attemptsKey); err != nil {
		logger.Warn("[VerifyCredential] err redisRepo.Delete attempts", zap.String("error", err.Error()))
	}

	verified := &model.VerifiedIdentity{
		Phone:        entity.Phone,
		ConsentGiven: entity.ConsentGiven,
	}
	if entity.Name != nil {
		verified.Name = *entity.Name
	}
	return verified, nil
}

func (s *IdentityAppImpl) RecordConsent(ctx context.Context, req *model.ConsentRequest) (*model.ProfileSnapshot, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.Name = strings.TrimSpace(req.Name)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.NewValidationError(validatorx.Messages(err))
	}

	entity, err := s.identityRepo.Get(ctx, req.Phone)
	if err != nil {
		logger.Error("[RecordConsent] err identityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrIdentityNotFound)
	}

	snapshot := &model.ProfileSnapshot{
		Phone:        req.Phone,
		Name:         req.Name,
		Age:          *req.Age,
		ConsentGiven: *req.Consent,
	}

	unchanged := entity.Name != nil && *entity.Name == snapshot.Name &&
		entity.Age != nil && *entity.Age == snapshot.Age &&
		entity.ConsentGiven == snapshot.ConsentGiven
	if unchanged {
		return snapshot, nil
	}

	err = s.identityRepo.UpdateProfile(ctx, &model.ProfileUpdate{
		Phone:        snapshot.Phone,
		Name:         snapshot.Name,
		Age:          snapshot.Age,
		ConsentGiven: snapshot.ConsentGiven,
	})
	if err != nil {
		logger.Error("[RecordConsent] err identityRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return snapshot, nil
}

func (s *IdentityAppImpl) GetProfile(ctx context.Context, phone string) (*model.Profile, error) {
	phone = strings.TrimSpace(phone)
	if err := validatorx.ValidateStruct(&model.SendOTPRequest{Phone: phone}); err != nil {
		return nil, errors.NewValidationError(validatorx.Messages(err))
	}

	entity, err := s.identityRepo.Get(ctx, phone)
	if err != nil {
		logger.Error("[GetProfile] err identityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrIdentityNotFound)
	}

	profile := entity.Profile()
	return &profile, nil
}

func (s *IdentityAppImpl) SetActive(ctx context.Context, phone string, active bool) (*model.Profile, error) {
	entity, err := s.identityRepo.Get(ctx, phone)
	if err != nil {
		logger.Error("[SetActive] err identityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrIdentityNotFound)
	}

	if entity.IsActive != active {
		if err := s.identityRepo.SetActive(ctx, phone, active); err != nil {
			logger.Error("[SetActive] err identityRepo.SetActive", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		entity.IsActive = active
	}

	profile := entity.Profile()
	return &profile, nil
}

func (s *IdentityAppImpl) bcryptCost() int {
	if c := s.config.OTP.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
		return c
	}
	return bcrypt.DefaultCost
}
