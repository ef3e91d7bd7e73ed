package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	domain "zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/metrics"
	"zentrix-api/internal/infrastructure/mq"
	"zentrix-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	publisher      ports.EventPublisher
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	publisher ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		publisher:      publisher,
		mCounter:       mCounter,
		logger:         logger,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Register writes the person and then the account. When the account insert
// fails the person row is deleted again so no orphan is left behind.
func (us *UserService) Register(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	hash, err := us.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	u.State = domain.StateActive

	personID, err := us.userRepository.CreatePerson(ctx, u)
	if err != nil {
		return nil, err
	}

	id, err := us.userRepository.CreateAccount(ctx, personID, u)
	if err != nil {
		us.mCounter.WithLabelValues(metrics.RegistrationRolledBack).Inc()
		if rbErr := us.userRepository.DeletePerson(ctx, personID); rbErr != nil {
			us.logger.Error("registration rollback failed, orphan person left",
				zap.Int64("person_id", personID),
				zap.Error(rbErr),
			)
		}
		return nil, err
	}

	u.ID = id
	u.PersonID = personID

	us.publisher.Publish(mq.NewEvent(
		mq.ActionUserRegistered,
		strconv.FormatInt(int64(id), 10),
		user.ToResponseUser(u),
	))
	us.mCounter.WithLabelValues(metrics.UserRegistered).Inc()

	return &u, nil
}

func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, nil
	}

	us.publishUpdated(uRet)

	return uRet, nil
}

func (us *UserService) SetActive(ctx context.Context, id domain.ID, active bool) (*domain.User, error) {
	state := domain.StateInactive
	if active {
		state = domain.StateActive
	}

	uRet, err := us.userRepository.UpdateState(ctx, id, state)
	if err != nil {
		return nil, fmt.Errorf("set state of user %d: %w", id, err)
	}
	if uRet == nil {
		return nil, nil
	}

	us.publishUpdated(uRet)

	return uRet, nil
}

func (us *UserService) publishUpdated(u *domain.User) {
	us.publisher.Publish(mq.NewEvent(
		mq.ActionUserUpdated,
		strconv.FormatInt(int64(u.ID), 10),
		user.ToResponseUser(*u),
	))
	us.mCounter.WithLabelValues(metrics.UserUpdated).Inc()
}
