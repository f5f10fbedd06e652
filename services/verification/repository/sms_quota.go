package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/constants"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/database"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

// SmsQuotaRepo keeps per-admin counters of SMS sent on the default
// credentials in Redis
type SmsQuotaRepo struct {
	redisClient *database.RedisClient
}

// NewSmsQuotaRepo creates an SMS quota repository
func NewSmsQuotaRepo(redisClient *database.RedisClient) *SmsQuotaRepo {
	return &SmsQuotaRepo{redisClient: redisClient}
}

// GetSmsCount returns how many SMS the admin's forms have sent
func (r *SmsQuotaRepo) GetSmsCount(ctx context.Context, adminID string) (int64, error) {
	key := fmt.Sprintf(constants.KeySmsCount, adminID)

	val, err := r.redisClient.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, verification.WrapDatabase(fmt.Errorf("failed to get sms count: %w", err))
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, verification.WrapDatabase(fmt.Errorf("failed to parse sms count: %w", err))
	}
	return count, nil
}

// IncrementSmsCount adds one sent SMS to the admin's counter
func (r *SmsQuotaRepo) IncrementSmsCount(ctx context.Context, adminID string) (int64, error) {
	key := fmt.Sprintf(constants.KeySmsCount, adminID)

	count, err := r.redisClient.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, verification.WrapDatabase(fmt.Errorf("failed to increment sms count: %w", err))
	}
	return count, nil
}
