package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/hashing"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/otp"
	"github.com/opengovsg/FormSG-sub009/services/verification"
	"github.com/opengovsg/FormSG-sub009/services/verification/mocks"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() *models.Config {
	return &models.Config{
		Verification: models.VerificationConfig{
			Enabled:             true,
			TransactionLifetime: 4 * time.Hour,
			OtpLifetime:         10 * time.Minute,
			MinWaitBetweenOtp:   30 * time.Second,
			MaxRetries:          4,
			DeliveryTimeout:     5 * time.Second,
			SmsQuota:            3,
		},
	}
}

type testHarness struct {
	uc        *VerificationUC
	clock     *testClock
	formRepo  *mocks.MockFormRepo
	quotaRepo *mocks.MockSmsQuotaRepo
	gw        *mocks.MockVerificationGW
	hasher    *hashing.Hasher
}

func newHarness(t *testing.T, txnRepo verification.TransactionRepo) *testHarness {
	ctrl := gomock.NewController(t)
	clock := newTestClock()
	h := &testHarness{
		clock:     clock,
		formRepo:  mocks.NewMockFormRepo(ctrl),
		quotaRepo: mocks.NewMockSmsQuotaRepo(ctrl),
		gw:        mocks.NewMockVerificationGW(ctrl),
		hasher:    hashing.NewHasher(bcrypt.MinCost, 2),
	}
	h.uc = NewVerificationUC(testConfig(), txnRepo, h.formRepo, h.quotaRepo, h.gw, h.hasher, otp.NewGenerator(h.hasher))
	h.uc.now = clock.Now
	h.uc.factory.now = clock.Now
	return h
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func emailForm() *models.Form {
	return &models.Form{
		ID:      "form-1",
		AdminID: "admin-1",
		FormFields: []models.FormField{
			{ID: "field-email", FieldType: models.FieldTypeEmail, IsVerifiable: true},
			{ID: "field-number", FieldType: models.FieldTypeNumber, IsVerifiable: true},
		},
	}
}

func mobileForm() *models.Form {
	return &models.Form{
		ID:      "form-1",
		AdminID: "admin-1",
		FormFields: []models.FormField{
			{ID: "field-mobile", FieldType: models.FieldTypeMobile, IsVerifiable: true},
		},
	}
}

func liveTransaction(now time.Time, fields ...models.VerificationField) *models.VerificationTransaction {
	return &models.VerificationTransaction{
		ID:        "txn-1",
		FormID:    "form-1",
		ExpireAt:  now.Add(time.Hour),
		Fields:    fields,
		CreatedAt: now.Add(-time.Minute),
	}
}
