package credential

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/recipeshare/api/internal/domain"
	redisinfra "github.com/recipeshare/api/internal/infrastructure/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockStore struct{ mock.Mock }

func (m *mockStore) Set(ctx context.Context, ns domain.Namespace, subjectID int64, value string, ttl time.Duration) error {
	return m.Called(ctx, ns, subjectID, value, ttl).Error(0)
}
func (m *mockStore) Get(ctx context.Context, ns domain.Namespace, subjectID int64) (string, bool, error) {
	args := m.Called(ctx, ns, subjectID)
	return args.String(0), args.Bool(1), args.Error(2)
}
func (m *mockStore) Delete(ctx context.Context, ns domain.Namespace, subjectID int64) error {
	return m.Called(ctx, ns, subjectID).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

var codePattern = regexp.MustCompile(`^[1-9]\d{5}$`)

// --- IssueTempCode ---

func TestIssueTempCode_StoresAndMails(t *testing.T) {
	st := &mockStore{}
	ml := &mockMailer{}
	st.On("Set", mock.Anything, domain.NamespaceTempCode, int64(5), mock.AnythingOfType("string"), 5*time.Minute).Return(nil)
	ml.On("SendEmail", "a@b.com", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(st, ml, 5*time.Minute, 7*24*time.Hour, false)
	c, err := svc.IssueTempCode(context.Background(), &domain.Author{AuthorID: 5, Email: "a@b.com"})

	require.NoError(t, err)
	assert.Regexp(t, codePattern, c)
	st.AssertExpectations(t)
	ml.AssertExpectations(t)
}

func TestIssueTempCode_MailerFailurePropagates(t *testing.T) {
	st := &mockStore{}
	ml := &mockMailer{}
	st.On("Set", mock.Anything, domain.NamespaceTempCode, int64(5), mock.Anything, mock.Anything).Return(nil)
	ml.On("SendEmail", "a@b.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(st, ml, 5*time.Minute, 7*24*time.Hour, false)
	_, err := svc.IssueTempCode(context.Background(), &domain.Author{AuthorID: 5, Email: "a@b.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "send code email")
}

func TestIssueTempCode_StoreFailurePropagates_NoEmailSent(t *testing.T) {
	st := &mockStore{}
	ml := &mockMailer{}
	st.On("Set", mock.Anything, domain.NamespaceTempCode, int64(5), mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := NewService(st, ml, 5*time.Minute, 7*24*time.Hour, false)
	_, err := svc.IssueTempCode(context.Background(), &domain.Author{AuthorID: 5, Email: "a@b.com"})

	require.Error(t, err)
	ml.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}

// --- VerifyTempCode ---

func TestVerifyTempCode_AbsentIsFalseNotError(t *testing.T) {
	st := &mockStore{}
	st.On("Get", mock.Anything, domain.NamespaceTempCode, int64(5)).Return("", false, nil)

	svc := NewService(st, &mockMailer{}, 5*time.Minute, 7*24*time.Hour, false)
	ok, err := svc.VerifyTempCode(context.Background(), 5, "123456")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyTempCode_Mismatch(t *testing.T) {
	st := &mockStore{}
	st.On("Get", mock.Anything, domain.NamespaceTempCode, int64(5)).Return("654321", true, nil)

	svc := NewService(st, &mockMailer{}, 5*time.Minute, 7*24*time.Hour, false)
	ok, err := svc.VerifyTempCode(context.Background(), 5, "123456")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyTempCode_Match_ReusableByDefault(t *testing.T) {
	st := &mockStore{}
	st.On("Get", mock.Anything, domain.NamespaceTempCode, int64(5)).Return("123456", true, nil)

	svc := NewService(st, &mockMailer{}, 5*time.Minute, 7*24*time.Hour, false)
	ok, err := svc.VerifyTempCode(context.Background(), 5, "123456")

	require.NoError(t, err)
	assert.True(t, ok)
	st.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyTempCode_ConsumeOnSuccess(t *testing.T) {
	st := &mockStore{}
	st.On("Get", mock.Anything, domain.NamespaceTempCode, int64(5)).Return("123456", true, nil)
	st.On("Delete", mock.Anything, domain.NamespaceTempCode, int64(5)).Return(nil)

	svc := NewService(st, &mockMailer{}, 5*time.Minute, 7*24*time.Hour, true)
	ok, err := svc.VerifyTempCode(context.Background(), 5, "123456")

	require.NoError(t, err)
	assert.True(t, ok)
	st.AssertExpectations(t)
}

func TestVerifyTempCode_StoreErrorPropagates(t *testing.T) {
	st := &mockStore{}
	st.On("Get", mock.Anything, domain.NamespaceTempCode, int64(5)).Return("", false, errors.New("connection refused"))

	svc := NewService(st, &mockMailer{}, 5*time.Minute, 7*24*time.Hour, false)
	_, err := svc.VerifyTempCode(context.Background(), 5, "123456")
	require.Error(t, err)
}

// --- session tokens ---

func TestSessionToken_RoundTrip(t *testing.T) {
	st := &mockStore{}
	st.On("Set", mock.Anything, domain.NamespaceSessionToken, int64(5), "a.b.c", 7*24*time.Hour).Return(nil)
	st.On("Get", mock.Anything, domain.NamespaceSessionToken, int64(5)).Return("a.b.c", true, nil)

	svc := NewService(st, &mockMailer{}, 5*time.Minute, 7*24*time.Hour, false)
	require.NoError(t, svc.IssueSessionToken(context.Background(), 5, "a.b.c"))

	ok, err := svc.VerifySessionToken(context.Background(), 5, "a.b.c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifySessionToken(context.Background(), 5, "x.y.z")
	require.NoError(t, err)
	assert.False(t, ok)
}

// --- full flow against a real store ---

func newRedisBackedService(t *testing.T, consume bool) (Service, *miniredis.Miniredis, *mockMailer) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return NewService(redisinfra.NewEphemeralStore(client), ml, 5*time.Minute, 7*24*time.Hour, consume), mr, ml
}

func TestTempCodeFlow_IssueThenVerify(t *testing.T) {
	svc, _, _ := newRedisBackedService(t, false)
	ctx := context.Background()

	c, err := svc.IssueTempCode(ctx, &domain.Author{AuthorID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	ok, err := svc.VerifyTempCode(ctx, 5, c)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTempCodeFlow_ExpiresAfterTTL(t *testing.T) {
	svc, mr, _ := newRedisBackedService(t, false)
	ctx := context.Background()

	c, err := svc.IssueTempCode(ctx, &domain.Author{AuthorID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)

	ok, err := svc.VerifyTempCode(ctx, 5, c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTempCodeFlow_ScopedPerAuthor(t *testing.T) {
	svc, _, _ := newRedisBackedService(t, false)
	ctx := context.Background()

	c, err := svc.IssueTempCode(ctx, &domain.Author{AuthorID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	ok, err := svc.VerifyTempCode(ctx, 7, c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTempCodeFlow_SecondIssueInvalidatesFirst(t *testing.T) {
	svc, _, _ := newRedisBackedService(t, false)
	ctx := context.Background()
	a := &domain.Author{AuthorID: 5, Email: "a@b.com"}

	first, err := svc.IssueTempCode(ctx, a)
	require.NoError(t, err)
	second, err := svc.IssueTempCode(ctx, a)
	require.NoError(t, err)

	if first != second {
		ok, err := svc.VerifyTempCode(ctx, 5, first)
		require.NoError(t, err)
		assert.False(t, ok, "stale code must not verify")
	}
	ok, err := svc.VerifyTempCode(ctx, 5, second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTempCodeFlow_ConsumeOnSuccessMakesCodeSingleUse(t *testing.T) {
	svc, _, _ := newRedisBackedService(t, true)
	ctx := context.Background()

	c, err := svc.IssueTempCode(ctx, &domain.Author{AuthorID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	ok, err := svc.VerifyTempCode(ctx, 5, c)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.VerifyTempCode(ctx, 5, c)
	require.NoError(t, err)
	assert.False(t, ok)
}
