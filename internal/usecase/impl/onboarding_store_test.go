package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"sync"
	"testing"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/errors"
	"creatorhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// memStore is an in-memory account and profile store. Transactions are
// serialized on mu and rolled back by restoring a snapshot.
type memStore struct {
	mu          sync.Mutex
	accounts    map[int64]entity.Account
	creators    map[int64]entity.CreatorProfile
	advertisers map[int64]entity.AdvertiserProfile
	nextID      int64
	failInsert  error
}

func newMemStore(accounts ...entity.Account) *memStore {
	store := &memStore{
		accounts:    make(map[int64]entity.Account),
		creators:    make(map[int64]entity.CreatorProfile),
		advertisers: make(map[int64]entity.AdvertiserProfile),
		nextID:      100,
	}
	for _, account := range accounts {
		store.accounts[account.ID] = account
	}

	return store
}

func (s *memStore) account(id int64) entity.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accounts[id]
}

func (s *memStore) profileCount(accountID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	if _, ok := s.creators[accountID]; ok {
		count++
	}
	if _, ok := s.advertisers[accountID]; ok {
		count++
	}

	return count
}

// memAccountRepo reads outside a transaction; it takes the store lock itself.
type memAccountRepo struct{ store *memStore }

func (r *memAccountRepo) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.findLocked(id)
}

func (r *memAccountRepo) FindByIDWithProfile(ctx context.Context, id int64) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *memAccountRepo) UpdateOnboardingFields(context.Context, int64, *entity.OnboardingUpdate) (*entity.Account, error) {
	return nil, errors.New("writes require a transaction")
}

func (s *memStore) findLocked(id int64) (*entity.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

// memTxRepos runs with the store lock already held by memTxManager.
type memTxRepos struct{ store *memStore }

func (r *memTxRepos) AccountRepo() repository.AccountRepository { return r }
func (r *memTxRepos) CreatorProfileRepo() repository.CreatorProfileRepository {
	return memCreatorRepo{r.store}
}
func (r *memTxRepos) AdvertiserProfileRepo() repository.AdvertiserProfileRepository {
	return memAdvertiserRepo{r.store}
}

func (r *memTxRepos) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	return r.store.findLocked(id)
}

func (r *memTxRepos) FindByIDWithProfile(ctx context.Context, id int64) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *memTxRepos) UpdateOnboardingFields(_ context.Context, id int64, fields *entity.OnboardingUpdate) (*entity.Account, error) {
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	if account.OnboardingCompleted {
		return nil, repository.ErrAccountAlreadyOnboarded
	}

	account.OnboardingCompleted = true
	if fields != nil && fields.Description != nil {
		account.Description = *fields.Description
	}
	r.store.accounts[id] = account

	return &account, nil
}

type memCreatorRepo struct{ store *memStore }

func (r memCreatorRepo) Create(_ context.Context, draft *entity.CreatorDraft) (*entity.CreatorProfile, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if r.store.failInsert != nil {
		return nil, r.store.failInsert
	}
	if _, ok := r.store.creators[draft.AccountID]; ok {
		return nil, repository.ErrProfileAlreadyExists
	}

	r.store.nextID++
	profile := entity.CreatorProfile{
		ID:            r.store.nextID,
		AccountID:     draft.AccountID,
		Description:   draft.Description,
		UserName:      draft.UserName,
		BirthDate:     draft.BirthDate,
		YoutubeLinked: draft.YoutubeLinked,
	}
	r.store.creators[draft.AccountID] = profile

	return &profile, nil
}

type memAdvertiserRepo struct{ store *memStore }

func (r memAdvertiserRepo) Create(_ context.Context, draft *entity.AdvertiserDraft) (*entity.AdvertiserProfile, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if r.store.failInsert != nil {
		return nil, r.store.failInsert
	}
	if _, ok := r.store.advertisers[draft.AccountID]; ok {
		return nil, repository.ErrProfileAlreadyExists
	}

	r.store.nextID++
	profile := entity.AdvertiserProfile{
		ID:             r.store.nextID,
		AccountID:      draft.AccountID,
		SocialNetworks: draft.SocialNetworks,
	}
	r.store.advertisers[draft.AccountID] = profile

	return &profile, nil
}

type memTxManager struct{ store *memStore }

func (m *memTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to begin transaction")
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	accounts := maps.Clone(m.store.accounts)
	creators := maps.Clone(m.store.creators)
	advertisers := maps.Clone(m.store.advertisers)
	nextID := m.store.nextID

	if err := fn(&memTxRepos{store: m.store}); err != nil {
		m.store.accounts = accounts
		m.store.creators = creators
		m.store.advertisers = advertisers
		m.store.nextID = nextID

		return err
	}

	return nil
}

func newStoreBackedService(store *memStore) usecase.OnboardingUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOnboardingService(&memAccountRepo{store: store}, &memTxManager{store: store}, nil, nil, logger)
}

func scenarioStore() *memStore {
	return newMemStore(
		entity.Account{ID: 1, Kind: entity.AccountKindCreator},
		entity.Account{ID: 2, Kind: entity.AccountKindAdvertiser},
		entity.Account{ID: 3, Kind: entity.AccountKindAdvertiser},
	)
}

func TestCompleteOnboarding_CreatorScenario(t *testing.T) {
	store := scenarioStore()
	svc := newStoreBackedService(store)

	result, err := svc.CompleteOnboarding(context.Background(), 1, &usecase.CompleteOnboardingInput{
		BirthDate: birthDate(),
		UserName:  strPtr("alice"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Account.ID)
	assert.True(t, result.Account.OnboardingCompleted)
	require.NotNil(t, result.CreatorID)
	assert.Nil(t, result.AdvertiserID)
	assert.Equal(t, "alice", store.creators[1].UserName)
	assert.Equal(t, *result.CreatorID, store.creators[1].ID)
	assert.True(t, store.account(1).OnboardingCompleted)
}

func TestCompleteOnboarding_AdvertiserScenario(t *testing.T) {
	store := scenarioStore()
	svc := newStoreBackedService(store)

	result, err := svc.CompleteOnboarding(context.Background(), 2, &usecase.CompleteOnboardingInput{
		SocialNetworks: map[string]string{"instagram": "x"},
	})

	require.NoError(t, err)
	require.NotNil(t, result.AdvertiserID)
	assert.Nil(t, result.CreatorID)
	assert.Equal(t, entity.SocialNetworks{"instagram": "x"}, store.advertisers[2].SocialNetworks)
	assert.True(t, store.account(2).OnboardingCompleted)
}

func TestCompleteOnboarding_AdvertiserWithoutNetworksScenario(t *testing.T) {
	store := scenarioStore()
	svc := newStoreBackedService(store)

	result, err := svc.CompleteOnboarding(context.Background(), 3, &usecase.CompleteOnboardingInput{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), entity.MsgAdvertiserSocialNetworksRequired)
	assert.False(t, store.account(3).OnboardingCompleted)
	assert.Zero(t, store.profileCount(3))
}

func TestCompleteOnboarding_SecondCallIsRejected(t *testing.T) {
	store := scenarioStore()
	svc := newStoreBackedService(store)
	input := &usecase.CompleteOnboardingInput{BirthDate: birthDate()}

	first, err := svc.CompleteOnboarding(context.Background(), 1, input)
	require.NoError(t, err)

	second, err := svc.CompleteOnboarding(context.Background(), 1, input)

	assert.Nil(t, second)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyOnboarded)
	assert.Equal(t, *first.CreatorID, store.creators[1].ID)
	assert.Equal(t, 1, store.profileCount(1))
}

func TestCompleteOnboarding_FailedInsertRollsBackFlag(t *testing.T) {
	store := scenarioStore()
	store.failInsert = domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create creator profile")
	svc := newStoreBackedService(store)

	_, err := svc.CompleteOnboarding(context.Background(), 1, &usecase.CompleteOnboardingInput{
		BirthDate:   birthDate(),
		Description: strPtr("gaming"),
	})

	require.Error(t, err)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", domainerrors.Code(err))
	account := store.account(1)
	assert.False(t, account.OnboardingCompleted)
	assert.Empty(t, account.Description)
	assert.Zero(t, store.profileCount(1))

	// The account can still onboard once storage recovers.
	store.failInsert = nil
	_, err = svc.CompleteOnboarding(context.Background(), 1, &usecase.CompleteOnboardingInput{BirthDate: birthDate()})
	require.NoError(t, err)
}

func TestCompleteOnboarding_CanceledContextLeavesStateUntouched(t *testing.T) {
	store := scenarioStore()
	svc := newStoreBackedService(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CompleteOnboarding(ctx, 2, &usecase.CompleteOnboardingInput{
		SocialNetworks: map[string]string{"tiktok": "@brand"},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.account(2).OnboardingCompleted)
}

func TestCompleteOnboarding_ConcurrentCallsOnboardOnce(t *testing.T) {
	const callers = 16

	store := scenarioStore()
	svc := newStoreBackedService(store)

	var (
		wg       sync.WaitGroup
		start    = make(chan struct{})
		errs     = make([]error, callers)
		profiles = make([]int64, callers)
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := svc.CompleteOnboarding(context.Background(), 2, &usecase.CompleteOnboardingInput{
				SocialNetworks: map[string]string{"instagram": fmt.Sprintf("caller%d", i)},
			})
			errs[i] = err
			if err == nil {
				profiles[i] = result.ProfileID()
			}
		}()
	}
	close(start)
	wg.Wait()

	successes := 0
	for i, err := range errs {
		if err == nil {
			successes++
			assert.Equal(t, store.advertisers[2].ID, profiles[i])

			continue
		}
		assert.True(t,
			errors.Is(err, domainerrors.ErrAlreadyOnboarded) || errors.Is(err, domainerrors.ErrProfileConflict),
			"unexpected error: %v", err,
		)
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.profileCount(2))
	assert.True(t, store.account(2).OnboardingCompleted)
}

// Across any sequence of onboarding attempts, an account is onboarded exactly
// when it owns exactly one profile, and that profile matches its kind.
func TestProperty_OnboardingFlagMatchesProfile(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		store := scenarioStore()
		svc := newStoreBackedService(store)

		steps := rapid.IntRange(1, 12).Draw(rt, "steps")
		for range steps {
			id := rapid.Int64Range(1, 4).Draw(rt, "accountID")
			input := &usecase.CompleteOnboardingInput{}
			if rapid.Bool().Draw(rt, "withBirthDate") {
				input.BirthDate = birthDate()
			}
			if rapid.Bool().Draw(rt, "withNetworks") {
				input.SocialNetworks = map[string]string{"youtube": "channel"}
			}
			store.failInsert = nil
			if rapid.Bool().Draw(rt, "failInsert") {
				store.failInsert = errors.New("insert failed")
			}

			_, _ = svc.CompleteOnboarding(context.Background(), id, input)
		}

		for id, account := range store.accounts {
			_, hasCreator := store.creators[id]
			_, hasAdvertiser := store.advertisers[id]
			profiles := store.profileCount(id)

			if account.OnboardingCompleted != (profiles == 1) {
				rt.Fatalf("account %d onboarded=%v with %d profiles", id, account.OnboardingCompleted, profiles)
			}
			if hasCreator && account.Kind != entity.AccountKindCreator {
				rt.Fatalf("account %d of kind %s owns a creator profile", id, account.Kind)
			}
			if hasAdvertiser && account.Kind != entity.AccountKindAdvertiser {
				rt.Fatalf("account %d of kind %s owns an advertiser profile", id, account.Kind)
			}
		}
	})
}

func TestCompleteOnboarding_RecordsElapsedTime(t *testing.T) {
	store := scenarioStore()
	srv := newStoreBackedService(store).(*onboardingService)

	ticks := []time.Time{time.Unix(0, 0), time.Unix(2, 0), time.Unix(2, 0)}
	srv.now = func() time.Time {
		now := ticks[0]
		if len(ticks) > 1 {
			ticks = ticks[1:]
		}

		return now
	}

	var recorded time.Duration
	srv.recorder = recorderFunc(func(kind, outcome string, elapsed time.Duration) {
		assert.Equal(t, "creator", kind)
		assert.Equal(t, outcomeSuccess, outcome)
		recorded = elapsed
	})

	_, err := srv.CompleteOnboarding(context.Background(), 1, &usecase.CompleteOnboardingInput{BirthDate: birthDate()})

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, recorded)
}

type recorderFunc func(kind, outcome string, elapsed time.Duration)

func (f recorderFunc) RecordOnboarding(kind, outcome string, elapsed time.Duration) {
	f(kind, outcome, elapsed)
}
