package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/repository/contract"
	"smart-kitchen-be/internal/repository/unitofwork"
)

// In-memory repositories backing the service tests. They share one
// mutex per store so the concurrency tests exercise real interleaving.

type fakeMemberRepository struct {
	mu      sync.Mutex
	members map[string]*entity.Member
}

func newFakeMemberRepository() *fakeMemberRepository {
	return &fakeMemberRepository{members: make(map[string]*entity.Member)}
}

func (r *fakeMemberRepository) Create(_ context.Context, member *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *member
	r.members[member.Isic] = &clone
	return nil
}

func (r *fakeMemberRepository) Update(_ context.Context, member *entity.Member) error {
	return r.Create(context.Background(), member)
}

func (r *fakeMemberRepository) FindByIsic(_ context.Context, isic string) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[isic]
	if !ok {
		return nil, nil
	}
	clone := *member
	return &clone, nil
}

func (r *fakeMemberRepository) FindEnrolled(_ context.Context) ([]*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	enrolled := make([]*entity.Member, 0)
	for _, member := range r.members {
		if member.FaceEnrolled() {
			clone := *member
			enrolled = append(enrolled, &clone)
		}
	}
	sort.Slice(enrolled, func(i, j int) bool {
		return enrolled[i].FaceEnrolledAt.Before(*enrolled[j].FaceEnrolledAt)
	})
	return enrolled, nil
}

func (r *fakeMemberRepository) UpdateFaceEmbedding(_ context.Context, isic string, embedding []float32, enrolledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[isic]
	if !ok {
		return nil
	}
	member.FaceEmbedding = embedding
	member.FaceEnrolledAt = &enrolledAt
	return nil
}

func (r *fakeMemberRepository) UpdateTheme(_ context.Context, isic string, palette entity.ThemePalette, darkMode bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if member, ok := r.members[isic]; ok {
		member.ThemePalette = palette
		member.ThemeDarkMode = darkMode
	}
	return nil
}

type fakeKitchenRepository struct {
	mu       sync.Mutex
	kitchens map[int]*entity.Kitchen
}

func newFakeKitchenRepository() *fakeKitchenRepository {
	return &fakeKitchenRepository{kitchens: make(map[int]*entity.Kitchen)}
}

func (r *fakeKitchenRepository) FindAll(_ context.Context) ([]*entity.Kitchen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Kitchen, 0, len(r.kitchens))
	for _, kitchen := range r.kitchens {
		clone := *kitchen
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id < all[j].Id })
	return all, nil
}

func (r *fakeKitchenRepository) FindByID(_ context.Context, id int) (*entity.Kitchen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kitchen, ok := r.kitchens[id]
	if !ok {
		return nil, nil
	}
	clone := *kitchen
	return &clone, nil
}

func (r *fakeKitchenRepository) Ensure(_ context.Context, kitchen *entity.Kitchen) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.kitchens[kitchen.Id]; !ok {
		clone := *kitchen
		r.kitchens[kitchen.Id] = &clone
	}
	return nil
}

type fakeApplianceRepository struct {
	mu         sync.Mutex
	appliances map[string]*entity.Appliance
}

func newFakeApplianceRepository() *fakeApplianceRepository {
	return &fakeApplianceRepository{appliances: make(map[string]*entity.Appliance)}
}

func (r *fakeApplianceRepository) FindByID(_ context.Context, id string) (*entity.Appliance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appliance, ok := r.appliances[id]
	if !ok {
		return nil, nil
	}
	clone := *appliance
	return &clone, nil
}

func (r *fakeApplianceRepository) FindByKitchen(_ context.Context, kitchenID int) ([]*entity.Appliance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matching := make([]*entity.Appliance, 0)
	for _, appliance := range r.appliances {
		if appliance.KitchenId == kitchenID {
			clone := *appliance
			matching = append(matching, &clone)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].Id < matching[j].Id })
	return matching, nil
}

func (r *fakeApplianceRepository) CountByType(_ context.Context, kitchenID int, applianceType entity.ApplianceType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, appliance := range r.appliances {
		if appliance.KitchenId == kitchenID && appliance.Type == applianceType {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplianceRepository) Ensure(_ context.Context, appliance *entity.Appliance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appliances[appliance.Id]; !ok {
		clone := *appliance
		r.appliances[appliance.Id] = &clone
	}
	return nil
}

type fakeReservationRepository struct {
	mu           sync.Mutex
	reservations map[string]*entity.Reservation
}

func newFakeReservationRepository() *fakeReservationRepository {
	return &fakeReservationRepository{reservations: make(map[string]*entity.Reservation)}
}

func (r *fakeReservationRepository) Create(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *reservation
	r.reservations[reservation.Id] = &clone
	return nil
}

func (r *fakeReservationRepository) FindByID(_ context.Context, id string) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	clone := *reservation
	return &clone, nil
}

func (r *fakeReservationRepository) FindConfirmed(_ context.Context, kitchenID int, date string) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matching := make([]*entity.Reservation, 0)
	for _, reservation := range r.reservations {
		if reservation.KitchenId == kitchenID && reservation.Date == date && reservation.Status == entity.ReservationStatusConfirmed {
			clone := *reservation
			matching = append(matching, &clone)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		if matching[i].ApplianceId != matching[j].ApplianceId {
			return matching[i].ApplianceId < matching[j].ApplianceId
		}
		return matching[i].StartTime < matching[j].StartTime
	})
	return matching, nil
}

func (r *fakeReservationRepository) CountOverlapping(_ context.Context, applianceID, date, start, end string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, reservation := range r.reservations {
		if reservation.ApplianceId == applianceID &&
			reservation.Date == date &&
			reservation.Status == entity.ReservationStatusConfirmed &&
			reservation.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}

func (r *fakeReservationRepository) CountActiveAt(_ context.Context, isic, date, clock string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, reservation := range r.reservations {
		if reservation.MemberIsic == isic && reservation.ActiveAt(date, clock) {
			count++
		}
	}
	return count, nil
}

func (r *fakeReservationRepository) ListByOwner(_ context.Context, isic string) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matching := make([]*entity.Reservation, 0)
	for _, reservation := range r.reservations {
		if reservation.MemberIsic == isic {
			clone := *reservation
			matching = append(matching, &clone)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		if matching[i].Date != matching[j].Date {
			return matching[i].Date > matching[j].Date
		}
		return matching[i].StartTime > matching[j].StartTime
	})
	return matching, nil
}

func (r *fakeReservationRepository) UpdateStatus(_ context.Context, id string, status entity.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reservation, ok := r.reservations[id]; ok {
		reservation.Status = status
	}
	return nil
}

// fakeUnitOfWork satisfies the transaction contract without a database.
// Begin/Commit/Rollback are no-ops because the fakes apply writes
// immediately, which is fine for the behaviors under test.
type fakeUnitOfWork struct {
	members      *fakeMemberRepository
	kitchens     *fakeKitchenRepository
	appliances   *fakeApplianceRepository
	reservations *fakeReservationRepository
}

func (u *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error               { return nil }
func (u *fakeUnitOfWork) Rollback() error             { return nil }

func (u *fakeUnitOfWork) MemberRepository() contract.MemberRepository {
	return u.members
}

func (u *fakeUnitOfWork) KitchenRepository() contract.KitchenRepository {
	return u.kitchens
}

func (u *fakeUnitOfWork) ApplianceRepository() contract.ApplianceRepository {
	return u.appliances
}

func (u *fakeUnitOfWork) ReservationRepository() contract.ReservationRepository {
	return u.reservations
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeRepositoryFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			members:      newFakeMemberRepository(),
			kitchens:     newFakeKitchenRepository(),
			appliances:   newFakeApplianceRepository(),
			reservations: newFakeReservationRepository(),
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// nopLogger discards everything; test assertions look at returned
// values and stored state, not log output.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// seedKitchen provisions a kitchen with the standard appliance set the
// way startup does, returning the appliance ids in catalog order.
func seedKitchen(f *fakeRepositoryFactory, floor int) []string {
	ctx := context.Background()
	uow := f.NewUnitOfWork(ctx)
	_ = uow.KitchenRepository().Ensure(ctx, &entity.Kitchen{
		Id:            floor,
		KitchenNumber: 1,
		Floor:         floor,
		Name:          entity.KitchenName(floor),
	})
	ids := make([]string, 0, len(entity.StandardAppliances))
	for i, blueprint := range entity.StandardAppliances {
		appliance := &entity.Appliance{
			Id:        entity.ApplianceID(floor, blueprint.Type, i+1),
			KitchenId: floor,
			Type:      blueprint.Type,
			Name:      blueprint.Name,
		}
		_ = uow.ApplianceRepository().Ensure(ctx, appliance)
		ids = append(ids, appliance.Id)
	}
	return ids
}
