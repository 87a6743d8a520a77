package intent

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"barberflow/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDirectory serves canned tenant lists for location lookups.
type fakeDirectory struct {
	byCity         map[string][]models.Tenant
	byCityDistrict map[string][]models.Tenant
	err            error
}

func (f *fakeDirectory) FindByCity(city string) ([]models.Tenant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCity[city], nil
}

func (f *fakeDirectory) FindByCityAndDistrict(city, district string) ([]models.Tenant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCityDistrict[city+"/"+district], nil
}

// fakeRegistrar records the customer it was asked to resolve.
type fakeRegistrar struct {
	gotName   string
	gotPhone  string
	gotTenant int64
	customer  *models.Customer
	err       error
}

func (f *fakeRegistrar) CreateFromWhatsApp(name, phone string, tenantID int64) (*models.Customer, error) {
	f.gotName, f.gotPhone, f.gotTenant = name, phone, tenantID
	return f.customer, f.err
}

// fakeCatalog serves a fixed service list.
type fakeCatalog struct {
	services []models.Service
	err      error
}

func (f *fakeCatalog) FindActiveByTenant(tenantID int64) ([]models.Service, error) {
	return f.services, f.err
}

// fakeBooker records booking requests and optionally fails them.
type fakeBooker struct {
	requests []models.CreateAppointmentRequest
	tenants  []int64
	err      error
}

func (f *fakeBooker) Create(req models.CreateAppointmentRequest, tenantID int64) (*models.Appointment, error) {
	f.requests = append(f.requests, req)
	f.tenants = append(f.tenants, tenantID)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Appointment{ID: "a1", TenantID: tenantID}, nil
}

func response(info map[string]any) *models.AgentResponse {
	return &models.AgentResponse{OK: true, ExtractedInfo: info}
}

func TestProvideLocationCityAndDistrict(t *testing.T) {
	dir := &fakeDirectory{byCityDistrict: map[string][]models.Tenant{
		"İstanbul/Kadıköy": {{ID: 5, Name: "Kadıköy Berber"}},
	}}
	h := &ProvideLocationHandler{Tenants: dir, Logger: zap.NewNop()}
	sess := &models.BotSession{TenantID: 1}

	h.Handle(sess, response(map[string]any{"location_preference": "İstanbul, Kadıköy"}))

	assert.Equal(t, "İstanbul, Kadıköy", sess.SelectedLocation)
	require.Len(t, sess.AvailableBarbers, 1)
	assert.Equal(t, int64(5), sess.AvailableBarbers[0].ID)
	assert.Equal(t, models.StateAwaitingBarberSelect, sess.State)
}

func TestProvideLocationLookupFailureStillAdvances(t *testing.T) {
	h := &ProvideLocationHandler{
		Tenants: &fakeDirectory{err: errors.New("mongo down")},
		Logger:  zap.NewNop(),
	}
	sess := &models.BotSession{TenantID: 1}

	h.Handle(sess, response(map[string]any{"location_preference": "Ankara"}))

	assert.Empty(t, sess.AvailableBarbers)
	assert.Equal(t, models.StateAwaitingBarberSelect, sess.State)
}

func TestProvideLocationMissingFieldNoOp(t *testing.T) {
	h := &ProvideLocationHandler{Tenants: &fakeDirectory{}, Logger: zap.NewNop()}
	sess := &models.BotSession{TenantID: 1, State: models.StateInitial}

	h.Handle(sess, response(map[string]any{}))

	assert.Equal(t, models.StateInitial, sess.State)
}

func TestSelectBarberFromSessionList(t *testing.T) {
	h := &SelectBarberHandler{}
	sess := &models.BotSession{
		TenantID:         1,
		AvailableBarbers: []models.Tenant{{ID: 10}, {ID: 20}},
	}

	h.Handle(sess, response(map[string]any{"barber_selection": "2"}))

	assert.Equal(t, int64(20), sess.SelectedTenantID)
	assert.Equal(t, models.StateAwaitingName, sess.State)
}

func TestSelectBarberPrefersAgentOptions(t *testing.T) {
	h := &SelectBarberHandler{}
	sess := &models.BotSession{
		TenantID:         1,
		AvailableBarbers: []models.Tenant{{ID: 10}},
	}

	h.Handle(sess, response(map[string]any{
		"barber_selection": float64(1),
		"barber_options":   []any{map[string]any{"id": float64(42), "name": "Usta"}},
	}))

	assert.Equal(t, int64(42), sess.SelectedTenantID)
	assert.Equal(t, models.StateAwaitingName, sess.State)
}

func TestSelectBarberOutOfRangeNoOp(t *testing.T) {
	h := &SelectBarberHandler{}
	sess := &models.BotSession{
		TenantID:         1,
		State:            models.StateAwaitingBarberSelect,
		AvailableBarbers: []models.Tenant{{ID: 10}, {ID: 20}},
	}

	h.Handle(sess, response(map[string]any{"barber_selection": "9"}))

	assert.Zero(t, sess.SelectedTenantID)
	assert.Equal(t, models.StateAwaitingBarberSelect, sess.State)
}

func TestProvideNameCreatesCustomer(t *testing.T) {
	reg := &fakeRegistrar{customer: &models.Customer{ID: 77}}
	h := &ProvideNameHandler{Customers: reg, Logger: zap.NewNop()}
	sess := &models.BotSession{Phone: "905551112233", TenantID: 1, SelectedTenantID: 4}

	h.Handle(sess, response(map[string]any{"customer_name": "Ahmet Yılmaz"}))

	assert.Equal(t, "Ahmet Yılmaz", reg.gotName)
	assert.Equal(t, "+905551112233", reg.gotPhone)
	assert.Equal(t, int64(4), reg.gotTenant)
	assert.Equal(t, int64(77), sess.CustomerID)
	assert.Equal(t, models.StateAwaitingService, sess.State)
}

func TestProvideNameRegistrarFailureNoOp(t *testing.T) {
	h := &ProvideNameHandler{
		Customers: &fakeRegistrar{err: errors.New("mongo down")},
		Logger:    zap.NewNop(),
	}
	sess := &models.BotSession{Phone: "905551112233", TenantID: 1, State: models.StateAwaitingName}

	h.Handle(sess, response(map[string]any{"customer_name": "Ahmet"}))

	assert.Zero(t, sess.CustomerID)
	assert.Equal(t, models.StateAwaitingName, sess.State)
}

func catalogFixture() *fakeCatalog {
	return &fakeCatalog{services: []models.Service{
		{ID: 1, Name: "Haircut", DurationMinutes: 30, Price: decimal.RequireFromString("50.00"), Currency: "TRY"},
		{ID: 2, Name: "Beard Trim", DurationMinutes: 20, Price: decimal.RequireFromString("30.00"), Currency: "TRY"},
		{ID: 3, Name: "Coloring", DurationMinutes: 60, Price: decimal.RequireFromString("200.00"), Currency: "TRY"},
	}}
}

func TestProvideServiceMatchesMultiple(t *testing.T) {
	h := &ProvideServiceHandler{Catalog: catalogFixture(), Logger: zap.NewNop()}
	sess := &models.BotSession{TenantID: 1}

	h.Handle(sess, response(map[string]any{"service_preference": "haircut and beard please"}))

	assert.Equal(t, []int64{1, 2}, sess.SelectedServiceIDs)
	assert.Equal(t, 50, sess.TotalDurationMinutes)
	assert.True(t, sess.TotalPrice.Equal(decimal.RequireFromString("80.00")),
		"got %s", sess.TotalPrice)
	assert.Equal(t, "TRY", sess.TotalCurrency)
	assert.Equal(t, models.StateAwaitingDate, sess.State)
}

func TestProvideServiceNoMatchFallsBackToFirst(t *testing.T) {
	h := &ProvideServiceHandler{Catalog: catalogFixture(), Logger: zap.NewNop()}
	sess := &models.BotSession{TenantID: 1}

	h.Handle(sess, response(map[string]any{"service_preference": "something else entirely"}))

	assert.Equal(t, []int64{1}, sess.SelectedServiceIDs)
	assert.Equal(t, 30, sess.TotalDurationMinutes)
	assert.Equal(t, models.StateAwaitingDate, sess.State)
}

func TestProvideServiceReplacesPreviousSelection(t *testing.T) {
	h := &ProvideServiceHandler{Catalog: catalogFixture(), Logger: zap.NewNop()}
	sess := &models.BotSession{TenantID: 1, SelectedServiceIDs: []int64{3}}

	h.Handle(sess, response(map[string]any{"service_preference": "beard"}))

	assert.Equal(t, []int64{2}, sess.SelectedServiceIDs)
	assert.Equal(t, 20, sess.TotalDurationMinutes)
}

func TestProvideDateFormats(t *testing.T) {
	h := &ProvideDateHandler{}

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"15.03.2025", time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)},
		{"2025-03-15", time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		sess := &models.BotSession{TenantID: 1}
		h.Handle(sess, response(map[string]any{"date_preference": tc.raw}))
		assert.True(t, tc.want.Equal(sess.SelectedDate), "raw %q: got %s", tc.raw, sess.SelectedDate)
		assert.Equal(t, models.StateAwaitingTime, sess.State)
	}
}

func TestProvideDateGarbageDefaultsToToday(t *testing.T) {
	h := &ProvideDateHandler{}
	sess := &models.BotSession{TenantID: 1}

	h.Handle(sess, response(map[string]any{"date_preference": "yarın olur mu"}))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	assert.True(t, today.Equal(sess.SelectedDate), "got %s", sess.SelectedDate)
	assert.Equal(t, models.StateAwaitingTime, sess.State)
}

func TestProvideTimeFormats(t *testing.T) {
	h := &ProvideTimeHandler{}
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	cases := []struct {
		raw        string
		wantHour   int
		wantMinute int
	}{
		{"14:30", 14, 30},
		{"0930", 9, 30},
		{"öğleden sonra", 9, 0},
		{"99:99", 9, 0},
	}
	for _, tc := range cases {
		sess := &models.BotSession{TenantID: 1, SelectedDate: date}
		h.Handle(sess, response(map[string]any{"time_preference": tc.raw}))
		want := time.Date(2025, 3, 15, tc.wantHour, tc.wantMinute, 0, 0, time.Local)
		assert.True(t, want.Equal(sess.SelectedTime), "raw %q: got %s", tc.raw, sess.SelectedTime)
		assert.Equal(t, models.StateAwaitingConfirmation, sess.State)
	}
}

func TestProvideTimeWithoutDateNotStored(t *testing.T) {
	h := &ProvideTimeHandler{}
	sess := &models.BotSession{TenantID: 1}

	h.Handle(sess, response(map[string]any{"time_preference": "14:30"}))

	assert.True(t, sess.SelectedTime.IsZero())
	assert.Equal(t, models.StateAwaitingConfirmation, sess.State)
}

func TestConfirmBooksSelectedService(t *testing.T) {
	booker := &fakeBooker{}
	h := &ConfirmAppointmentHandler{Catalog: catalogFixture(), Appointments: booker, Logger: zap.NewNop()}

	start := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)
	sess := &models.BotSession{
		TenantID:           1,
		SelectedTenantID:   4,
		CustomerID:         77,
		SelectedServiceIDs: []int64{2},
		SelectedDate:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		SelectedTime:       start,
		State:              models.StateAwaitingConfirmation,
	}

	h.Handle(sess, response(nil))

	require.Len(t, booker.requests, 1)
	assert.Equal(t, int64(77), booker.requests[0].CustomerID)
	assert.Equal(t, int64(2), booker.requests[0].ServiceID)
	assert.True(t, start.Equal(booker.requests[0].StartTime))
	assert.Equal(t, int64(4), booker.tenants[0])
	assert.Equal(t, models.StateCompleted, sess.State)
}

func TestConfirmWithoutCustomerNoOp(t *testing.T) {
	booker := &fakeBooker{}
	h := &ConfirmAppointmentHandler{Catalog: catalogFixture(), Appointments: booker, Logger: zap.NewNop()}
	sess := &models.BotSession{TenantID: 1, State: models.StateAwaitingConfirmation}

	h.Handle(sess, response(nil))

	assert.Empty(t, booker.requests)
	assert.Equal(t, models.StateAwaitingConfirmation, sess.State)
}

func TestConfirmDefaultsServiceAndNoon(t *testing.T) {
	booker := &fakeBooker{}
	h := &ConfirmAppointmentHandler{Catalog: catalogFixture(), Appointments: booker, Logger: zap.NewNop()}
	sess := &models.BotSession{
		TenantID:     1,
		CustomerID:   77,
		SelectedDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		State:        models.StateAwaitingConfirmation,
	}

	h.Handle(sess, response(nil))

	require.Len(t, booker.requests, 1)
	assert.Equal(t, int64(1), booker.requests[0].ServiceID)
	want := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	assert.True(t, want.Equal(booker.requests[0].StartTime))
	assert.Equal(t, models.StateCompleted, sess.State)
}

func TestConfirmBookingFailureKeepsState(t *testing.T) {
	booker := &fakeBooker{err: fmt.Errorf("slot taken")}
	h := &ConfirmAppointmentHandler{Catalog: catalogFixture(), Appointments: booker, Logger: zap.NewNop()}
	sess := &models.BotSession{
		TenantID:           1,
		CustomerID:         77,
		SelectedServiceIDs: []int64{1},
		SelectedTime:       time.Date(2025, 3, 15, 14, 0, 0, 0, time.Local),
		State:              models.StateAwaitingConfirmation,
	}

	h.Handle(sess, response(nil))

	require.Len(t, booker.requests, 1)
	assert.Equal(t, models.StateAwaitingConfirmation, sess.State)
}
