package conversation

import (
	"context"
	"testing"
	"time"

	"barberflow/models"
	"barberflow/services/intent"
	"barberflow/services/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedGateway returns its canned responses in order and counts calls.
type scriptedGateway struct {
	responses []*models.AgentResponse
	calls     int
	requests  []*models.AgentRequest
}

func (g *scriptedGateway) Respond(ctx context.Context, req *models.AgentRequest) *models.AgentResponse {
	g.requests = append(g.requests, req)
	g.calls++
	if g.calls > len(g.responses) {
		return models.FailedAgentResponse()
	}
	return g.responses[g.calls-1]
}

// recordingHandler captures dispatches for one intent key.
type recordingHandler struct {
	key        string
	dispatches int
	lastReply  string
}

func (h *recordingHandler) IntentKey() string { return h.key }

func (h *recordingHandler) Handle(sess *models.BotSession, resp *models.AgentResponse) {
	h.dispatches++
	h.lastReply = resp.Reply
}

func TestFastPathSkipsGateway(t *testing.T) {
	for _, msg := range []string{"evet", "Tamam", "ONAY", "e", "ok canım"} {
		gw := &scriptedGateway{}
		confirm := &recordingHandler{key: "confirm_appointment"}
		sessions := session.NewStore()
		o := NewOrchestrator(gw, sessions, []intent.Handler{confirm}, zap.NewNop())

		sess := sessions.GetOrCreate("905551112233", 1)
		sess.State = models.StateAwaitingConfirmation

		resp := o.HandleIncoming(context.Background(), "905551112233", 1, msg)

		assert.Zero(t, gw.calls, "message %q should not reach the classifier", msg)
		assert.Equal(t, 1, confirm.dispatches, "message %q", msg)
		assert.True(t, resp.OK)
		assert.Equal(t, "confirm_appointment", resp.Intent)
		assert.NotEmpty(t, resp.Reply)
	}
}

func TestNegativeReplyNeverConfirms(t *testing.T) {
	// "yok" and "dokuz" contain "ok", "yoksa" too; none of them is consent.
	for _, msg := range []string{"yok", "hayır yok", "dokuz", "yoksa", "yes-man değilim"} {
		gw := &scriptedGateway{responses: []*models.AgentResponse{
			{OK: true, Intent: "unknown", Reply: "Peki, iptal ediyorum."},
		}}
		confirm := &recordingHandler{key: "confirm_appointment"}
		sessions := session.NewStore()
		o := NewOrchestrator(gw, sessions, []intent.Handler{confirm}, zap.NewNop())

		sess := sessions.GetOrCreate("905551112233", 1)
		sess.State = models.StateAwaitingConfirmation

		o.HandleIncoming(context.Background(), "905551112233", 1, msg)

		assert.Equal(t, 1, gw.calls, "message %q must reach the classifier", msg)
		assert.Zero(t, confirm.dispatches, "message %q must not confirm the booking", msg)
	}
}

func TestFastPathOnlyWhileAwaitingConfirmation(t *testing.T) {
	gw := &scriptedGateway{responses: []*models.AgentResponse{
		{OK: true, Intent: "unknown", Reply: "Nasıl yardımcı olabilirim?"},
	}}
	confirm := &recordingHandler{key: "confirm_appointment"}
	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, []intent.Handler{confirm}, zap.NewNop())

	o.HandleIncoming(context.Background(), "905551112233", 1, "evet")

	assert.Equal(t, 1, gw.calls)
	assert.Zero(t, confirm.dispatches)
}

func TestAccentedStateLabelNormalized(t *testing.T) {
	gw := &scriptedGateway{responses: []*models.AgentResponse{
		{OK: true, Intent: "unknown", NextState: "AWAITİNG_DATE", ExtractedInfo: map[string]any{}},
	}}
	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, nil, zap.NewNop())

	o.HandleIncoming(context.Background(), "905551112233", 1, "saç kestirmek istiyorum")

	sess := sessions.GetOrCreate("905551112233", 1)
	assert.Equal(t, models.StateAwaitingDate, sess.State)
}

func TestUnknownStateLabelIgnored(t *testing.T) {
	gw := &scriptedGateway{responses: []*models.AgentResponse{
		{OK: true, Intent: "unknown", NextState: "SOMETHING_ELSE", ExtractedInfo: map[string]any{}},
	}}
	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, nil, zap.NewNop())

	sess := sessions.GetOrCreate("905551112233", 1)
	sess.State = models.StateAwaitingService

	o.HandleIncoming(context.Background(), "905551112233", 1, "hmm")

	assert.Equal(t, models.StateAwaitingService, sess.State)
}

func TestGatewayFailureLeavesSessionUntouched(t *testing.T) {
	gw := &scriptedGateway{responses: []*models.AgentResponse{models.FailedAgentResponse()}}
	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, nil, zap.NewNop())

	sess := sessions.GetOrCreate("905551112233", 1)
	sess.State = models.StateAwaitingService
	sess.CustomerID = 7

	resp := o.HandleIncoming(context.Background(), "905551112233", 1, "merhaba")

	assert.False(t, resp.OK)
	assert.Equal(t, models.StateAwaitingService, sess.State)
	assert.Equal(t, int64(7), sess.CustomerID)
	assert.Equal(t, "merhaba", sess.LastMessage)
}

func TestLocationMirroredOnAnyIntent(t *testing.T) {
	gw := &scriptedGateway{responses: []*models.AgentResponse{
		{OK: true, Intent: "unknown", ExtractedInfo: map[string]any{
			"location_preference": "İzmir",
		}},
	}}
	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, nil, zap.NewNop())

	o.HandleIncoming(context.Background(), "905551112233", 1, "İzmir'den yazıyorum bu arada")

	sess := sessions.GetOrCreate("905551112233", 1)
	assert.Equal(t, "İzmir", sess.SelectedLocation)
}

func TestSessionCarriesStateAndCustomerToAgent(t *testing.T) {
	gw := &scriptedGateway{responses: []*models.AgentResponse{
		{OK: true, Intent: "unknown", ExtractedInfo: map[string]any{}},
	}}
	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, nil, zap.NewNop())

	sess := sessions.GetOrCreate("905551112233", 3)
	sess.State = models.StateAwaitingDate
	sess.CustomerID = 42

	o.HandleIncoming(context.Background(), "905551112233", 3, "yarın")

	require.Len(t, gw.requests, 1)
	req := gw.requests[0]
	assert.Equal(t, int64(3), req.TenantID)
	assert.Equal(t, "905551112233", req.FromNumber)
	assert.Equal(t, sess.SessionID, req.SessionID)
	assert.Equal(t, "AWAITING_DATE", req.CurrentState)
	assert.Equal(t, int64(42), req.CustomerID)
}

// Full dialogue: location → barber → name → service → date → time → "evet".
func TestFullBookingDialogue(t *testing.T) {
	directory := &dialogueDirectory{tenants: []models.Tenant{
		{ID: 4, Name: "Kadıköy Berber", City: "İstanbul", District: "Kadıköy"},
	}}
	registrar := &dialogueRegistrar{customer: &models.Customer{ID: 77, Name: "Ahmet"}}
	catalog := &dialogueCatalog{services: []models.Service{
		{ID: 1, Name: "Haircut", DurationMinutes: 30, Price: decimal.RequireFromString("50.00"), Currency: "TRY"},
	}}
	booker := &dialogueBooker{}

	handlers := []intent.Handler{
		&intent.ProvideLocationHandler{Tenants: directory, Logger: zap.NewNop()},
		&intent.SelectBarberHandler{},
		&intent.ProvideNameHandler{Customers: registrar, Logger: zap.NewNop()},
		&intent.ProvideServiceHandler{Catalog: catalog, Logger: zap.NewNop()},
		&intent.ProvideDateHandler{},
		&intent.ProvideTimeHandler{},
		&intent.ConfirmAppointmentHandler{Catalog: catalog, Appointments: booker, Logger: zap.NewNop()},
	}

	gw := &scriptedGateway{responses: []*models.AgentResponse{
		{OK: true, Intent: "provide_location", NextState: "AWAITING_BARBER_SELECTION",
			ExtractedInfo: map[string]any{"location_preference": "İstanbul, Kadıköy"}},
		{OK: true, Intent: "select_barber", NextState: "AWAITING_NAME",
			ExtractedInfo: map[string]any{"barber_selection": "1"}},
		{OK: true, Intent: "provide_name", NextState: "AWAITING_SERVICE",
			ExtractedInfo: map[string]any{"customer_name": "Ahmet"}},
		{OK: true, Intent: "provide_service", NextState: "AWAITING_DATE",
			ExtractedInfo: map[string]any{"service_preference": "haircut"}},
		{OK: true, Intent: "provide_date", NextState: "AWAITING_TIME",
			ExtractedInfo: map[string]any{"date_preference": "15.03.2025"}},
		{OK: true, Intent: "provide_time", NextState: "AWAITING_CONFIRMATION",
			ExtractedInfo: map[string]any{"time_preference": "14:30"}},
	}}

	sessions := session.NewStore()
	o := NewOrchestrator(gw, sessions, handlers, zap.NewNop())
	ctx := context.Background()

	o.HandleIncoming(ctx, "905551112233", 1, "Kadıköy'deyim")
	o.HandleIncoming(ctx, "905551112233", 1, "1")
	o.HandleIncoming(ctx, "905551112233", 1, "Ahmet")
	o.HandleIncoming(ctx, "905551112233", 1, "saç kesimi")
	o.HandleIncoming(ctx, "905551112233", 1, "15.03.2025")
	o.HandleIncoming(ctx, "905551112233", 1, "14:30")
	resp := o.HandleIncoming(ctx, "905551112233", 1, "evet")

	assert.Equal(t, 6, gw.calls, "the final affirmation must not reach the classifier")
	assert.Equal(t, "confirm_appointment", resp.Intent)

	sess := sessions.GetOrCreate("905551112233", 1)
	assert.Equal(t, models.StateCompleted, sess.State)

	require.Len(t, booker.requests, 1)
	req := booker.requests[0]
	assert.Equal(t, int64(77), req.CustomerID)
	assert.Equal(t, int64(1), req.ServiceID)
	want := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)
	assert.True(t, want.Equal(req.StartTime), "got %s", req.StartTime)
	assert.Equal(t, int64(4), booker.tenants[0])
}

// Dialogue-test fakes for the intent collaborator interfaces.

type dialogueDirectory struct{ tenants []models.Tenant }

func (d *dialogueDirectory) FindByCity(city string) ([]models.Tenant, error) {
	return d.tenants, nil
}

func (d *dialogueDirectory) FindByCityAndDistrict(city, district string) ([]models.Tenant, error) {
	return d.tenants, nil
}

type dialogueRegistrar struct{ customer *models.Customer }

func (d *dialogueRegistrar) CreateFromWhatsApp(name, phone string, tenantID int64) (*models.Customer, error) {
	return d.customer, nil
}

type dialogueCatalog struct{ services []models.Service }

func (d *dialogueCatalog) FindActiveByTenant(tenantID int64) ([]models.Service, error) {
	return d.services, nil
}

type dialogueBooker struct {
	requests []models.CreateAppointmentRequest
	tenants  []int64
}

func (d *dialogueBooker) Create(req models.CreateAppointmentRequest, tenantID int64) (*models.Appointment, error) {
	d.requests = append(d.requests, req)
	d.tenants = append(d.tenants, tenantID)
	return &models.Appointment{ID: "a1", TenantID: tenantID}, nil
}
