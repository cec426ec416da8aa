package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HamsterHaven_Go/internal/habitat"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

var afternoon = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

// fakeRunner runs commands inline against a real habitat
type fakeRunner struct {
	hab   *habitat.Habitat
	err   error
	saves int
}

func (f *fakeRunner) Do(ctx context.Context, fn func(*habitat.Habitat) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(f.hab)
}

func (f *fakeRunner) SaveNow(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.saves++
	return nil
}

func (f *fakeRunner) Now() time.Time { return afternoon }

func newTestServer(t *testing.T) (http.Handler, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{hab: habitat.New(habitat.Options{
		ProfileID: "test",
		Rng:       rand.New(rand.NewPCG(1, 2)),
	})}
	r := chi.NewRouter()
	NewHabitatHandler(runner).RegisterRoutes(r)
	return r, runner
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// startGame begins a run and returns the first hamster's ID
func startGame(t *testing.T, h http.Handler) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/game", NewGameRequest{Name: "pip"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[NewGameResponse](t, rr).Hamster.ID
}

func TestHandleNewGame(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := do(t, srv, http.MethodPost, "/game", NewGameRequest{Name: "pip"})

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decode[NewGameResponse](t, rr)
	assert.Equal(t, "Pip", resp.Hamster.Name)
	assert.Equal(t, 1, resp.Hamster.Generation)

	rr = do(t, srv, http.MethodPost, "/game", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, ErrMsgRunInProgressError, decode[ErrorResponse](t, rr).Error)
}

func TestHandleGetHabitat(t *testing.T) {
	srv, _ := newTestServer(t)
	startGame(t, srv)

	rr := do(t, srv, http.MethodGet, "/habitat", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	view := decode[habitat.View](t, rr)
	assert.True(t, view.Active)
	assert.Len(t, view.Hamsters, 1)
	assert.Equal(t, "test", view.ProfileID)
	assert.Equal(t, 2, view.Slots)
}

func TestHandleGetHamster(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodGet, "/hamsters/"+id+"/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, decode[HamsterResponse](t, rr).Hamster.ID)

	rr = do(t, srv, http.MethodGet, "/hamsters/not-a-uuid/", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, srv, http.MethodGet, "/hamsters/00000000-0000-0000-0000-000000000001/", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleAction(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/hamsters/"+id+"/actions", ActionRequest{Action: "PLAY"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.True(t, decode[HamsterResponse](t, rr).Hamster.Busy)

	rr = do(t, srv, http.MethodPost, "/hamsters/"+id+"/actions", ActionRequest{Action: "pet"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, ErrMsgHamsterBusyError, decode[ErrorResponse](t, rr).Error)
}

func TestHandleAction_Validation(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/hamsters/"+id+"/actions", ActionRequest{Action: "juggle"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[ValidationErrorResponse](t, rr)
	assert.Contains(t, resp.Fields, "action")
}

func TestHandleAction_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	req := httptest.NewRequest(http.MethodPost, "/hamsters/"+id+"/actions", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrMsgInvalidRequest, decode[ErrorResponse](t, rr).Error)
}

func TestHandleFeed(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/hamsters/"+id+"/feed", FeedRequest{Food: "carrot"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.True(t, decode[HamsterResponse](t, rr).Hamster.Busy)

	rr = do(t, srv, http.MethodPost, "/hamsters/"+id+"/feed", FeedRequest{Food: "caviar_pizza"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ErrMsgUnknownItemError, decode[ErrorResponse](t, rr).Error)
}

func TestHandleBuyAccessory_InsufficientFunds(t *testing.T) {
	srv, _ := newTestServer(t)
	startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/shop/accessories", BuyAccessoryRequest{Accessory: "cape"})

	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	assert.Equal(t, ErrMsgNotEnoughMoneyError, decode[ErrorResponse](t, rr).Error)
}

func TestHandleRename(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/hamsters/"+id+"/rename", RenameRequest{Name: "nibbles"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Nibbles", decode[HamsterResponse](t, rr).Hamster.Name)

	rr = do(t, srv, http.MethodPost, "/hamsters/"+id+"/rename", RenameRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleFreeze(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/hamsters/"+id+"/freeze", FreezeRequest{Frozen: true})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[HamsterResponse](t, rr).Hamster.Frozen)

	rr = do(t, srv, http.MethodPost, "/hamsters/"+id+"/actions", ActionRequest{Action: "feed"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandleShop(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodGet, "/shop", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	shop := decode[habitat.ShopView](t, rr)
	assert.Equal(t, habitat.StartingCoins, shop.Coins)
	assert.NotEmpty(t, shop.Accessories)

	rr = do(t, srv, http.MethodPost, "/shop/accessories", BuyAccessoryRequest{Accessory: "scarf"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, MsgItemPurchased, decode[PurchaseResponse](t, rr).Message)

	rr = do(t, srv, http.MethodPost, "/shop/accessories", BuyAccessoryRequest{Accessory: "scarf"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, srv, http.MethodPost, "/hamsters/"+id+"/equip", EquipRequest{Accessory: "scarf"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, decode[HamsterResponse](t, rr).Hamster.Equipped, "scarf")

	rr = do(t, srv, http.MethodPost, "/hamsters/"+id+"/equip", EquipRequest{Accessory: "cape"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestHandleBreed_Errors(t *testing.T) {
	srv, _ := newTestServer(t)
	id := startGame(t, srv)

	rr := do(t, srv, http.MethodPost, "/breed", BreedRequest{ParentA: id, ParentB: id})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrMsgSameParentError, decode[ErrorResponse](t, rr).Error)

	rr = do(t, srv, http.MethodPost, "/breed", BreedRequest{ParentA: id, ParentB: "nope"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[ValidationErrorResponse](t, rr).Fields, "parentb")
}

func TestHandleMeta(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := do(t, srv, http.MethodGet, "/meta", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	view := decode[habitat.MetaView](t, rr)
	assert.Len(t, view.Tracks, 13)
	assert.Equal(t, 0, view.Seeds)

	rr = do(t, srv, http.MethodPost, "/meta/upgrade", UpgradeRequest{Track: meta.TrackKeyHamsterSlots})
	assert.Equal(t, http.StatusPaymentRequired, rr.Code)

	rr = do(t, srv, http.MethodPost, "/meta/upgrade", UpgradeRequest{Track: "warp_drive"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleAchievements(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := do(t, srv, http.MethodGet, "/achievements", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	view := decode[habitat.AchievementsView](t, rr)
	assert.Equal(t, 0, view.Unlocked)
	assert.Equal(t, len(view.Achievements), view.Total)

	rr = do(t, srv, http.MethodPost, "/achievements/check", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, decode[CheckAchievementsResponse](t, rr).Unlocked)
}

func TestHandleCollectPoops(t *testing.T) {
	srv, _ := newTestServer(t)
	startGame(t, srv)

	rr := do(t, srv, http.MethodDelete, "/poops/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, srv, http.MethodDelete, "/poops", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, decode[CleanupResponse](t, rr).Cleaned)
}

func TestHandleTriggerEvent(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := do(t, srv, http.MethodPost, "/events", TriggerEventRequest{Event: habitat.RandomEventKeys()[0]})
	assert.Equal(t, http.StatusConflict, rr.Code)

	startGame(t, srv)
	rr = do(t, srv, http.MethodPost, "/events", TriggerEventRequest{Event: habitat.RandomEventKeys()[0]})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, srv, http.MethodPost, "/events", TriggerEventRequest{Event: "meteor"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleSave(t *testing.T) {
	srv, runner := newTestServer(t)

	rr := do(t, srv, http.MethodPost, "/save", nil)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 1, runner.saves)
}

func TestRunnerStopped(t *testing.T) {
	srv, runner := newTestServer(t)
	runner.err = habitat.ErrRunnerStopped

	rr := do(t, srv, http.MethodGet, "/habitat", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, ErrMsgUnavailableError, decode[ErrorResponse](t, rr).Error)
}

func TestMapServiceErrorToUserMessage_Unknown(t *testing.T) {
	status, msg := mapServiceErrorToUserMessage(errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrMsgGenericServerError, msg)
}
