package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/report"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockBookingUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/flights", nil)

	flights := []domain.Flight{
		{ID: 1, FlightNumber: "LA2045", Origin: "Lima", Destination: "Cusco", TotalSeats: 180, EconomyPriceCents: 12000},
	}
	mockService.On("List", c.Request.Context()).Return(flights, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "LA2045", got[0].FlightNumber)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, &MockBookingUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/flights/1", nil)

	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(&domain.Flight{ID: 1, TotalSeats: 10}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_getInvalidID(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := NewRouter(RouterDeps{Flights: mockService, Bookings: &MockBookingUseCase{}, Reports: &MockReportUseCase{}})

	for _, path := range []string{"/api/v1/flights/abc", "/api/v1/flights/0", "/api/v1/flights/-1/seat-map"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFlightHandler_occupiedSeats(t *testing.T) {
	inventory := &MockBookingUseCase{}
	router := NewRouter(RouterDeps{Flights: &MockFlightUseCase{}, Bookings: inventory, Reports: &MockReportUseCase{}})

	inventory.On("OccupiedSeats", mock.Anything, int64(1)).Return([]string{"E1", "E2", "E3"}, nil)
	inventory.On("OccupiedSeats", mock.Anything, int64(2)).Return(nil, &domain.NotFoundError{Entity: "flight", ID: "2"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/occupied-seats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flight_id":1,"seats":["E1","E2","E3"]}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/2/occupied-seats", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	inventory.AssertExpectations(t)
}

func TestFlightHandler_seatMapSelection(t *testing.T) {
	inventory := &MockBookingUseCase{}
	router := NewRouter(RouterDeps{Flights: &MockFlightUseCase{}, Bookings: inventory, Reports: &MockReportUseCase{}})

	view := &booking.SeatMapView{FlightID: 1, TotalSeats: 10}
	inventory.On("SeatMap", mock.Anything, int64(1), []string{"E1", "E2", "B1"}).Return(view, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/seat-map?selected=E1,%20E2&selected=B1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	inventory.AssertExpectations(t)
}

func TestFlightHandler_quote(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := NewRouter(RouterDeps{Flights: mockService, Bookings: &MockBookingUseCase{}, Reports: &MockReportUseCase{}})

	mockService.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Flight{ID: 1, EconomyPriceCents: 12000, BusinessPriceCents: 45000}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/quote?class=business&seats=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var q quoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, int64(90000), q.TotalCents)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/quote?class=first", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/quote?seats=0", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestFlightHandler_search(t *testing.T) {
	inventory := &MockBookingUseCase{}
	router := NewRouter(RouterDeps{Flights: &MockFlightUseCase{}, Bookings: inventory, Reports: &MockReportUseCase{}})

	query := booking.SearchQuery{
		Origin:      "lima",
		Destination: "",
		Date:        time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Passengers:  2,
		Class:       domain.SeatClassEconomy,
	}
	inventory.On("SearchFlights", mock.Anything, query).
		Return([]booking.FlightAvailability{{Flight: domain.Flight{ID: 1}, AvailableSeats: 8}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?origin=lima&date=2026-05-10&passengers=2", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?date=10-05-2026", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	inventory.AssertExpectations(t)
}

func TestReportHandler(t *testing.T) {
	reports := &MockReportUseCase{}
	router := NewRouter(RouterDeps{Flights: &MockFlightUseCase{}, Bookings: &MockBookingUseCase{}, Reports: reports})

	reports.On("Summary", mock.Anything).Return(&report.Summary{TotalFlights: 2, ConfirmedBookings: 3}, nil)
	reports.On("Flight", mock.Anything, int64(1)).Return(&report.FlightReport{FlightID: 1, OccupancyPercentage: 30}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var sum report.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 3, sum.ConfirmedBookings)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/flights/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	reports.AssertExpectations(t)
}
