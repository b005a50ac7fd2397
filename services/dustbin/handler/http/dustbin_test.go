package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/piresc/smartdustbin/services/dustbin/mocks"
	"github.com/piresc/smartdustbin/services/dustbin/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerCase struct {
	name           string
	method         string
	target         string
	body           string
	params         map[string]string
	mockSetup      func(*mocks.MockDustbinUC)
	expectedStatus int
	expectedError  string
}

func runHandlerCase(t *testing.T, tt handlerCase, call func(*DustbinHandler, echo.Context) error) *httptest.ResponseRecorder {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDustbinUC(ctrl)
	if tt.mockSetup != nil {
		tt.mockSetup(mockUC)
	}
	h := NewDustbinHandler(mockUC)

	e := echo.New()
	var req *http.Request
	if tt.body != "" {
		req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(tt.method, tt.target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(tt.params) > 0 {
		names := make([]string, 0, len(tt.params))
		values := make([]string, 0, len(tt.params))
		for name, value := range tt.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	require.NoError(t, call(h, c))
	assert.Equal(t, tt.expectedStatus, rec.Code)

	if tt.expectedError != "" {
		var body utils.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, tt.expectedError, body.Error)
		assert.Equal(t, tt.expectedStatus, body.Code)
	}
	return rec
}

func TestNewDustbinHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDustbinUC(ctrl)

	handler := NewDustbinHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.dustbinUC)
}

func TestDustbinHandler_ListDustbins(t *testing.T) {
	distance := 1.5
	tests := []handlerCase{
		{
			name:   "Without reference",
			method: http.MethodGet,
			target: "/api/dustbins",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().ListDustbins(gomock.Any(), nil).Return([]*models.Dustbin{{ID: "dustbin_001"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "With reference",
			method: http.MethodGet,
			target: "/api/dustbins?lat=40.7&lng=-73.9",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().
					ListDustbins(gomock.Any(), &models.Location{Latitude: 40.7, Longitude: -73.9}).
					Return([]*models.Dustbin{{ID: "dustbin_001", Distance: &distance}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Only one coordinate",
			method: http.MethodGet,
			target: "/api/dustbins?lat=40.7",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().ListDustbins(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ref *models.Location) ([]*models.Dustbin, error) {
						assert.Equal(t, 40.7, ref.Latitude)
						assert.True(t, math.IsNaN(ref.Longitude))
						return nil, models.NewValidationError(usecase.MsgInvalidReference)
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgInvalidReference,
		},
		{
			name:   "Unparsable coordinate",
			method: http.MethodGet,
			target: "/api/dustbins?lat=north&lng=-73.9",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().ListDustbins(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ref *models.Location) ([]*models.Dustbin, error) {
						assert.True(t, math.IsNaN(ref.Latitude))
						return nil, models.NewValidationError(usecase.MsgInvalidReference)
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgInvalidReference,
		},
		{
			name:   "Store unavailable",
			method: http.MethodGet,
			target: "/api/dustbins",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().ListDustbins(gomock.Any(), nil).
					Return(nil, fmt.Errorf("%w: timeout", models.ErrStoreUnavailable))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  MsgStoreUnavailable,
		},
		{
			name:   "Unexpected error",
			method: http.MethodGet,
			target: "/api/dustbins",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().ListDustbins(gomock.Any(), nil).Return(nil, errors.New("cursor died"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch dustbins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandlerCase(t, tt, (*DustbinHandler).ListDustbins)

			if tt.expectedStatus == http.StatusOK {
				var body []map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Len(t, body, 1)
				assert.Equal(t, "dustbin_001", body[0]["id"])
			}
		})
	}
}

func TestDustbinHandler_ListDustbins_DistanceField(t *testing.T) {
	distance := 2.25
	tt := handlerCase{
		method: http.MethodGet,
		target: "/api/dustbins",
		mockSetup: func(uc *mocks.MockDustbinUC) {
			uc.EXPECT().ListDustbins(gomock.Any(), nil).Return([]*models.Dustbin{
				{ID: "a"},
				{ID: "b", Distance: &distance},
			}, nil)
		},
		expectedStatus: http.StatusOK,
	}

	rec := runHandlerCase(t, tt, (*DustbinHandler).ListDustbins)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body[0], "distance")
	assert.Equal(t, 2.25, body[1]["distance"])
}

func TestDustbinHandler_GetDustbin(t *testing.T) {
	tests := []handlerCase{
		{
			name:   "Found",
			method: http.MethodGet,
			target: "/api/dustbins/dustbin_001",
			params: map[string]string{"id": "dustbin_001"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().GetDustbin(gomock.Any(), "dustbin_001").Return(&models.Dustbin{ID: "dustbin_001"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Not found",
			method: http.MethodGet,
			target: "/api/dustbins/nope",
			params: map[string]string{"id": "nope"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().GetDustbin(gomock.Any(), "nope").Return(nil, models.ErrDustbinNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  MsgDustbinNotFound,
		},
		{
			name:   "Unexpected error",
			method: http.MethodGet,
			target: "/api/dustbins/x",
			params: map[string]string{"id": "x"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().GetDustbin(gomock.Any(), "x").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch dustbin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runHandlerCase(t, tt, (*DustbinHandler).GetDustbin)
		})
	}
}

func TestDustbinHandler_FindNearby(t *testing.T) {
	nearby := func(lat, lng, radius string) map[string]string {
		return map[string]string{"lat": lat, "lng": lng, "radius": radius}
	}

	tests := []handlerCase{
		{
			name:   "Success",
			method: http.MethodGet,
			target: "/api/dustbins/nearby/40.7829/-73.9654/5",
			params: nearby("40.7829", "-73.9654", "5"),
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().
					FindNearby(gomock.Any(), models.Location{Latitude: 40.7829, Longitude: -73.9654}, 5.0).
					Return([]*models.Dustbin{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Unparsable latitude",
			method: http.MethodGet,
			target: "/api/dustbins/nearby/abc/-73.9654/5",
			params: nearby("abc", "-73.9654", "5"),
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().FindNearby(gomock.Any(), gomock.Any(), 5.0).
					DoAndReturn(func(_ context.Context, ref models.Location, _ float64) ([]*models.Dustbin, error) {
						assert.True(t, math.IsNaN(ref.Latitude))
						return nil, models.NewValidationError(usecase.MsgInvalidNearbyArgs)
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgInvalidNearbyArgs,
		},
		{
			name:   "Unparsable radius",
			method: http.MethodGet,
			target: "/api/dustbins/nearby/40/-73/far",
			params: nearby("40", "-73", "far"),
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().FindNearby(gomock.Any(), models.Location{Latitude: 40, Longitude: -73}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ models.Location, radius float64) ([]*models.Dustbin, error) {
						assert.True(t, math.IsNaN(radius))
						return nil, models.NewValidationError(usecase.MsgInvalidNearbyArgs)
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgInvalidNearbyArgs,
		},
		{
			name:   "Rejected by use case",
			method: http.MethodGet,
			target: "/api/dustbins/nearby/40/-73/-1",
			params: nearby("40", "-73", "-1"),
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().FindNearby(gomock.Any(), gomock.Any(), -1.0).
					Return(nil, models.NewValidationError(usecase.MsgInvalidNearbyArgs))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgInvalidNearbyArgs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandlerCase(t, tt, (*DustbinHandler).FindNearby)

			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, "[]", rec.Body.String())
			}
		})
	}
}

func TestDustbinHandler_UpdateFillLevel(t *testing.T) {
	tests := []handlerCase{
		{
			name:   "Success",
			method: http.MethodPut,
			target: "/api/dustbins/dustbin_001/fill-level",
			body:   `{"fillPercentage": 60}`,
			params: map[string]string{"id": "dustbin_001"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().UpdateFillLevel(gomock.Any(), "dustbin_001", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req *models.UpdateFillLevelRequest) error {
						if req.FillPercentage == nil || *req.FillPercentage != 60 {
							return errors.New("unexpected fill percentage")
						}
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Out of range",
			method: http.MethodPut,
			target: "/api/dustbins/dustbin_001/fill-level",
			body:   `{"fillPercentage": 150}`,
			params: map[string]string{"id": "dustbin_001"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().UpdateFillLevel(gomock.Any(), "dustbin_001", gomock.Any()).
					Return(models.NewValidationError(usecase.MsgFillOutOfRange))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgFillOutOfRange,
		},
		{
			name:           "Malformed body",
			method:         http.MethodPut,
			target:         "/api/dustbins/dustbin_001/fill-level",
			body:           `{"fillPercentage": "full"}`,
			params:         map[string]string{"id": "dustbin_001"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  MsgInvalidBody,
		},
		{
			name:   "Unknown dustbin",
			method: http.MethodPut,
			target: "/api/dustbins/nope/fill-level",
			body:   `{"fillPercentage": 10}`,
			params: map[string]string{"id": "nope"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().UpdateFillLevel(gomock.Any(), "nope", gomock.Any()).Return(models.ErrDustbinNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  MsgDustbinNotFound,
		},
		{
			name:   "Store unavailable",
			method: http.MethodPut,
			target: "/api/dustbins/dustbin_001/fill-level",
			body:   `{"fillPercentage": 10}`,
			params: map[string]string{"id": "dustbin_001"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().UpdateFillLevel(gomock.Any(), "dustbin_001", gomock.Any()).Return(models.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  MsgStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandlerCase(t, tt, (*DustbinHandler).UpdateFillLevel)

			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"message":"Fill level updated successfully"}`, rec.Body.String())
			}
		})
	}
}

func TestDustbinHandler_SubmitReport(t *testing.T) {
	tests := []handlerCase{
		{
			name:   "Success",
			method: http.MethodPost,
			target: "/api/dustbins/any-id/report",
			body:   `{"issue": "Overflowing", "description": "Bags on the ground"}`,
			params: map[string]string{"id": "any-id"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().
					SubmitReport(gomock.Any(), "any-id", &models.SubmitReportRequest{Issue: "Overflowing", Description: "Bags on the ground"}).
					Return(&models.IssueReport{ID: "r1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Malformed body",
			method:         http.MethodPost,
			target:         "/api/dustbins/any-id/report",
			body:           `{"issue": `,
			params:         map[string]string{"id": "any-id"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  MsgInvalidBody,
		},
		{
			name:   "Store failure",
			method: http.MethodPost,
			target: "/api/dustbins/any-id/report",
			body:   `{"issue": "Damaged"}`,
			params: map[string]string{"id": "any-id"},
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().SubmitReport(gomock.Any(), "any-id", gomock.Any()).Return(nil, errors.New("write failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to report issue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandlerCase(t, tt, (*DustbinHandler).SubmitReport)

			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"message":"Issue reported successfully"}`, rec.Body.String())
			}
		})
	}
}

func TestDustbinHandler_CreateDustbin(t *testing.T) {
	tests := []handlerCase{
		{
			name:   "Created",
			method: http.MethodPost,
			target: "/api/dustbins",
			body:   `{"name": "Pier 45", "address": "Hudson River Park", "latitude": 0, "longitude": 0}`,
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().CreateDustbin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *models.CreateDustbinRequest) (*models.Dustbin, error) {
						if req.Latitude == nil || req.Longitude == nil {
							return nil, models.NewValidationError(usecase.MsgMissingFields)
						}
						return &models.Dustbin{ID: "dustbin_new", Name: req.Name, Status: models.DustbinStatusActive}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Missing fields",
			method: http.MethodPost,
			target: "/api/dustbins",
			body:   `{"name": "Pier 45"}`,
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().CreateDustbin(gomock.Any(), gomock.Any()).
					Return(nil, models.NewValidationError(usecase.MsgMissingFields))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgMissingFields,
		},
		{
			name:           "Malformed body",
			method:         http.MethodPost,
			target:         "/api/dustbins",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  MsgInvalidBody,
		},
		{
			name:   "Store failure",
			method: http.MethodPost,
			target: "/api/dustbins",
			body:   `{"name": "a", "address": "b", "latitude": 1, "longitude": 2}`,
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().CreateDustbin(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to add dustbin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandlerCase(t, tt, (*DustbinHandler).CreateDustbin)

			if tt.expectedStatus == http.StatusCreated {
				var body models.Dustbin
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "dustbin_new", body.ID)
				assert.Equal(t, "Pier 45", body.Name)
			}
		})
	}
}

func TestDustbinHandler_GetStats(t *testing.T) {
	tests := []handlerCase{
		{
			name:   "Success",
			method: http.MethodGet,
			target: "/api/stats",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().GetStats(gomock.Any()).Return(&models.DustbinStats{Total: 2, Empty: 1, High: 1, AverageFillLevel: 50}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Store unavailable",
			method: http.MethodGet,
			target: "/api/stats",
			mockSetup: func(uc *mocks.MockDustbinUC) {
				uc.EXPECT().GetStats(gomock.Any()).Return(nil, models.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  MsgStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandlerCase(t, tt, (*DustbinHandler).GetStats)

			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t,
					`{"total":2,"empty":1,"low":0,"medium":0,"high":1,"averageFillLevel":50}`,
					rec.Body.String())
			}
		})
	}
}

// Malformed arguments must not hide an unreachable store: the real use case
// pings first, so both routes answer 503.
func TestDustbinHandler_StoreCheckedBeforeArguments(t *testing.T) {
	tests := []struct {
		name   string
		target string
		params map[string]string
		call   func(*DustbinHandler, echo.Context) error
	}{
		{
			name:   "Nearby with unparsable latitude",
			target: "/api/dustbins/nearby/abc/1/5",
			params: map[string]string{"lat": "abc", "lng": "1", "radius": "5"},
			call:   (*DustbinHandler).FindNearby,
		},
		{
			name:   "List with unparsable reference",
			target: "/api/dustbins?lat=abc&lng=1",
			call:   (*DustbinHandler).ListDustbins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDustbinRepo(ctrl)
			repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			h := NewDustbinHandler(usecase.NewDustbinUC(nil, repo, mocks.NewMockDustbinGW(ctrl)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.target, nil), rec)
			if len(tt.params) > 0 {
				var names, values []string
				for name, value := range tt.params {
					names = append(names, name)
					values = append(values, value)
				}
				c.SetParamNames(names...)
				c.SetParamValues(values...)
			}

			require.NoError(t, tt.call(h, c))
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, MsgStoreUnavailable, body.Error)
		})
	}
}
