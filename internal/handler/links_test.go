package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrlinx/internal/backend"
	"qrlinx/internal/mocks"
	"qrlinx/internal/model"
	"qrlinx/internal/repository"
	"qrlinx/internal/service"
)

func newLinkRouter(dashboard *mocks.MockDashboardInterface) *gin.Engine {
	h := NewLinkHandler(dashboard, testPresenter())

	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api/v1", RequireSession(dashboard))
	v1.GET("/links", h.List)
	v1.POST("/links", h.Create)
	v1.POST("/links/qr/retry", h.RetryQR)
	v1.DELETE("/links/result", h.DismissResult)
	v1.DELETE("/links/:id", h.Delete)
	v1.POST("/links/:id/select", h.Select)
	v1.GET("/analytics", h.Analytics)
	return router
}

func signedIn(m *mocks.MockDashboardInterface) {
	m.EXPECT().OwnerID().Return("user-1").AnyTimes()
}

func TestRequireSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := mocks.NewMockDashboardInterface(ctrl)
	mockDashboard.EXPECT().OwnerID().Return("")
	router := newLinkRouter(mockDashboard)

	w := doJSON(router, "GET", "/api/v1/links", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLinkHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := mocks.NewMockDashboardInterface(ctrl)
	signedIn(mockDashboard)
	router := newLinkRouter(mockDashboard)

	mockDashboard.EXPECT().Links("Blog").Return([]model.Link{
		{ID: 2, OriginalURL: "https://a.org/blog", ShortHash: "aaaaaa"},
	})

	w := doJSON(router, "GET", "/api/v1/links?q=Blog", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []LinkView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "a.org", resp.Data[0].Host)
	assert.Equal(t, "http://sho.rt/aaaaaa", resp.Data[0].ShortURL)
}

func TestLinkHandler_Create(t *testing.T) {
	complete := &model.CreationResult{
		Link:         model.Link{ID: 3, ShortHash: "ab12cd", OriginalURL: "https://example.com"},
		ShortURL:     "http://sho.rt/ab12cd",
		QRCodeBase64: "iVBORw0KGgo=",
		QRStatus:     model.QRReady,
	}
	partial := &model.CreationResult{
		Link:     model.Link{ID: 3, ShortHash: "ab12cd"},
		ShortURL: "http://sho.rt/ab12cd",
		QRStatus: model.QRUnavailable,
		QRDetail: "qr engine down",
	}
	rejected := &service.CreationError{
		Stage:  service.StageShorten,
		Detail: "invalid url",
		Err:    &backend.APIError{Status: 400, Detail: "invalid url"},
	}

	tests := []struct {
		name       string
		body       interface{}
		result     *model.CreationResult
		err        error
		skipCall   bool
		wantStatus int
		wantText   string
	}{
		{name: "created", body: model.CreateLinkRequest{URL: "https://example.com"}, result: complete, wantStatus: http.StatusCreated, wantText: "iVBORw0KGgo="},
		{name: "qr failed", body: model.CreateLinkRequest{URL: "https://example.com"}, result: partial, err: &service.CreationError{Stage: service.StageQR, Detail: "qr engine down"}, wantStatus: http.StatusMultiStatus, wantText: "qr engine down"},
		{name: "shorten rejected", body: model.CreateLinkRequest{URL: "bad"}, err: rejected, wantStatus: http.StatusUnprocessableEntity, wantText: "invalid url"},
		{name: "backend unavailable", body: model.CreateLinkRequest{URL: "https://example.com"}, err: &service.CreationError{Stage: service.StageShorten, Detail: "service unavailable, please try again"}, wantStatus: http.StatusBadGateway},
		{name: "empty url", body: model.CreateLinkRequest{URL: ""}, err: service.ErrEmptyURL, wantStatus: http.StatusBadRequest},
		{name: "busy", body: model.CreateLinkRequest{URL: "https://example.com"}, err: service.ErrBusy, wantStatus: http.StatusConflict},
		{name: "invalid body", body: "{", skipCall: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDashboard := mocks.NewMockDashboardInterface(ctrl)
			signedIn(mockDashboard)
			if !tt.skipCall {
				req := tt.body.(model.CreateLinkRequest)
				mockDashboard.EXPECT().Create(gomock.Any(), req.URL).Return(tt.result, tt.err)
			}
			router := newLinkRouter(mockDashboard)

			w := doJSON(router, "POST", "/api/v1/links", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantText != "" {
				assert.Contains(t, w.Body.String(), tt.wantText)
			}
		})
	}
}

func TestLinkHandler_RetryQRAndDismiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := mocks.NewMockDashboardInterface(ctrl)
	signedIn(mockDashboard)
	router := newLinkRouter(mockDashboard)

	t.Run("retry succeeds", func(t *testing.T) {
		mockDashboard.EXPECT().RetryQR(gomock.Any()).Return(&model.CreationResult{
			Link:         model.Link{ShortHash: "ab12cd"},
			QRCodeBase64: "x",
			QRStatus:     model.QRReady,
		}, nil)

		w := doJSON(router, "POST", "/api/v1/links/qr/retry", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nothing to retry", func(t *testing.T) {
		mockDashboard.EXPECT().RetryQR(gomock.Any()).Return(nil, service.ErrNoResult)

		w := doJSON(router, "POST", "/api/v1/links/qr/retry", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("dismiss", func(t *testing.T) {
		mockDashboard.EXPECT().DismissResult()

		w := doJSON(router, "DELETE", "/api/v1/links/result", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLinkHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockDashboardInterface)
		wantStatus int
	}{
		{
			name: "confirmed",
			path: "/api/v1/links/7?confirm=true",
			setupMock: func(m *mocks.MockDashboardInterface) {
				m.EXPECT().Delete(gomock.Any(), int64(7), true).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not confirmed",
			path: "/api/v1/links/7",
			setupMock: func(m *mocks.MockDashboardInterface) {
				m.EXPECT().Delete(gomock.Any(), int64(7), false).Return(service.ErrConfirmationRequired)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "gone in store",
			path: "/api/v1/links/7?confirm=1",
			setupMock: func(m *mocks.MockDashboardInterface) {
				m.EXPECT().Delete(gomock.Any(), int64(7), true).Return(repository.ErrLinkNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "busy",
			path: "/api/v1/links/7?confirm=true",
			setupMock: func(m *mocks.MockDashboardInterface) {
				m.EXPECT().Delete(gomock.Any(), int64(7), true).Return(service.ErrBusy)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "store failure",
			path: "/api/v1/links/7?confirm=true",
			setupMock: func(m *mocks.MockDashboardInterface) {
				m.EXPECT().Delete(gomock.Any(), int64(7), true).Return(assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "bad id",
			path:       "/api/v1/links/abc?confirm=true",
			setupMock:  func(m *mocks.MockDashboardInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDashboard := mocks.NewMockDashboardInterface(ctrl)
			signedIn(mockDashboard)
			tt.setupMock(mockDashboard)
			router := newLinkRouter(mockDashboard)

			w := doJSON(router, "DELETE", tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLinkHandler_Select(t *testing.T) {
	tests := []struct {
		name       string
		view       *model.AnalyticsView
		err        error
		wantStatus int
	}{
		{name: "ready", view: &model.AnalyticsView{LinkID: 7, TopLocation: "US"}, wantStatus: http.StatusOK},
		{name: "unknown link", err: service.ErrLinkNotFound, wantStatus: http.StatusNotFound},
		{name: "superseded", err: service.ErrStaleSelection, wantStatus: http.StatusConflict},
		{name: "unavailable", err: service.ErrAnalyticsUnavailable, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDashboard := mocks.NewMockDashboardInterface(ctrl)
			signedIn(mockDashboard)
			mockDashboard.EXPECT().Select(gomock.Any(), int64(7)).Return(tt.view, tt.err)
			router := newLinkRouter(mockDashboard)

			w := doJSON(router, "POST", "/api/v1/links/7/select", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLinkHandler_Analytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := mocks.NewMockDashboardInterface(ctrl)
	signedIn(mockDashboard)
	mockDashboard.EXPECT().Current().Return(model.DashboardState{
		OwnerID:  "user-1",
		Status:   model.AnalyticsReady,
		Selected: &model.Link{ID: 7, ShortHash: "ab12cd"},
		View: &model.AnalyticsView{
			LinkID:      7,
			TotalClicks: 1,
			Breakdowns: model.Breakdowns{
				Device: []model.BreakdownEntry{{Key: "", Count: 1, Percent: 100}},
			},
			TopLocation: "-",
		},
	})
	router := newLinkRouter(mockDashboard)

	w := doJSON(router, "GET", "/api/v1/analytics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data AnalyticsState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.AnalyticsReady, resp.Data.Status)
	require.NotNil(t, resp.Data.View)
	assert.Equal(t, "Unknown", resp.Data.View.Devices[0].Label)
	assert.Equal(t, "http://sho.rt/ab12cd", resp.Data.Selected.ShortURL)
}
